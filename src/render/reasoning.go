package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

// Reasoning renders the four reasoning regions as one fragment that replaces
// the panel wholesale, so a second submission never accumulates chips from the
// first. Regions for absent fields come out empty, never placeholdered.
func Reasoning(r *factcheck.Reasoning) template.HTML {
	if r == nil {
		r = &factcheck.Reasoning{}
	}

	var b strings.Builder
	b.WriteString(`<div class="reasoning-panel">`)

	b.WriteString(`<div class="fallacies">`)
	for _, f := range r.Fallacies {
		fmt.Fprintf(&b, `<div class="chip fallacy">%s</div>`, escape(f))
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="biases">`)
	for _, bias := range r.Biases {
		fmt.Fprintf(&b, `<div class="chip bias">%s</div>`, escape(bias))
	}
	b.WriteString(`</div>`)

	writeTextLine(&b, "debiased", "Debiased:", r.DebiasedText)
	writeTextLine(&b, "explanation", "Explanation:", r.Explanation)
	writeTextLine(&b, "generative-explainer", "Generative Explainer:", r.GenerativeExplainer)

	b.WriteString(`</div>`)
	return sanitize(b.String())
}

func writeTextLine(b *strings.Builder, class, label, text string) {
	if text == "" {
		fmt.Fprintf(b, `<div class="%s"></div>`, class)
		return
	}
	fmt.Fprintf(b, `<div class="%s">%s %s</div>`, class, label, escape(text))
}
