package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

const (
	noSourcesText  = "No sources available"
	sourceLabelMax = 50
)

// Verdict renders the verdict card: gauge, heading, source list, optional
// deepfake dump, ledger line. Each invocation gets a fresh gauge id; cards
// accumulate in the scroll history without touching one another.
func Verdict(r *factcheck.Result) template.HTML {
	style := r.Verdict.Style()

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="verdict-card %s">`, style.Class)
	fmt.Fprintf(&b, `<div class="gauge-wrap">%s</div>`, gaugeSVG(nextGaugeID(), r.Confidence))
	fmt.Fprintf(&b, `<h3>%s (%d%%)</h3>`, escape(r.Verdict.String()), r.Confidence)

	b.WriteString(`<div class="sources"><strong>Sources:</strong>`)
	if len(r.Sources) == 0 {
		b.WriteString(noSourcesText)
	} else {
		for _, src := range r.Sources {
			fmt.Fprintf(&b, `<a href="%s">%s</a>`, escape(src), escape(sourceLabel(src)))
		}
	}
	b.WriteString(`</div>`)

	if dump := factcheck.FlattenDeepfake(r.Deepfake); dump != "" {
		fmt.Fprintf(&b, `<div class="deepfake"><strong>Deepfake Analysis:</strong> %s</div>`, escape(dump))
	}

	ledger := "Failed"
	if r.LedgerRecorded() {
		ledger = "Recorded"
	}
	fmt.Fprintf(&b, `<div class="ledger"><strong>Ledger:</strong> %s</div>`, ledger)
	b.WriteString(`</div>`)

	return sanitize(b.String())
}

// sourceLabel truncates long URLs for display; the href keeps the full URL.
func sourceLabel(src string) string {
	runes := []rune(src)
	if len(runes) <= sourceLabelMax {
		return src
	}
	return string(runes[:sourceLabelMax]) + "..."
}
