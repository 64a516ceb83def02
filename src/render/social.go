package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

// NoSignalsText is the literal shown for an empty or absent signal feed.
const NoSignalsText = "No social signals found."

// Social renders the amplification feed in input order: no sorting, no dedup.
func Social(signals []factcheck.SocialSignal) template.HTML {
	if len(signals) == 0 {
		return sanitize(fmt.Sprintf(`<p>%s</p>`, NoSignalsText))
	}

	var b strings.Builder
	for _, s := range signals {
		fmt.Fprintf(&b,
			`<div class="signal-item"><strong>[%s]</strong> %s: <a href="%s">%s</a> <span class="timestamp">(%s)</span></div>`,
			escape(s.Platform), escape(s.User), escape(s.URL), escape(s.Text), escape(s.Timestamp))
	}
	return sanitize(b.String())
}
