package render

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// panelPolicy scrubs every assembled fragment before it leaves the package.
// Backend-originated text is escaped at interpolation time; the policy is the
// second gate that keeps hostile URLs and unexpected markup out of the page.
var panelPolicy = newPanelPolicy()

func newPanelPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "span", "strong", "h3", "p", "svg", "path")
	p.AllowAttrs("class", "id").Globally()
	p.AllowAttrs("href").OnElements("a")
	// attribute names arrive lowercased from the HTML parser; the page's
	// innerHTML re-parse restores the SVG casing (viewBox, pathLength)
	p.AllowAttrs("viewbox", "width", "height").OnElements("svg")
	p.AllowAttrs("data-filled", "data-unfilled").OnElements("svg")
	p.AllowAttrs("d", "fill", "stroke", "stroke-width", "stroke-linecap",
		"pathlength", "stroke-dasharray").OnElements("path")
	p.AllowStandardURLs()
	p.RequireParseableURLs(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoFollowOnLinks(true)
	return p
}

func sanitize(fragment string) template.HTML {
	return template.HTML(panelPolicy.Sanitize(fragment))
}

func escape(text string) string {
	return template.HTMLEscapeString(text)
}
