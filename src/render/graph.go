package render

import (
	"fmt"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

// NoProvenanceText is the literal shown when no usable graph arrived.
const NoProvenanceText = "No provenance data."

const defaultRole = "amplifier"

var roleColors = map[string]string{
	"origin":      "#00ff88",
	"amplifier":   "#ff8c00",
	"factchecker": "#00aaff",
}

// ElementData is one cytoscape-style element payload: nodes carry id, label
// and role; edges carry source and target.
type ElementData struct {
	ID     string `json:"id,omitempty"`
	Label  string `json:"label,omitempty"`
	Role   string `json:"role,omitempty"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

type Element struct {
	Data ElementData `json:"data"`
}

type StyleBlock struct {
	Selector string            `json:"selector"`
	Style    map[string]string `json:"style"`
}

type Layout struct {
	Name    string `json:"name"`
	Animate bool   `json:"animate"`
}

// GraphSpec is the complete description handed to the delegated layout
// engine: typed elements, role styling, and a force-directed layout.
type GraphSpec struct {
	Elements []Element    `json:"elements"`
	Style    []StyleBlock `json:"style"`
	Layout   Layout       `json:"layout"`
}

// ProvenancePanel is what the page fans into the graph region: either the
// no-data literal or a spec for the layout engine, never both.
type ProvenancePanel struct {
	Message string     `json:"message,omitempty"`
	Graph   *GraphSpec `json:"graph,omitempty"`
}

// Provenance maps the raw relational description onto visualization elements.
// A missing section, or one without a nodes collection, yields the literal
// and zero elements.
func Provenance(p *factcheck.Provenance) ProvenancePanel {
	if p == nil || p.Graph == nil || p.Graph.Nodes == nil {
		return ProvenancePanel{Message: NoProvenanceText}
	}

	elements := make([]Element, 0, len(p.Graph.Nodes)+len(p.Graph.Edges))
	for _, n := range p.Graph.Nodes {
		role := n.Role
		if _, known := roleColors[role]; !known {
			role = defaultRole
		}
		elements = append(elements, Element{Data: ElementData{
			ID:    n.ID,
			Label: n.ID,
			Role:  role,
		}})
	}
	for _, e := range p.Graph.Edges {
		elements = append(elements, Element{Data: ElementData{
			ID:     fmt.Sprintf("%s->%s", e[0], e[1]),
			Source: e[0],
			Target: e[1],
		}})
	}

	return ProvenancePanel{Graph: &GraphSpec{
		Elements: elements,
		Style:    graphStyles(),
		Layout:   Layout{Name: "cose", Animate: true},
	}}
}

func graphStyles() []StyleBlock {
	blocks := make([]StyleBlock, 0, len(roleColors)+1)
	for _, role := range []string{"origin", "amplifier", "factchecker"} {
		blocks = append(blocks, StyleBlock{
			Selector: fmt.Sprintf("node[role='%s']", role),
			Style: map[string]string{
				"background-color":   roleColors[role],
				"label":              "data(label)",
				"color":              "#fff",
				"font-size":          "10px",
				"text-outline-width": "2",
				"text-outline-color": "#000",
			},
		})
	}
	blocks = append(blocks, StyleBlock{
		Selector: "edge",
		Style: map[string]string{
			"line-color":         "#00d9f5",
			"target-arrow-color": "#00d9f5",
			"target-arrow-shape": "triangle",
		},
	})
	return blocks
}
