package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens-client/src/factcheck"
)

func TestProvenanceMissingGraph(t *testing.T) {
	for name, p := range map[string]*factcheck.Provenance{
		"nil section":   nil,
		"nil graph":     {},
		"missing nodes": {Graph: &factcheck.Graph{Edges: []factcheck.GraphEdge{{"a", "b"}}}},
	} {
		t.Run(name, func(t *testing.T) {
			panel := Provenance(p)
			assert.Equal(t, NoProvenanceText, panel.Message)
			assert.Nil(t, panel.Graph, "no elements may be constructed")
		})
	}
}

func TestProvenanceElements(t *testing.T) {
	panel := Provenance(&factcheck.Provenance{Graph: &factcheck.Graph{
		Nodes: []factcheck.GraphNode{
			{ID: "blog.example", Role: "origin"},
			{ID: "bot-net", Role: "amplifier"},
			{ID: "afp.fact", Role: "factchecker"},
		},
		Edges: []factcheck.GraphEdge{{"blog.example", "bot-net"}, {"bot-net", "afp.fact"}},
	}})

	require.Empty(t, panel.Message)
	require.NotNil(t, panel.Graph)
	require.Len(t, panel.Graph.Elements, 5)

	node := panel.Graph.Elements[0].Data
	assert.Equal(t, "blog.example", node.ID)
	assert.Equal(t, "blog.example", node.Label)
	assert.Equal(t, "origin", node.Role)

	edge := panel.Graph.Elements[3].Data
	assert.Equal(t, "blog.example->bot-net", edge.ID)
	assert.Equal(t, "blog.example", edge.Source)
	assert.Equal(t, "bot-net", edge.Target)
}

func TestProvenanceUnknownRoleStylesAsAmplifier(t *testing.T) {
	panel := Provenance(&factcheck.Provenance{Graph: &factcheck.Graph{
		Nodes: []factcheck.GraphNode{{ID: "x", Role: "whistleblower"}, {ID: "y"}},
	}})
	require.NotNil(t, panel.Graph)
	assert.Equal(t, "amplifier", panel.Graph.Elements[0].Data.Role)
	assert.Equal(t, "amplifier", panel.Graph.Elements[1].Data.Role)
}

func TestProvenanceStylesAndLayout(t *testing.T) {
	panel := Provenance(&factcheck.Provenance{Graph: &factcheck.Graph{
		Nodes: []factcheck.GraphNode{{ID: "n", Role: "origin"}},
	}})
	require.NotNil(t, panel.Graph)

	assert.Equal(t, "cose", panel.Graph.Layout.Name)
	assert.True(t, panel.Graph.Layout.Animate)

	colors := map[string]string{}
	for _, block := range panel.Graph.Style {
		colors[block.Selector] = block.Style["background-color"]
	}
	assert.Equal(t, "#00ff88", colors["node[role='origin']"])
	assert.Equal(t, "#ff8c00", colors["node[role='amplifier']"])
	assert.Equal(t, "#00aaff", colors["node[role='factchecker']"])

	for _, block := range panel.Graph.Style {
		if block.Selector == "edge" {
			assert.Equal(t, "triangle", block.Style["target-arrow-shape"])
			continue
		}
		assert.Equal(t, "2", block.Style["text-outline-width"], "labels stay legible on %s", block.Selector)
	}
}
