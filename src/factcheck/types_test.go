package factcheck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayLabelPrecedence(t *testing.T) {
	img := &ImageAttachment{Name: "photo.png", Data: []byte{1}}

	cases := []struct {
		name string
		in   ClaimInput
		want string
	}{
		{"message wins", ClaimInput{Message: "m", Text: "t", URL: "u", Image: img}, "m"},
		{"text next", ClaimInput{Text: "t", URL: "u", Image: img}, "t"},
		{"url next", ClaimInput{URL: "u", Image: img}, "u"},
		{"image name last", ClaimInput{Image: img}, "photo.png"},
		{"empty", ClaimInput{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.DisplayLabel())
		})
	}
}

func TestClaimTextPrefersMessage(t *testing.T) {
	in := ClaimInput{Message: "raw chat", Text: "structured"}
	assert.Equal(t, "raw chat", in.ClaimText())

	in.Message = ""
	assert.Equal(t, "structured", in.ClaimText())
}

func TestNormalizeDefaults(t *testing.T) {
	var r Result
	r.Normalize()

	assert.NotNil(t, r.Sources)
	assert.Empty(t, r.Sources)
	assert.NotNil(t, r.SocialSignals)
	require.NotNil(t, r.Reasoning)
	assert.Empty(t, r.Reasoning.Fallacies)

	// absence stays meaningful for these two
	assert.Nil(t, r.Provenance)
	assert.Nil(t, r.Ledger)
	assert.False(t, r.LedgerRecorded())
}

func TestLedgerHashText(t *testing.T) {
	r := Result{}
	assert.Equal(t, "", r.LedgerHashText())

	r.Ledger = &LedgerStatus{}
	assert.Equal(t, "Recorded", r.LedgerHashText())

	r.Ledger.LedgerHash = "0xabc"
	assert.Equal(t, "0xabc", r.LedgerHashText())
}

func TestGraphEdgeDecodesFromPair(t *testing.T) {
	var g Graph
	require.NoError(t, json.Unmarshal([]byte(`{"nodes":[{"id":"a","role":"origin"}],"edges":[["a","b"]]}`), &g))
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "a", g.Edges[0][0])
	assert.Equal(t, "b", g.Edges[0][1])
}

func TestReportRoundTrip(t *testing.T) {
	original := &Result{
		Verdict:    VerdictFalse,
		Confidence: 92,
		Sources:    []string{"https://nasa.gov/apollo"},
		Reasoning:  &Reasoning{Biases: []string{"confirmation bias"}},
		SocialSignals: []SocialSignal{
			{Platform: "X", User: "a", URL: "https://x.test/1", Text: "hm", Timestamp: "2026-01-01"},
		},
		Ledger: &LedgerStatus{LedgerHash: "0xdead"},
	}
	original.Normalize()

	data, err := Report(original)
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *original, decoded)
}

func TestLedgerProofArtifact(t *testing.T) {
	full := LedgerProof{LedgerHash: "0xbeef", SignedAt: "2026-08-30T12:00:00Z"}
	text := string(full.Artifact())
	assert.Contains(t, text, "Ledger Hash : 0xbeef")
	assert.Contains(t, text, "Signed At   : 2026-08-30T12:00:00Z")

	empty := LedgerProof{}
	text = string(empty.Artifact())
	assert.Contains(t, text, "Ledger Hash : N/A")
	assert.Contains(t, text, "Signed At   : N/A")
}

func TestFlattenDeepfake(t *testing.T) {
	assert.Equal(t, "", FlattenDeepfake(nil))

	flat := FlattenDeepfake(json.RawMessage(`{"score":0.97,"model":"aegis-v2"}`))
	assert.Contains(t, flat, "score: 0.97")
	assert.Contains(t, flat, "model: aegis-v2")

	// non-object reports pass through untouched
	assert.Equal(t, `["a","b"]`, FlattenDeepfake(json.RawMessage(`["a","b"]`)))
}
