package factcheck

import "encoding/json"

// ImageAttachment is a claim image captured from the submission form.
type ImageAttachment struct {
	Name string
	Data []byte
}

// ClaimInput carries the up-to-four input sources of a single submission.
// The chat message takes precedence over the structured claim text; the URL
// and image travel independently of either.
type ClaimInput struct {
	Message string
	Text    string
	URL     string
	Image   *ImageAttachment
}

// DisplayLabel resolves the text shown in the conversation log: the first
// non-empty of chat message, claim text, claim URL, attached file name.
// An empty label means the submission is a no-op.
func (in ClaimInput) DisplayLabel() string {
	switch {
	case in.Message != "":
		return in.Message
	case in.Text != "":
		return in.Text
	case in.URL != "":
		return in.URL
	case in.Image != nil && in.Image.Name != "":
		return in.Image.Name
	}
	return ""
}

// ClaimText resolves the claim_text form field: the raw chat message wins
// over the structured field; both are never sent together.
func (in ClaimInput) ClaimText() string {
	if in.Message != "" {
		return in.Message
	}
	return in.Text
}

// Reasoning is the optional explanation section of a result. Every field is
// independently optional.
type Reasoning struct {
	Fallacies           []string `json:"fallacy"`
	Biases              []string `json:"bias"`
	DebiasedText        string   `json:"debiased_text"`
	Explanation         string   `json:"explanation"`
	GenerativeExplainer string   `json:"generative_explainer"`
}

// GraphNode is one node of the provenance graph.
type GraphNode struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// GraphEdge is a directed (source, target) node-id pair, transported on the
// wire as a two-element array.
type GraphEdge [2]string

// Graph is the nodes/edges description inside a provenance section.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Provenance wraps the optional graph; a present section with no nodes is
// treated the same as an absent one.
type Provenance struct {
	Graph *Graph `json:"provenance_graph"`
}

// SocialSignal is one recorded cross-platform amplification event.
type SocialSignal struct {
	Platform  string `json:"platform"`
	User      string `json:"user"`
	URL       string `json:"url"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// LedgerStatus signals by its presence that the verdict was recorded.
type LedgerStatus struct {
	LedgerHash string `json:"ledger_hash"`
}

// Result is the single response object of a fact-check submission. Optional
// sections are pointers; Normalize fills the defaults once at the parse
// boundary so renderers never carry their own nil checks.
type Result struct {
	Verdict       Verdict         `json:"verdict"`
	Confidence    int             `json:"confidence"`
	Sources       []string        `json:"relevant_sources"`
	Deepfake      json.RawMessage `json:"deepfake,omitempty"`
	Reasoning     *Reasoning      `json:"reasoning,omitempty"`
	Provenance    *Provenance     `json:"provenance,omitempty"`
	SocialSignals []SocialSignal  `json:"social_signals"`
	Ledger        *LedgerStatus   `json:"ledger_status,omitempty"`
}

// Normalize substitutes empty defaults for absent optional sections. It never
// invents a provenance graph or a ledger record: their absence is meaningful
// to the renderers.
func (r *Result) Normalize() {
	if r.Sources == nil {
		r.Sources = []string{}
	}
	if r.SocialSignals == nil {
		r.SocialSignals = []SocialSignal{}
	}
	if r.Reasoning == nil {
		r.Reasoning = &Reasoning{}
	}
}

// LedgerRecorded reports whether the backend attested the verdict to the
// ledger. Display text lives with the verdict renderer.
func (r *Result) LedgerRecorded() bool { return r.Ledger != nil }

// LedgerHashText is the ledger-hash display line: the hash itself, or the
// generic "Recorded" fallback when the record carries no hash.
func (r *Result) LedgerHashText() string {
	if r.Ledger == nil {
		return ""
	}
	if r.Ledger.LedgerHash != "" {
		return r.Ledger.LedgerHash
	}
	return "Recorded"
}

// VoteResult is the community agreement split, trusted verbatim from the
// server; the client never re-normalizes the percentages.
type VoteResult struct {
	Agree    int `json:"agree"`
	Disagree int `json:"disagree"`
}

// LedgerProof is the downloadable attestation; both fields may be absent.
type LedgerProof struct {
	LedgerHash string `json:"ledger_hash"`
	SignedAt   string `json:"signed_at"`
}
