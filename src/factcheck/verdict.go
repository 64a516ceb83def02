package factcheck

import (
	"encoding/json"
	"strings"
)

// Verdict is the closed set of categorical judgments the client styles.
// Labels arrive case-insensitively; anything outside the set collapses to
// Unverified at the parse boundary instead of falling through to a default
// style somewhere downstream.
type Verdict string

const (
	VerdictTrue       Verdict = "True"
	VerdictFalse      Verdict = "False"
	VerdictMisleading Verdict = "Misleading"
	VerdictUnverified Verdict = "Unverified"
)

// VerdictStyle is the exhaustive per-verdict presentation entry.
type VerdictStyle struct {
	Class  string // card CSS class, always the lower-cased label
	Accent string // heading accent color
}

var verdictStyles = map[Verdict]VerdictStyle{
	VerdictTrue:       {Class: "true", Accent: "#00f5a0"},
	VerdictFalse:      {Class: "false", Accent: "#ff4d6d"},
	VerdictMisleading: {Class: "misleading", Accent: "#ff8c00"},
	VerdictUnverified: {Class: "unverified", Accent: "#8899aa"},
}

// ParseVerdict maps a wire label onto the closed set.
func ParseVerdict(label string) (Verdict, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "true":
		return VerdictTrue, true
	case "false":
		return VerdictFalse, true
	case "misleading":
		return VerdictMisleading, true
	case "unverified":
		return VerdictUnverified, true
	}
	return VerdictUnverified, false
}

// Style returns the presentation entry for the verdict. The table is total
// over the closed set, so the zero Verdict resolves like Unverified.
func (v Verdict) Style() VerdictStyle {
	if s, ok := verdictStyles[v]; ok {
		return s
	}
	return verdictStyles[VerdictUnverified]
}

func (v Verdict) String() string {
	if _, ok := verdictStyles[v]; ok {
		return string(v)
	}
	return string(VerdictUnverified)
}

func (v *Verdict) UnmarshalJSON(b []byte) error {
	var label string
	if err := json.Unmarshal(b, &label); err != nil {
		return err
	}
	parsed, _ := ParseVerdict(label)
	*v = parsed
	return nil
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}
