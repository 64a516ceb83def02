package factcheck

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// ReportFilename is the fixed name of every exported report.
	ReportFilename = "truthlens_report.json"
	// ProofFilename is the fixed name of every downloaded ledger proof.
	ProofFilename = "ledger_proof.txt"
)

// Report serializes the complete result, pretty-printed, for download. The
// export always reflects the exact object that was rendered, not a re-fetch.
func Report(r *Result) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize report: %w", err)
	}
	return out, nil
}

const proofTemplate = `TruthLens Ledger Proof
---------------------------
Ledger Hash : %s
Signed At   : %s
`

// Artifact renders the fixed-template proof download, substituting "N/A" for
// whichever fields the ledger service left out.
func (p LedgerProof) Artifact() []byte {
	hash := p.LedgerHash
	if hash == "" {
		hash = "N/A"
	}
	signed := p.SignedAt
	if signed == "" {
		signed = "N/A"
	}
	return []byte(fmt.Sprintf(proofTemplate, hash, signed))
}

// FlattenDeepfake turns the opaque deepfake report into a one-line text dump
// for the verdict card. The report's schema is the detector's business; only
// top-level keys are named, nested values stay as raw JSON.
func FlattenDeepfake(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return parsed.Raw
	}
	var parts []string
	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			parts = append(parts, fmt.Sprintf("%s: %s", key.String(), value.String()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", key.String(), value.Raw))
		}
		return true
	})
	return strings.Join(parts, ", ")
}
