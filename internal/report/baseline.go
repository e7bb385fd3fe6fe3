package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/leakwarden/leakwarden/internal/types"
)

// Baseline is a set of acknowledged match fingerprints. Scans filter matches
// whose fingerprint is present, so only new exposure is reported.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(f, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path, source string, matches []types.Match) error {
	b := Baseline{Items: map[string]bool{}}
	for _, m := range matches {
		b.Items[Fingerprint(source, m)] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0o644)
}

// SaveBaselineItems writes an already-fingerprinted baseline, for callers
// that accumulate matches across several sources.
func SaveBaselineItems(path string, b Baseline) error {
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0o644)
}

// FilterNewMatches returns the matches absent from the baseline.
func FilterNewMatches(source string, matches []types.Match, base Baseline) []types.Match {
	var out []types.Match
	for _, m := range matches {
		if !base.Items[Fingerprint(source, m)] {
			out = append(out, m)
		}
	}
	return out
}

// Fingerprint derives a stable identity for a match within a source. Only
// the masked rendering participates, never the raw value.
func Fingerprint(source string, m types.Match) string {
	key := fmt.Sprintf("%s|%s|%s|%s|%d|%d", source, m.Category, m.Label, m.Masked, m.Start, m.End)
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}
