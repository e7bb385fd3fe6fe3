package core

import (
	"github.com/leakwarden/leakwarden/internal/engine"
	"github.com/leakwarden/leakwarden/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Match = types.Match
type Report = types.Report
type Summary = types.Summary
type Detection = types.Detection
type Sensitivity = types.Sensitivity
type RiskLevel = types.RiskLevel

// Analyzer wraps a configured engine. One Analyzer is safe for concurrent
// use by any number of goroutines.
type Analyzer struct {
	eng *engine.Engine
}

// NewAnalyzer is the stable entrypoint for other programs.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Analyzer{eng: eng}, nil
}

// Analyze runs the full detection pipeline over text and returns the tier
// view. The raw matched values never appear in the result.
func (a *Analyzer) Analyze(text string) Report {
	return a.eng.Analyze(text)
}

// Summarize re-projects a report into the score view.
func (a *Analyzer) Summarize(rep Report) Summary {
	return engine.Summarize(rep)
}

// Redact returns text with every match span replaced by its masked form.
func (a *Analyzer) Redact(text string, matches []Match) string {
	return engine.Redact(text, matches)
}

// Categories returns the detection category names.
// This is exposed for convenience to avoid importing internals directly.
func (a *Analyzer) Categories() []string { return a.eng.CategoryNames() }
