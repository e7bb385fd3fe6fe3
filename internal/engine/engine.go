package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/leakwarden/leakwarden/internal/catalog"
	"github.com/leakwarden/leakwarden/internal/mask"
	"github.com/leakwarden/leakwarden/internal/types"
	"github.com/leakwarden/leakwarden/internal/validate"
)

// Config controls which categories run and the reporting floor.
type Config struct {
	Enable        string  // comma-separated category allowlist ("" = all)
	Disable       string  // comma-separated category denylist
	MinConfidence float64 // drop matches below this confidence
}

// Engine analyzes text against an immutable catalog. It holds no mutable
// state, so one Engine may be shared by any number of goroutines.
type Engine struct {
	cat     *catalog.Catalog
	cfg     Config
	enable  map[string]bool
	disable map[string]bool
}

// New builds an Engine over the built-in catalog.
func New(cfg Config) (*Engine, error) {
	cat, err := catalog.New()
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(cat, cfg), nil
}

// NewWithCatalog builds an Engine over an explicit catalog value. Useful in
// tests and for callers that compose their own category set.
func NewWithCatalog(cat *catalog.Catalog, cfg Config) *Engine {
	return &Engine{
		cat:     cat,
		cfg:     cfg,
		enable:  splitSet(cfg.Enable),
		disable: splitSet(cfg.Disable),
	}
}

func splitSet(csv string) map[string]bool {
	out := map[string]bool{}
	for _, s := range strings.Split(csv, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out[s] = true
		}
	}
	return out
}

func (e *Engine) categoryEnabled(name string) bool {
	if e.disable[name] {
		return false
	}
	if len(e.enable) > 0 {
		return e.enable[name]
	}
	return true
}

// candidate is an unvalidated pattern hit. The raw text lives only here;
// it is masked away before promotion to a types.Match.
type candidate struct {
	category    string
	label       string
	raw         string
	start, end  int
	sensitivity types.Sensitivity
	confidence  float64
}

// Analyze runs the full pipeline over text: scan, validate, mask, dedupe,
// aggregate. It never fails; text with no matches yields an empty report
// with a none verdict.
func (e *Engine) Analyze(text string) types.Report {
	cands := e.scan(text)

	matches := make([]types.Match, 0, len(cands))
	for _, c := range cands {
		c, ok := validateCandidate(c)
		if !ok {
			continue
		}
		if c.confidence < e.cfg.MinConfidence {
			continue
		}
		matches = append(matches, types.Match{
			Category:    c.category,
			Label:       c.label,
			Masked:      mask.Value(c.raw, c.category),
			Sensitivity: c.sensitivity,
			Confidence:  math.Round(c.confidence*100) / 100,
			Start:       c.start,
			End:         c.end,
		})
	}

	matches = Dedupe(matches)

	overall := types.SensNone
	catSet := map[string]bool{}
	for _, m := range matches {
		overall = overall.Max(m.Sensitivity)
		catSet[m.Category] = true
	}
	categories := make([]string, 0, len(catSet))
	for name := range catSet {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	return types.Report{
		HasSensitiveData:   len(matches) > 0,
		OverallSensitivity: overall,
		TotalMatches:       len(matches),
		Categories:         categories,
		Matches:            matches,
		Recommendation:     recommendation(overall, categories),
	}
}

// scan applies every enabled descriptor against the text and collects all
// non-overlapping occurrences. Descriptors with a capture group report the
// group-1 payload span; the rest report the full match.
func (e *Engine) scan(text string) []candidate {
	var out []candidate
	if text == "" {
		return out
	}
	for _, cat := range e.cat.Categories() {
		if !e.categoryEnabled(cat.Name) {
			continue
		}
		for _, d := range cat.Patterns {
			locs := d.Grammar.FindAllStringSubmatchIndex(text, -1)
			for _, loc := range locs {
				start, end := loc[0], loc[1]
				if d.Grammar.NumSubexp() >= 1 && len(loc) >= 4 && loc[2] >= 0 {
					start, end = loc[2], loc[3]
				}
				if start == end {
					continue
				}
				out = append(out, candidate{
					category:    cat.Name,
					label:       d.Label,
					raw:         text[start:end],
					start:       start,
					end:         end,
					sensitivity: d.Sensitivity,
					confidence:  d.Confidence,
				})
			}
		}
	}
	return out
}

// validateCandidate applies category-specific post-checks. Confidence is
// only ever lowered, never raised above the descriptor's base value.
func validateCandidate(c candidate) (candidate, bool) {
	if c.category != "credit_card" {
		return c, true
	}
	penalty := validate.CardNumber(c.raw)
	if penalty == 0 {
		return c, false
	}
	c.confidence *= penalty
	if penalty < 1.0 && c.confidence < 0.5 {
		return c, false
	}
	return c, true
}

// Dedupe returns the matches ordered by descending confidence (ties by
// ascending start offset), keeping the first match seen for each exact
// (start, end) span. Overlapping but distinct spans all survive. The input
// slice is left unmodified. Running Dedupe on its own output is a no-op.
func Dedupe(matches []types.Match) []types.Match {
	sorted := make([]types.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Confidence != sorted[j].Confidence {
			return sorted[i].Confidence > sorted[j].Confidence
		}
		return sorted[i].Start < sorted[j].Start
	})
	type span struct{ start, end int }
	seen := map[span]bool{}
	out := sorted[:0]
	for _, m := range sorted {
		k := span{m.Start, m.End}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

// CategoryNames exposes the catalog's category list for CLI listings.
func (e *Engine) CategoryNames() []string { return e.cat.Names() }

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }
