package engine

import (
	"sort"
	"strings"

	"github.com/leakwarden/leakwarden/internal/types"
)

// Redact returns text with every match span replaced by its masked
// rendering, producing a copy that is safe to forward. Matches whose span
// overlaps an already-replaced region are skipped.
func Redact(text string, matches []types.Match) string {
	if len(matches) == 0 {
		return text
	}
	ordered := append([]types.Match(nil), matches...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	var sb strings.Builder
	cursor := 0
	for _, m := range ordered {
		if m.Start < cursor || m.End > len(text) || m.Start > m.End {
			continue
		}
		sb.WriteString(text[cursor:m.Start])
		sb.WriteString(m.Masked)
		cursor = m.End
	}
	sb.WriteString(text[cursor:])
	return sb.String()
}
