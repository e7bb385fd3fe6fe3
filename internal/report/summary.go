package report

import (
	"fmt"
	"io"

	"github.com/leakwarden/leakwarden/internal/types"
)

// PrintSummary renders the score view: the 0-100 risk score, its bucket, and
// one line per detection.
func PrintSummary(w io.Writer, sum types.Summary, opts PrintOptions) {
	level := string(sum.RiskLevel)
	if !opts.NoColor {
		level = colorRisk(sum.RiskLevel)
	}
	fmt.Fprintf(w, "Risk score: %d/100 (%s)\n", sum.RiskScore, level)
	if len(sum.Detections) == 0 {
		fmt.Fprintln(w, "No detections.")
		return
	}
	fmt.Fprintf(w, "Detections: %d\n", sum.TotalDetections)
	for _, d := range sum.Detections {
		fmt.Fprintf(w, "  %-28s %-24s %s\n", d.Type, d.MaskedValue, d.Recommendation)
	}
}

func colorRisk(l types.RiskLevel) string {
	switch l {
	case types.RiskCritical:
		return "\x1b[35m" + string(l) + "\x1b[0m"
	case types.RiskHigh:
		return "\x1b[31m" + string(l) + "\x1b[0m"
	case types.RiskMedium:
		return "\x1b[33m" + string(l) + "\x1b[0m"
	case types.RiskLow:
		return "\x1b[36m" + string(l) + "\x1b[0m"
	default:
		return "\x1b[32m" + string(l) + "\x1b[0m"
	}
}
