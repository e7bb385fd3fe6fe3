package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/leakwarden/leakwarden/internal/types"
)

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
	Sources  int // number of files or messages scanned
}

// PrintText renders the tier view as aligned columns, one match per line.
func PrintText(w io.Writer, rep types.Report, opts PrintOptions) {
	if len(rep.Matches) == 0 {
		fmt.Fprintln(w, "No sensitive data found ✅")
	} else {
		maxCat := 8
		for _, m := range rep.Matches {
			if l := len(m.Category); l > maxCat {
				maxCat = l
			}
		}
		fmt.Fprintf(w, "Matches: %d\n", len(rep.Matches))
		for _, m := range rep.Matches {
			tier := string(m.Sensitivity)
			if !opts.NoColor {
				tier = colorTier(m.Sensitivity)
			}
			fmt.Fprintf(w, "%-8s %-*s %-28s %s  (%.2f)\n", tier, maxCat, m.Category, m.Label, m.Masked, m.Confidence)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, rep.Recommendation)
	}
	printFooter(w, rep, opts)
}

// PrintTable renders the tier view as a bordered table.
func PrintTable(w io.Writer, rep types.Report, opts PrintOptions) {
	if len(rep.Matches) == 0 {
		fmt.Fprintln(w, "No sensitive data found ✅")
		printFooter(w, rep, opts)
		return
	}
	t := tablewriter.NewWriter(w)
	t.Header("SENSITIVITY", "CATEGORY", "TYPE", "MASKED", "CONFIDENCE")
	for _, m := range rep.Matches {
		tier := strings.ToUpper(string(m.Sensitivity))
		if !opts.NoColor {
			tier = colorTier(m.Sensitivity)
		}
		t.Append([]string{tier, m.Category, m.Label, m.Masked, fmt.Sprintf("%.2f", m.Confidence)})
	}
	t.Render()
	fmt.Fprintln(w)
	fmt.Fprintln(w, rep.Recommendation)
	printFooter(w, rep, opts)
}

func printFooter(w io.Writer, rep types.Report, opts PrintOptions) {
	if opts.Duration <= 0 && opts.Sources <= 0 {
		return
	}
	counts := map[types.Sensitivity]int{}
	for _, m := range rep.Matches {
		counts[m.Sensitivity]++
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Matches: %d (critical: %d, high: %d, medium: %d, low: %d)\n",
		len(rep.Matches), counts[types.SensCritical], counts[types.SensHigh],
		counts[types.SensMedium], counts[types.SensLow])
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.Sources > 0 {
		fmt.Fprintf(w, "Sources scanned: %d\n", opts.Sources)
	}
}

func colorTier(s types.Sensitivity) string {
	switch s {
	case types.SensCritical:
		return "\x1b[35mcritical\x1b[0m" // magenta
	case types.SensHigh:
		return "\x1b[31mhigh\x1b[0m" // red
	case types.SensMedium:
		return "\x1b[33mmedium\x1b[0m" // yellow
	default:
		return "\x1b[36mlow\x1b[0m" // cyan
	}
}

// ShouldFail reports whether any match meets the fail-on tier. An empty or
// unknown threshold means medium.
func ShouldFail(matches []types.Match, failOn string) bool {
	th := types.ParseSensitivity(failOn).Rank()
	if th == 0 {
		th = types.SensMedium.Rank()
	}
	for _, m := range matches {
		if m.Sensitivity.Rank() >= th {
			return true
		}
	}
	return false
}
