package leakwarden

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leakwarden/leakwarden/internal/audit"
	"github.com/leakwarden/leakwarden/internal/cache"
	"github.com/leakwarden/leakwarden/internal/config"
	"github.com/leakwarden/leakwarden/internal/engine"
	"github.com/leakwarden/leakwarden/internal/files"
	"github.com/leakwarden/leakwarden/internal/report"
	"github.com/leakwarden/leakwarden/internal/tui"
	"github.com/leakwarden/leakwarden/internal/types"
	"github.com/leakwarden/leakwarden/internal/update"
)

var (
	flagPath     string
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
	flagEnable   string
	flagDisable  string
	flagBaseline string
	flagNoAudit  bool
	flagNoCache  bool
	flagReview   bool
	flagRedacted bool
	flagCopy     bool
	flagTable    bool
	flagText     bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [text...]",
		Short: "Scan text for sensitive data",
		Long:  "Scan analyzes message text given as arguments, on stdin, or in files under --path, and reports every sensitive value it finds with a masked rendering.",
		RunE:  runScan,
		Example: `
# Scan a message before sending it
leakwarden scan "My card is 4532-0151-1283-0366"

# Scan whatever is on stdin
pbpaste | leakwarden scan

# Scan exported chat logs
leakwarden scan --path ~/exports --include '**/*.txt'

# Print a forwardable copy with every match masked
leakwarden scan --redacted "password: hunter2secret"`,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", "", "scan text files under this path instead of message text")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these categories (comma-separated names)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these categories (comma-separated names)")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "baseline file of acknowledged matches")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "do not record this scan in the audit history")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "rescan files that were clean on the previous run")
	cmd.Flags().BoolVar(&flagReview, "review", false, "review matches interactively")
	cmd.Flags().BoolVar(&flagRedacted, "redacted", false, "print the input with every match masked")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the redacted text to the clipboard")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output in table format with borders (default)")
	cmd.Flags().BoolVar(&flagText, "text", false, "output in plain text columnar format")
}

type scanResult struct {
	Source  string
	Text    string
	Report  types.Report
	Summary types.Summary
	New     []types.Match
}

type jsonResult struct {
	Source  string         `json:"source"`
	Report  *types.Report  `json:"report,omitempty"`
	Summary *types.Summary `json:"summary,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	start := time.Now()

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	localRoot := "."
	if flagPath != "" {
		localRoot = flagPath
	}
	if c, err := config.LoadLocal(localRoot); err == nil {
		lcfg = c
	}

	eng, err := engine.New(engine.Config{
		Enable:        pickString(flagEnable, lcfg.Enable, gcfg.Enable),
		Disable:       pickString(flagDisable, lcfg.Disable, gcfg.Disable),
		MinConfidence: pickFloat(flagMinConfidence, lcfg.MinConfidence, gcfg.MinConfidence),
	})
	if err != nil {
		return err
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !noColor && !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}
	failOn := flagFailOn
	if !cmd.Flags().Changed("fail-on") {
		failOn = pickString("", lcfg.FailOn, gcfg.FailOn)
		if failOn == "" {
			failOn = flagFailOn
		}
	}
	view := flagView
	if !cmd.Flags().Changed("view") {
		view = pickString("", lcfg.View, gcfg.View)
		if view == "" {
			view = flagView
		}
	}

	// Friendly banner before scanning
	if !flagJSON {
		if !pickBool(flagNoUpdateCheck, lcfg.NoUpdateCheck, gcfg.NoUpdateCheck) {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'leakwarden update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if err := selfUpdate(); err == nil {
				_, _ = fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
				return nil
			}
		}
	}

	include := pickString(flagInclude, lcfg.Include, gcfg.Include)
	exclude := pickString(flagExclude, lcfg.Exclude, gcfg.Exclude)
	maxBytes := flagMaxBytes
	if !cmd.Flags().Changed("max-bytes") {
		if v := pickInt64(0, lcfg.MaxBytes, gcfg.MaxBytes); v != 0 {
			maxBytes = v
		}
	}
	sources, err := collectSources(args, include, exclude, maxBytes)
	if err != nil {
		return err
	}

	var cleanDB cache.DB
	cacheRoot := ""
	if flagPath != "" && !flagNoCache {
		cacheRoot, _ = filepath.Abs(flagPath)
		cleanDB, _ = cache.Load(cacheRoot)
		kept := sources[:0]
		skipped := 0
		for _, src := range sources {
			if cleanDB.IsClean(src.name, []byte(src.text)) {
				skipped++
				continue
			}
			kept = append(kept, src)
		}
		sources = kept
		if skipped > 0 && !flagJSON {
			_, _ = fmt.Fprintf(os.Stderr, "skipped %d unchanged files\n", skipped)
		}
		if len(sources) == 0 {
			fmt.Println("No sensitive data found ✅ (all files unchanged)")
			return nil
		}
	}

	baselinePath := pickString(flagBaseline, lcfg.Baseline, gcfg.Baseline)
	if baselinePath == "" {
		baselinePath = "leakwarden.baseline.json"
	}
	baseline, _ := report.LoadBaseline(baselinePath)

	var results []scanResult
	for _, src := range sources {
		rep := eng.Analyze(src.text)
		newMatches := report.FilterNewMatches(src.name, rep.Matches, baseline)
		if newMatches == nil {
			newMatches = []types.Match{}
		} // no `null` in JSON
		results = append(results, scanResult{
			Source:  src.name,
			Text:    src.text,
			Report:  rep,
			Summary: engine.Summarize(rep),
			New:     newMatches,
		})
	}

	if cacheRoot != "" {
		for _, r := range results {
			if r.Report.HasSensitiveData {
				cleanDB.Invalidate(r.Source)
			} else {
				cleanDB.MarkClean(r.Source, []byte(r.Text))
			}
		}
		if err := cache.Save(cacheRoot, cleanDB); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "cache warning:", err)
		}
	}

	if !pickBool(flagNoAudit, lcfg.NoAudit, gcfg.NoAudit) {
		log := audit.NewAuditLog("")
		for _, r := range results {
			record := audit.CreateScanRecord(r.Source, r.Report, r.Summary, r.New, time.Since(start))
			if err := log.LogScan(record); err != nil {
				_, _ = fmt.Fprintln(os.Stderr, "audit warning:", err)
			}
		}
	}

	if flagReview && !flagJSON {
		r := results[0]
		for _, cand := range results {
			if cand.Report.HasSensitiveData {
				r = cand
				break
			}
		}
		return tui.Run(r.Source, r.Report, r.Summary)
	}

	if err := renderResults(results, view, noColor, time.Since(start)); err != nil {
		return err
	}

	if flagRedacted || flagCopy {
		if err := emitRedacted(results); err != nil {
			return err
		}
	}

	var all []types.Match
	for _, r := range results {
		all = append(all, r.New...)
	}
	if report.ShouldFail(all, failOn) {
		os.Exit(1)
	}
	return nil
}

type scanSource struct {
	name string
	text string
}

// collectSources resolves the scan input: --path file walking, argument
// text, or stdin, in that order of preference. The walk scope arguments
// arrive already merged from flags and file config.
func collectSources(args []string, include, exclude string, maxBytes int64) ([]scanSource, error) {
	if flagPath != "" {
		abs, _ := filepath.Abs(flagPath)
		if patterns := files.LoadIgnore(abs); len(patterns) > 0 {
			if exclude != "" {
				exclude += ","
			}
			exclude += strings.Join(patterns, ",")
		}
		var out []scanSource
		err := engine.Walk(engine.WalkOptions{
			Root:     abs,
			Include:  include,
			Exclude:  exclude,
			MaxBytes: maxBytes,
		}, func(path string, data []byte) {
			out = append(out, scanSource{name: path, text: string(data)})
		})
		if err != nil {
			return nil, fmt.Errorf("walk error: %w", err)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("no scannable files under %s", abs)
		}
		return out, nil
	}
	if len(args) > 0 {
		return []scanSource{{name: "message", text: strings.Join(args, " ")}}, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []scanSource{{name: "stdin", text: string(b)}}, nil
}

func renderResults(results []scanResult, view string, noColor bool, elapsed time.Duration) error {
	if flagJSON {
		out := make([]jsonResult, 0, len(results))
		for i := range results {
			jr := jsonResult{Source: results[i].Source}
			if view == "score" {
				jr.Summary = &results[i].Summary
			} else {
				jr.Report = &results[i].Report
			}
			out = append(out, jr)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	multi := len(results) > 1
	for i, r := range results {
		if multi {
			fmt.Printf("== %s\n", r.Source)
		}
		opts := report.PrintOptions{NoColor: noColor}
		if !multi {
			opts.Duration = elapsed
			opts.Sources = 1
		}
		switch {
		case view == "score":
			report.PrintSummary(os.Stdout, r.Summary, opts)
		case flagText:
			report.PrintText(os.Stdout, r.Report, opts)
		default:
			report.PrintTable(os.Stdout, r.Report, opts)
		}
		if multi && i < len(results)-1 {
			fmt.Println()
		}
	}
	if multi {
		total := 0
		for _, r := range results {
			total += r.Report.TotalMatches
		}
		fmt.Printf("\nScanned %d sources in %.2fs, %d matches\n", len(results), elapsed.Seconds(), total)
	}
	return nil
}

// emitRedacted prints (and optionally copies) the masked rendition of a
// single-source scan.
func emitRedacted(results []scanResult) error {
	if len(results) != 1 {
		_, _ = fmt.Fprintln(os.Stderr, "redacted output needs a single input; skipping")
		return nil
	}
	redacted := engine.Redact(results[0].Text, results[0].Report.Matches)
	if flagRedacted {
		fmt.Println(redacted)
	}
	if flagCopy {
		if err := clipboard.WriteAll(redacted); err != nil {
			return fmt.Errorf("clipboard error: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stderr, "redacted text copied to clipboard")
	}
	return nil
}
