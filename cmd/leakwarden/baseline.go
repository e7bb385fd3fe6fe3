package leakwarden

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakwarden/leakwarden/internal/config"
	"github.com/leakwarden/leakwarden/internal/engine"
	"github.com/leakwarden/leakwarden/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	var baselineOut string
	update := &cobra.Command{
		Use:   "update [text...]",
		Short: "Acknowledge current matches so future scans only report new ones",
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if flagPath != "" {
				root = flagPath
			}
			var lcfg config.FileConfig
			if c, err := config.LoadLocal(root); err == nil {
				lcfg = c
			}
			maxBytes := pickInt64(0, lcfg.MaxBytes, nil)
			if maxBytes == 0 {
				maxBytes = 1 << 20
			}
			sources, err := collectSources(args,
				pickString("", lcfg.Include, nil), pickString("", lcfg.Exclude, nil), maxBytes)
			if err != nil {
				return err
			}
			eng, err := engine.New(engine.Config{})
			if err != nil {
				return err
			}
			if len(sources) == 1 {
				rep := eng.Analyze(sources[0].text)
				if err := report.SaveBaseline(baselineOut, sources[0].name, rep.Matches); err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "Baseline updated: %d matches acknowledged.\n", rep.TotalMatches)
				return nil
			}
			// One baseline file covers every source in this run.
			items := report.Baseline{Items: map[string]bool{}}
			total := 0
			for _, src := range sources {
				rep := eng.Analyze(src.text)
				for _, m := range rep.Matches {
					items.Items[report.Fingerprint(src.name, m)] = true
				}
				total += rep.TotalMatches
			}
			if err := report.SaveBaselineItems(baselineOut, items); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Baseline updated: %d matches acknowledged.\n", total)
			return nil
		},
	}
	update.Flags().StringVarP(&flagPath, "path", "p", "", "scan text files under this path")
	update.Flags().StringVar(&baselineOut, "baseline", "leakwarden.baseline.json", "baseline file to write")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
