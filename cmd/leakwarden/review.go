package leakwarden

import (
	"github.com/spf13/cobra"
)

// review is scan with the interactive browser forced on. It shares the
// scan pipeline so baselines, config precedence and the audit log all
// behave identically.
func init() {
	cmd := &cobra.Command{
		Use:   "review [text...]",
		Short: "Review matches interactively",
		Long:  "Review runs a scan and opens the results in an interactive browser with tier filtering, search, and clipboard copy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			flagReview = true
			return runScan(cmd, args)
		},
		Example: `
# Review a message
leakwarden review "card 4532-0151-1283-0366, cvv 123"

# Review everything found in exported chat logs
leakwarden review --path ~/exports`,
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
}
