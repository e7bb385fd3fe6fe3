package leakwarden

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagFailOn        string
	flagNoColor       bool
	flagMinConfidence float64
	flagView          string
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Leakwarden CLI.
var rootCmd = &cobra.Command{
	Use:           "leakwarden",
	Short:         "Catch sensitive data before it leaves your machine",
	Long:          "Leakwarden scans messages, clipboard dumps and exported text files for credit cards, credentials, identifiers and other sensitive data, and reports what it found without ever storing the raw values.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Leakwarden CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "medium", "fail on low|medium|high|critical")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().Float64Var(&flagMinConfidence, "min-confidence", 0.0, "only show matches with confidence >= value (0-1)")
	rootCmd.PersistentFlags().StringVar(&flagView, "view", "tier", "result view: tier|score")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update leakwarden to the latest release")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the leakwarden version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("leakwarden v" + version)
		},
	})
}
