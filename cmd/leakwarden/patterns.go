package leakwarden

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leakwarden/leakwarden/internal/engine"
)

func init() {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List detection categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			eng, err := engine.New(engine.Config{})
			if err != nil {
				return err
			}
			for _, c := range eng.Catalog().Categories() {
				fmt.Printf("%-16s %-9s %d patterns\n", c.Name, c.Sensitivity, len(c.Patterns))
				if verbose {
					for _, d := range c.Patterns {
						fmt.Printf("  - %s (%s, %.2f)\n", d.Label, strings.ToLower(string(d.Sensitivity)), d.Confidence)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every pattern within each category")
	rootCmd.AddCommand(cmd)
}
