package leakwarden

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakwarden/leakwarden/internal/update"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update leakwarden to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			if latest, newer, _ := update.Check(version, false); !newer {
				fmt.Fprintf(os.Stdout, "leakwarden %s is up to date", version)
				if latest != "" {
					fmt.Fprintf(os.Stdout, " (latest: %s)", latest)
				}
				fmt.Fprintln(os.Stdout)
				return nil
			}
			if err := selfUpdate(); err != nil {
				return fmt.Errorf("self-update failed: %w", err)
			}
			fmt.Fprintln(os.Stdout, "updated to latest release")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
