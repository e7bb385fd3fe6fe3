package leakwarden

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leakwarden/leakwarden/internal/catalog"
)

// gendocs regenerates the category table in README.md between the markers
// <!-- BEGIN:CATEGORIES --> and <!-- END:CATEGORIES -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README category table",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:CATEGORIES -->")
			end := []byte("<!-- END:CATEGORIES -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			cat, err := catalog.New()
			if err != nil {
				return err
			}
			var sb strings.Builder
			sb.WriteString("\n| Category | Sensitivity | Patterns |\n")
			sb.WriteString("|---|---|---|\n")
			for _, c := range cat.Categories() {
				labels := make([]string, 0, len(c.Patterns))
				for _, d := range c.Patterns {
					labels = append(labels, d.Label)
				}
				fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", c.Name, c.Sensitivity, strings.Join(labels, ", "))
			}
			sb.WriteString("\n")

			var out bytes.Buffer
			out.Write(b[:i+len(start)])
			out.WriteString(sb.String())
			out.Write(b[j:])
			if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "README.md updated.")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
