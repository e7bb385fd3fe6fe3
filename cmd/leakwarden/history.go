package leakwarden

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakwarden/leakwarden/internal/audit"
)

func init() {
	var (
		limit     int
		showStats bool
		clearAll  bool
		deleteIdx int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scans from the audit log",
		RunE: func(_ *cobra.Command, _ []string) error {
			log := audit.NewAuditLog("")

			if clearAll {
				if err := log.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, "Audit history cleared.")
				return nil
			}
			if deleteIdx >= 0 {
				if err := log.DeleteRecord(deleteIdx); err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "Deleted record %d.\n", deleteIdx)
				return nil
			}
			if showStats {
				stats, err := log.ComputeStats()
				if err != nil {
					return fmt.Errorf("no scan history yet: %w", err)
				}
				printStats(stats)
				return nil
			}

			records, err := log.LoadHistory()
			if err != nil {
				return fmt.Errorf("no scan history yet: %w", err)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			for i, r := range records {
				fmt.Printf("%3d  %s  %-20s  %d matches  risk %d/100 (%s)\n",
					i, r.Timestamp.Format("2006-01-02 15:04"), r.Source,
					r.TotalMatches, r.RiskScore, r.RiskLevel)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "show at most this many records (0 = all)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "show aggregate statistics instead of records")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete the entire audit history")
	cmd.Flags().IntVar(&deleteIdx, "delete", -1, "delete the record at this index")
	rootCmd.AddCommand(cmd)
}

func printStats(s audit.Stats) {
	fmt.Printf("Scans: %d\n", s.Scans)
	fmt.Printf("Total matches: %d\n", s.TotalMatches)
	fmt.Printf("Peak risk score: %d/100\n", s.PeakRiskScore)
	if !s.FirstScan.IsZero() {
		fmt.Printf("First scan: %s\n", s.FirstScan.Format("2006-01-02 15:04"))
		fmt.Printf("Last scan:  %s\n", s.LastScan.Format("2006-01-02 15:04"))
	}
	if len(s.TierCounts) > 0 {
		fmt.Println("By tier:")
		for _, tier := range []string{"critical", "high", "medium", "low"} {
			if n := s.TierCounts[tier]; n > 0 {
				fmt.Printf("  %-9s %d\n", tier, n)
			}
		}
	}
	if len(s.CategoryCounts) > 0 {
		fmt.Println("By category:")
		for cat, n := range s.CategoryCounts {
			fmt.Printf("  %-16s %d\n", cat, n)
		}
	}
}
