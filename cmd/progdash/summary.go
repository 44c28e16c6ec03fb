package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"progdash/pkg/contracts/domain"
)

var (
	summaryFilter filterFlags
	summaryJSON   bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary WORKBOOK",
	Short: "Print KPI counts and chart series for the filtered records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService(cmd, args[0])
		if err != nil {
			return err
		}

		state, err := summaryFilter.filterState()
		if err != nil {
			return err
		}
		svc.SetFilter(state)

		summary := svc.Summary(cmd.Context())
		views := svc.Views()

		if summaryJSON {
			return json.NewEncoder(os.Stdout).Encode(struct {
				TotalLoaded int                   `json:"total_loaded"`
				Excluded    int                   `json:"excluded"`
				Summary     domain.Summary        `json:"summary"`
				Views       domain.DashboardViews `json:"views"`
			}{svc.TotalLoaded(), svc.Excluded(), summary, views})
		}

		fmt.Printf("Loaded %d rows (%d outside target campus)\n\n", svc.TotalLoaded(), svc.Excluded())
		fmt.Printf("Programs:          %d\n", summary.Total)
		fmt.Printf("COPC issued:       %d\n", summary.Issued)
		fmt.Printf("Under application: %d\n", summary.UnderApplication)
		fmt.Printf("Phase-out:         %d\n", summary.PhaseOut)
		fmt.Printf("Colleges:          %d\n", summary.Colleges)

		fmt.Printf("\nAccreditation breakdown:\n")
		printDistribution(views.AccreditationBreakdown)
		fmt.Printf("\nPrograms per college by COPC status:\n")
		printCrossTab(views.CollegeByStatus)
		fmt.Printf("\nPrograms per college by level:\n")
		printCrossTab(views.CollegeByLevel)

		return nil
	},
}

func printDistribution(d domain.Distribution) {
	for i, label := range d.Labels {
		fmt.Printf("  %-40s %d\n", label, d.Counts[i])
	}
}

func printCrossTab(ct domain.CrossTab) {
	for i, row := range ct.Rows {
		fmt.Printf("  %s\n", row)
		for j, col := range ct.Cols {
			if ct.Counts[i][j] > 0 {
				fmt.Printf("    %-38s %d\n", col, ct.Counts[i][j])
			}
		}
	}
}

func init() {
	registerFilterFlags(summaryCmd, &summaryFilter)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Emit machine-readable JSON")
	rootCmd.AddCommand(summaryCmd)
}
