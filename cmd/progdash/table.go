package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	tableFilter filterFlags
	tableJSON   bool
)

var tableCmd = &cobra.Command{
	Use:   "table WORKBOOK",
	Short: "List the filtered records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService(cmd, args[0])
		if err != nil {
			return err
		}

		state, err := tableFilter.filterState()
		if err != nil {
			return err
		}
		svc.SetFilter(state)

		records := svc.Filtered()
		if tableJSON {
			return json.NewEncoder(os.Stdout).Encode(records)
		}

		for _, rec := range records {
			line := rec.Program
			if rec.Major != "" {
				line += " / " + rec.Major
			}
			fmt.Printf("%-70s %-12s %-20s %s\n", line, rec.Level, rec.COPCStatus, rec.AccreditationNormalized)
		}
		fmt.Printf("\n%d records\n", len(records))
		return nil
	},
}

func init() {
	registerFilterFlags(tableCmd, &tableFilter)
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "Emit machine-readable JSON")
	rootCmd.AddCommand(tableCmd)
}
