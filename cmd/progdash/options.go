package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var optionsJSON bool

var optionsCmd = &cobra.Command{
	Use:   "options WORKBOOK",
	Short: "List the selectable values for every filter dimension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService(cmd, args[0])
		if err != nil {
			return err
		}

		opts := svc.Options()
		if optionsJSON {
			return json.NewEncoder(os.Stdout).Encode(opts)
		}

		sections := []struct {
			name   string
			values []string
		}{
			{"College", opts.Colleges},
			{"Level", opts.Levels},
			{"COPC Status", opts.COPCStatuses},
			{"Accreditation", opts.Accreditations},
			{"Dean", opts.Deans},
		}
		for _, section := range sections {
			fmt.Printf("%s:\n", section.name)
			for _, v := range section.values {
				fmt.Printf("  %s\n", v)
			}
		}
		return nil
	},
}

func init() {
	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "Emit machine-readable JSON")
	rootCmd.AddCommand(optionsCmd)
}
