package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportFilter filterFlags
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export WORKBOOK",
	Short: "Write the filtered records to a CSV artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := loadService(cmd, args[0])
		if err != nil {
			return err
		}

		state, err := exportFilter.filterState()
		if err != nil {
			return err
		}
		svc.SetFilter(state)

		if exportOut == "-" {
			return svc.Export(os.Stdout)
		}
		if exportOut != "" {
			cfg.Export.Filename = exportOut
		}
		path, err := svc.ExportFile()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d records to %s\n", len(svc.Filtered()), path)
		return nil
	},
}

func init() {
	registerFilterFlags(exportCmd, &exportFilter)
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", `Output path ("-" for stdout, default from config)`)
	rootCmd.AddCommand(exportCmd)
}
