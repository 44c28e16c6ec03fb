package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"progdash/internal/config"
	"progdash/internal/infrastructure"
	"progdash/internal/services"
)

var (
	cfg        *config.Config
	logger     *slog.Logger
	configFile string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "progdash",
	Short: "Academic program dashboard pipeline",
	Long: "Loads a campus program registry workbook, pins it to the target campus,\n" +
		"applies filters, and renders summary statistics, chart series, and a CSV export.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFormat != "" {
			cfg.Logging.Format = logFormat
		}
		logger, err = infrastructure.InitializeLogger(cfg.Logging)
		return err
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Path to YAML config file (default progdash.yaml)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text or json")
}

// loadService builds a dataset service and loads the given workbook
// into it.
func loadService(cmd *cobra.Command, workbookPath string) (*services.DatasetService, error) {
	svc := services.NewDatasetService(cfg, logger)
	if err := svc.LoadFile(cmd.Context(), workbookPath); err != nil {
		return nil, err
	}
	return svc, nil
}
