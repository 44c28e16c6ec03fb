// Package services hosts the dataset session: it owns the lifecycle of
// the loaded record snapshot and the current filter selection, keeping
// the pipeline packages pure.
package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"progdash/internal/config"
	"progdash/internal/dataprocessing"
	"progdash/internal/exporter"
	"progdash/pkg/contracts/domain"
)

// DatasetService owns the currently loaded dataset and filter state.
//
// The loaded dataset is an immutable snapshot from the moment parsing
// completes until the next load replaces it. A failed load never leaves
// partial data behind: the service returns to the empty pre-upload
// state.
type DatasetService struct {
	config     *config.Config
	logger     *slog.Logger
	parser     *dataprocessing.Parser
	summarizer *dataprocessing.Summarizer
	csv        *exporter.CSVWriter

	snapshotID string
	dataset    *domain.Dataset
	filter     domain.FilterState
}

// NewDatasetService creates a dataset service from configuration.
func NewDatasetService(cfg *config.Config, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetService{
		config:     cfg,
		logger:     logger,
		parser:     dataprocessing.NewParser(logger, cfg.Campus.Target),
		summarizer: dataprocessing.NewSummarizer(logger),
		csv:        exporter.NewCSVWriter(logger),
		filter:     domain.DefaultFilterState(),
	}
}

// Load parses a workbook upload and adopts it as the current snapshot.
// On any ingestion error the previously loaded data is discarded and
// the service returns to the empty state; the error is terminal for
// this upload.
func (s *DatasetService) Load(ctx context.Context, r io.Reader) error {
	dataset, err := s.parser.ParseWorkbook(ctx, r)
	if err != nil {
		s.logger.ErrorContext(ctx, "workbook load failed, discarding loaded data",
			slog.String("error", err.Error()))
		s.dataset = nil
		s.snapshotID = ""
		s.filter = domain.DefaultFilterState()
		return err
	}

	s.dataset = dataset
	s.snapshotID = uuid.NewString()
	s.filter = domain.DefaultFilterState()

	s.logger.InfoContext(ctx, "workbook loaded",
		slog.String("snapshot_id", s.snapshotID),
		slog.Int("total_loaded", len(dataset.All)),
		slog.Int("campus_records", len(dataset.Campus)),
		slog.Int("excluded", dataset.Excluded))

	return nil
}

// LoadFile parses a workbook from disk. See Load.
func (s *DatasetService) LoadFile(ctx context.Context, path string) error {
	dataset, err := s.parser.ParseFile(ctx, path)
	if err != nil {
		s.logger.ErrorContext(ctx, "workbook load failed, discarding loaded data",
			slog.String("file_path", path),
			slog.String("error", err.Error()))
		s.dataset = nil
		s.snapshotID = ""
		s.filter = domain.DefaultFilterState()
		return err
	}

	s.dataset = dataset
	s.snapshotID = uuid.NewString()
	s.filter = domain.DefaultFilterState()

	s.logger.InfoContext(ctx, "workbook loaded",
		slog.String("snapshot_id", s.snapshotID),
		slog.String("file_path", path),
		slog.Int("total_loaded", len(dataset.All)),
		slog.Int("campus_records", len(dataset.Campus)),
		slog.Int("excluded", dataset.Excluded))

	return nil
}

// Loaded reports whether a dataset is currently loaded.
func (s *DatasetService) Loaded() bool {
	return s.dataset != nil
}

// SnapshotID returns the identifier of the current snapshot, empty when
// nothing is loaded.
func (s *DatasetService) SnapshotID() string {
	return s.snapshotID
}

// TotalLoaded returns the number of rows parsed from the workbook
// before the campus restriction.
func (s *DatasetService) TotalLoaded() int {
	if s.dataset == nil {
		return 0
	}
	return len(s.dataset.All)
}

// Excluded returns the number of rows dropped by the campus
// restriction.
func (s *DatasetService) Excluded() int {
	if s.dataset == nil {
		return 0
	}
	return s.dataset.Excluded
}

// SetFilter replaces the current filter selection.
func (s *DatasetService) SetFilter(state domain.FilterState) {
	s.filter = state
}

// ResetFilter restores the all-inclusive default selection.
func (s *DatasetService) ResetFilter() {
	s.filter = domain.DefaultFilterState()
}

// Filter returns the current filter selection.
func (s *DatasetService) Filter() domain.FilterState {
	return s.filter
}

// Filtered returns the campus records matching the current filter, in
// workbook order.
func (s *DatasetService) Filtered() []domain.ProgramRecord {
	if s.dataset == nil {
		return nil
	}
	return dataprocessing.ApplyFilter(s.dataset.Campus, s.filter)
}

// Summary computes the KPI counts over the filtered record set.
func (s *DatasetService) Summary(ctx context.Context) domain.Summary {
	return s.summarizer.Summarize(ctx, s.Filtered())
}

// Views computes the chart inputs over the filtered record set.
func (s *DatasetService) Views() domain.DashboardViews {
	return s.summarizer.Views(s.Filtered())
}

// Options derives the filter option lists from the full campus record
// set, independent of the applied filter.
func (s *DatasetService) Options() domain.FilterOptions {
	if s.dataset == nil {
		return domain.FilterOptions{}
	}
	return s.summarizer.Options(s.dataset.Campus)
}

// Export writes the filtered records as CSV to w.
func (s *DatasetService) Export(w io.Writer) error {
	return s.csv.WriteRecords(w, s.Filtered(), exporter.WriteOptions{
		BOMPrefix: s.config.Export.BOMPrefix,
	})
}

// ExportFile writes the filtered records to the configured export
// artifact path and returns that path.
func (s *DatasetService) ExportFile() (string, error) {
	path := s.config.ExportPath()
	err := s.csv.WriteFile(path, s.Filtered(), exporter.WriteOptions{
		BOMPrefix: s.config.Export.BOMPrefix,
	})
	return path, err
}
