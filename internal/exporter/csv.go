// Package exporter serializes filtered program records to CSV,
// including the derived accreditation column, with standard quoting so
// a round trip through any compliant CSV parser reproduces the field
// values exactly.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"progdash/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognizes the encoding.
	BOMPrefix bool
}

// WriteRecords writes the export header line and one row per record to
// w. Fields containing commas, quotes, or newlines are quoted per the
// CSV standard by encoding/csv.
func (c *CSVWriter) WriteRecords(w io.Writer, records []domain.ProgramRecord, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(domain.ExportHeaders()); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, rec := range records {
		if err := writer.Write(rec.ExportRow()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes the export to filePath, creating parent directories
// as needed.
func (c *CSVWriter) WriteFile(filePath string, records []domain.ProgramRecord, options WriteOptions) error {
	c.logger.Info("writing CSV export",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(records)))

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := c.WriteRecords(file, records, options); err != nil {
		return err
	}
	return file.Close()
}
