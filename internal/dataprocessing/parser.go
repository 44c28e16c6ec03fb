package dataprocessing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "progdash/internal/errors"
	"progdash/pkg/contracts/domain"
)

// Parser reads a program registry workbook and extracts normalized
// program records pinned to a single target campus.
type Parser struct {
	logger       *slog.Logger
	targetCampus string
}

// NewParser creates a parser for the given target campus.
func NewParser(logger *slog.Logger, targetCampus string) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		logger:       logger,
		targetCampus: strings.TrimSpace(targetCampus),
	}
}

// ParseFile reads a workbook from disk. Open failures surface as
// unreadable-file errors.
func (p *Parser) ParseFile(ctx context.Context, filePath string) (*domain.Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, apperrors.NewUnreadableFileError(err)
	}
	defer file.Close()

	return p.ParseWorkbook(ctx, file)
}

// ParseWorkbook reads a workbook from r and extracts the program
// records. The reader is consumed fully before any parsing starts, so
// a read failure never yields a partial dataset.
func (p *Parser) ParseWorkbook(ctx context.Context, r io.Reader) (*domain.Dataset, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewUnreadableFileError(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrEmptyWorkbook
	}

	// Only the first sheet carries the registry.
	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet", err)
	}

	p.logger.InfoContext(ctx, "parsing program registry sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	columnMap, err := p.mapColumns(rows)
	if err != nil {
		return nil, err
	}

	expected := domain.ColumnHeaders()
	dataset := &domain.Dataset{}
	for i := 1; i < len(rows); i++ {
		fields := make([]string, len(expected))
		empty := true
		for j, header := range expected {
			cell, cellErr := p.cellAt(f, sheetName, columnMap[header], i)
			if cellErr != nil {
				return nil, apperrors.NewParsingError(
					fmt.Sprintf("failed to read cell at row %d", i+1), cellErr)
			}
			fields[j] = cell.Normalize()
			if fields[j] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		dataset.All = append(dataset.All, recordFromFields(fields))
	}

	for _, rec := range dataset.All {
		if strings.EqualFold(rec.Campus, p.targetCampus) {
			dataset.Campus = append(dataset.Campus, rec)
		} else {
			dataset.Excluded++
		}
	}

	p.logger.InfoContext(ctx, "parsing complete",
		slog.Int("total_records", len(dataset.All)),
		slog.Int("campus_records", len(dataset.Campus)),
		slog.Int("excluded_records", dataset.Excluded),
		slog.String("target_campus", p.targetCampus))

	return dataset, nil
}

// mapColumns builds the header-to-column index map from the first row
// and verifies every expected column is present. Headers may appear in
// any order; unexpected extra columns are ignored.
func (p *Parser) mapColumns(rows [][]string) (map[string]int, error) {
	columnMap := make(map[string]int)
	if len(rows) > 0 {
		for j, header := range rows[0] {
			name := strings.TrimSpace(header)
			if name == "" {
				continue
			}
			if _, exists := columnMap[name]; !exists {
				columnMap[name] = j
			}
		}
	}

	var missing []string
	for _, header := range domain.ColumnHeaders() {
		if _, exists := columnMap[header]; !exists {
			missing = append(missing, header)
		}
	}
	if len(missing) > 0 {
		p.logger.Warn("sheet is missing expected columns",
			slog.Any("missing", missing))
		return nil, apperrors.NewMissingColumnsError(missing)
	}

	return columnMap, nil
}

// cellAt reads one cell as a tagged CellValue. col and row are
// zero-based grid coordinates.
func (p *Parser) cellAt(f *excelize.File, sheet string, col, row int) (CellValue, error) {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return CellValue{}, err
	}

	formatted, err := f.GetCellValue(sheet, axis)
	if err != nil {
		return CellValue{}, err
	}
	raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return CellValue{}, err
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return CellValue{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return CellValue{Kind: CellBool, Bool: raw == "1" || strings.EqualFold(raw, "TRUE")}, nil
	case excelize.CellTypeNumber:
		if n, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
			return CellValue{Kind: CellNumber, Number: n}, nil
		}
		return CellValue{Kind: CellOther, Text: formatted}, nil
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return CellValue{Kind: CellString, Text: formatted}, nil
	case excelize.CellTypeUnset:
		// Plain numeric cells carry no explicit type attribute.
		if formatted == "" {
			return CellValue{Kind: CellEmpty}, nil
		}
		if n, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
			return CellValue{Kind: CellNumber, Number: n}, nil
		}
		return CellValue{Kind: CellString, Text: formatted}, nil
	default:
		// Dates, formula results, and error cells fall back to their
		// rendered text.
		return CellValue{Kind: CellOther, Text: formatted}, nil
	}
}

// recordFromFields builds a ProgramRecord from normalized field values
// in canonical column order and computes the derived accreditation.
func recordFromFields(fields []string) domain.ProgramRecord {
	rec := domain.ProgramRecord{
		Campus:           fields[0],
		College:          fields[1],
		Program:          fields[2],
		Major:            fields[3],
		Level:            fields[4],
		COPCStatus:       fields[5],
		COPCNo:           fields[6],
		ContentsNotation: fields[7],
		Accreditation:    fields[8],
		CMOPSG:           fields[9],
		BORResolution:    fields[10],
		Dean:             fields[11],
	}
	rec.AccreditationNormalized = NormalizeAccreditation(rec.Accreditation)
	return rec
}
