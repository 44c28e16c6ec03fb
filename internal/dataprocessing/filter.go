package dataprocessing

import (
	"strings"

	"progdash/pkg/contracts/domain"
)

// ApplyFilter returns the records matching every constraint in state.
// It is pure and order-preserving: the result is a subset of records in
// their original relative order, and adding a constraint can only
// shrink it.
func ApplyFilter(records []domain.ProgramRecord, state domain.FilterState) []domain.ProgramRecord {
	search := strings.ToLower(strings.TrimSpace(state.Search))

	filtered := make([]domain.ProgramRecord, 0, len(records))
	for _, rec := range records {
		if !inSet(state.Colleges, rec.College) {
			continue
		}
		if !inSet(state.Levels, rec.Level) {
			continue
		}
		if !inSet(state.COPCStatuses, rec.COPCStatus) {
			continue
		}
		if !inSet(state.Accreditations, rec.AccreditationNormalized) {
			continue
		}
		if !inSet(state.Deans, rec.Dean) {
			continue
		}
		if state.HideBlankMajor && strings.TrimSpace(rec.Major) == "" {
			continue
		}
		if search != "" && !strings.Contains(searchBlob(rec), search) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// inSet applies multi-value dimension semantics: an empty selection
// means no constraint, not an empty match.
func inSet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// searchBlob joins the record's searchable fields with pipes, skipping
// empty fields, lowercased for case-insensitive matching.
func searchBlob(rec domain.ProgramRecord) string {
	fields := []string{
		rec.Program,
		rec.Major,
		rec.COPCNo,
		rec.CMOPSG,
		rec.BORResolution,
		rec.ContentsNotation,
		rec.College,
		rec.Level,
		rec.COPCStatus,
		rec.Accreditation,
		rec.Dean,
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.ToLower(strings.Join(parts, "|"))
}
