package dataprocessing

import (
	"strconv"
	"strings"

	"progdash/pkg/contracts/domain"
)

// CellKind enumerates the representational kinds a spreadsheet cell can
// take. The set is closed: every cell the parser produces carries
// exactly one of these kinds.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellBool
	CellOther
)

// CellValue is a tagged variant for one raw cell. Text holds the raw
// textual form for string and other kinds; Number and Bool hold the
// typed value for their kinds.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

// Normalize converts the cell into its canonical string form. It is a
// total function: every kind maps to a string, and absence maps to the
// empty string rather than any null representation.
func (c CellValue) Normalize() string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellString:
		return strings.TrimSpace(c.Text)
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return strings.TrimSpace(c.Text)
	}
}

// accreditationLevels maps match keywords to canonical labels. Order
// matters: "LEVEL I" is a substring of every higher level, so the most
// specific roman numerals must be tested first.
var accreditationLevels = []struct {
	keyword string
	label   string
}{
	{"LEVEL IV", domain.AccreditationLevelIV},
	{"LEVEL III", domain.AccreditationLevelIII},
	{"LEVEL II", domain.AccreditationLevelII},
	{"LEVEL I", domain.AccreditationLevelI},
	{"CANDIDATE", domain.AccreditationCandidate},
}

// NormalizeAccreditation maps free-text accreditation into the closed
// taxonomy. Blank input yields "Unknown"; unrecognized text is returned
// trimmed but otherwise unchanged. Matching is a case-insensitive
// substring test, so "Accredited Level III Program" normalizes to
// "Level III".
func NormalizeAccreditation(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.AccreditationUnknown
	}

	upper := strings.ToUpper(trimmed)
	for _, level := range accreditationLevels {
		if strings.Contains(upper, level.keyword) {
			return level.label
		}
	}
	return trimmed
}
