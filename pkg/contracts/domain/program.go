package domain

// Canonical accreditation labels produced by normalization. Raw
// accreditation text that matches none of the recognized keywords is
// carried through unchanged.
const (
	AccreditationLevelIV   = "Level IV"
	AccreditationLevelIII  = "Level III"
	AccreditationLevelII   = "Level II"
	AccreditationLevelI    = "Level I"
	AccreditationCandidate = "Candidate"
	AccreditationUnknown   = "Unknown"
)

// ProgramRecord represents one academic program entry from the program
// registry workbook. All fields are normalized strings; an absent value
// is the empty string, never a null.
type ProgramRecord struct {
	Campus           string `json:"campus" csv:"Campus"`
	College          string `json:"college" csv:"College"`
	Program          string `json:"program" csv:"Program"`
	Major            string `json:"major" csv:"Major"`
	Level            string `json:"level" csv:"Level"`
	COPCStatus       string `json:"copc_status" csv:"COPC Status"`
	COPCNo           string `json:"copc_no" csv:"COPC No."`
	ContentsNotation string `json:"contents_notation" csv:"Contents Notation"`
	Accreditation    string `json:"accreditation" csv:"Accreditation"`
	CMOPSG           string `json:"cmo_psg" csv:"CMO / PSG"`
	BORResolution    string `json:"bor_resolution" csv:"BOR Resolution"`
	Dean             string `json:"dean" csv:"Dean"`

	// AccreditationNormalized is derived from Accreditation at parse
	// time and is a pure function of it.
	AccreditationNormalized string `json:"accreditation_normalized" csv:"AccreditationNormalized"`
}

// ColumnHeaders returns the twelve expected workbook column names in
// canonical order. Header validation and CSV export both key off this
// list.
func ColumnHeaders() []string {
	return []string{
		"Campus",
		"College",
		"Program",
		"Major",
		"Level",
		"COPC Status",
		"COPC No.",
		"Contents Notation",
		"Accreditation",
		"CMO / PSG",
		"BOR Resolution",
		"Dean",
	}
}

// ExportHeaders returns the CSV export header row: the twelve source
// columns plus the derived accreditation column.
func ExportHeaders() []string {
	return append(ColumnHeaders(), "AccreditationNormalized")
}

// ExportRow returns the record's field values in ExportHeaders order.
func (r ProgramRecord) ExportRow() []string {
	return []string{
		r.Campus,
		r.College,
		r.Program,
		r.Major,
		r.Level,
		r.COPCStatus,
		r.COPCNo,
		r.ContentsNotation,
		r.Accreditation,
		r.CMOPSG,
		r.BORResolution,
		r.Dean,
		r.AccreditationNormalized,
	}
}

// Dataset is the result of one workbook ingestion. Campus holds the
// records pinned to the target campus; All holds every parsed row for
// total-loaded reporting; Excluded counts rows dropped by the campus
// restriction.
type Dataset struct {
	All      []ProgramRecord `json:"all"`
	Campus   []ProgramRecord `json:"campus"`
	Excluded int             `json:"excluded"`
}
