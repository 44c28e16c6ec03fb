package domain

// FilterState is a snapshot of a session's filter selection. Each of
// the five multi-value dimensions uses "empty set means no constraint"
// semantics; Search is a free-text case-insensitive substring match;
// HideBlankMajor drops records whose Major is blank after trimming.
//
// FilterState is owned by the hosting session and carries no
// persistence: every new workbook load replaces it with
// DefaultFilterState.
type FilterState struct {
	Colleges       []string `json:"colleges" validate:"dive,max=255"`
	Levels         []string `json:"levels" validate:"dive,max=255"`
	COPCStatuses   []string `json:"copc_statuses" validate:"dive,max=255"`
	Accreditations []string `json:"accreditations" validate:"dive,max=255"`
	Deans          []string `json:"deans" validate:"dive,max=255"`
	Search         string   `json:"search" validate:"max=255"`
	HideBlankMajor bool     `json:"hide_blank_major"`
}

// DefaultFilterState returns the all-inclusive selection: every
// dimension unconstrained, no search text, blank majors shown.
func DefaultFilterState() FilterState {
	return FilterState{}
}

// IsEmpty reports whether the state applies no constraint at all.
func (f FilterState) IsEmpty() bool {
	return len(f.Colleges) == 0 &&
		len(f.Levels) == 0 &&
		len(f.COPCStatuses) == 0 &&
		len(f.Accreditations) == 0 &&
		len(f.Deans) == 0 &&
		f.Search == "" &&
		!f.HideBlankMajor
}

// FilterOptions holds the selectable values for each multi-value
// dimension, derived from the currently loaded campus record set.
type FilterOptions struct {
	Colleges       []string `json:"colleges"`
	Levels         []string `json:"levels"`
	COPCStatuses   []string `json:"copc_statuses"`
	Accreditations []string `json:"accreditations"`
	Deans          []string `json:"deans"`
}
