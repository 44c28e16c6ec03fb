package domain

// Summary holds the KPI counts rendered on the dashboard cards.
//
// Issued and UnderApplication are exact case-insensitive matches on the
// COPC status; PhaseOut is deliberately a case-insensitive substring
// test so phrasing variants like "Voluntary Phase-Out" still count.
type Summary struct {
	Total            int `json:"total"`
	Issued           int `json:"issued"`
	UnderApplication int `json:"under_application"`
	PhaseOut         int `json:"phase_out"`
	Colleges         int `json:"colleges"`
}

// Distribution is a one-dimensional cross-tabulation: sorted distinct
// labels with a parallel count per label.
type Distribution struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// CrossTab is a two-dimensional cross-tabulation. Counts is dense:
// Counts[i][j] is the number of records whose row-dimension value is
// Rows[i] and whose column-dimension value is Cols[j].
type CrossTab struct {
	Rows   []string `json:"rows"`
	Cols   []string `json:"cols"`
	Counts [][]int  `json:"counts"`
}

// DashboardViews bundles the chart inputs consumed by the view surface:
// chart shapes are plain category lists and count arrays, nothing
// chart-library specific.
type DashboardViews struct {
	CollegeByStatus        CrossTab     `json:"college_by_status"`
	CollegeByLevel         CrossTab     `json:"college_by_level"`
	AccreditationBreakdown Distribution `json:"accreditation_breakdown"`
	CollegeByAccreditation CrossTab     `json:"college_by_accreditation"`
}
