package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"progdash/pkg/contracts/domain"
)

// COPC status categories recognized by the KPI summary. Issued and
// under-application are exact matches; phase-out is matched as a
// substring to tolerate phrasing variants such as "Voluntary
// Phase-Out".
const (
	statusIssued           = "issued"
	statusUnderApplication = "under application"
	statusPhaseOutKeyword  = "phase-out"
)

// FieldSelector extracts one categorical dimension from a record.
type FieldSelector func(domain.ProgramRecord) string

// Canonical selectors for the dashboard's categorical dimensions.
var (
	SelectCollege       = func(r domain.ProgramRecord) string { return r.College }
	SelectLevel         = func(r domain.ProgramRecord) string { return r.Level }
	SelectCOPCStatus    = func(r domain.ProgramRecord) string { return r.COPCStatus }
	SelectAccreditation = func(r domain.ProgramRecord) string { return r.AccreditationNormalized }
	SelectDean          = func(r domain.ProgramRecord) string { return r.Dean }
)

// Summarizer derives KPI summaries, cross-tabulations, and filter
// option lists from program record sets.
type Summarizer struct {
	logger   *slog.Logger
	collator *collate.Collator
}

// NewSummarizer creates a new summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{
		logger:   logger,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Summarize computes the KPI counts for the given record set.
func (s *Summarizer) Summarize(ctx context.Context, records []domain.ProgramRecord) domain.Summary {
	summary := domain.Summary{Total: len(records)}

	colleges := make(map[string]struct{})
	for _, rec := range records {
		status := strings.ToLower(strings.TrimSpace(rec.COPCStatus))
		switch {
		case status == statusIssued:
			summary.Issued++
		case status == statusUnderApplication:
			summary.UnderApplication++
		}
		// Substring on purpose: see the status constants above.
		if strings.Contains(status, statusPhaseOutKeyword) {
			summary.PhaseOut++
		}
		if college := strings.TrimSpace(rec.College); college != "" {
			colleges[college] = struct{}{}
		}
	}
	summary.Colleges = len(colleges)

	s.logger.DebugContext(ctx, "computed KPI summary",
		slog.Int("total", summary.Total),
		slog.Int("issued", summary.Issued),
		slog.Int("under_application", summary.UnderApplication),
		slog.Int("phase_out", summary.PhaseOut),
		slog.Int("colleges", summary.Colleges))

	return summary
}

// Distribution cross-tabulates records over one categorical dimension:
// sorted distinct values with a count per value.
func (s *Summarizer) Distribution(records []domain.ProgramRecord, sel FieldSelector) domain.Distribution {
	labels := s.UniqSorted(selectAll(records, sel))
	counts := make([]int, len(labels))
	index := indexOf(labels)
	for _, rec := range records {
		if i, ok := index[strings.ToLower(strings.TrimSpace(sel(rec)))]; ok {
			counts[i]++
		}
	}
	return domain.Distribution{Labels: labels, Counts: counts}
}

// CrossTabulate cross-tabulates records over two categorical
// dimensions into a dense count matrix.
func (s *Summarizer) CrossTabulate(records []domain.ProgramRecord, rowSel, colSel FieldSelector) domain.CrossTab {
	rows := s.UniqSorted(selectAll(records, rowSel))
	cols := s.UniqSorted(selectAll(records, colSel))

	counts := make([][]int, len(rows))
	for i := range counts {
		counts[i] = make([]int, len(cols))
	}

	rowIndex := indexOf(rows)
	colIndex := indexOf(cols)
	for _, rec := range records {
		i, okRow := rowIndex[strings.ToLower(strings.TrimSpace(rowSel(rec)))]
		j, okCol := colIndex[strings.ToLower(strings.TrimSpace(colSel(rec)))]
		if okRow && okCol {
			counts[i][j]++
		}
	}

	return domain.CrossTab{Rows: rows, Cols: cols, Counts: counts}
}

// Views bundles the chart inputs the dashboard renders from the
// filtered record set.
func (s *Summarizer) Views(records []domain.ProgramRecord) domain.DashboardViews {
	return domain.DashboardViews{
		CollegeByStatus:        s.CrossTabulate(records, SelectCollege, SelectCOPCStatus),
		CollegeByLevel:         s.CrossTabulate(records, SelectCollege, SelectLevel),
		AccreditationBreakdown: s.Distribution(records, SelectAccreditation),
		CollegeByAccreditation: s.CrossTabulate(records, SelectCollege, SelectAccreditation),
	}
}

// Options derives the selectable option list for every filter
// dimension. These are computed from the full campus record set, never
// the filtered subset, so a user can always broaden a selection.
func (s *Summarizer) Options(records []domain.ProgramRecord) domain.FilterOptions {
	return domain.FilterOptions{
		Colleges:       s.UniqSorted(selectAll(records, SelectCollege)),
		Levels:         s.UniqSorted(selectAll(records, SelectLevel)),
		COPCStatuses:   s.UniqSorted(selectAll(records, SelectCOPCStatus)),
		Accreditations: s.UniqSorted(selectAll(records, SelectAccreditation)),
		Deans:          s.UniqSorted(selectAll(records, SelectDean)),
	}
}

// UniqSorted trims values, drops empties, deduplicates ignoring case
// (first occurrence wins), and sorts case-insensitively with
// locale-aware collation.
func (s *Summarizer) UniqSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	uniq := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, v)
	}
	s.collator.SortStrings(uniq)
	return uniq
}

func selectAll(records []domain.ProgramRecord, sel FieldSelector) []string {
	values := make([]string, 0, len(records))
	for _, rec := range records {
		values = append(values, sel(rec))
	}
	return values
}

// indexOf keys by folded case so records whose value differs from the
// canonical label only in casing still land in the right bucket.
func indexOf(values []string) map[string]int {
	index := make(map[string]int, len(values))
	for i, v := range values {
		index[strings.ToLower(v)] = i
	}
	return index
}
