package dataprocessing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"progdash/pkg/contracts/domain"
)

func statusRecord(college, status string) domain.ProgramRecord {
	return domain.ProgramRecord{College: college, COPCStatus: status}
}

func TestSummarize_KPIs(t *testing.T) {
	s := NewSummarizer(nil)
	records := []domain.ProgramRecord{
		statusRecord("College of Agriculture", "Issued"),
		statusRecord("College of Agriculture", "issued"),
		statusRecord("College of Arts and Sciences", "Under Application"),
		statusRecord("College of Arts and Sciences", "Voluntary Phase-Out"),
		statusRecord("College of Teacher Education", "phase-out (pending)"),
		statusRecord("College of Teacher Education", "Phased"),
		statusRecord("", "Issued "),
	}

	summary := s.Summarize(context.Background(), records)

	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 3, summary.Issued)
	assert.Equal(t, 1, summary.UnderApplication)
	assert.Equal(t, 2, summary.PhaseOut)
	assert.Equal(t, 3, summary.Colleges)
}

func TestSummarize_Empty(t *testing.T) {
	summary := NewSummarizer(nil).Summarize(context.Background(), nil)
	assert.Equal(t, domain.Summary{}, summary)
}

func TestUniqSorted(t *testing.T) {
	s := NewSummarizer(nil)

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "trim dedupe drop empties",
			input:    []string{"b", "a", " a ", "", "B"},
			expected: []string{"a", "b"},
		},
		{
			name:     "case-insensitive sort",
			input:    []string{"college of agriculture", "College of Arts"},
			expected: []string{"college of agriculture", "College of Arts"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.UniqSorted(tt.input))
		})
	}
}

func TestDistribution(t *testing.T) {
	s := NewSummarizer(nil)
	records := []domain.ProgramRecord{
		{AccreditationNormalized: "Level II"},
		{AccreditationNormalized: "Level II"},
		{AccreditationNormalized: "Candidate"},
		{AccreditationNormalized: ""},
	}

	d := s.Distribution(records, SelectAccreditation)

	assert.Equal(t, []string{"Candidate", "Level II"}, d.Labels)
	assert.Equal(t, []int{1, 2}, d.Counts)
}

func TestCrossTabulate(t *testing.T) {
	s := NewSummarizer(nil)
	records := []domain.ProgramRecord{
		statusRecord("College of Agriculture", "Issued"),
		statusRecord("College of Agriculture", "Issued"),
		statusRecord("College of Agriculture", "Under Application"),
		statusRecord("College of Teacher Education", "Issued"),
	}

	ct := s.CrossTabulate(records, SelectCollege, SelectCOPCStatus)

	assert.Equal(t, []string{"College of Agriculture", "College of Teacher Education"}, ct.Rows)
	assert.Equal(t, []string{"Issued", "Under Application"}, ct.Cols)
	assert.Equal(t, [][]int{{2, 1}, {1, 0}}, ct.Counts)
}

func TestViews(t *testing.T) {
	s := NewSummarizer(nil)
	records := []domain.ProgramRecord{
		{College: "College of Agriculture", COPCStatus: "Issued", Level: "Undergraduate", AccreditationNormalized: "Level III"},
	}

	views := s.Views(records)

	assert.Equal(t, []string{"College of Agriculture"}, views.CollegeByStatus.Rows)
	assert.Equal(t, []string{"Issued"}, views.CollegeByStatus.Cols)
	assert.Equal(t, []string{"Undergraduate"}, views.CollegeByLevel.Cols)
	assert.Equal(t, []string{"Level III"}, views.AccreditationBreakdown.Labels)
	assert.Equal(t, []int{1}, views.AccreditationBreakdown.Counts)
	assert.Equal(t, []string{"Level III"}, views.CollegeByAccreditation.Cols)
}

func TestOptions(t *testing.T) {
	s := NewSummarizer(nil)
	records := []domain.ProgramRecord{
		{College: "College of Teacher Education", Level: "Undergraduate", COPCStatus: "Issued", AccreditationNormalized: "Candidate", Dean: "Dr. Santos"},
		{College: "College of Agriculture", Level: "Graduate", COPCStatus: "Issued", AccreditationNormalized: "Level II", Dean: ""},
	}

	opts := s.Options(records)

	assert.Equal(t, []string{"College of Agriculture", "College of Teacher Education"}, opts.Colleges)
	assert.Equal(t, []string{"Graduate", "Undergraduate"}, opts.Levels)
	assert.Equal(t, []string{"Issued"}, opts.COPCStatuses)
	assert.Equal(t, []string{"Candidate", "Level II"}, opts.Accreditations)
	assert.Equal(t, []string{"Dr. Santos"}, opts.Deans)
}
