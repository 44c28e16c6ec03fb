package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progdash/pkg/contracts/domain"
)

func testRecords() []domain.ProgramRecord {
	records := []domain.ProgramRecord{
		{
			Campus:        "Bambang",
			College:       "College of Agriculture",
			Program:       "Bachelor of Science in Agriculture",
			Major:         "Animal Science",
			Level:         "Undergraduate",
			COPCStatus:    "Issued",
			COPCNo:        "COPC-001",
			Accreditation: "Level III",
			Dean:          "Dr. Reyes",
		},
		{
			Campus:        "Bambang",
			College:       "College of Teacher Education",
			Program:       "Bachelor of Elementary Education",
			Major:         "",
			Level:         "Undergraduate",
			COPCStatus:    "Under Application",
			Accreditation: "Candidate",
			Dean:          "Dr. Santos",
		},
		{
			Campus:        "Bambang",
			College:       "College of Teacher Education",
			Program:       "Master of Arts in Education",
			Major:         "Educational Management",
			Level:         "Graduate",
			COPCStatus:    "Voluntary Phase-Out",
			Accreditation: "",
			Dean:          "Dr. Santos",
		},
	}
	for i := range records {
		records[i].AccreditationNormalized = NormalizeAccreditation(records[i].Accreditation)
	}
	return records
}

func TestApplyFilter_Identity(t *testing.T) {
	records := testRecords()
	filtered := ApplyFilter(records, domain.DefaultFilterState())
	assert.Equal(t, records, filtered)
}

func TestApplyFilter_Dimensions(t *testing.T) {
	records := testRecords()

	tests := []struct {
		name     string
		state    domain.FilterState
		expected []string // program names
	}{
		{
			name:     "college",
			state:    domain.FilterState{Colleges: []string{"College of Teacher Education"}},
			expected: []string{"Bachelor of Elementary Education", "Master of Arts in Education"},
		},
		{
			name:     "level",
			state:    domain.FilterState{Levels: []string{"Graduate"}},
			expected: []string{"Master of Arts in Education"},
		},
		{
			name:     "copc status",
			state:    domain.FilterState{COPCStatuses: []string{"Issued"}},
			expected: []string{"Bachelor of Science in Agriculture"},
		},
		{
			name:     "normalized accreditation",
			state:    domain.FilterState{Accreditations: []string{"Unknown"}},
			expected: []string{"Master of Arts in Education"},
		},
		{
			name:     "dean",
			state:    domain.FilterState{Deans: []string{"Dr. Reyes"}},
			expected: []string{"Bachelor of Science in Agriculture"},
		},
		{
			name:     "multiple values in one dimension",
			state:    domain.FilterState{Levels: []string{"Graduate", "Undergraduate"}},
			expected: []string{"Bachelor of Science in Agriculture", "Bachelor of Elementary Education", "Master of Arts in Education"},
		},
		{
			name:     "conjunction across dimensions",
			state:    domain.FilterState{Colleges: []string{"College of Teacher Education"}, Levels: []string{"Undergraduate"}},
			expected: []string{"Bachelor of Elementary Education"},
		},
		{
			name:     "hide blank major",
			state:    domain.FilterState{HideBlankMajor: true},
			expected: []string{"Bachelor of Science in Agriculture", "Master of Arts in Education"},
		},
		{
			name:     "search case-insensitive",
			state:    domain.FilterState{Search: "animal science"},
			expected: []string{"Bachelor of Science in Agriculture"},
		},
		{
			name:     "search trimmed",
			state:    domain.FilterState{Search: "  copc-001  "},
			expected: []string{"Bachelor of Science in Agriculture"},
		},
		{
			name:     "search over dean",
			state:    domain.FilterState{Search: "santos"},
			expected: []string{"Bachelor of Elementary Education", "Master of Arts in Education"},
		},
		{
			name:     "search no match",
			state:    domain.FilterState{Search: "oceanography"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := ApplyFilter(records, tt.state)
			var programs []string
			for _, rec := range filtered {
				programs = append(programs, rec.Program)
			}
			assert.Equal(t, tt.expected, programs)
		})
	}
}

// The pipe-joined search blob skips empty fields, so a pipe-adjacent
// pair of non-empty fields never matches through an empty one.
func TestSearchBlob_SkipsEmptyFields(t *testing.T) {
	rec := domain.ProgramRecord{Program: "BS Forestry", Level: "Undergraduate"}
	assert.Equal(t, "bs forestry|undergraduate", searchBlob(rec))
}

func TestApplyFilter_Monotonic(t *testing.T) {
	records := testRecords()

	base := domain.FilterState{Colleges: []string{"College of Teacher Education"}}
	narrowed := base
	narrowed.HideBlankMajor = true
	narrowed.Search = "education"

	baseResult := ApplyFilter(records, base)
	narrowedResult := ApplyFilter(records, narrowed)

	require.LessOrEqual(t, len(narrowedResult), len(baseResult))
	for _, rec := range narrowedResult {
		assert.Contains(t, baseResult, rec)
	}
}

func TestApplyFilter_EmptyInput(t *testing.T) {
	filtered := ApplyFilter(nil, domain.FilterState{Search: "anything"})
	assert.Empty(t, filtered)
}
