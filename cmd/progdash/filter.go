package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"progdash/pkg/contracts/domain"
)

// filterFlags collects the filter selection shared by the summary,
// export, and table commands.
type filterFlags struct {
	colleges       []string
	levels         []string
	statuses       []string
	accreditations []string
	deans          []string
	search         string
	hideBlankMajor bool
	filterFile     string
}

func registerFilterFlags(cmd *cobra.Command, ff *filterFlags) {
	f := cmd.Flags()
	f.StringArrayVar(&ff.colleges, "college", nil, "Restrict to a college (repeatable)")
	f.StringArrayVar(&ff.levels, "level", nil, "Restrict to a program level (repeatable)")
	f.StringArrayVar(&ff.statuses, "status", nil, "Restrict to a COPC status (repeatable)")
	f.StringArrayVar(&ff.accreditations, "accreditation", nil, "Restrict to a normalized accreditation (repeatable)")
	f.StringArrayVar(&ff.deans, "dean", nil, "Restrict to a dean (repeatable)")
	f.StringVar(&ff.search, "search", "", "Free-text search across record fields")
	f.BoolVar(&ff.hideBlankMajor, "hide-blank-major", false, "Exclude records with a blank major")
	f.StringVar(&ff.filterFile, "filter", "", "Path to a JSON filter state file (flags override its fields)")
}

// filterState builds the FilterState from the filter file, if any, with
// explicit flags layered on top.
func (ff *filterFlags) filterState() (domain.FilterState, error) {
	state := domain.DefaultFilterState()

	if ff.filterFile != "" {
		data, err := os.ReadFile(ff.filterFile)
		if err != nil {
			return state, fmt.Errorf("failed to read filter file: %w", err)
		}
		if err := json.Unmarshal(data, &state); err != nil {
			return state, fmt.Errorf("failed to parse filter file: %w", err)
		}
		if err := validator.New(validator.WithRequiredStructEnabled()).Struct(state); err != nil {
			return state, fmt.Errorf("invalid filter file: %w", err)
		}
	}

	if len(ff.colleges) > 0 {
		state.Colleges = ff.colleges
	}
	if len(ff.levels) > 0 {
		state.Levels = ff.levels
	}
	if len(ff.statuses) > 0 {
		state.COPCStatuses = ff.statuses
	}
	if len(ff.accreditations) > 0 {
		state.Accreditations = ff.accreditations
	}
	if len(ff.deans) > 0 {
		state.Deans = ff.deans
	}
	if ff.search != "" {
		state.Search = ff.search
	}
	if ff.hideBlankMajor {
		state.HideBlankMajor = true
	}

	return state, nil
}
