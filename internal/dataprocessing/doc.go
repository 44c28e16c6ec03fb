// Package dataprocessing implements the program-registry pipeline: it
// turns an uploaded workbook into normalized program records and
// derives the filtered and aggregated views the dashboard renders.
//
// # Architecture
//
// The package is organized into four components:
//
//  1. Normalizer: converts raw cell values into canonical strings and
//     maps free-text accreditation into a fixed taxonomy
//  2. Parser: reads the workbook, validates headers, and pins the
//     record set to the target campus
//  3. Filter: applies the session's multi-dimensional filter selection
//  4. Summarizer: derives KPI counts, cross-tabulations, and filter
//     option lists
//
// # Data Flow
//
//	Workbook → Parser → ProgramRecords → Filter → Summarizer → Views
//
// Everything after the byte-level read runs synchronously to
// completion; filtering and aggregation are pure functions over an
// immutable record snapshot, so an empty result is always a valid
// result and never an error.
package dataprocessing
