// Package processor handles ingestion of coordinate records and their
// conversion into the output GeoJSON document.
package processor

import (
	"fmt"

	"tripmap/internal/dates"
)

// Record is one ingested coordinate with its optional annotations. Optional
// fields are explicit and filled by Normalize, so consumers never deal with
// variable-length tuples.
type Record struct {
	Lat       float64
	Lon       float64
	Name      string
	StartDate string
	EndDate   string
}

// Normalize fills defaults for absent optional fields: the name becomes
// "Point {n}" (n is the record's 1-based sequence position) and missing
// dates become the "unknown" sentinel.
func (r Record) Normalize(n int) Record {
	if r.Name == "" {
		r.Name = fmt.Sprintf("Point %d", n)
	}
	if r.StartDate == "" {
		r.StartDate = dates.Unknown
	}
	if r.EndDate == "" {
		r.EndDate = dates.Unknown
	}

	return r
}

// Policy selects how file ingestion treats bad lines.
type Policy string

const (
	// PolicyLegacy keeps the historical split: short lines are skipped
	// with a report, lines with non-numeric coordinates abort the read.
	PolicyLegacy Policy = ""
	// PolicySkip skips every bad line and keeps reading.
	PolicySkip Policy = "skip"
	// PolicyAbort stops the read on the first bad line of any kind.
	PolicyAbort Policy = "abort"
)
