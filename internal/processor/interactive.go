package processor

import (
	"fmt"
	"strconv"
	"strings"
)

// StopSentinel ends the interactive input loop.
const StopSentinel = "done"

// ParseError is a recoverable failure of a single interactive input round.
// The round is discarded and the user re-prompted; nothing is added.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid coordinates %q: %s", e.Input, e.Reason)
}

// IsDone reports whether the raw input is the stop sentinel,
// case-insensitive after trimming.
func IsDone(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), StopSentinel)
}

// ParsePair parses a "lat, lon" pair. Each side of the comma is trimmed and
// parsed as a decimal number; extra fields are ignored.
func ParsePair(raw string) (lat, lon float64, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return 0, 0, &ParseError{Input: raw, Reason: "need latitude and longitude separated by a comma"}
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

	if errLat != nil || errLon != nil {
		return 0, 0, &ParseError{Input: raw, Reason: "latitude and longitude must be numbers"}
	}

	return lat, lon, nil
}

// Append folds one interactive round into the accumulated records. On a
// parse failure the input slice is returned unchanged together with the
// *ParseError, so a bad round never adds a partial record. The blocking
// prompt loop stays with the caller.
func Append(records []Record, rawPair, name, start, end string) ([]Record, error) {
	lat, lon, err := ParsePair(rawPair)
	if err != nil {
		return records, err
	}

	rec := Record{
		Lat:       lat,
		Lon:       lon,
		Name:      strings.TrimSpace(name),
		StartDate: strings.TrimSpace(start),
		EndDate:   strings.TrimSpace(end),
	}

	return append(records, rec.Normalize(len(records)+1)), nil
}
