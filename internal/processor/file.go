package processor

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNoSource is reported when the requested input file does not exist.
// The caller gets zero records and treats the run as nothing to process.
var ErrNoSource = errors.New("input file not found")

// LineError reports a line whose content could not be turned into a record
// under a non-skipping policy. It carries the 1-based line number.
type LineError struct {
	Line   int
	Value  string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Value)
}

// ReadFile reads coordinate records from a line-oriented text file. Each
// non-blank, non-"#" line is "lat, lon[, name[, start_date[, end_date]]]"
// with every field trimmed. Trailing fields may be omitted and are
// defaulted by Normalize.
//
// Under PolicyLegacy a line with fewer than two fields is reported and
// skipped, while a line whose latitude or longitude fails numeric parsing
// aborts the whole read: already accumulated records are returned together
// with a *LineError. PolicySkip and PolicyAbort apply one of those two
// treatments to both cases.
func ReadFile(path string, policy Policy) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSource, path)
		}

		return nil, fmt.Errorf("opening input file: %w", err)
	}
	// Read-only handle, close error carries no data loss
	defer func() { _ = f.Close() }()

	records := []Record{}
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			if policy == PolicyAbort {
				return records, &LineError{Line: lineNum, Value: line, Reason: "need at least latitude and longitude"}
			}

			log.Warn().
				Int("line", lineNum).
				Str("content", line).
				Msg("Need at least latitude and longitude, line skipped")

			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

		if errLat != nil || errLon != nil {
			if policy == PolicySkip {
				log.Warn().
					Int("line", lineNum).
					Str("content", line).
					Msg("Invalid coordinates, line skipped")

				continue
			}

			return records, &LineError{Line: lineNum, Value: line, Reason: "invalid coordinates"}
		}

		rec := Record{Lat: lat, Lon: lon}
		if len(parts) > 2 {
			rec.Name = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			rec.StartDate = strings.TrimSpace(parts[3])
		}
		if len(parts) > 4 {
			rec.EndDate = strings.TrimSpace(parts[4])
		}

		records = append(records, rec.Normalize(len(records)+1))
	}

	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("reading input file: %w", err)
	}

	return records, nil
}
