// Package dates parses the fixed ddmmyyyy trip-date tokens and computes
// stay durations. All failures collapse to nil results; callers never see
// an error for a bad or unknown date.
package dates

import "time"

// Layout is the fixed-width day-month-year input format, e.g. "15012024".
const Layout = "02012006"

// ISOLayout is the output rendering, midnight date-time without zone.
const ISOLayout = "2006-01-02T15:04:05"

// Unknown is the sentinel for an intentionally absent date.
const Unknown = "unknown"

// Parse interprets a fixed-format token as a calendar date. It returns nil
// for the "unknown" sentinel, an empty token, or anything that is not a
// valid ddmmyyyy date (wrong width, bad digits, month 13 and the like).
func Parse(token string) *time.Time {
	if token == "" || token == Unknown {
		return nil
	}

	t, err := time.Parse(Layout, token)
	if err != nil {
		return nil
	}

	return &t
}

// FormatISO re-renders a valid token as an ISO-8601 date-time at midnight,
// e.g. "15012024" -> "2024-01-15T00:00:00". Nil under the same conditions
// as Parse.
func FormatISO(token string) *string {
	t := Parse(token)
	if t == nil {
		return nil
	}

	s := t.Format(ISOLayout)

	return &s
}

// DurationDays returns the signed whole-day difference between two tokens.
// A start after the end yields a negative count; chronological order is not
// validated. Nil if either token does not parse.
func DurationDays(startToken, endToken string) *int {
	start := Parse(startToken)
	end := Parse(endToken)

	if start == nil || end == nil {
		return nil
	}

	// Both values are midnight UTC, so the second difference is an exact
	// multiple of a day. Seconds arithmetic avoids the time.Duration cap,
	// which silently saturates multi-century spans.
	days := int((end.Unix() - start.Unix()) / 86400)

	return &days
}
