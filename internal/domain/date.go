package domain

import (
	"strings"
	"time"
)

// DateLayout is the fixed human-readable form exercise dates are stored and
// returned in, e.g. "Mon Jan 01 1990". Time-of-day and timezone are discarded
// once a date is formatted.
const DateLayout = "Mon Jan 02 2006"

// InvalidDate is the sentinel stored for a date string that could not be
// parsed. It propagates through storage and output instead of failing the
// request, and never matches a date-range filter.
const InvalidDate = "Invalid Date"

// Layouts accepted from caller input and from stored date strings.
// Stored dates re-enter through here when log queries filter by range.
var dateLayouts = []string{
	"2006-01-02",
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ParseDate parses a calendar date permissively. The date is interpreted in
// UTC so that "1990-01-01" formats as Jan 01 regardless of server timezone.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a time in the fixed log date format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// CoerceDate turns raw caller input into a stored date string: empty input
// defaults to today, unparseable input becomes the InvalidDate sentinel.
func CoerceDate(raw string, now time.Time) string {
	if strings.TrimSpace(raw) == "" {
		return FormatDate(now)
	}
	t, ok := ParseDate(raw)
	if !ok {
		return InvalidDate
	}
	return FormatDate(t)
}

// ReformatDate normalizes a stored date string for output. Already-formatted
// dates pass through unchanged; anything unparseable stays InvalidDate.
func ReformatDate(stored string) string {
	t, ok := ParseDate(stored)
	if !ok {
		return InvalidDate
	}
	return FormatDate(t)
}
