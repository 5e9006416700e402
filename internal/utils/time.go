package utils

import (
	"fmt"
	"time"

	"github.com/sereniflow/sereniflow/internal/constants"
)

// FormatDate renders a time as the calendar-day key (YYYY-MM-DD) in the
// time's own location. Both the stores and their callers must compute day
// keys through this function so the one-entry-per-day invariants stay
// timezone-consistent.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns the current local calendar-day key.
func Today() string {
	return FormatDate(time.Now())
}

// ParseDate parses a calendar-day key back into a local-midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// ValidDate reports whether the string is a well-formed calendar-day key.
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}
