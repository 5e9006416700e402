package validation

import (
	"fmt"
	"strings"

	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/utils"
)

// The stores are total functions that accept whatever they are given; every
// surface that collects user input runs it through this package first.

// Mood parses a user-supplied mood label against the closed vocabulary.
func Mood(value string) (models.Mood, error) {
	mood := models.Mood(strings.ToLower(strings.TrimSpace(value)))
	if !mood.Valid() {
		return "", fmt.Errorf("invalid mood %q (valid: happy, calm, neutral, sad, anxious)", value)
	}
	return mood, nil
}

// RequiredText trims the value and rejects empty input. The field name is
// used in the error message.
func RequiredText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%s cannot be empty", field)
	}
	return trimmed, nil
}

// DayKey validates a calendar-day key. An empty value is allowed and means
// "today" to the stores.
func DayKey(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if !utils.ValidDate(trimmed) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return trimmed, nil
}

// Page validates a 1-based page number.
func Page(page int) error {
	if page < 1 {
		return fmt.Errorf("page must be 1 or greater, got %d", page)
	}
	return nil
}

// Tags trims each tag and drops empties, preserving order.
func Tags(values []string) []string {
	var out []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
