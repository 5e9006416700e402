package utils

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local))
	if got != "2026-03-09" {
		t.Errorf("FormatDate() = %q, want %q", got, "2026-03-09")
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-03-09")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got := FormatDate(parsed); got != "2026-03-09" {
		t.Errorf("round trip = %q, want %q", got, "2026-03-09")
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("ParseDate() should return local midnight, got %v", parsed)
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{
			name:  "valid day key",
			value: "2026-01-31",
			want:  true,
		},
		{
			name:  "empty string",
			value: "",
			want:  false,
		},
		{
			name:  "wrong separator",
			value: "2026/01/31",
			want:  false,
		},
		{
			name:  "missing zero padding",
			value: "2026-1-31",
			want:  false,
		},
		{
			name:  "day out of range",
			value: "2026-02-30",
			want:  false,
		},
		{
			name:  "trailing garbage",
			value: "2026-01-31x",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDate(tt.value); got != tt.want {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestTodayMatchesNow(t *testing.T) {
	want := time.Now().Format("2006-01-02")
	if got := Today(); got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
}
