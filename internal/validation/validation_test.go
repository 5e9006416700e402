package validation

import (
	"reflect"
	"testing"
)

func TestMood(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"happy", "happy", false},
		{"  Calm ", "calm", false},
		{"ANXIOUS", "anxious", false},
		{"ecstatic", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mood, err := Mood(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Mood(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if string(mood) != tt.want {
				t.Errorf("Mood(%q) = %q, want %q", tt.input, mood, tt.want)
			}
		})
	}
}

func TestRequiredText(t *testing.T) {
	if _, err := RequiredText("name", "   "); err == nil {
		t.Error("blank input should be rejected")
	}
	got, err := RequiredText("name", "  Meditate ")
	if err != nil || got != "Meditate" {
		t.Errorf("RequiredText = %q, %v", got, err)
	}
}

func TestDayKey(t *testing.T) {
	if got, err := DayKey(""); err != nil || got != "" {
		t.Errorf("empty day key should pass through, got %q, %v", got, err)
	}
	if got, err := DayKey("2024-01-05"); err != nil || got != "2024-01-05" {
		t.Errorf("DayKey = %q, %v", got, err)
	}
	if _, err := DayKey("01/05/2024"); err == nil {
		t.Error("malformed date should be rejected")
	}
}

func TestPage(t *testing.T) {
	if err := Page(1); err != nil {
		t.Errorf("Page(1) = %v", err)
	}
	if err := Page(0); err == nil {
		t.Error("Page(0) should be rejected")
	}
}

func TestTags(t *testing.T) {
	got := Tags([]string{" walk ", "", "reading", "  "})
	want := []string{"walk", "reading"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}
