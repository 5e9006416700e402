package insights

import (
	"testing"
	"time"

	"github.com/sereniflow/sereniflow/internal/models"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMoodTrend_WindowAndGaps(t *testing.T) {
	entries := []models.MoodEntry{
		{ID: "1", Date: "2024-01-05", Mood: models.MoodHappy},
		{ID: "2", Date: "2024-01-03", Mood: models.MoodAnxious},
		{ID: "3", Date: "2023-12-01", Mood: models.MoodCalm}, // outside window
	}

	points := MoodTrend(entries, 7, day("2024-01-05"))

	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[0].Date != "2023-12-30" || points[6].Date != "2024-01-05" {
		t.Errorf("window bounds wrong: %s .. %s", points[0].Date, points[6].Date)
	}
	if !points[6].HasEntry || points[6].Score != 5 {
		t.Errorf("expected happy (5) on the last day, got %+v", points[6])
	}
	if !points[4].HasEntry || points[4].Score != 1 {
		t.Errorf("expected anxious (1) on 2024-01-03, got %+v", points[4])
	}
	if points[5].HasEntry {
		t.Errorf("2024-01-04 should be a gap, got %+v", points[5])
	}
}

func TestMoodBreakdown(t *testing.T) {
	entries := []models.MoodEntry{
		{Date: "2024-01-01", Mood: models.MoodHappy},
		{Date: "2024-01-02", Mood: models.MoodHappy},
		{Date: "2024-01-03", Mood: models.MoodSad},
	}

	counts := MoodBreakdown(entries)
	if counts[models.MoodHappy] != 2 || counts[models.MoodSad] != 1 {
		t.Errorf("unexpected breakdown: %v", counts)
	}
}

func TestAverageMoodScore(t *testing.T) {
	entries := []models.MoodEntry{
		{Date: "2024-01-04", Mood: models.MoodHappy},   // 5
		{Date: "2024-01-05", Mood: models.MoodNeutral}, // 3
	}

	avg, ok := AverageMoodScore(entries, 7, day("2024-01-05"))
	if !ok {
		t.Fatal("expected an average")
	}
	if avg != 4 {
		t.Errorf("avg = %v, want 4", avg)
	}

	if _, ok := AverageMoodScore(nil, 7, day("2024-01-05")); ok {
		t.Error("no entries should yield no average")
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name      string
		completed []string
		today     string
		want      int
	}{
		{"empty", nil, "2024-01-05", 0},
		{"today only", []string{"2024-01-05"}, "2024-01-05", 1},
		{"consecutive ending today", []string{"2024-01-03", "2024-01-04", "2024-01-05"}, "2024-01-05", 3},
		{"ends yesterday, today pending", []string{"2024-01-03", "2024-01-04"}, "2024-01-05", 2},
		{"broken by a gap", []string{"2024-01-01", "2024-01-02", "2024-01-04", "2024-01-05"}, "2024-01-05", 2},
		{"stale history", []string{"2023-11-01"}, "2024-01-05", 0},
		{"unordered input", []string{"2024-01-05", "2024-01-03", "2024-01-04"}, "2024-01-05", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.completed, tt.today); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarizeHabits(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Name: "Meditate", CompletedDates: []string{"2024-01-04", "2024-01-05"}},
		{ID: "h2", Name: "Stretch", CompletedDates: []string{}},
	}

	summaries := SummarizeHabits(habits, "2024-01-05")
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	first := summaries[0]
	if first.TotalCompletions != 2 || first.CurrentStreak != 2 || !first.CompletedToday {
		t.Errorf("unexpected summary: %+v", first)
	}
	if summaries[1].CompletedToday || summaries[1].CurrentStreak != 0 {
		t.Errorf("unexpected summary for empty habit: %+v", summaries[1])
	}
}
