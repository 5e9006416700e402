package insights

import (
	"sort"
	"time"

	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/utils"
)

// MoodPoint is one day in a trend series. Days without a check-in keep
// HasEntry false and a zero score, so callers can render gaps instead of
// fabricating data.
type MoodPoint struct {
	Date     string
	Mood     models.Mood
	Score    int
	HasEntry bool
}

// MoodTrend returns one point per day for the trailing window of the given
// length ending at end, in chronological order.
func MoodTrend(entries []models.MoodEntry, days int, end time.Time) []MoodPoint {
	byDate := make(map[string]models.MoodEntry, len(entries))
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}

	points := make([]MoodPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := utils.FormatDate(end.AddDate(0, 0, -i))
		point := MoodPoint{Date: date}
		if entry, ok := byDate[date]; ok {
			point.Mood = entry.Mood
			point.Score = entry.Mood.Score()
			point.HasEntry = true
		}
		points = append(points, point)
	}
	return points
}

// MoodBreakdown counts entries per mood category.
func MoodBreakdown(entries []models.MoodEntry) map[models.Mood]int {
	counts := make(map[models.Mood]int)
	for _, entry := range entries {
		counts[entry.Mood]++
	}
	return counts
}

// AverageMoodScore computes the mean sentiment score over the trailing
// window. The second return is false when the window holds no entries.
func AverageMoodScore(entries []models.MoodEntry, days int, end time.Time) (float64, bool) {
	sum, count := 0, 0
	for _, point := range MoodTrend(entries, days, end) {
		if point.HasEntry {
			sum += point.Score
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// HabitSummary is the per-habit digest shown on the habits dashboard.
type HabitSummary struct {
	HabitID          string
	Name             string
	TotalCompletions int
	CurrentStreak    int
	CompletedToday   bool
}

// SummarizeHabits digests each habit's completion history relative to the
// given day key, preserving habit order.
func SummarizeHabits(habits []models.Habit, today string) []HabitSummary {
	summaries := make([]HabitSummary, 0, len(habits))
	for _, habit := range habits {
		summary := HabitSummary{
			HabitID:          habit.ID,
			Name:             habit.Name,
			TotalCompletions: len(habit.CompletedDates),
			CurrentStreak:    CurrentStreak(habit.CompletedDates, today),
		}
		for _, d := range habit.CompletedDates {
			if d == today {
				summary.CompletedToday = true
				break
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// CurrentStreak counts consecutive completed days ending at today. A streak
// still counts when today itself is not yet completed, as long as yesterday
// was: checking in later in the day must not show a broken streak.
func CurrentStreak(completedDates []string, today string) int {
	if len(completedDates) == 0 {
		return 0
	}

	end, err := utils.ParseDate(today)
	if err != nil {
		return 0
	}

	days := make([]time.Time, 0, len(completedDates))
	for _, d := range completedDates {
		t, err := utils.ParseDate(d)
		if err != nil {
			continue
		}
		if !t.After(end) {
			days = append(days, t)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	cursor := end
	if !days[0].Equal(end) {
		cursor = end.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if !day.Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
