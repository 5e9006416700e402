package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/sereniflow/sereniflow/internal/constants"
	"github.com/sereniflow/sereniflow/internal/insights"
	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/utils"
)

type InsightsCmd struct {
	Range string `short:"r" help:"Window to analyze (week|month)." default:"week" enum:"week,month"`
}

func (c *InsightsCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	days := constants.TrendWindowWeek
	if c.Range == "month" {
		days = constants.TrendWindowMonth
	}

	entries := s.MoodEntries()
	now := time.Now()

	fmt.Printf("Mood trend (last %d days)\n", days)
	for _, point := range insights.MoodTrend(entries, days, now) {
		bar := strings.Repeat("█", point.Score)
		label := "-"
		if point.HasEntry {
			label = string(point.Mood)
		}
		fmt.Printf("  %s %-7s %s\n", point.Date, label, bar)
	}

	if avg, ok := insights.AverageMoodScore(entries, days, now); ok {
		fmt.Printf("Average mood score: %.1f / 5\n", avg)
	} else {
		fmt.Println("No mood entries in this window yet.")
	}

	breakdown := insights.MoodBreakdown(entries)
	if len(breakdown) > 0 {
		fmt.Println("\nMood breakdown (all time)")
		for _, mood := range models.AllMoods {
			if count := breakdown[mood]; count > 0 {
				fmt.Printf("  %s %-7s %d\n", moodGlyph(mood), mood, count)
			}
		}
	}

	habits := s.Habits()
	if len(habits) > 0 {
		fmt.Println("\nHabit streaks")
		for _, summary := range insights.SummarizeHabits(habits, utils.Today()) {
			fmt.Printf("  %-24s streak %2d  total %3d\n", summary.Name, summary.CurrentStreak, summary.TotalCompletions)
		}
	}
	return nil
}
