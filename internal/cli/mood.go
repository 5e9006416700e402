package cli

import (
	"fmt"

	"github.com/sereniflow/sereniflow/internal/store"
	"github.com/sereniflow/sereniflow/internal/validation"
)

type MoodAddCmd struct {
	Mood string   `arg:"" help:"How you feel (happy|calm|neutral|sad|anxious)."`
	Note string   `short:"n" help:"Optional note about the check-in."`
	Date string   `short:"d" help:"Day to record (YYYY-MM-DD), defaults to today."`
	Tags []string `short:"t" help:"Activity tags for the day."`
}

func (c *MoodAddCmd) Run(ctx *Context) error {
	mood, err := validation.Mood(c.Mood)
	if err != nil {
		return err
	}
	date, err := validation.DayKey(c.Date)
	if err != nil {
		return err
	}

	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	s.AddMoodEntry(store.MoodEntryInput{
		Date: date,
		Mood: mood,
		Note: c.Note,
		Tags: validation.Tags(c.Tags),
	})

	if date == "" {
		fmt.Printf("Recorded today's mood: %s %s\n", moodGlyph(mood), mood)
	} else {
		fmt.Printf("Recorded mood for %s: %s %s\n", date, moodGlyph(mood), mood)
	}
	return nil
}

type MoodTodayCmd struct{}

func (c *MoodTodayCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	entry, ok := s.TodaysMoodEntry()
	if !ok {
		fmt.Println("No mood check-in yet today.")
		return nil
	}
	fmt.Println(formatMoodEntry(entry))
	return nil
}

type MoodListCmd struct {
	Limit int `short:"l" help:"Show at most this many recent entries." default:"14"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	entries := s.MoodEntries()
	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Try 'sereniflow mood add happy'.")
		return nil
	}

	start := 0
	if c.Limit > 0 && len(entries) > c.Limit {
		start = len(entries) - c.Limit
	}
	for _, entry := range entries[start:] {
		fmt.Println(formatMoodEntry(entry))
	}
	return nil
}
