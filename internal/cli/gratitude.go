package cli

import (
	"fmt"

	"github.com/sereniflow/sereniflow/internal/store"
	"github.com/sereniflow/sereniflow/internal/validation"
)

type GratitudeAddCmd struct {
	Text string `arg:"" help:"What you are grateful for today."`
	Date string `short:"d" help:"Day to record (YYYY-MM-DD), defaults to today."`
}

func (c *GratitudeAddCmd) Run(ctx *Context) error {
	text, err := validation.RequiredText("gratitude text", c.Text)
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

	s.AddGratitudeEntry(store.GratitudeInput{Date: date, Text: text})
	fmt.Println("Saved gratitude entry.")
	return nil
}

type GratitudeTodayCmd struct{}

func (c *GratitudeTodayCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	entry, ok := s.TodaysGratitudeEntry()
	if !ok {
		fmt.Println("No gratitude entry yet today.")
		return nil
	}
	fmt.Printf("%s: %s\n", entry.Date, entry.Text)
	return nil
}

type GratitudeListCmd struct {
	Limit int `short:"l" help:"Show at most this many recent entries." default:"14"`
}

func (c *GratitudeListCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	entries := s.GratitudeEntries()
	if len(entries) == 0 {
		fmt.Println("No gratitude entries yet.")
		return nil
	}

	start := 0
	if c.Limit > 0 && len(entries) > c.Limit {
		start = len(entries) - c.Limit
	}
	for _, entry := range entries[start:] {
		fmt.Printf("%s: %s\n", entry.Date, entry.Text)
	}
	return nil
}
