package cli

import (
	"fmt"

	"github.com/sereniflow/sereniflow/internal/insights"
	"github.com/sereniflow/sereniflow/internal/store"
	"github.com/sereniflow/sereniflow/internal/utils"
	"github.com/sereniflow/sereniflow/internal/validation"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"D" help:"Optional description."`
	Icon        string `short:"i" help:"Optional icon glyph."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	name, err := validation.RequiredText("habit name", c.Name)
	if err != nil {
		return err
	}

	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	s.AddHabit(store.HabitInput{Name: name, Description: c.Description, Icon: c.Icon})

	habits := s.Habits()
	added := habits[len(habits)-1]
	fmt.Printf("Added habit: %s (ID: %s)\n", name, added.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	habits := s.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Try 'sereniflow habit add Meditate'.")
		return nil
	}

	today := utils.Today()
	for _, summary := range insights.SummarizeHabits(habits, today) {
		mark := " "
		if summary.CompletedToday {
			mark = "x"
		}
		fmt.Printf("[%s] %-24s streak %2d  total %3d  (%s)\n",
			mark, summary.Name, summary.CurrentStreak, summary.TotalCompletions, shortID(summary.HabitID))
	}
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit name or id prefix."`
	Date  string `short:"d" help:"Day to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	date, err := validation.DayKey(c.Date)
	if err != nil {
		return err
	}
	if date == "" {
		date = utils.Today()
	}

	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	habit, ok := findHabit(s, c.Habit)
	if !ok {
		return fmt.Errorf("no habit matches %q", c.Habit)
	}

	s.ToggleHabitCompletion(habit.ID, date)
	if s.HabitCompletionForDate(habit.ID, date) {
		fmt.Printf("Marked %s done for %s\n", habit.Name, date)
	} else {
		fmt.Printf("Unmarked %s for %s\n", habit.Name, date)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id prefix."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	habit, ok := findHabit(s, c.Habit)
	if !ok {
		return fmt.Errorf("no habit matches %q", c.Habit)
	}

	s.DeleteHabit(habit.ID)
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
