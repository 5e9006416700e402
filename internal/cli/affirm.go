package cli

import (
	"fmt"
	"strings"

	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/store"
	"github.com/sereniflow/sereniflow/internal/validation"
)

type AffirmTodayCmd struct{}

func (c *AffirmTodayCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	s.EnsureDailyAffirmation()
	daily, ok := s.DailyAffirmation()
	if !ok {
		fmt.Println("No affirmations available.")
		return nil
	}
	fmt.Printf("\"%s\"\n", daily.Text)
	return nil
}

type AffirmAddCmd struct {
	Text string `arg:"" help:"The affirmation text."`
}

func (c *AffirmAddCmd) Run(ctx *Context) error {
	text, err := validation.RequiredText("affirmation text", c.Text)
	if err != nil {
		return err
	}

	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	s.AddAffirmation(text)
	fmt.Println("Added affirmation.")
	return nil
}

type AffirmListCmd struct {
	Favorites bool `short:"f" help:"Show only favorites."`
}

func (c *AffirmListCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	for _, a := range s.Affirmations() {
		if c.Favorites && !a.IsFavorite {
			continue
		}
		mark := " "
		if a.IsFavorite {
			mark = "♥"
		}
		fmt.Printf("%s %s (%s)\n", mark, a.Text, shortID(a.ID))
	}
	return nil
}

type AffirmFavCmd struct {
	Affirmation string `arg:"" help:"Affirmation text or id prefix."`
}

func (c *AffirmFavCmd) Run(ctx *Context) error {
	s, err := ctx.Wellness()
	if err != nil {
		return err
	}

	target, ok := findAffirmation(s, c.Affirmation)
	if !ok {
		return fmt.Errorf("no affirmation matches %q", c.Affirmation)
	}

	s.ToggleFavoriteAffirmation(target.ID)
	for _, a := range s.Affirmations() {
		if a.ID == target.ID {
			if a.IsFavorite {
				fmt.Println("Marked as favorite.")
			} else {
				fmt.Println("Removed from favorites.")
			}
		}
	}
	return nil
}

func findAffirmation(s *store.WellnessStore, ref string) (models.Affirmation, bool) {
	affirmations := s.Affirmations()
	for _, a := range affirmations {
		if strings.EqualFold(a.Text, ref) {
			return a, true
		}
	}
	for _, a := range affirmations {
		if strings.HasPrefix(a.ID, ref) {
			return a, true
		}
	}
	return models.Affirmation{}, false
}
