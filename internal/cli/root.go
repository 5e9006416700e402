package cli

import (
	"fmt"
	"strings"

	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/storage"
	"github.com/sereniflow/sereniflow/internal/store"
)

// Context is passed to every command's Run method. Stores are constructed
// lazily so commands that never touch one store don't pay for rehydrating it.
type Context struct {
	Provider storage.Provider
	Debug    bool

	wellness *store.WellnessStore
	library  *store.DocumentLibraryStore
}

// Wellness loads storage on first use and returns the wellness store.
func (c *Context) Wellness() (*store.WellnessStore, error) {
	if c.wellness == nil {
		if err := c.Provider.Load(); err != nil {
			return nil, err
		}
		c.wellness = store.NewWellnessStore(c.Provider)
	}
	return c.wellness, nil
}

// Library loads storage on first use and returns the document library store.
func (c *Context) Library() (*store.DocumentLibraryStore, error) {
	if c.library == nil {
		if err := c.Provider.Load(); err != nil {
			return nil, err
		}
		c.library = store.NewDocumentLibraryStore(c.Provider)
	}
	return c.library, nil
}

// findHabit resolves a user-supplied reference to a habit by exact name
// match first, then by id prefix.
func findHabit(s *store.WellnessStore, ref string) (models.Habit, bool) {
	habits := s.Habits()
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			return h, true
		}
	}
	for _, h := range habits {
		if strings.HasPrefix(h.ID, ref) {
			return h, true
		}
	}
	return models.Habit{}, false
}

// findDocument resolves a reference to a document by exact name, then id
// prefix.
func findDocument(s *store.DocumentLibraryStore, ref string) (models.Document, bool) {
	docs := s.Documents()
	for _, d := range docs {
		if strings.EqualFold(d.Name, ref) {
			return d, true
		}
	}
	for _, d := range docs {
		if strings.HasPrefix(d.ID, ref) {
			return d, true
		}
	}
	return models.Document{}, false
}

// shortID renders the first eight characters of an id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// moodGlyph maps a mood to its check-in glyph.
func moodGlyph(m models.Mood) string {
	switch m {
	case models.MoodHappy:
		return "😊"
	case models.MoodCalm:
		return "😌"
	case models.MoodNeutral:
		return "😐"
	case models.MoodSad:
		return "😔"
	case models.MoodAnxious:
		return "😰"
	default:
		return "?"
	}
}

func formatMoodEntry(entry models.MoodEntry) string {
	line := fmt.Sprintf("%s %s %s", entry.Date, moodGlyph(entry.Mood), entry.Mood)
	if entry.Note != "" {
		line += fmt.Sprintf(" - %s", entry.Note)
	}
	if len(entry.Tags) > 0 {
		line += fmt.Sprintf(" [%s]", strings.Join(entry.Tags, ", "))
	}
	return line
}
