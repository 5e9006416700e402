package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sereniflow/sereniflow/internal/insights"
	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/utils"
)

var moodGlyphs = map[models.Mood]string{
	models.MoodHappy:   "😊",
	models.MoodCalm:    "😌",
	models.MoodNeutral: "😐",
	models.MoodSad:     "😔",
	models.MoodAnxious: "😰",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday:
		content = docStyle.Render(m.viewToday())
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateAffirmations:
		content = docStyle.Render(m.affirmList.View())
	case StateLibrary:
		content = docStyle.Render(m.docList.View())
	default:
		content = m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Habits", "Affirmations", "Library"} {
		state := m.state
		if state >= tabCount {
			state = m.previousState
		}
		if state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	if a, ok := m.wellness.DailyAffirmation(); ok {
		b.WriteString(affirmationStyle.Render("“" + a.Text + "”"))
		b.WriteString("\n\n")
	}

	b.WriteString(headingStyle.Render("Mood"))
	b.WriteString("\n")
	if entry, ok := m.wellness.TodaysMoodEntry(); ok {
		b.WriteString(fmt.Sprintf("%s %s", moodGlyphs[entry.Mood], entry.Mood))
		if entry.Note != "" {
			b.WriteString("\n" + mutedStyle.Render(entry.Note))
		}
	} else {
		b.WriteString(mutedStyle.Render("Not logged yet. Press 'm' to check in."))
	}
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Gratitude"))
	b.WriteString("\n")
	if entry, ok := m.wellness.TodaysGratitudeEntry(); ok {
		b.WriteString(entry.Text)
	} else {
		b.WriteString(mutedStyle.Render("Not logged yet. Press 'g' to write one."))
	}
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Habits"))
	b.WriteString("\n")
	habits := m.wellness.Habits()
	if len(habits) == 0 {
		b.WriteString(mutedStyle.Render("No habits yet."))
	} else {
		today := utils.Today()
		done := 0
		for _, summary := range insights.SummarizeHabits(habits, today) {
			mark := "[ ]"
			if summary.CompletedToday {
				mark = "[x]"
				done++
			}
			b.WriteString(fmt.Sprintf("%s %s", mark, summary.Name))
			if summary.CurrentStreak > 1 {
				b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%d day streak)", summary.CurrentStreak)))
			}
			b.WriteString("\n")
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d done today", done, len(habits))))
	}

	return b.String()
}
