package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sereniflow/sereniflow/internal/store"
	"github.com/sereniflow/sereniflow/internal/tui/components/affirmlist"
	"github.com/sereniflow/sereniflow/internal/tui/components/doclist"
	"github.com/sereniflow/sereniflow/internal/tui/components/habitlist"
	"github.com/sereniflow/sereniflow/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state >= StateMoodForm {
		return m.updateForm(msg)
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h, v := docStyle.GetFrameSize()
		listWidth := msg.Width - h
		listHeight := msg.Height - v - 4
		m.habitList.SetSize(listWidth, listHeight)
		m.affirmList.SetSize(listWidth, listHeight)
		m.docList.SetSize(listWidth, listHeight)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateToday {
			switch {
			case key.Matches(msg, m.keys.Mood):
				return m.openMoodForm()
			case key.Matches(msg, m.keys.Gratitude):
				return m.openGratitudeForm()
			}
		}

	case habitlist.AddHabitMsg:
		m.previousState = m.state
		m.state = StateAddHabit
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.wellness.ToggleHabitCompletion(msg.ID, utils.Today())
		m.refresh()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.wellness.DeleteHabit(msg.ID)
		m.refresh()
		return m, nil

	case affirmlist.AddAffirmationMsg:
		m.previousState = m.state
		m.state = StateAddAffirmation
		m.affirmForm = &AffirmFormModel{}
		m.form = newAffirmForm(m.affirmForm)
		return m, m.form.Init()

	case affirmlist.ToggleFavoriteMsg:
		m.wellness.ToggleFavoriteAffirmation(msg.ID)
		m.refresh()
		return m, nil

	case doclist.OpenDocumentMsg:
		m.library.OpenDocument(msg.ID)
		m.refresh()
		return m, nil

	case doclist.DeleteDocumentMsg:
		m.library.DeleteDocument(msg.ID)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateAffirmations:
		m.affirmList, cmd = m.affirmList.Update(msg)
	case StateLibrary:
		m.docList, cmd = m.docList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) openMoodForm() (tea.Model, tea.Cmd) {
	fm := &MoodFormModel{}
	if entry, ok := m.wellness.TodaysMoodEntry(); ok {
		fm.Mood = entry.Mood
		fm.Note = entry.Note
	}
	m.previousState = m.state
	m.state = StateMoodForm
	m.moodForm = fm
	m.form = newMoodForm(fm)
	return m, m.form.Init()
}

func (m Model) openGratitudeForm() (tea.Model, tea.Cmd) {
	fm := &GratitudeFormModel{}
	if entry, ok := m.wellness.TodaysGratitudeEntry(); ok {
		fm.Text = entry.Text
	}
	m.previousState = m.state
	m.state = StateGratitudeForm
	m.gratitudeForm = fm
	m.form = newGratitudeForm(fm)
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applyForm() {
	switch m.state {
	case StateMoodForm:
		if m.moodForm.Mood == "" {
			return
		}
		m.wellness.AddMoodEntry(store.MoodEntryInput{
			Mood: m.moodForm.Mood,
			Note: strings.TrimSpace(m.moodForm.Note),
		})
	case StateGratitudeForm:
		text := strings.TrimSpace(m.gratitudeForm.Text)
		if text == "" {
			return
		}
		m.wellness.AddGratitudeEntry(store.GratitudeInput{Text: text})
	case StateAddHabit:
		name := strings.TrimSpace(m.habitForm.Name)
		if name == "" {
			return
		}
		m.wellness.AddHabit(store.HabitInput{
			Name:        name,
			Description: strings.TrimSpace(m.habitForm.Description),
			Icon:        strings.TrimSpace(m.habitForm.Icon),
		})
	case StateAddAffirmation:
		text := strings.TrimSpace(m.affirmForm.Text)
		if text == "" {
			return
		}
		m.wellness.AddAffirmation(text)
	}
}
