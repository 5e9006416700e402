package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/store"
	"github.com/sereniflow/sereniflow/internal/tui/components/affirmlist"
	"github.com/sereniflow/sereniflow/internal/tui/components/doclist"
	"github.com/sereniflow/sereniflow/internal/tui/components/habitlist"
	"github.com/sereniflow/sereniflow/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateAffirmations
	StateLibrary
	StateMoodForm
	StateGratitudeForm
	StateAddHabit
	StateAddAffirmation
)

// tabCount covers the browsable tabs only, not the form states.
const tabCount = 4

type MoodFormModel struct {
	Mood models.Mood
	Note string
}

type GratitudeFormModel struct {
	Text string
}

type HabitFormModel struct {
	Name        string
	Description string
	Icon        string
}

type AffirmFormModel struct {
	Text string
}

type Model struct {
	wellness      *store.WellnessStore
	library       *store.DocumentLibraryStore
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	affirmList    affirmlist.Model
	docList       doclist.Model
	form          *huh.Form
	moodForm      *MoodFormModel
	gratitudeForm *GratitudeFormModel
	habitForm     *HabitFormModel
	affirmForm    *AffirmFormModel
	quitting      bool
	width         int
	height        int
}

func NewModel(wellness *store.WellnessStore, library *store.DocumentLibraryStore) Model {
	wellness.EnsureDailyAffirmation()

	today := utils.Today()
	currentID := ""
	if doc, ok := library.CurrentDocument(); ok {
		currentID = doc.ID
	}

	return Model{
		wellness:   wellness,
		library:    library,
		state:      StateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		habitList:  habitlist.New(wellness.Habits(), today, 0, 0),
		affirmList: affirmlist.New(wellness.Affirmations(), 0, 0),
		docList:    doclist.New(library.Documents(), currentID, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Mood, m.keys.Gratitude)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateToday {
		actions = []key.Binding{m.keys.Mood, m.keys.Gratitude}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every component from the stores after a mutation.
func (m *Model) refresh() {
	today := utils.Today()
	m.habitList.SetHabits(m.wellness.Habits(), today)
	m.affirmList.SetAffirmations(m.wellness.Affirmations())

	currentID := ""
	if doc, ok := m.library.CurrentDocument(); ok {
		currentID = doc.ID
	}
	m.docList.SetDocuments(m.library.Documents(), currentID)
}

func newMoodForm(fm *MoodFormModel) *huh.Form {
	options := make([]huh.Option[models.Mood], 0, len(models.AllMoods))
	for _, mood := range models.AllMoods {
		options = append(options, huh.NewOption(string(mood), mood))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("How are you feeling today?").
				Options(options...).
				Value(&fm.Mood),
			huh.NewText().
				Title("Note").
				Placeholder("Anything on your mind? (optional)").
				Value(&fm.Note),
		),
	)
}

func newGratitudeForm(fm *GratitudeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What are you grateful for today?").
				Value(&fm.Text),
		),
	)
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&fm.Description),
			huh.NewInput().
				Title("Icon").
				Placeholder("optional emoji").
				Value(&fm.Icon),
		),
	)
}

func newAffirmForm(fm *AffirmFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Affirmation").
				Value(&fm.Text),
		),
	)
}
