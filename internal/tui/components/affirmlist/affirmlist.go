package affirmlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sereniflow/sereniflow/internal/models"
)

type AddAffirmationMsg struct{}

type ToggleFavoriteMsg struct {
	ID string
}

type Item struct {
	Affirmation models.Affirmation
}

func (i Item) Title() string {
	if i.Affirmation.IsFavorite {
		return "♥ " + i.Affirmation.Text
	}
	return "  " + i.Affirmation.Text
}

func (i Item) Description() string {
	if i.Affirmation.IsFavorite {
		return "favorite"
	}
	return ""
}

func (i Item) FilterValue() string { return i.Affirmation.Text }

type KeyMap struct {
	Add      key.Binding
	Favorite key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add affirmation"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f", "enter"),
			key.WithHelp("f", "toggle favorite"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(affirmations []models.Affirmation, width, height int) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(buildItems(affirmations), delegate, width, height)
	l.Title = "Affirmations"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Favorite}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func buildItems(affirmations []models.Affirmation) []list.Item {
	items := make([]list.Item, len(affirmations))
	for i, a := range affirmations {
		items[i] = Item{Affirmation: a}
	}
	return items
}

func (m *Model) SetAffirmations(affirmations []models.Affirmation) {
	m.list.SetItems(buildItems(affirmations))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddAffirmationMsg{} }
		case key.Matches(msg, m.keys.Favorite):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleFavoriteMsg{ID: i.Affirmation.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
