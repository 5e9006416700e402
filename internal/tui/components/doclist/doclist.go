package doclist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sereniflow/sereniflow/internal/models"
)

type OpenDocumentMsg struct {
	ID string
}

type DeleteDocumentMsg struct {
	ID string
}

type Item struct {
	Document models.Document
	IsOpen   bool
}

func (i Item) Title() string {
	if i.IsOpen {
		return "* " + i.Document.Name
	}
	return "  " + i.Document.Name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("page %d", i.Document.CurrentPage)
	if n := len(i.Document.Bookmarks); n > 0 {
		desc += fmt.Sprintf(" | %d bookmarks", n)
	}
	if n := len(i.Document.Notes); n > 0 {
		desc += fmt.Sprintf(" | %d notes", n)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Document.Name }

type KeyMap struct {
	Open   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(documents []models.Document, currentID string, width, height int) Model {
	l := list.New(buildItems(documents, currentID), list.NewDefaultDelegate(), width, height)
	l.Title = "Library"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func buildItems(documents []models.Document, currentID string) []list.Item {
	items := make([]list.Item, len(documents))
	for i, d := range documents {
		items[i] = Item{Document: d, IsOpen: d.ID == currentID}
	}
	return items
}

func (m *Model) SetDocuments(documents []models.Document, currentID string) {
	m.list.SetItems(buildItems(documents, currentID))
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
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenDocumentMsg{ID: i.Document.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteDocumentMsg{ID: i.Document.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Library is empty.\n  Add documents with 'sereniflow doc add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
