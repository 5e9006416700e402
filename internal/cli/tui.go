package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sereniflow/sereniflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	wellness, err := ctx.Wellness()
	if err != nil {
		return err
	}
	library, err := ctx.Library()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(wellness, library), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
