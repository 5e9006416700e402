package cli

import (
	"fmt"

	"github.com/sereniflow/sereniflow/internal/store"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Init(); err != nil {
		return err
	}

	// Constructing the stores seeds the default state (ten built-in
	// affirmations) and writes the initial snapshots.
	store.NewWellnessStore(ctx.Provider)
	store.NewDocumentLibraryStore(ctx.Provider)

	fmt.Printf("Initialized sereniflow storage at: %s\n", ctx.Provider.DataPath())
	return nil
}
