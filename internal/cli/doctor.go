package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
)

type DoctorCmd struct{}

// Run checks the local environment: the storage must load, both snapshots
// must rehydrate, and no other sereniflow process should be running, since
// two writers against the same data path are last-writer-wins with no merge.
func (c *DoctorCmd) Run(ctx *Context) error {
	problems := 0

	if err := ctx.Provider.Load(); err != nil {
		fmt.Printf("✗ storage: %v\n", err)
		return fmt.Errorf("doctor found fatal problems")
	}
	fmt.Printf("✓ storage loads from %s\n", ctx.Provider.DataPath())

	wellness, err := ctx.Wellness()
	if err != nil {
		fmt.Printf("✗ wellness store: %v\n", err)
		problems++
	} else {
		fmt.Printf("✓ wellness store: %d mood entries, %d habits, %d affirmations\n",
			len(wellness.MoodEntries()), len(wellness.Habits()), len(wellness.Affirmations()))
	}

	library, err := ctx.Library()
	if err != nil {
		fmt.Printf("✗ document store: %v\n", err)
		problems++
	} else {
		fmt.Printf("✓ document store: %d documents\n", len(library.Documents()))
	}

	if count, err := countOwnProcesses(); err != nil {
		fmt.Printf("? could not inspect processes: %v\n", err)
	} else if count > 1 {
		fmt.Printf("⚠ %d sereniflow processes are running; concurrent writers are last-writer-wins and may lose data\n", count)
	} else {
		fmt.Println("✓ no concurrent sereniflow process")
	}

	if problems > 0 {
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	fmt.Println("All checks passed.")
	return nil
}

// countOwnProcesses counts running processes sharing this binary's name.
func countOwnProcesses() (int, error) {
	self := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")

	processes, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range processes {
		if strings.TrimSuffix(p.Executable(), ".exe") == self {
			count++
		}
	}
	return count, nil
}
