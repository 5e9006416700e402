package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sereniflow/sereniflow/internal/cli"
	"github.com/sereniflow/sereniflow/internal/constants"
	"github.com/sereniflow/sereniflow/internal/logger"
	"github.com/sereniflow/sereniflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path." type:"path" default:"~/.config/sereniflow/sereniflow.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Initialize sereniflow storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Mood struct {
		Add   cli.MoodAddCmd   `cmd:"" help:"Log today's mood check-in."`
		Today cli.MoodTodayCmd `cmd:"" help:"Show today's mood entry."`
		List  cli.MoodListCmd  `cmd:"" help:"List recent mood entries."`
	} `cmd:"" help:"Track daily mood."`
	Gratitude struct {
		Add   cli.GratitudeAddCmd   `cmd:"" help:"Write today's gratitude entry."`
		Today cli.GratitudeTodayCmd `cmd:"" help:"Show today's gratitude entry."`
		List  cli.GratitudeListCmd  `cmd:"" help:"List gratitude entries."`
	} `cmd:"" help:"Keep a gratitude journal."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with streaks."`
		Done   cli.HabitDoneCmd   `cmd:"" help:"Toggle a habit's completion for a day."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Affirm struct {
		Today cli.AffirmTodayCmd `cmd:"" help:"Show the daily affirmation."`
		Add   cli.AffirmAddCmd   `cmd:"" help:"Add a custom affirmation."`
		List  cli.AffirmListCmd  `cmd:"" help:"List affirmations."`
		Fav   cli.AffirmFavCmd   `cmd:"" help:"Toggle an affirmation's favorite flag."`
	} `cmd:"" help:"Daily affirmations."`
	Doc struct {
		Add      cli.DocAddCmd      `cmd:"" help:"Add a document to the library."`
		List     cli.DocListCmd     `cmd:"" help:"List library documents."`
		Open     cli.DocOpenCmd     `cmd:"" help:"Open a document for reading."`
		Delete   cli.DocDeleteCmd   `cmd:"" help:"Remove a document."`
		Progress cli.DocProgressCmd `cmd:"" help:"Update reading progress."`
		Bookmark cli.DocBookmarkCmd `cmd:"" help:"Toggle a bookmark on a page."`
		Note     struct {
			Add    cli.DocNoteAddCmd    `cmd:"" help:"Attach a note to a document."`
			List   cli.DocNoteListCmd   `cmd:"" help:"List a document's notes."`
			Delete cli.DocNoteDeleteCmd `cmd:"" help:"Delete a note."`
		} `cmd:"" help:"Manage document notes."`
	} `cmd:"" help:"Manage the reading library."`
	Insights cli.InsightsCmd `cmd:"" help:"Show mood trends and habit streaks."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of all data."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore data from a backup file."`
	} `cmd:"" help:"Back up and restore data."`
	Doctor cli.DoctorCmd `cmd:"" help:"Check storage health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness companion for mood, habits, gratitude and mindful reading"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	// A .db path gets the SQLite backend, anything else is treated as a
	// directory of JSON snapshot files.
	var provider storage.Provider
	var dataDir string
	if strings.HasSuffix(CLI.Data, ".db") {
		provider = storage.NewSQLiteStore(CLI.Data)
		dataDir = filepath.Dir(CLI.Data)
	} else {
		provider = storage.NewJSONStore(CLI.Data)
		dataDir = CLI.Data
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Provider: provider,
		Debug:    CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
