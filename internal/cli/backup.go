package cli

import (
	"fmt"

	"github.com/sereniflow/sereniflow/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}

	path, err := backup.NewManager(ctx.Provider).Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}

	backups, err := backup.NewManager(ctx.Provider).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups yet. Try 'sereniflow backup create'.")
		return nil
	}
	for _, info := range backups {
		fmt.Printf("%s  %s  %d bytes\n", info.Timestamp.Format("2006-01-02 15:04:05"), info.Path, info.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore from." type:"existingfile"`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}

	if err := backup.NewManager(ctx.Provider).Restore(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored from %s\n", c.Path)
	return nil
}
