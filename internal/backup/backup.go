package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sereniflow/sereniflow/internal/constants"
	"github.com/sereniflow/sereniflow/internal/storage"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// archive is the on-disk backup payload: every snapshot slot keyed by its
// storage key. Slots that have never been written are omitted.
type archive map[string]json.RawMessage

// snapshotKeys lists the slots a backup covers.
var snapshotKeys = []string{constants.WellnessStorageKey, constants.DocumentStorageKey}

// Manager creates, rotates and restores snapshot backups next to the data
// path. Backups go through the storage provider, so they work the same for
// the JSON and SQLite backends.
type Manager struct {
	provider  storage.Provider
	backupDir string
}

func NewManager(p storage.Provider) *Manager {
	dataPath := p.DataPath()
	dir := dataPath
	if filepath.Ext(dataPath) != "" {
		dir = filepath.Dir(dataPath)
	}
	return &Manager{
		provider:  p,
		backupDir: filepath.Join(dir, constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create writes a timestamped backup of all snapshot slots and rotates old
// backups, keeping the newest MaxBackups.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	arch := archive{}
	for _, key := range snapshotKeys {
		data, err := m.provider.Get(key)
		if err != nil {
			if err == storage.ErrKeyNotFound {
				continue
			}
			return "", fmt.Errorf("failed to read snapshot %q: %w", key, err)
		}
		arch[key] = json.RawMessage(data)
	}
	if len(arch) == 0 {
		return "", fmt.Errorf("nothing to back up")
	}

	payload, err := json.MarshalIndent(arch, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}

	backupPath, err := m.uniquePath()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(backupPath, payload, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		// Rotation failure should not fail the backup itself.
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return backupPath, nil
}

// uniquePath picks a timestamped filename, falling back to second precision
// and then a counter when a backup in the same minute already exists.
func (m *Manager) uniquePath() (string, error) {
	name := constants.BackupFilePrefix + time.Now().Format("20060102-1504") + ".json"
	path := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	stamp := time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+".json")
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d.json", constants.BackupFilePrefix, stamp, counter))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.BackupFilePrefix) || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Restore writes a backup's snapshot slots back into storage. The current
// state is backed up first so a bad restore can itself be undone.
func (m *Manager) Restore(backupPath string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	var arch archive
	if err := json.Unmarshal(data, &arch); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}

	if _, err := m.Create(); err != nil {
		return fmt.Errorf("failed to back up current state before restore: %w", err)
	}

	for _, key := range snapshotKeys {
		payload, ok := arch[key]
		if !ok {
			continue
		}
		if err := m.provider.Put(key, payload); err != nil {
			return fmt.Errorf("failed to restore snapshot %q: %w", key, err)
		}
	}
	return nil
}

// rotate deletes the oldest backups beyond constants.MaxBackups.
func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}
