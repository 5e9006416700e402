package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps each snapshot slot in its own <key>.json file under a data
// directory.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple sereniflow processes against the same data directory is
//     not supported; the last writer wins at whole-file granularity.
type JSONStore struct {
	dir string
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Load() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'sereniflow init' first")
		}
		return fmt.Errorf("failed to access data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path is not a directory: %s", s.dir)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return data, nil
}

func (s *JSONStore) Put(key string, data []byte) error {
	// Re-indent if the payload is valid JSON so the on-disk files stay
	// human-readable.
	var pretty json.RawMessage
	if err := json.Unmarshal(data, &pretty); err == nil {
		if indented, err := json.MarshalIndent(pretty, "", "  "); err == nil {
			data = indented
		}
	}

	if err := os.WriteFile(s.keyPath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Delete(key string) error {
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot %q: %w", key, err)
	}
	return nil
}

func (s *JSONStore) DataPath() string {
	return s.dir
}
