package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sereniflow/sereniflow/internal/constants"
	"github.com/sereniflow/sereniflow/internal/storage"
)

func newTestProvider(t *testing.T) storage.Provider {
	t.Helper()
	p := storage.NewJSONStore(t.TempDir())
	if err := p.Init(); err != nil {
		t.Fatalf("failed to init storage: %v", err)
	}
	return p
}

func TestCreateAndList(t *testing.T) {
	p := newTestProvider(t)
	if err := p.Put(constants.WellnessStorageKey, []byte(`{"habits":[]}`)); err != nil {
		t.Fatal(err)
	}

	m := NewManager(p)
	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 || backups[0].Path != path {
		t.Errorf("unexpected backups: %+v", backups)
	}
}

func TestCreate_EmptyStorage(t *testing.T) {
	m := NewManager(newTestProvider(t))
	if _, err := m.Create(); err == nil {
		t.Error("backing up empty storage should fail")
	}
}

func TestRestore(t *testing.T) {
	p := newTestProvider(t)
	original := []byte(`{"habits":[{"id":"h1","name":"Meditate"}]}`)
	if err := p.Put(constants.WellnessStorageKey, original); err != nil {
		t.Fatal(err)
	}

	m := NewManager(p)
	path, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Clobber the live state, then restore.
	if err := p.Put(constants.WellnessStorageKey, []byte(`{"habits":[]}`)); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(path); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	got, err := p.Get(constants.WellnessStorageKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) == `{"habits":[]}` {
		t.Error("restore did not bring back the original snapshot")
	}
}

func TestRestore_InvalidFile(t *testing.T) {
	p := newTestProvider(t)
	m := NewManager(p)

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("nope"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(bad); err == nil {
		t.Error("restoring an invalid backup should fail")
	}
}

func TestRotation(t *testing.T) {
	p := newTestProvider(t)
	if err := p.Put(constants.WellnessStorageKey, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}

	m := NewManager(p)
	for i := 0; i < constants.MaxBackups+3; i++ {
		if _, err := m.Create(); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) > constants.MaxBackups {
		t.Errorf("rotation kept %d backups, want at most %d", len(backups), constants.MaxBackups)
	}
}
