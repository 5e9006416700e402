package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	return map[string]Provider{
		"json":   NewJSONStore(t.TempDir()),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "sereniflow.db")),
	}
}

func TestProvider_PutGetRoundTrip(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer p.Close()

			payload := []byte(`{"habits":[{"id":"h1","name":"Meditate"}]}`)
			if err := p.Put("sereniflow-storage", payload); err != nil {
				t.Fatalf("Put failed: %v", err)
			}

			got, err := p.Get("sereniflow-storage")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if len(got) == 0 {
				t.Fatal("Get returned empty payload")
			}

			// Overwrite is last-writer-wins on the whole slot.
			if err := p.Put("sereniflow-storage", []byte(`{"habits":[]}`)); err != nil {
				t.Fatalf("second Put failed: %v", err)
			}
		})
	}
}

func TestProvider_GetMissingKey(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer p.Close()

			if _, err := p.Get("nope"); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("expected ErrKeyNotFound, got %v", err)
			}
		})
	}
}

func TestProvider_Delete(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer p.Close()

			if err := p.Put("k", []byte("{}")); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := p.Delete("k"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := p.Get("k"); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
			}

			// Deleting a missing key is not an error.
			if err := p.Delete("k"); err != nil {
				t.Errorf("second Delete failed: %v", err)
			}
		})
	}
}

func TestProvider_LoadUninitialized(t *testing.T) {
	cases := map[string]Provider{
		"json":   NewJSONStore(filepath.Join(t.TempDir(), "missing")),
		"sqlite": NewSQLiteStore(filepath.Join(t.TempDir(), "missing", "sereniflow.db")),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			if err := p.Load(); err == nil {
				t.Error("Load on uninitialized storage should fail")
			}
		})
	}
}

func TestProvider_LoadAfterInit(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			if err := p.Put("k", []byte(`{"v":1}`)); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := p.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			var reopened Provider
			switch name {
			case "json":
				reopened = NewJSONStore(p.DataPath())
			case "sqlite":
				reopened = NewSQLiteStore(p.DataPath())
			}
			if err := reopened.Load(); err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			defer reopened.Close()

			if _, err := reopened.Get("k"); err != nil {
				t.Errorf("Get after reopen failed: %v", err)
			}
		})
	}
}
