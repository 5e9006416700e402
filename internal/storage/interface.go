package storage

import "errors"

// ErrKeyNotFound is returned by Get when no snapshot has been written under
// the requested key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Provider is a durable key-value slot the stores persist their snapshots
// into. Each store owns exactly one key and always writes its full serialized
// snapshot; concurrent writers to the same slot are last-writer-wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshots
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Delete(key string) error

	// Utils
	DataPath() string
}
