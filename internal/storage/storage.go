// Package storage provides the durable key-value store backing neonmart's
// persistent state. Each key maps to one JSON file under the state directory,
// so the cart and the active-user label live side by side without sharing a
// schema or a write path.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Sentinel errors for callers that need to distinguish absence from damage.
var (
	// ErrNotFound means the key has never been written.
	ErrNotFound = errors.New("storage: key not found")

	// ErrUnavailable means the backing medium rejected the operation.
	// Callers are expected to keep their in-memory state authoritative.
	ErrUnavailable = errors.New("storage: unavailable")
)

// Store is the durable key-value contract. Values are opaque bytes; the
// serialization format belongs to the caller.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set writes the value for key, creating it if absent.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// FileStore persists each key as <dir>/<key>.json.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created
// lazily on first write so a read-only session never touches the disk.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the state directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads the value for key from disk.
func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
	}
	return data, nil
}

// Set writes the value for key to disk.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrUnavailable, s.dir, err)
	}
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

// Delete removes the key's file if present.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
