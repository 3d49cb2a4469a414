package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Storage is a keyed string store backing the session.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Compile-time checks
var (
	_ Storage = (*MemoryStorage)(nil)
	_ Storage = NoopStorage{}
	_ Storage = (*FileStorage)(nil)
)

// MemoryStorage keeps values for the lifetime of the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// NoopStorage is used where no session storage exists. Reads report absence
// and writes are discarded.
type NoopStorage struct{}

func (NoopStorage) Get(string) (string, bool) { return "", false }
func (NoopStorage) Set(string, string) error  { return nil }
func (NoopStorage) Remove(string) error       { return nil }

// FileStorage keeps one file per key inside a directory, so a session
// survives between CLI invocations.
type FileStorage struct {
	fs  afero.Fs
	dir string
}

// NewFileStorage stores values under dir on fs.
func NewFileStorage(fs afero.Fs, dir string) *FileStorage {
	return &FileStorage{fs: fs, dir: dir}
}

// DefaultDir returns the per-user directory for session files.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error locating user config dir: %w", err)
	}
	return filepath.Join(base, "meterconsole", "session"), nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, filepath.Base(key))
}

func (f *FileStorage) Get(key string) (string, bool) {
	b, err := afero.ReadFile(f.fs, f.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (f *FileStorage) Set(key, value string) error {
	if err := f.fs.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("error creating session dir: %w", err)
	}
	if err := afero.WriteFile(f.fs, f.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	return nil
}

func (f *FileStorage) Remove(key string) error {
	err := f.fs.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}
	return nil
}
