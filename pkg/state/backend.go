package state

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend is the durable storage behind a Store. Load returns the raw
// serialized Document, or nil when nothing was ever saved. Save
// overwrites the previous state completely; the only guarantee required
// is "last writer wins" (the Store never runs two saves concurrently).
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileBackend persists the Document as a single JSON file, the same
// layout the bot has always used. Writes go through a temp file plus
// rename so a crash mid-write can never leave a truncated document.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the data file. An absent file is not an error.
func (b *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save atomically replaces the data file.
func (b *FileBackend) Save(data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Path returns the location of the data file.
func (b *FileBackend) Path() string {
	return b.path
}
