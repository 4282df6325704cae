package state

import (
	"fmt"
	"sync"

	"github.com/ANN7660/hoshimi/pkg/logger"
	json "github.com/goccy/go-json"
)

// Store owns the in-memory Document and its Backend. Every read and
// every read-modify-write sequence goes through a single mutex, so two
// mutations of the same entity can never interleave, and a mutation is
// persisted before Update returns.
type Store struct {
	mu      sync.Mutex
	backend Backend
	doc     *Document
}

// Open loads the Document from the backend. It fails soft: an absent,
// unreadable or corrupt backend yields a fresh empty Document with every
// category present, never an error. Only a nil backend is rejected.
func Open(backend Backend) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("state: nil backend")
	}

	s := &Store{backend: backend, doc: NewDocument()}

	data, err := backend.Load()
	if err != nil {
		logger.Warn(fmt.Sprintf("Could not read saved state, starting fresh: %v", err), "Store")
		return s, nil
	}
	if len(data) == 0 {
		logger.Info("No saved state found, starting with an empty document", "Store")
		return s, nil
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn(fmt.Sprintf("Saved state is corrupt, starting fresh: %v", err), "Store")
		return s, nil
	}
	doc.normalize()
	s.doc = doc
	return s, nil
}

// View runs fn with read access to the Document. fn must not retain
// references past its return.
func (s *Store) View(fn func(d *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Update runs fn with write access to the Document and persists the
// result. If fn returns an error, or persisting fails, the in-memory
// mutation is rolled back and the error returned, so memory and disk
// never drift apart silently.
func (s *Store) Update(fn func(d *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("state: snapshot document: %w", err)
	}

	if err := fn(s.doc); err != nil {
		s.restoreLocked(snapshot)
		return err
	}

	if err := s.saveLocked(); err != nil {
		s.restoreLocked(snapshot)
		return fmt.Errorf("state: persist document: %w", err)
	}
	return nil
}

func (s *Store) restoreLocked(snapshot []byte) {
	restored := &Document{}
	if err := json.Unmarshal(snapshot, restored); err == nil {
		restored.normalize()
		s.doc = restored
	}
}

// Flush persists the current Document as-is. Used on shutdown.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	return s.backend.Save(data)
}
