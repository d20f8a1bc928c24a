package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"epochs/internal/domain"
)

const stateFilename = "state.json"

// StateFileStore persists the last decoded input to disk.
type StateFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewStateFileStore returns a StateFileStore rooted at dir.
func NewStateFileStore(dir string) *StateFileStore {
	return &StateFileStore{dir: dir}
}

// Path returns the file the state is kept in.
func (s *StateFileStore) Path() string {
	return filepath.Join(s.dir, stateFilename)
}

// SaveState replaces the stored state.
func (s *StateFileStore) SaveState(state domain.State) error {
	if !state.Scheme.Valid() {
		return fmt.Errorf("save state: invalid scheme %d", uint8(state.Scheme))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.Path(), state, 0o600)
}

// LoadState returns the stored state and whether one was present.
func (s *StateFileStore) LoadState() (domain.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state domain.State
	found, err := readJSON(s.Path(), &state)
	if err != nil {
		return domain.State{}, false, fmt.Errorf("load state: %w", err)
	}
	// An empty object counts as no state.
	if !found || !state.Scheme.Valid() {
		return domain.State{}, false, nil
	}
	return state, true, nil
}

// Compile-time assertion that StateFileStore implements domain.StateStore.
var _ domain.StateStore = (*StateFileStore)(nil)
