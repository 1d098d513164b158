package fixtures

//go:generate mockgen -source=store.go -destination=store_mock.go -package=fixtures

import "sync"

// Store holds the active fixture set and swaps it on reload
type Store interface {
	Current() *Set
	Reload() error
	Path() string
}

type store struct {
	path string
	set  *Set
	mu   sync.RWMutex
}

// NewStore loads the fixture file at path
func NewStore(path string) (Store, error) {
	set, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &store{path: path, set: set}, nil
}

// Current returns the active set; callers must not modify it
func (s *store) Current() *Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.set
}

// Reload re-reads the file, keeping the previous set on failure
func (s *store) Reload() error {
	set, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.set = set
	s.mu.Unlock()

	return nil
}

// Path returns the fixture file path, empty when running on built-in data
func (s *store) Path() string {
	return s.path
}
