package catalog

import (
	"sync"

	"coursefeed/internal/domain"
)

// Store owns the most recently normalized catalog. It replaces the original
// front-end's module-level mutable cache with an explicitly owned value:
// whoever composes the service holds the *Store, nothing is ambient.
//
// "Never populated" and "loaded" are distinct states; readers report which
// one they saw instead of handing out nils.
type Store struct {
	mu       sync.RWMutex
	loaded   bool
	gen      uint64
	courses  []domain.CourseItem
	enrolled []string
}

func NewStore() *Store {
	return &Store{}
}

// Set installs a catalog unless gen is older than the last accepted write.
// Concurrent refreshes race in arrival order; the generation guard keeps a
// slow early response from clobbering a newer one. Returns whether the write
// was accepted.
func (s *Store) Set(courses []domain.CourseItem, enrolledIDs []string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded && gen < s.gen {
		return false
	}
	s.loaded = true
	s.gen = gen
	s.courses = courses
	s.enrolled = enrolledIDs
	return true
}

// Loaded reports whether any successful normalization pass has landed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Courses returns the cached catalog. ok=false means never populated.
func (s *Store) Courses() ([]domain.CourseItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, false
	}
	out := make([]domain.CourseItem, len(s.courses))
	copy(out, s.courses)
	return out, true
}

// EnrolledIDs returns the cached enrollment set. ok=false means never
// populated.
func (s *Store) EnrolledIDs() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, false
	}
	return append([]string(nil), s.enrolled...), true
}
