package reveal

import (
	"sort"
	"sync"
)

// Set records which targets have been revealed. It only grows.
type Set struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewSet returns a set seeded with ids.
func NewSet(ids ...string) *Set {
	s := &Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Add marks id as revealed and reports whether it was newly added.
func (s *Set) Add(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		s.ids = map[string]struct{}{}
	}
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether id has been revealed. A nil set reveals nothing.
func (s *Set) Has(id string) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of revealed ids.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// IDs returns the revealed ids sorted.
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	s.mu.RUnlock()
	sort.Strings(out)
	return out
}
