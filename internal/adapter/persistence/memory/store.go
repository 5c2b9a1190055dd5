// Package memory holds process-scoped registries. Lookups are by id; listing
// follows insertion order.
package memory

import "sync"

type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newStore[T any]() *store[T] {
	return &store[T]{items: make(map[string]T)}
}

// put inserts or replaces v. A replaced value keeps its original position.
func (s *store[T]) put(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

func (s *store[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	return v, ok
}

func (s *store[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// filter returns, in insertion order, the values keep accepts.
func (s *store[T]) filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []T
	for _, id := range s.order {
		if v := s.items[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}
