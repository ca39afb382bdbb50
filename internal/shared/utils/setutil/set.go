// Package setutil provides a generic set for id collections.
package setutil

// Set is a set of comparable values.
// It uses map[T]struct{} internally for memory efficiency.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New creates a set holding ids.
func New[T comparable](ids ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(ids))}
	s.AddAll(ids)
	return s
}

// Add adds an id to the set.
func (s *Set[T]) Add(id T) {
	s.items[id] = struct{}{}
}

// AddAll adds all ids to the set.
func (s *Set[T]) AddAll(ids []T) {
	for _, id := range ids {
		s.items[id] = struct{}{}
	}
}

// Has returns true if the id exists in the set.
func (s *Set[T]) Has(id T) bool {
	_, ok := s.items[id]
	return ok
}

// Filter returns the ids present in the set, keeping their order.
func (s *Set[T]) Filter(ids []T) []T {
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		if s.Has(id) {
			result = append(result, id)
		}
	}
	return result
}

// ToSlice returns all ids as a slice.
// The order is not guaranteed.
func (s *Set[T]) ToSlice() []T {
	result := make([]T, 0, len(s.items))
	for id := range s.items {
		result = append(result, id)
	}
	return result
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.items)
}
