package chainmap

// Set is an unordered collection of unique elements. The snapshot views
// (KeySet, ValueSet, EntrySet) hand one of these to the caller, who owns
// it outright.
type Set[T comparable] struct {
	items map[T]struct{}
}

func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		items: make(map[T]struct{}, capacity),
	}
}

// Add puts v in the set. Reports whether v was newly added.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.items[v]; ok {
		return false
	}

	s.items[v] = struct{}{}

	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Delete removes v from the set. Reports whether v was present.
func (s *Set[T]) Delete(v T) bool {
	if _, ok := s.items[v]; !ok {
		return false
	}

	delete(s.items, v)

	return true
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns the elements as a slice in unspecified order.
func (s *Set[T]) Items() []T {
	out := make([]T, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}

	return out
}
