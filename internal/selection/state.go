package selection

import "sync"

// State holds the current selection. It is owned by the caller; sessions only
// borrow it. The zero value holds the zero T and is ready to use.
type State[T comparable] struct {
	mu      sync.RWMutex
	current T
}

// NewState returns a State holding initial.
func NewState[T comparable](initial T) *State[T] {
	return &State[T]{current: initial}
}

// Current returns the selected value.
func (s *State[T]) Current() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// set is the single write performed by a commit.
func (s *State[T]) set(v T) {
	s.mu.Lock()
	s.current = v
	s.mu.Unlock()
}
