package selection

// CommitResult reports the outcome of a commit. There is no rejection path.
type CommitResult int

const (
	Committed CommitResult = iota
)

func (r CommitResult) String() string {
	switch r {
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}

// Controller answers selection queries and performs commits. It keeps no state
// of its own; OnDismiss is invoked once after every commit.
//
// T's == must be reflexive, symmetric and transitive. Float NaN values, for
// example, will never appear selected.
type Controller[T comparable] struct {
	OnDismiss func()
}

// IsSelected reports whether c holds the state's current value.
func (Controller[T]) IsSelected(c Candidate[T], s *State[T]) bool {
	return c.Value == s.Current()
}

// Commit stores c.Value into s, even when it is already the current value,
// and then raises the dismissal event.
func (ctl Controller[T]) Commit(c Candidate[T], s *State[T]) CommitResult {
	s.set(c.Value)
	if ctl.OnDismiss != nil {
		ctl.OnDismiss()
	}
	return Committed
}

// FindSelectedIndex returns the index of the first candidate whose value
// equals the current selection. ok is false when no candidate matches, which
// is a normal outcome.
func (Controller[T]) FindSelectedIndex(set CandidateSet[T], s *State[T]) (idx int, ok bool) {
	cur := s.Current()
	for i, c := range set.items {
		if c.Value == cur {
			return i, true
		}
	}
	return 0, false
}
