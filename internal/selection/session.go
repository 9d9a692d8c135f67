package selection

// Phase is the lifecycle position of a Session.
type Phase int

const (
	Open Phase = iota
	Closed
)

func (p Phase) String() string {
	switch p {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is one presentation of a candidate set against a borrowed State.
// It moves from Open to Closed on the first Commit or on Abandon and never
// reopens. A Session does not refuse a commit after it has closed; the
// dispatch layer is expected to check Closed and drop the event.
type Session[T comparable] struct {
	ctl        Controller[T]
	candidates CandidateSet[T]
	state      *State[T]
	phase      Phase
	committed  bool
}

// NewSession opens a session. onDismiss may be nil.
func NewSession[T comparable](candidates CandidateSet[T], state *State[T], onDismiss func()) *Session[T] {
	return &Session[T]{
		ctl:        Controller[T]{OnDismiss: onDismiss},
		candidates: candidates,
		state:      state,
		phase:      Open,
	}
}

// Candidates returns the session's candidate set.
func (s *Session[T]) Candidates() CandidateSet[T] {
	return s.candidates
}

// State returns the borrowed selection cell.
func (s *Session[T]) State() *State[T] {
	return s.state
}

// Phase returns the current lifecycle phase.
func (s *Session[T]) Phase() Phase {
	return s.phase
}

// Closed reports whether the session has ended.
func (s *Session[T]) Closed() bool {
	return s.phase == Closed
}

// Committed reports whether the session ended through a commit rather than
// being abandoned.
func (s *Session[T]) Committed() bool {
	return s.committed
}

// IsSelected reports whether c is the current selection.
func (s *Session[T]) IsSelected(c Candidate[T]) bool {
	return s.ctl.IsSelected(c, s.state)
}

// SelectedIndex returns the first candidate index matching the current
// selection.
func (s *Session[T]) SelectedIndex() (int, bool) {
	return s.ctl.FindSelectedIndex(s.candidates, s.state)
}

// Commit stores c's value, closes the session and raises the dismissal event.
func (s *Session[T]) Commit(c Candidate[T]) CommitResult {
	s.phase = Closed
	s.committed = true
	return s.ctl.Commit(c, s.state)
}

// Abandon closes the session without touching the state. No dismissal event
// is raised; the caller is already closing.
func (s *Session[T]) Abandon() {
	s.phase = Closed
}
