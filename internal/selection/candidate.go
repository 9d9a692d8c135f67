package selection

// Candidate is one selectable option. ID identifies the row for rendering and
// must be unique within a CandidateSet; Value is what gets committed.
type Candidate[T comparable] struct {
	ID    string
	Value T
}

// CandidateSet is the ordered, read-only list of candidates for one session.
type CandidateSet[T comparable] struct {
	items []Candidate[T]
}

// NewCandidateSet copies items so later changes to the slice do not leak into
// an open session.
func NewCandidateSet[T comparable](items ...Candidate[T]) CandidateSet[T] {
	return CandidateSet[T]{items: append([]Candidate[T](nil), items...)}
}

// Len returns the number of candidates.
func (s CandidateSet[T]) Len() int {
	return len(s.items)
}

// At returns the candidate at index i. Panics if i is out of range, like a
// slice index.
func (s CandidateSet[T]) At(i int) Candidate[T] {
	return s.items[i]
}

// All returns a copy of the candidates in order.
func (s CandidateSet[T]) All() []Candidate[T] {
	return append([]Candidate[T](nil), s.items...)
}
