package ui

// SessionObserver is told when a picker session opens. It returns the
// recorder that receives the session's outcome.
type SessionObserver interface {
	SessionOpened(title string, candidates, selected int, matched bool) SessionRecorder
}

// SessionRecorder receives exactly one outcome for a session.
type SessionRecorder interface {
	Committed(index int, label string)
	Abandoned()
}

type nopRecorder struct{}

func (nopRecorder) Committed(int, string) {}
func (nopRecorder) Abandoned()            {}
