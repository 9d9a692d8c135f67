package telemetry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tuikit/internal/ui"
)

// Attribute keys set on picker session spans.
const (
	AttrSessionID      = attribute.Key("tuikit.session.id")
	AttrTitle          = attribute.Key("tuikit.picker.title")
	AttrCandidates     = attribute.Key("tuikit.picker.candidates")
	AttrInitialIndex   = attribute.Key("tuikit.picker.initial_index")
	AttrOutcome        = attribute.Key("tuikit.outcome")
	AttrCommittedIndex = attribute.Key("tuikit.picker.committed_index")
	AttrCommittedLabel = attribute.Key("tuikit.picker.committed_label")
)

// Ensure Exporter implements ui.SessionObserver.
var _ ui.SessionObserver = (*Exporter)(nil)

// SessionOpened starts a span covering one picker presentation. initial
// index is -1 when the current value matched no candidate.
func (e *Exporter) SessionOpened(title string, candidates, selected int, matched bool) ui.SessionRecorder {
	if e == nil {
		return discard{}
	}
	if !matched {
		selected = -1
	}
	id := uuid.NewString()
	_, span := e.tracer.Start(context.Background(), "picker.session",
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(
			AttrSessionID.String(id),
			AttrTitle.String(title),
			AttrCandidates.Int(candidates),
			AttrInitialIndex.Int(selected),
		),
	)
	return &sessionSpan{id: id, span: span}
}

// sessionSpan ends its span on the first outcome and ignores later ones.
type sessionSpan struct {
	id   string
	span oteltrace.Span
	once sync.Once
}

func (s *sessionSpan) Committed(index int, label string) {
	s.once.Do(func() {
		s.span.SetAttributes(
			AttrOutcome.String("committed"),
			AttrCommittedIndex.Int(index),
			AttrCommittedLabel.String(label),
		)
		s.span.SetStatus(codes.Ok, "")
		s.span.End()
	})
}

func (s *sessionSpan) Abandoned() {
	s.once.Do(func() {
		s.span.SetAttributes(AttrOutcome.String("abandoned"))
		s.span.End()
	})
}

type discard struct{}

func (discard) Committed(int, string) {}
func (discard) Abandoned()            {}
