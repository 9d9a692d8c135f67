package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuikit/internal/selection"
	"tuikit/internal/ui/textutil"
)

const defaultFieldWidth = 40

// Field is a focusable row hosted by the App.
type Field interface {
	View
	FieldID() string
	SetFocused(bool)
}

// ValueField shows a muted title over the current value of State. Pressing
// Open presents a ValuePicker over Options; a new candidate set is built for
// every presentation.
type ValueField[T comparable] struct {
	ID       string
	Title    string
	State    *selection.State[T]
	Options  []selection.Candidate[T]
	Label    func(T) string // nil renders with fmt.Sprint
	Observer SessionObserver
	Width    int

	keys    KeyMap
	focused bool
}

// Ensure ValueField implements Field.
var _ Field = (*ValueField[string])(nil)

// NewValueField creates a field bound to state.
func NewValueField[T comparable](id, title string, state *selection.State[T], options []selection.Candidate[T]) *ValueField[T] {
	return &ValueField[T]{
		ID:      id,
		Title:   title,
		State:   state,
		Options: options,
		Width:   defaultFieldWidth,
		keys:    DefaultKeyMap(),
	}
}

// FieldID implements Field.
func (f *ValueField[T]) FieldID() string { return f.ID }

// SetFocused implements Field.
func (f *ValueField[T]) SetFocused(v bool) { f.focused = v }

// Focused reports whether the field has focus.
func (f *ValueField[T]) Focused() bool { return f.focused }

// ValueLabel returns the display text of the current value.
func (f *ValueField[T]) ValueLabel() string {
	label := f.Label
	if label == nil {
		label = defaultLabel[T]
	}
	return label(f.State.Current())
}

// Open builds the picker for a new session.
func (f *ValueField[T]) Open() *ValuePicker[T] {
	p := NewValuePicker(f.Title, selection.NewCandidateSet(f.Options...), f.State, f.Label).
		WithKeys(f.keys)
	if f.Observer != nil {
		p.WithObserver(f.Observer)
	}
	return p
}

// Init implements View.
func (f *ValueField[T]) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (f *ValueField[T]) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, f.keys.Open) {
		p := f.Open()
		return f, func() tea.Msg { return OpenModalMsg{View: p} }
	}
	return f, nil
}

// View implements View.
func (f *ValueField[T]) View() string {
	style := Styles.FieldValue
	marker := "  "
	if f.focused {
		style = Styles.FieldFocused
		marker = Styles.Cursor.Render("> ")
	}
	value := textutil.Truncate(f.ValueLabel(), f.Width-2)
	if value == "" {
		value = Styles.Empty.Render("none")
	} else {
		value = style.Render(value)
	}
	return "  " + Styles.FieldTitle.Render(textutil.Truncate(f.Title, f.Width-2)) + "\n" + marker + value
}
