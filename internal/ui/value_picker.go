package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tuikit/internal/selection"
	"tuikit/internal/ui/textutil"
)

const (
	pickerWidth   = 40
	pickerMaxRows = 10
	checkmark     = "✓"
)

// ValuePicker is a modal listing the candidates of one selection session.
// Enter commits the row under the cursor and dismisses the modal; Esc
// abandons the session. Key presses that arrive after the session closed are
// dropped.
type ValuePicker[T comparable] struct {
	title    string
	session  *selection.Session[T]
	label    func(T) string
	list     list.Model
	keys     KeyMap
	observer SessionObserver
	recorder SessionRecorder

	dismissed bool
	dropped   int
}

// pickerItem pairs a candidate with its position in the candidate set.
type pickerItem[T comparable] struct {
	index     int
	candidate selection.Candidate[T]
	label     string
}

func (i pickerItem[T]) FilterValue() string { return i.label }

// pickerDelegate draws one row per candidate with a checkmark on the
// committed value.
type pickerDelegate[T comparable] struct {
	session *selection.Session[T]
}

func (d pickerDelegate[T]) Height() int                             { return 1 }
func (d pickerDelegate[T]) Spacing() int                            { return 0 }
func (d pickerDelegate[T]) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d pickerDelegate[T]) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(pickerItem[T])
	if !ok {
		return
	}
	prefix, style := "  ", Styles.Normal
	if index == m.Index() {
		prefix, style = Styles.Cursor.Render("> "), Styles.Selected
	}
	suffix := ""
	if d.session.IsSelected(it.candidate) {
		suffix = " " + Styles.Checkmark.Render(checkmark)
	}
	avail := m.Width() - 2 - textutil.Width(suffix)
	fmt.Fprint(w, prefix+style.Render(textutil.Truncate(it.label, avail))+suffix)
}

// Ensure ValuePicker implements View.
var _ View = (*ValuePicker[string])(nil)

// NewValuePicker opens a session over candidates bound to state. label
// renders values for display; nil falls back to fmt.Sprint.
func NewValuePicker[T comparable](title string, candidates selection.CandidateSet[T], state *selection.State[T], label func(T) string) *ValuePicker[T] {
	if label == nil {
		label = defaultLabel[T]
	}
	m := &ValuePicker[T]{
		title:    title,
		label:    label,
		keys:     DefaultKeyMap(),
		recorder: nopRecorder{},
	}
	m.session = selection.NewSession(candidates, state, func() { m.dismissed = true })

	items := make([]list.Item, candidates.Len())
	for i, c := range candidates.All() {
		items[i] = pickerItem[T]{index: i, candidate: c, label: label(c.Value)}
	}
	height := min(len(items), pickerMaxRows) + 4
	l := list.New(items, pickerDelegate[T]{session: m.session}, pickerWidth, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	if idx, ok := m.session.SelectedIndex(); ok {
		l.Select(idx)
	}
	m.list = l
	return m
}

// WithObserver reports the session to o once the picker is opened.
func (m *ValuePicker[T]) WithObserver(o SessionObserver) *ValuePicker[T] {
	m.observer = o
	return m
}

// WithKeys overrides the default key bindings.
func (m *ValuePicker[T]) WithKeys(km KeyMap) *ValuePicker[T] {
	m.keys = km
	return m
}

// Session returns the selection session backing the picker.
func (m *ValuePicker[T]) Session() *selection.Session[T] {
	return m.session
}

// Cursor returns the candidate index under the cursor, or -1 when the list
// is empty or filtered to nothing.
func (m *ValuePicker[T]) Cursor() int {
	if it, ok := m.list.SelectedItem().(pickerItem[T]); ok {
		return it.index
	}
	return -1
}

// Dropped returns how many key presses were ignored after the session closed.
func (m *ValuePicker[T]) Dropped() int {
	return m.dropped
}

// Init implements View.
func (m *ValuePicker[T]) Init() tea.Cmd {
	if m.observer != nil {
		idx, ok := m.session.SelectedIndex()
		m.recorder = m.observer.SessionOpened(m.title, m.session.Candidates().Len(), idx, ok)
	}
	return nil
}

// Update implements View.
func (m *ValuePicker[T]) Update(msg tea.Msg) (View, tea.Cmd) {
	k, isKey := msg.(tea.KeyMsg)
	if isKey && m.session.Closed() {
		m.dropped++
		return m, nil
	}
	if isKey && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(k, m.keys.Cancel):
			if m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}
			m.session.Abandon()
			m.recorder.Abandoned()
			return m, dismissModal
		case key.Matches(k, m.keys.Select):
			return m, m.commitCursor()
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// commitCursor commits the highlighted candidate. The session's dismissal
// event becomes a DismissModalMsg.
func (m *ValuePicker[T]) commitCursor() tea.Cmd {
	it, ok := m.list.SelectedItem().(pickerItem[T])
	if !ok {
		return nil
	}
	m.session.Commit(it.candidate)
	m.recorder.Committed(it.index, it.label)
	if m.dismissed {
		return dismissModal
	}
	return nil
}

// View implements View.
func (m *ValuePicker[T]) View() string {
	body := m.list.View()
	if m.session.Candidates().Len() == 0 {
		body = Styles.Title.Render(m.title) + "\n\n" + Styles.Empty.Render("no options")
	}
	return Styles.BoxCompact.Render(body + "\n" + RenderHelp(pickerKeys{m.keys}))
}

func dismissModal() tea.Msg {
	return DismissModalMsg{}
}

func defaultLabel[T comparable](v T) string {
	return fmt.Sprint(v)
}
