package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"tuikit/internal/selection"
)

// step feeds msg to the model and then feeds back any message produced by
// the returned command, the way the Bubble Tea runtime would.
func step(t *testing.T, m tea.Model, msg tea.Msg) tea.Msg {
	t.Helper()
	_, cmd := m.Update(msg)
	out := run(cmd)
	switch out.(type) {
	case OpenModalMsg, DismissModalMsg:
		_, cmd = m.Update(out)
		if next := run(cmd); next != nil {
			return next
		}
	}
	return out
}

func twoFieldApp() (*AppModel, *selection.State[string], *selection.State[int]) {
	name := selection.NewState("Jane")
	size := selection.NewState(2)
	sizeField := NewValueField("size", "Size", size, []selection.Candidate[int]{
		{ID: "s", Value: 1},
		{ID: "m", Value: 2},
		{ID: "l", Value: 3},
	})
	app := NewAppModel(nameField(name), sizeField)
	return app, name, size
}

func TestAppModel_FirstFieldFocused(t *testing.T) {
	app, _, _ := twoFieldApp()
	require.Equal(t, "name", app.Focus.Current)
	require.True(t, app.Fields[0].(*ValueField[string]).Focused())
	require.False(t, app.Fields[1].(*ValueField[int]).Focused())
}

func TestAppModel_PickFlow(t *testing.T) {
	app, name, _ := twoFieldApp()
	m := app.AsTeaModel()

	step(t, m, keyMsg("enter"))
	require.Equal(t, 1, app.Modals.Len())

	step(t, m, keyMsg("k"))
	step(t, m, keyMsg("enter"))
	require.Equal(t, 0, app.Modals.Len())
	require.Equal(t, "John", name.Current())
	require.Contains(t, m.View(), "John")
}

func TestAppModel_EscLeavesValue(t *testing.T) {
	app, name, _ := twoFieldApp()
	m := app.AsTeaModel()

	step(t, m, keyMsg("enter"))
	step(t, m, keyMsg("k"))
	step(t, m, keyMsg("esc"))
	require.Equal(t, 0, app.Modals.Len())
	require.Equal(t, "Jane", name.Current())
}

func TestAppModel_FocusMovesBetweenFields(t *testing.T) {
	app, _, size := twoFieldApp()
	m := app.AsTeaModel()

	step(t, m, keyMsg("j"))
	require.Equal(t, "size", app.Focus.Current)
	require.True(t, app.Fields[1].(*ValueField[int]).Focused())

	step(t, m, keyMsg("enter"))
	require.Equal(t, 1, app.Modals.Len())
	step(t, m, keyMsg("j"))
	step(t, m, keyMsg("enter"))
	require.Equal(t, 3, size.Current())

	step(t, m, keyMsg("k"))
	require.Equal(t, "name", app.Focus.Current)
}

func TestAppModel_QuitOnlyWithoutModal(t *testing.T) {
	app, _, _ := twoFieldApp()
	m := app.AsTeaModel()

	step(t, m, keyMsg("enter"))
	_, cmd := m.Update(keyMsg("q"))
	if msg := run(cmd); msg != nil {
		_, isQuit := msg.(tea.QuitMsg)
		require.False(t, isQuit, "q inside a picker must not quit")
	}

	step(t, m, keyMsg("esc"))
	require.Equal(t, tea.QuitMsg{}, step(t, m, keyMsg("q")))
}

func TestAppModel_CtrlCAlwaysQuits(t *testing.T) {
	app, _, _ := twoFieldApp()
	m := app.AsTeaModel()
	step(t, m, keyMsg("enter"))
	require.Equal(t, tea.QuitMsg{}, step(t, m, keyMsg("ctrl+c")))
}

func TestAppModel_NoFields(t *testing.T) {
	m := NewAppModel().AsTeaModel()
	require.Contains(t, m.View(), "no pickers configured")
	require.Nil(t, step(t, m, keyMsg("enter")))
}
