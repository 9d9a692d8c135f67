package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model: a column of fields with a modal stack on top.
type AppModel struct {
	Fields []Field
	Modals ModalStack
	Focus  *FocusManager
	Keys   KeyMap
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. The first field starts focused.
func NewAppModel(fields ...Field) *AppModel {
	a := &AppModel{
		Fields: fields,
		Keys:   DefaultKeyMap(),
	}
	order := make([]string, len(fields))
	for i, f := range fields {
		order[i] = f.FieldID()
	}
	a.Focus = &FocusManager{
		Order: order,
		OnChange: func(from, to string) {
			for _, f := range a.Fields {
				f.SetFocused(f.FieldID() == to)
			}
		},
	}
	if len(order) > 0 {
		a.Focus.SetFocus(order[0])
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.Fields))
	for _, f := range a.Fields {
		cmds = append(cmds, f.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenModalMsg:
		log.Printf("ui: open modal (depth %d)", a.Modals.Len()+1)
		return a, a.Modals.Push(msg.View)
	case DismissModalMsg:
		a.Modals.Pop()
		log.Printf("ui: dismiss modal (depth %d)", a.Modals.Len())
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.Modals.Len() > 0 {
			cmd, _ := a.Modals.UpdateTop(msg)
			return a, cmd
		}
		switch {
		case key.Matches(msg, a.Keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.Keys.Down):
			a.Focus.Next()
			return a, nil
		case key.Matches(msg, a.Keys.Up):
			a.Focus.Prev()
			return a, nil
		}
		return a, a.updateFocused(msg)
	}

	if cmd, ok := a.Modals.UpdateTop(msg); ok {
		return a, cmd
	}
	return a, nil
}

// updateFocused forwards msg to the focused field.
func (a *AppModel) updateFocused(msg tea.Msg) tea.Cmd {
	for i, f := range a.Fields {
		if f.FieldID() != a.Focus.Current {
			continue
		}
		v, cmd := f.Update(msg)
		if nf, ok := v.(Field); ok {
			a.Fields[i] = nf
		}
		return cmd
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	for i, f := range a.Fields {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(f.View())
	}
	if len(a.Fields) == 0 {
		b.WriteString(Styles.Empty.Render("  no pickers configured"))
	}
	b.WriteString("\n")
	if top := a.Modals.Peek(); top != nil {
		b.WriteString(top.View())
	} else {
		b.WriteString("\n  " + RenderHelp(fieldKeys{a.Keys}))
	}
	return b.String()
}
