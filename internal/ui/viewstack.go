package ui

import tea "github.com/charmbracelet/bubbletea"

// ModalStack holds the open modals. The top modal receives input first.
type ModalStack struct {
	stack []View
}

// Push opens v on top of the stack and returns its Init command.
func (s *ModalStack) Push(v View) tea.Cmd {
	s.stack = append(s.stack, v)
	return v.Init()
}

// Pop removes and returns the top modal.
// Returns nil if the stack is empty.
func (s *ModalStack) Pop() View {
	if len(s.stack) == 0 {
		return nil
	}
	top := s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	return top
}

// Peek returns the top modal without removing it.
func (s *ModalStack) Peek() View {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Len returns the number of open modals.
func (s *ModalStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top modal and stores the View it returns.
// ok is false when no modal is open.
func (s *ModalStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := len(s.stack) - 1
	s.stack[top], cmd = s.stack[top].Update(msg)
	return cmd, true
}
