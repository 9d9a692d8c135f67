package ui

// FocusManager tracks which field has focus and rotates through Order.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // Field IDs in display order
	OnChange func(from, to string)
}

// Next moves focus down one field, stopping at the last.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus up one field, stopping at the first.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index()
	if idx < 0 {
		return f.set(f.Order[0])
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(f.Order) {
		idx = len(f.Order) - 1
	}
	return f.set(f.Order[idx])
}

// SetFocus sets focus to the given field ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

// index returns the position of Current in Order, or -1.
func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) string {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
	return id
}
