package ui

// OpenModalMsg asks the App to push View onto the modal stack.
type OpenModalMsg struct {
	View View
}

// DismissModalMsg closes the top modal. Pickers send it after a commit and
// when the user cancels (Esc).
type DismissModalMsg struct{}
