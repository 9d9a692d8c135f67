// Package ui hosts the Bubble Tea side of tuikit.
//
// Core pieces:
//   - View: a screen or modal with its own Init/Update/View (Elm-style)
//   - ModalStack: push/pop navigation; the top modal receives input first
//   - ValueField: a row showing a titled value; enter opens its picker
//   - ValuePicker: a list modal that commits one selection and dismisses
//   - App: the root model tying fields, focus and modals together
//
// Selection logic lives in the selection package. This package only
// translates key presses into selection calls and selection events into
// Bubble Tea messages.
package ui
