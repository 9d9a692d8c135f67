package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, checkmarks
	ColorHighlight = "205" // Magenta - cursor, focused field, borders
	ColorMuted     = "241" // Gray - field titles, hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across fields and modals.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - picker titles

	BoxCompact lipgloss.Style // Rounded border with little padding (for lists)

	Cursor       lipgloss.Style // List cursor marker
	Selected     lipgloss.Style // Row under the cursor
	Normal       lipgloss.Style // Other rows
	Checkmark    lipgloss.Style // Indicator for the committed value
	FieldTitle   lipgloss.Style // Small muted title above a value
	FieldValue   lipgloss.Style // Current value of an unfocused field
	FieldFocused lipgloss.Style // Current value of the focused field
	Hint         lipgloss.Style // Help/hint text
	Empty        lipgloss.Style // Empty state text (muted, italic)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(1),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Checkmark: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	FieldTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	FieldValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	FieldFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
