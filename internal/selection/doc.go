// Package selection binds a caller-owned selection cell to an ordered set of
// candidate values.
//
// The package has no rendering concerns. A view layer asks IsSelected to draw
// its indicator, FindSelectedIndex to place its cursor, and calls Commit once
// when the user activates a row. Commit raises a dismissal event so the view
// layer can close whatever surface presented the candidates.
package selection
