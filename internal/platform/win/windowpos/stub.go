//go:build !windows

package windowpos

import "fyne.io/fyne/v2"

// Current always fails off Windows.
func Current(fyne.Window) (Position, bool) {
	return Position{}, false
}

// Move always fails off Windows.
func Move(fyne.Window, Position) bool {
	return false
}
