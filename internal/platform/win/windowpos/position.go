// Package windowpos reads and restores the native top-left corner of a fyne
// window. fyne has no portable API for it, so only Windows is implemented and
// other platforms report failure.
package windowpos

// Position is a window's top-left corner in screen pixels.
type Position struct {
	X, Y int
}

// Saved turns stored coordinates into a Position. ok is false when nothing
// was stored.
func Saved(x, y int, valid bool) (p Position, ok bool) {
	if !valid {
		return Position{}, false
	}
	return Position{X: x, Y: y}, true
}
