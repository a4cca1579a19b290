package radial

// Device is the kind of hardware an event came from.
type Device int

const (
	Mouse Device = iota
	Touch
)

func (d Device) String() string {
	if d == Touch {
		return "touch"
	}
	return "mouse"
}

// EventKind is what the pointer did.
type EventKind int

const (
	Press EventKind = iota
	Move
	Release
	Click
	Scroll
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Click:
		return "click"
	case Scroll:
		return "scroll"
	}
	return "unknown"
}

// PointerEvent is a device independent pointer input. Local is relative to
// the view showing the canvas and wins when HasLocal is set; otherwise
// Absolute is resolved against the viewport origin.
type PointerEvent struct {
	Device   Device
	Kind     EventKind
	Local    Point
	Absolute Point
	HasLocal bool
	// ScrollDY is the wheel delta of Scroll events.
	ScrollDY float64
}

// Viewport describes where the square canvas is shown: the view's absolute
// origin and size, and the canvas extent letterboxed into it.
type Viewport struct {
	Origin Point
	Size   Point
	Extent float64
}

// Box returns the offset and side length of the letterboxed canvas inside
// the view.
func (v Viewport) Box() (offset Point, side float64) {
	side = min(v.Size.X, v.Size.Y)
	if side <= 0 {
		return Point{}, 0
	}
	return Point{X: (v.Size.X - side) / 2, Y: (v.Size.Y - side) / 2}, side
}

func (v Viewport) extent() float64 {
	if v.Extent > 0 {
		return v.Extent
	}
	return SurfaceWidth
}

// ToCanvas converts a view-relative point to canvas units.
func (v Viewport) ToCanvas(p Point) Point {
	off, side := v.Box()
	if side <= 0 {
		return p
	}
	scale := side / v.extent()
	return Point{X: (p.X - off.X) / scale, Y: (p.Y - off.Y) / scale}
}

// FromCanvas converts canvas units to a view-relative point.
func (v Viewport) FromCanvas(p Point) Point {
	off, side := v.Box()
	if side <= 0 {
		return p
	}
	scale := side / v.extent()
	return Point{X: p.X*scale + off.X, Y: p.Y*scale + off.Y}
}

// Normalize converts any pointer event into canvas coordinates.
func (v Viewport) Normalize(ev PointerEvent) Point {
	p := ev.Local
	if !ev.HasLocal {
		p = ev.Absolute.Sub(v.Origin)
	}
	return v.ToCanvas(p)
}
