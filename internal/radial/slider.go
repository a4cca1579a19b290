// Package radial models a single circular slider: option validation, the
// cursor-to-angle geometry, step snapping and the press/drag/release state
// machine. It has no UI dependency; the surface package draws it and fyne
// feeds it pointer input.
package radial

import (
	"math"
	"strconv"
	"strings"
)

// Element classes of one slider instance. Element ids are the class joined
// with the instance id.
const (
	BackgroundClass = "background-circle"
	ForegroundClass = "foreground-circle"
	ClickableClass  = "clickable-circle"
	HandleClass     = "slider-handle"
)

// HandleSize is the handle radius in canvas units.
const HandleSize = 8

// State is the interaction state of a slider.
type State int

const (
	// Idle ignores pointer motion.
	Idle State = iota
	// Dragging follows pointer motion with the handle.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Slider is one radial slider instance.
type Slider struct {
	id            string
	opts          Options
	circle        Circle
	circumference float64

	state        State
	activeHandle string

	handle      Point
	hasHandle   bool
	lastPointer Point
	degrees     float64

	closed bool
}

// New validates opts and builds a slider centered on the shared canvas.
func New(id string, opts Options, hosts HostResolver) (*Slider, error) {
	if err := Validate(opts, hosts); err != nil {
		return nil, err
	}
	opts.Container = strings.TrimSpace(opts.Container)
	opts.Color = strings.TrimSpace(opts.Color)
	c := Circle{Center: SurfaceCenter(), Radius: opts.Radius}
	return &Slider{
		id:            id,
		opts:          opts,
		circle:        c,
		circumference: c.Circumference(),
	}, nil
}

func (s *Slider) ID() string { return s.id }

func (s *Slider) Options() Options { return s.opts }

func (s *Slider) Circle() Circle { return s.circle }

func (s *Slider) Circumference() float64 { return s.circumference }

func (s *Slider) State() State { return s.state }

func (s *Slider) Dragging() bool { return s.state == Dragging }

// ActiveHandle is the element id of the handle being dragged, empty when idle.
func (s *Slider) ActiveHandle() string { return s.activeHandle }

// LastPointer is the last pointer position seen, including idle motion.
func (s *Slider) LastPointer() Point { return s.lastPointer }

// ElementID returns the id of the instance element of the given class.
func (s *Slider) ElementID(class string) string { return class + "-" + s.id }

// HandlePosition returns the last computed handle point. ok is false until
// the first interaction.
func (s *Slider) HandlePosition() (p Point, ok bool) { return s.handle, s.hasHandle }

// HandleCenter is where the handle is drawn: the last computed point, or
// 12 o'clock before any interaction.
func (s *Slider) HandleCenter() Point {
	if s.hasHandle {
		return s.handle
	}
	return PointAt(s.circle, 0)
}

// Degrees is the current angle from 12 o'clock.
func (s *Slider) Degrees() float64 { return s.degrees }

// ArcLength is the consumed part of the circumference.
func (s *Slider) ArcLength() float64 { return ArcLength(s.circumference, s.degrees) }

// DashArray is the stroke dash array of the progress ring.
func (s *Slider) DashArray() float64 { return s.circumference }

// DashOffset hides the unconsumed part of the progress ring.
func (s *Slider) DashOffset() float64 { return s.circumference - s.ArcLength() }

// RawValue is the unsnapped value for the current angle.
func (s *Slider) RawValue() float64 { return ValueAt(s.opts.Min, s.opts.Max, s.degrees) }

// Value is the current value snapped to the step grid. Before the first
// interaction it is min, whether or not min lies on the grid.
func (s *Slider) Value() float64 {
	if !s.hasHandle {
		return s.opts.Min
	}
	return Snap(s.opts.Min, s.opts.Max, s.opts.Step, s.RawValue())
}

// LegendText formats the value with a currency prefix and the precision of
// the step.
func (s *Slider) LegendText(currency string) string {
	return currency + FormatValue(s.Value(), s.opts.Step)
}

// Press starts a drag on the handle. It reports whether the state changed.
func (s *Slider) Press() bool {
	if s.closed || s.state == Dragging {
		return false
	}
	s.state = Dragging
	s.activeHandle = s.ElementID(HandleClass)
	return true
}

// Move records p and, while dragging, moves the handle to p's projection.
// It reports whether the handle moved.
func (s *Slider) Move(p Point) bool {
	if s.closed {
		return false
	}
	s.lastPointer = p
	if s.state != Dragging {
		return false
	}
	return s.moveTo(p)
}

// Release ends a drag. It reports whether the state changed.
func (s *Slider) Release() bool {
	if s.state != Dragging {
		return false
	}
	s.state = Idle
	s.activeHandle = ""
	return true
}

// Click snaps the handle to p's projection regardless of state.
func (s *Slider) Click(p Point) bool {
	if s.closed {
		return false
	}
	s.lastPointer = p
	return s.moveTo(p)
}

// SetValue places the handle at the angle for v after snapping and clamping.
func (s *Slider) SetValue(v float64) bool {
	if s.closed {
		return false
	}
	v = Snap(s.opts.Min, s.opts.Max, s.opts.Step, v)
	deg := 0.0
	if span := s.opts.Max - s.opts.Min; span > 0 {
		deg = (v - s.opts.Min) / span * 360
	}
	if s.hasHandle && deg == s.degrees {
		return false
	}
	s.degrees = deg
	s.handle = PointAt(s.circle, deg)
	s.hasHandle = true
	return true
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) bool {
	if n == 0 {
		return false
	}
	return s.SetValue(s.Value() + float64(n)*s.opts.Step)
}

// HitsHandle reports whether p lies on the handle, widened by slop.
func (s *Slider) HitsHandle(p Point, slop float64) bool {
	return p.Dist(s.HandleCenter()) <= HandleSize+slop
}

// RingDistance is how far p lies from the circumference.
func (s *Slider) RingDistance(p Point) float64 {
	return math.Abs(p.Dist(s.circle.Center) - s.circle.Radius)
}

// Close detaches the slider; further input is ignored.
func (s *Slider) Close() {
	s.closed = true
	s.state = Idle
	s.activeHandle = ""
}

// Closed reports whether Close was called.
func (s *Slider) Closed() bool { return s.closed }

func (s *Slider) moveTo(p Point) bool {
	proj, err := Project(s.circle, p)
	if err != nil {
		return false
	}
	s.handle = proj
	s.hasHandle = true
	s.degrees = Degrees(s.circle.Center, proj)
	return true
}

// FormatValue prints v with as many decimals as step carries.
func FormatValue(v, step float64) string {
	d := decimals(step)
	p := math.Pow(10, float64(d))
	v = math.Round(v*p) / p
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func decimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}
