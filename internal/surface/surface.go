// Package surface is the shared drawing canvas that several radial sliders
// mount into. It owns the instance registry, routes pointer input to the
// instance under the pointer, keeps the legend rows and renders the canvas
// to SVG.
package surface

import (
	"fmt"
	"log"
	"strings"

	"github.com/edward-ap/radialslider/internal/radial"
)

// DefaultCurrency prefixes legend values.
const DefaultCurrency = "$"

// Style holds the presentation knobs the canvas applies to every instance.
type Style struct {
	RingWidth         float64
	TrackColor        string
	HandleFill        string
	HandleStroke      string
	HandleStrokeWidth float64
	// HandleSlop widens the handle hit area, mostly for touch.
	HandleSlop float64
}

// DefaultStyle mirrors the stock look: wide light-gray tracks and a white
// handle with a thin outline.
func DefaultStyle() Style {
	return Style{
		RingWidth:         20,
		TrackColor:        "#dcdcdc",
		HandleFill:        "#ffffff",
		HandleStroke:      "#b4b4b4",
		HandleStrokeWidth: 2,
		HandleSlop:        4,
	}
}

// Option customizes a Surface.
type Option func(*Surface)

// WithCurrency sets the legend currency symbol.
func WithCurrency(symbol string) Option {
	return func(s *Surface) { s.currency = symbol }
}

// WithStyle replaces the default style.
func WithStyle(st Style) Option {
	return func(s *Surface) { s.style = st }
}

// WithTrace installs a switch that enables per-event logging.
func WithTrace(enabled func() bool) Option {
	return func(s *Surface) { s.trace = enabled }
}

// LegendRow is one legend entry.
type LegendRow struct {
	ID    string
	Value string
	Color string
	Name  string
}

// Surface is a fixed size canvas hosting one named container.
type Surface struct {
	container string
	currency  string
	style     Style
	trace     func() bool

	sliders   []*radial.Slider
	nextID    int
	listeners []func(ids []string)
}

// New builds an empty surface for the given host container.
func New(container string, opts ...Option) *Surface {
	s := &Surface{
		container: strings.TrimSpace(container),
		currency:  DefaultCurrency,
		style:     DefaultStyle(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Container is the host container name.
func (s *Surface) Container() string { return s.container }

// HasContainer implements radial.HostResolver.
func (s *Surface) HasContainer(name string) bool {
	return name != "" && name == s.container
}

// Size returns the canvas dimensions in canvas units.
func (s *Surface) Size() (w, h float64) { return radial.SurfaceWidth, radial.SurfaceHeight }

func (s *Surface) Currency() string { return s.currency }

func (s *Surface) Style() Style { return s.style }

// Add validates opts and registers a new slider under a fresh instance id.
func (s *Surface) Add(opts radial.Options) (*radial.Slider, error) {
	id := fmt.Sprintf("slider-%d", s.nextID+1)
	sl, err := radial.New(id, opts, s)
	if err != nil {
		return nil, fmt.Errorf("add slider %q: %w", opts.Name, err)
	}
	s.nextID++
	s.sliders = append(s.sliders, sl)
	s.tracef("added %s (%s) radius %.1f", id, opts.Name, opts.Radius)
	s.notify([]string{id})
	return sl, nil
}

// Remove closes and unregisters a slider.
func (s *Surface) Remove(id string) bool {
	for i, sl := range s.sliders {
		if sl.ID() != id {
			continue
		}
		sl.Close()
		s.sliders = append(s.sliders[:i], s.sliders[i+1:]...)
		s.tracef("removed %s", id)
		s.notify([]string{id})
		return true
	}
	return false
}

// Slider looks up an instance by id.
func (s *Surface) Slider(id string) (*radial.Slider, bool) {
	for _, sl := range s.sliders {
		if sl.ID() == id {
			return sl, true
		}
	}
	return nil, false
}

// Sliders returns the instances in registration order.
func (s *Surface) Sliders() []*radial.Slider {
	out := make([]*radial.Slider, len(s.sliders))
	copy(out, s.sliders)
	return out
}

// Legend returns one row per instance in registration order.
func (s *Surface) Legend() []LegendRow {
	rows := make([]LegendRow, 0, len(s.sliders))
	for _, sl := range s.sliders {
		o := sl.Options()
		rows = append(rows, LegendRow{
			ID:    sl.ID(),
			Value: sl.LegendText(s.currency),
			Color: o.Color,
			Name:  o.Name,
		})
	}
	return rows
}

// OnChange registers fn to be called with the ids of instances whose visual
// state changed.
func (s *Surface) OnChange(fn func(ids []string)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Surface) notify(ids []string) {
	if len(ids) == 0 {
		return
	}
	for _, fn := range s.listeners {
		fn(ids)
	}
}

func (s *Surface) tracef(format string, args ...any) {
	if s.trace != nil && s.trace() {
		log.Printf("surface: "+format, args...)
	}
}
