package radial

import (
	"math"
	"strings"

	"github.com/srwiley/oksvg"
)

const (
	// DefaultContainer is the host container used when none is configured.
	DefaultContainer = "slider-container"
	// DefaultColor is the progress arc and legend swatch color.
	DefaultColor = "#5e437a"
	// DefaultMin is the lower bound of the mapped value.
	DefaultMin = 0
	// DefaultMax is the upper bound of the mapped value.
	DefaultMax = 100
	// DefaultStep is the snapping granularity.
	DefaultStep = 1
	// DefaultRadius is the circle radius in canvas units.
	DefaultRadius = 37
	// DefaultName is the legend label.
	DefaultName = "Example"
)

// Options configures one slider instance.
type Options struct {
	Container string
	Color     string
	Min       float64
	Max       float64
	Step      float64
	Radius    float64
	Name      string
}

// DefaultOptions returns the documented defaults for every option.
func DefaultOptions() Options {
	return Options{
		Container: DefaultContainer,
		Color:     DefaultColor,
		Min:       DefaultMin,
		Max:       DefaultMax,
		Step:      DefaultStep,
		Radius:    DefaultRadius,
		Name:      DefaultName,
	}
}

// HostResolver reports whether a named container exists.
type HostResolver interface {
	HasContainer(name string) bool
}

// Validate checks opts before anything is built. A nil hosts skips the
// container existence check but still requires a non-empty name.
func Validate(opts Options, hosts HostResolver) error {
	container := strings.TrimSpace(opts.Container)
	if container == "" {
		return invalid("container", "must be a non-empty name")
	}
	if hosts != nil && !hosts.HasContainer(container) {
		return invalid("container", "no host container named "+container)
	}
	if !finite(opts.Step) || opts.Step <= 0 {
		return invalid("step", "must be greater than zero")
	}
	if !finite(opts.Min) || !finite(opts.Max) || opts.Min > opts.Max {
		return invalid("range", "min must not exceed max")
	}
	if !finite(opts.Radius) || opts.Radius <= 0 {
		return invalid("radius", "must be greater than zero")
	}
	if c, err := oksvg.ParseSVGColor(strings.TrimSpace(opts.Color)); err != nil || c == nil {
		return invalid("color", "not a usable SVG color: "+opts.Color)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
