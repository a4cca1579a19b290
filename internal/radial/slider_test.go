package radial

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlider(t *testing.T, mutate func(*Options)) *Slider {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	s, err := New("slider-1", opts, nil)
	require.NoError(t, err)
	return s
}

func TestNewSliderGeometry(t *testing.T) {
	s := newTestSlider(t, nil)
	assert.Equal(t, Point{X: 250, Y: 250}, s.Circle().Center)
	assert.InDelta(t, 2*math.Pi*37, s.Circumference(), 1e-9)
	assert.Equal(t, Idle, s.State())
	_, ok := s.HandlePosition()
	assert.False(t, ok, "handle position must be undefined before any interaction")
	assert.Equal(t, Point{X: 250, Y: 213}, s.HandleCenter())
	assert.InDelta(t, s.Circumference(), s.DashOffset(), 1e-9)
	assert.Equal(t, "$0", s.LegendText("$"))
}

func TestClickEndToEnd(t *testing.T) {
	s := newTestSlider(t, nil)

	require.True(t, s.Click(Point{X: 300, Y: 250}))
	assert.InDelta(t, 25, s.Value(), 1e-9)
	assert.Equal(t, "$25", s.LegendText("$"))
	p, ok := s.HandlePosition()
	require.True(t, ok)
	assert.InDelta(t, 287, p.X, 1e-9)
	assert.InDelta(t, 250, p.Y, 1e-9)

	require.True(t, s.Click(Point{X: 250, Y: 300}))
	assert.InDelta(t, 50, s.Value(), 1e-9)
	assert.InDelta(t, s.Circumference()/2, s.DashOffset(), 1e-9)
}

func TestClickSnapsToStep(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "raw 24", raw: 24, want: 20},
		{name: "raw 26", raw: 26, want: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSlider(t, func(o *Options) { o.Step = 10 })
			s.Click(PointAt(s.Circle(), tt.raw/100*360))
			if math.Abs(s.RawValue()-tt.raw) > 1e-9 {
				t.Fatalf("raw value: want %v, got %v", tt.raw, s.RawValue())
			}
			if s.Value() != tt.want {
				t.Fatalf("want %v, got %v", tt.want, s.Value())
			}
		})
	}

	s := newTestSlider(t, func(o *Options) { o.Step = 10 })
	s.Click(Point{X: 400, Y: 250})
	assert.Equal(t, 30.0, s.Value(), "tie at 25 must go to the higher step")
}

func TestDragStateMachine(t *testing.T) {
	s := newTestSlider(t, nil)

	assert.False(t, s.Move(Point{X: 300, Y: 250}), "idle motion must not move the handle")
	_, ok := s.HandlePosition()
	assert.False(t, ok)
	assert.Equal(t, Point{X: 300, Y: 250}, s.LastPointer())

	require.True(t, s.Press())
	assert.Equal(t, Dragging, s.State())
	assert.Equal(t, "slider-handle-slider-1", s.ActiveHandle())
	assert.False(t, s.Press(), "second press while dragging is not a transition")

	require.True(t, s.Move(Point{X: 250, Y: 400}))
	assert.InDelta(t, 50, s.Value(), 1e-9)

	require.True(t, s.Release())
	assert.Equal(t, Idle, s.State())
	assert.Empty(t, s.ActiveHandle())
	assert.False(t, s.Release())

	assert.False(t, s.Move(Point{X: 100, Y: 250}))
	assert.InDelta(t, 50, s.Value(), 1e-9)
}

func TestDegenerateInputKeepsHandle(t *testing.T) {
	s := newTestSlider(t, nil)
	require.True(t, s.Click(Point{X: 300, Y: 250}))
	before, _ := s.HandlePosition()

	assert.False(t, s.Click(s.Circle().Center))
	s.Press()
	assert.False(t, s.Move(s.Circle().Center))

	after, _ := s.HandlePosition()
	assert.Equal(t, before, after)
	assert.False(t, math.IsNaN(s.DashOffset()))
	assert.InDelta(t, 25, s.Value(), 1e-9)
}

func TestRenderStateIdempotent(t *testing.T) {
	s := newTestSlider(t, nil)
	s.Click(Point{X: 120, Y: 33})
	first := s.DashOffset()
	s.Click(Point{X: 120, Y: 33})
	assert.Equal(t, first, s.DashOffset())
}

func TestValueStaysInRange(t *testing.T) {
	ranges := []Options{
		{Min: 0, Max: 100, Step: 1},
		{Min: 5, Max: 95, Step: 10},
		{Min: -50, Max: 50, Step: 7},
		{Min: 3, Max: 3, Step: 1},
		{Min: 0, Max: 1, Step: 0.25},
	}
	for _, r := range ranges {
		s := newTestSlider(t, func(o *Options) {
			o.Min, o.Max, o.Step = r.Min, r.Max, r.Step
		})
		for deg := 0.0; deg < 360; deg += 3.3 {
			s.Click(PointAt(s.Circle(), deg))
			v := s.Value()
			if v < r.Min || v > r.Max {
				t.Fatalf("range [%v, %v] step %v: value %v escaped at %v°", r.Min, r.Max, r.Step, v, deg)
			}
		}
	}
}

func TestSetValueAndNudge(t *testing.T) {
	s := newTestSlider(t, func(o *Options) { o.Step = 5 })

	require.True(t, s.SetValue(100))
	assert.Equal(t, 100.0, s.Value())
	assert.InDelta(t, 0, s.DashOffset(), 1e-9)
	assert.False(t, s.SetValue(100))

	require.True(t, s.SetValue(52))
	assert.Equal(t, 50.0, s.Value())
	p, _ := s.HandlePosition()
	assert.InDelta(t, 250, p.X, 1e-9)
	assert.InDelta(t, 287, p.Y, 1e-9)

	require.True(t, s.Nudge(2))
	assert.Equal(t, 60.0, s.Value())
	require.True(t, s.Nudge(-20))
	assert.Equal(t, 0.0, s.Value())
	assert.False(t, s.Nudge(0))
}

func TestHitTesting(t *testing.T) {
	s := newTestSlider(t, nil)
	assert.True(t, s.HitsHandle(Point{X: 250, Y: 213}, 0))
	assert.True(t, s.HitsHandle(Point{X: 256, Y: 213}, 0))
	assert.False(t, s.HitsHandle(Point{X: 270, Y: 213}, 0))
	assert.True(t, s.HitsHandle(Point{X: 270, Y: 213}, 12))
	assert.InDelta(t, 3, s.RingDistance(Point{X: 290, Y: 250}), 1e-9)
}

func TestCloseIgnoresInput(t *testing.T) {
	s := newTestSlider(t, nil)
	s.Press()
	s.Close()
	assert.True(t, s.Closed())
	assert.Equal(t, Idle, s.State())
	assert.False(t, s.Press())
	assert.False(t, s.Click(Point{X: 300, Y: 250}))
	assert.False(t, s.SetValue(10))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{v: 20, step: 1, want: "20"},
		{v: 2.5, step: 0.5, want: "2.5"},
		{v: 0.30000000000000004, step: 0.1, want: "0.3"},
		{v: 1.5, step: 0.25, want: "1.5"},
		{v: -0.0, step: 1, want: "0"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.step); got != tt.want {
			t.Fatalf("FormatValue(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Radius = 0
	s, err := New("slider-1", opts, nil)
	assert.Nil(t, s)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "radius", cfgErr.Field)
}

func TestOffGridMinShownUntilFirstInteraction(t *testing.T) {
	s := newTestSlider(t, func(o *Options) { o.Min, o.Max, o.Step = 5, 95, 10 })
	assert.Equal(t, 5.0, s.Value())
	assert.Equal(t, "$5", s.LegendText("$"))

	require.True(t, s.Click(Point{X: 300, Y: 250}))
	assert.Equal(t, 30.0, s.Value(), "27.5 snaps to the absolute grid")
}
