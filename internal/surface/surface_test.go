package surface

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/radialslider/internal/radial"
)

func withRadius(r float64, name string) radial.Options {
	o := radial.DefaultOptions()
	o.Radius = r
	o.Name = name
	return o
}

func TestAddAssignsInstanceIDs(t *testing.T) {
	s := New(radial.DefaultContainer)
	a, err := s.Add(withRadius(37, "Transport"))
	require.NoError(t, err)
	b, err := s.Add(withRadius(37, "Food"))
	require.NoError(t, err)

	assert.Equal(t, "slider-1", a.ID())
	assert.Equal(t, "slider-2", b.ID(), "same radius must not collide")
	assert.Len(t, s.Sliders(), 2)

	got, ok := s.Slider("slider-2")
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestAddRejectsUnknownContainer(t *testing.T) {
	s := New("legend-host")
	_, err := s.Add(radial.DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, radial.ErrInvalidConfig))
	var cfgErr *radial.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "container", cfgErr.Field)
	assert.Empty(t, s.Sliders(), "no partial widget may be registered")

	_, err = s.Add(radial.Options{Container: "legend-host", Color: "red", Min: 10, Max: 5, Step: 1, Radius: 10})
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "range", cfgErr.Field)
}

func TestLegendRows(t *testing.T) {
	s := New(radial.DefaultContainer, WithCurrency("€"))
	o := withRadius(67, "Insurance")
	o.Min = 10
	o.Color = "teal"
	_, err := s.Add(o)
	require.NoError(t, err)

	rows := s.Legend()
	require.Len(t, rows, 1)
	assert.Equal(t, LegendRow{ID: "slider-1", Value: "€10", Color: "teal", Name: "Insurance"}, rows[0])
}

func TestPressMoveReleaseThroughViewport(t *testing.T) {
	s := New(radial.DefaultContainer)
	sl, err := s.Add(withRadius(37, "Transport"))
	require.NoError(t, err)

	var changed [][]string
	s.OnChange(func(ids []string) { changed = append(changed, ids) })

	// the view is twice the canvas size, so canvas units are doubled
	vp := radial.Viewport{Size: radial.Point{X: 1000, Y: 1000}}
	local := func(x, y float64) radial.Point { return vp.FromCanvas(radial.Point{X: x, Y: y}) }

	ids := s.Handle(radial.PointerEvent{Kind: radial.Move, Local: local(300, 250), HasLocal: true}, vp)
	assert.Empty(t, ids, "idle motion is a no-op")

	ids = s.Handle(radial.PointerEvent{Device: radial.Touch, Kind: radial.Press, Local: local(250, 213), HasLocal: true}, vp)
	assert.Equal(t, []string{"slider-1"}, ids)
	assert.True(t, sl.Dragging())

	ids = s.Handle(radial.PointerEvent{Device: radial.Touch, Kind: radial.Move, Local: local(300, 250), HasLocal: true}, vp)
	assert.Equal(t, []string{"slider-1"}, ids)
	assert.InDelta(t, 25, sl.Value(), 1e-9)

	// release away from the handle still ends the drag
	ids = s.Handle(radial.PointerEvent{Device: radial.Touch, Kind: radial.Release, Local: local(10, 10), HasLocal: true}, vp)
	assert.Equal(t, []string{"slider-1"}, ids)
	assert.False(t, sl.Dragging())

	assert.Equal(t, [][]string{{"slider-1"}}, changed, "only the drag move redraws")
}

func TestInstancesDoNotInterfere(t *testing.T) {
	s := New(radial.DefaultContainer)
	inner, err := s.Add(withRadius(37, "inner"))
	require.NoError(t, err)
	outer, err := s.Add(withRadius(97, "outer"))
	require.NoError(t, err)

	assert.Equal(t, []string{outer.ID()}, s.Press(radial.Point{X: 250, Y: 153}))
	assert.Equal(t, []string{outer.ID()}, s.Move(radial.Point{X: 400, Y: 250}))
	assert.InDelta(t, 25, outer.Value(), 1e-9)
	assert.Equal(t, 0.0, inner.Value())
	_, moved := inner.HandlePosition()
	assert.False(t, moved)
	s.Release()

	assert.Equal(t, []string{inner.ID()}, s.Click(radial.Point{X: 250, Y: 290}))
	assert.InDelta(t, 50, inner.Value(), 1e-9)
	assert.InDelta(t, 25, outer.Value(), 1e-9)

	assert.Empty(t, s.Click(radial.Point{X: 250, Y: 250}), "center is on no ring")
	assert.Empty(t, s.Press(radial.Point{X: 10, Y: 10}))
}

func TestScrollNudgesRingUnderPointer(t *testing.T) {
	s := New(radial.DefaultContainer)
	o := withRadius(37, "steps")
	o.Step = 5
	sl, err := s.Add(o)
	require.NoError(t, err)

	assert.Equal(t, []string{sl.ID()}, s.Scroll(radial.Point{X: 287, Y: 250}, 1))
	assert.Equal(t, 5.0, sl.Value())
	assert.Equal(t, []string{sl.ID()}, s.Scroll(radial.Point{X: 287, Y: 250}, -1))
	assert.Equal(t, 0.0, sl.Value())
	assert.Empty(t, s.Scroll(radial.Point{X: 287, Y: 250}, -1), "already at min")
	assert.Empty(t, s.Scroll(radial.Point{X: 5, Y: 5}, 1))
}

func TestRemoveTearsDown(t *testing.T) {
	s := New(radial.DefaultContainer)
	sl, err := s.Add(withRadius(37, "gone"))
	require.NoError(t, err)

	require.True(t, s.Remove(sl.ID()))
	assert.True(t, sl.Closed())
	assert.Empty(t, s.Sliders())
	assert.False(t, s.Remove(sl.ID()))
	assert.False(t, s.SetValue(sl.ID(), 10))
	assert.NotContains(t, string(s.SVG()), sl.ID())
}

func TestSVGStructure(t *testing.T) {
	s := New(radial.DefaultContainer)
	o := withRadius(37, "Transport")
	o.Color = "#ff0000"
	sl, err := s.Add(o)
	require.NoError(t, err)
	require.True(t, s.SetValue(sl.ID(), 50))

	doc := string(s.SVG())
	for _, want := range []string{
		`id="sliderSVG"`,
		`viewBox="0 0 500.00 500.00"`,
		`<g id="slider-1">`,
		`id="background-circle-slider-1"`,
		`id="foreground-circle-slider-1"`,
		`id="clickable-circle-slider-1"`,
		`id="slider-handle-slider-1"`,
		`stroke="#ff0000"`,
		`stroke-dasharray="232.48 232.48"`,
		`stroke-dashoffset="116.24"`,
		`<circle cx="250.00" cy="287.00" r="8.00"`,
	} {
		assert.Contains(t, doc, want)
	}
	assert.Equal(t, 1, strings.Count(doc, "<svg"))
}

func TestSVGIdempotent(t *testing.T) {
	s := New(radial.DefaultContainer)
	_, err := s.Add(withRadius(37, "a"))
	require.NoError(t, err)
	require.NotEmpty(t, s.Click(radial.Point{X: 213, Y: 250}))

	var first, second bytes.Buffer
	require.NoError(t, s.WriteSVG(&first))
	require.NoError(t, s.WriteSVG(&second))
	assert.Equal(t, first.String(), second.String())
}

func TestClickOnHandleDoesNotMoveRing(t *testing.T) {
	s := New(radial.DefaultContainer)
	sl, err := s.Add(withRadius(37, "a"))
	require.NoError(t, err)

	assert.Empty(t, s.Click(radial.Point{X: 252, Y: 214}))
	assert.Equal(t, 0.0, sl.Value())
	_, moved := sl.HandlePosition()
	assert.False(t, moved)
}
