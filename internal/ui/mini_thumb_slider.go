package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MiniThumbSlider is a compact horizontal slider with a small thumb. The
// legend uses one per row for fine adjustment of a radial slider.
type MiniThumbSlider struct {
	widget.BaseWidget
	Min       float64
	Max       float64
	Step      float64
	Value     float64
	FillColor color.Color
	// Snap, when set, replaces the built-in rounding to min + n*step so the
	// slider can share the grid of the control it adjusts.
	Snap      func(float64) float64
	OnChanged func(float64)
}

// NewMiniThumbSlider creates a horizontal slider constrained to [min, max].
func NewMiniThumbSlider(min, max float64) *MiniThumbSlider {
	s := &MiniThumbSlider{Min: min, Max: max, Step: 1, Value: min}
	s.ExtendBaseWidget(s)
	return s
}

func (s *MiniThumbSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &miniSliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	r.applyColors()
	return r
}

// SetValue rounds v onto the step grid and fires OnChanged when the rounded
// value differs from the current one.
func (s *MiniThumbSlider) SetValue(v float64) {
	if s.Max <= s.Min {
		return
	}
	v = s.round(v)
	if v == s.Value {
		return
	}
	s.Value = v
	s.Refresh()
	if s.OnChanged != nil {
		s.OnChanged(v)
	}
}

// Mirror moves the thumb to v without firing OnChanged, for values that
// changed elsewhere.
func (s *MiniThumbSlider) Mirror(v float64) {
	v = clampFloat64(v, s.Min, s.Max)
	if v == s.Value {
		return
	}
	s.Value = v
	s.Refresh()
}

func (s *MiniThumbSlider) round(v float64) float64 {
	if s.Snap != nil {
		return clampFloat64(s.Snap(v), s.Min, s.Max)
	}
	return normalizeSliderValue(s.Min, s.Max, s.Step, v)
}

func normalizeSliderValue(min, max, step, value float64) float64 {
	if max <= min {
		return min
	}
	v := clampFloat64(value, min, max)
	if step > 0 {
		// ties go up, like the radial snap
		n := math.Floor((v-min)/step + 0.5)
		v = clampFloat64(min+n*step, min, max)
	}
	return v
}

// Dragged follows the pointer along the track.
func (s *MiniThumbSlider) Dragged(e *fyne.DragEvent) {
	s.SetValue(s.valueAt(e.Position.X))
}

func (s *MiniThumbSlider) DragEnd() {}

// Tapped jumps to the tapped point of the track.
func (s *MiniThumbSlider) Tapped(e *fyne.PointEvent) {
	s.SetValue(s.valueAt(e.Position.X))
}

// Scrolled moves one step per wheel notch.
func (s *MiniThumbSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil || ev.Scrolled.DY == 0 {
		return
	}
	step := s.Step
	if step <= 0 {
		step = 1
	}
	if ev.Scrolled.DY < 0 {
		step = -step
	}
	s.SetValue(s.Value + step)
}

// valueAt maps an x offset on the track to an unrounded value.
func (s *MiniThumbSlider) valueAt(px float32) float64 {
	w := s.Size().Width
	if w <= 0 {
		return s.Value
	}
	frac := clampFloat64(float64(px/w), 0, 1)
	return s.Min + frac*(s.Max-s.Min)
}

// MinSize provides a reasonable touch target height.
func (s *MiniThumbSlider) MinSize() fyne.Size {
	return fyne.NewSize(100, theme.IconInlineSize())
}

type miniSliderRenderer struct {
	s     *MiniThumbSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

const miniTrackHeight = 4

func (r *miniSliderRenderer) Layout(sz fyne.Size) {
	top := (sz.Height - miniTrackHeight) / 2
	filled := sz.Width * float32(r.s.fraction())

	r.track.Move(fyne.NewPos(0, top))
	r.track.Resize(fyne.NewSize(sz.Width, miniTrackHeight))
	r.fill.Move(fyne.NewPos(0, top))
	r.fill.Resize(fyne.NewSize(filled, miniTrackHeight))

	// the thumb sits on the end of the fill but never leaves the track
	radius := theme.IconInlineSize() / 4
	cx := float32(clampFloat64(float64(filled), float64(radius), float64(sz.Width-radius)))
	r.thumb.Resize(fyne.NewSize(2*radius, 2*radius))
	r.thumb.Move(fyne.NewPos(cx-radius, sz.Height/2-radius))
}

func (s *MiniThumbSlider) fraction() float64 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return clampFloat64((s.Value-s.Min)/span, 0, 1)
}

func (r *miniSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *miniSliderRenderer) applyColors() {
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = theme.PrimaryColor()
	if r.s.FillColor != nil {
		r.fill.FillColor = r.s.FillColor
	}
	r.thumb.FillColor = theme.ForegroundColor()
}

func (r *miniSliderRenderer) Refresh() {
	r.applyColors()
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *miniSliderRenderer) Destroy() {}

func (r *miniSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
