package ui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"

	"github.com/edward-ap/radialslider/internal/radial"
	"github.com/edward-ap/radialslider/internal/surface"
)

// SurfaceView shows a radial slider surface and feeds mouse and touch input
// back into it. The square canvas is letterboxed into whatever size the view
// gets.
type SurfaceView struct {
	widget.BaseWidget

	surface *surface.Surface
	raster  *canvas.Raster
	device  radial.Device

	mu    sync.Mutex
	frame *image.RGBA
}

var (
	_ fyne.Tappable     = (*SurfaceView)(nil)
	_ fyne.Draggable    = (*SurfaceView)(nil)
	_ fyne.Scrollable   = (*SurfaceView)(nil)
	_ desktop.Mouseable = (*SurfaceView)(nil)
	_ desktop.Hoverable = (*SurfaceView)(nil)
	_ mobile.Touchable  = (*SurfaceView)(nil)
)

// NewSurfaceView creates a view over s and keeps it redrawn on every change.
func NewSurfaceView(s *surface.Surface) *SurfaceView {
	v := &SurfaceView{surface: s}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	s.OnChange(func([]string) { v.Redraw() })
	v.Redraw()
	return v
}

// Surface returns the surface the view displays.
func (v *SurfaceView) Surface() *surface.Surface { return v.surface }

// Redraw rasterizes the current surface state and repaints.
func (v *SurfaceView) Redraw() {
	img, err := v.surface.Image()
	if err != nil {
		fyne.LogError("render slider surface", err)
		return
	}
	v.mu.Lock()
	v.frame = img
	v.mu.Unlock()
	v.raster.Refresh()
}

// Frame returns the last rasterized surface at canvas resolution.
func (v *SurfaceView) Frame() *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frame
}

// draw scales the last frame into a w x h pixel image. The frame is replaced,
// never mutated, so it can be read outside the lock.
func (v *SurfaceView) draw(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	src := v.Frame()
	if src == nil {
		return dst
	}
	off, side := radial.Viewport{Size: radial.Point{X: float64(w), Y: float64(h)}}.Box()
	if side < 1 {
		return dst
	}
	box := image.Rect(int(off.X), int(off.Y), int(off.X+side), int(off.Y+side))
	draw.CatmullRom.Scale(dst, box, src, src.Bounds(), draw.Over, nil)
	return dst
}

func (v *SurfaceView) viewport() radial.Viewport {
	sz := v.Size()
	return radial.Viewport{Size: radial.Point{X: float64(sz.Width), Y: float64(sz.Height)}}
}

func (v *SurfaceView) dispatch(kind radial.EventKind, pos fyne.Position) []string {
	return v.surface.Handle(radial.PointerEvent{
		Device:   v.device,
		Kind:     kind,
		Local:    radial.Point{X: float64(pos.X), Y: float64(pos.Y)},
		HasLocal: true,
	}, v.viewport())
}

// MouseDown starts a drag when the button goes down on a handle.
func (v *SurfaceView) MouseDown(e *desktop.MouseEvent) {
	v.device = radial.Mouse
	v.dispatch(radial.Press, e.Position)
}

// MouseUp ends any drag.
func (v *SurfaceView) MouseUp(e *desktop.MouseEvent) {
	v.device = radial.Mouse
	v.dispatch(radial.Release, e.Position)
}

func (v *SurfaceView) MouseIn(*desktop.MouseEvent) {}

// MouseMoved forwards hover motion. Idle sliders only record it.
func (v *SurfaceView) MouseMoved(e *desktop.MouseEvent) {
	v.device = radial.Mouse
	v.dispatch(radial.Move, e.Position)
}

func (v *SurfaceView) MouseOut() {}

// TouchDown starts a drag when a finger lands on a handle.
func (v *SurfaceView) TouchDown(e *mobile.TouchEvent) {
	v.device = radial.Touch
	v.dispatch(radial.Press, e.Position)
}

// TouchUp ends any drag.
func (v *SurfaceView) TouchUp(e *mobile.TouchEvent) {
	v.device = radial.Touch
	v.dispatch(radial.Release, e.Position)
}

// TouchCancel ends any drag.
func (v *SurfaceView) TouchCancel(e *mobile.TouchEvent) {
	v.device = radial.Touch
	v.dispatch(radial.Release, e.Position)
}

// Dragged moves the handle being dragged, whichever device started it.
func (v *SurfaceView) Dragged(e *fyne.DragEvent) {
	v.dispatch(radial.Move, e.Position)
}

// DragEnd ends any drag.
func (v *SurfaceView) DragEnd() {
	v.surface.Release()
}

// Tapped snaps the ring under the pointer to the tapped point.
func (v *SurfaceView) Tapped(e *fyne.PointEvent) {
	v.dispatch(radial.Click, e.Position)
}

// Scrolled nudges the ring under the pointer by one step.
func (v *SurfaceView) Scrolled(e *fyne.ScrollEvent) {
	if e == nil {
		return
	}
	v.surface.Handle(radial.PointerEvent{
		Device:   radial.Mouse,
		Kind:     radial.Scroll,
		Local:    radial.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)},
		HasLocal: true,
		ScrollDY: float64(e.Scrolled.DY),
	}, v.viewport())
}

// MinSize keeps the whole canvas legible.
func (v *SurfaceView) MinSize() fyne.Size {
	return fyne.NewSize(radial.SurfaceWidth/2, radial.SurfaceHeight/2)
}

func (v *SurfaceView) CreateRenderer() fyne.WidgetRenderer {
	return &surfaceViewRenderer{v: v}
}

type surfaceViewRenderer struct {
	v *SurfaceView
}

func (r *surfaceViewRenderer) Layout(sz fyne.Size) {
	r.v.raster.Move(fyne.NewPos(0, 0))
	r.v.raster.Resize(sz)
}

func (r *surfaceViewRenderer) MinSize() fyne.Size { return r.v.MinSize() }

func (r *surfaceViewRenderer) Refresh() { r.v.raster.Refresh() }

func (r *surfaceViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.v.raster}
}

func (r *surfaceViewRenderer) Destroy() {}
