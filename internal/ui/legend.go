package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/radialslider/internal/radial"
	"github.com/edward-ap/radialslider/internal/surface"
)

const swatchSize = 14

// Legend lists every slider on a surface: current value, color swatch, name
// and a linear control for fine adjustment.
type Legend struct {
	widget.BaseWidget

	surface *surface.Surface
	box     *fyne.Container
	rows    map[string]*legendRow
}

type legendRow struct {
	obj    fyne.CanvasObject
	value  *widget.Label
	swatch *canvas.Rectangle
	name   *widget.Label
	adjust *MiniThumbSlider
}

// NewLegend creates a legend for s that follows its changes.
func NewLegend(s *surface.Surface) *Legend {
	l := &Legend{
		surface: s,
		box:     container.NewVBox(),
		rows:    make(map[string]*legendRow),
	}
	l.ExtendBaseWidget(l)
	s.OnChange(func([]string) { l.Sync() })
	l.Sync()
	return l
}

// Sync brings rows in line with the surface: adds rows for new sliders,
// drops rows of removed ones and updates the rest.
func (l *Legend) Sync() {
	entries := l.surface.Legend()
	objs := make([]fyne.CanvasObject, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		row, ok := l.rows[e.ID]
		if !ok {
			row = l.newRow(e.ID)
			l.rows[e.ID] = row
		}
		l.updateRow(row, e)
		seen[e.ID] = true
		objs = append(objs, row.obj)
	}
	for id := range l.rows {
		if !seen[id] {
			delete(l.rows, id)
		}
	}
	l.box.Objects = objs
	l.box.Refresh()
}

// Row returns the displayed value and name of the given slider.
func (l *Legend) Row(id string) (value, name string, ok bool) {
	row, ok := l.rows[id]
	if !ok {
		return "", "", false
	}
	return row.value.Text, row.name.Text, true
}

// Adjuster returns the fine-adjust control of the given slider.
func (l *Legend) Adjuster(id string) (*MiniThumbSlider, bool) {
	row, ok := l.rows[id]
	if !ok {
		return nil, false
	}
	return row.adjust, true
}

func (l *Legend) newRow(id string) *legendRow {
	row := &legendRow{
		value:  widget.NewLabel(""),
		swatch: canvas.NewRectangle(nil),
		name:   widget.NewLabel(""),
	}
	row.swatch.SetMinSize(fyne.NewSize(swatchSize, swatchSize))
	row.swatch.CornerRadius = 3

	row.adjust = NewMiniThumbSlider(0, 1)
	if sl, ok := l.surface.Slider(id); ok {
		opts := sl.Options()
		row.adjust.Min, row.adjust.Max, row.adjust.Step = opts.Min, opts.Max, opts.Step
		row.adjust.Snap = func(v float64) float64 {
			return radial.Snap(opts.Min, opts.Max, opts.Step, v)
		}
		row.adjust.Value = sl.Value()
	}
	row.adjust.OnChanged = func(v float64) {
		l.surface.SetValue(id, v)
	}

	label := container.NewHBox(row.value, container.NewCenter(row.swatch), row.name)
	row.obj = container.New(layout.NewGridLayout(2), label, row.adjust)
	return row
}

func (l *Legend) updateRow(row *legendRow, e surface.LegendRow) {
	row.value.SetText(e.Value)
	row.name.SetText(e.Name)
	c := ParseColor(e.Color)
	row.swatch.FillColor = c
	row.swatch.Refresh()
	row.adjust.FillColor = c
	if sl, ok := l.surface.Slider(e.ID); ok {
		row.adjust.Mirror(sl.Value())
	}
	row.adjust.Refresh()
}

func (l *Legend) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.box)
}
