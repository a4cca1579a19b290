package surface

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"github.com/edward-ap/radialslider/internal/radial"
)

// SVGID is the id of the root svg element.
const SVGID = "sliderSVG"

// WriteSVG renders the whole canvas. Output only depends on the current
// instance state, so rendering twice yields identical bytes.
func (s *Surface) WriteSVG(w io.Writer) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	width, height := s.Size()
	canvas.Start(width, height,
		attr("id", SVGID),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(width), num(height)))
	for _, sl := range s.sliders {
		s.drawSlider(canvas, sl)
	}
	canvas.End()
	_, err := w.Write(buf.Bytes())
	return err
}

// SVG is WriteSVG into a byte slice.
func (s *Surface) SVG() []byte {
	var buf bytes.Buffer
	_ = s.WriteSVG(&buf)
	return buf.Bytes()
}

func (s *Surface) drawSlider(canvas *svg.SVG, sl *radial.Slider) {
	c := sl.Circle()
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius
	st := s.style
	ring := num(st.RingWidth)

	canvas.Gid(sl.ID())
	canvas.Circle(cx, cy, r,
		attr("id", sl.ElementID(radial.BackgroundClass)),
		attr("class", radial.BackgroundClass),
		attr("fill", "none"),
		attr("stroke", st.TrackColor),
		attr("stroke-width", ring))
	// progress ring: two clockwise half arcs from 12 o'clock, so the dash
	// starts at the top whatever direction a renderer draws circles in; the
	// dash offset hides the unconsumed part
	canvas.Path(ringPath(cx, cy, r),
		attr("id", sl.ElementID(radial.ForegroundClass)),
		attr("class", radial.ForegroundClass),
		attr("fill", "none"),
		attr("stroke", sl.Options().Color),
		attr("stroke-width", ring),
		attr("stroke-dasharray", num(sl.DashArray())+" "+num(sl.DashArray())),
		attr("stroke-dashoffset", num(sl.DashOffset())))
	canvas.Circle(cx, cy, r,
		attr("id", sl.ElementID(radial.ClickableClass)),
		attr("class", radial.ClickableClass),
		attr("fill", "none"),
		attr("stroke", "none"),
		attr("stroke-width", ring),
		attr("pointer-events", "stroke"))
	h := sl.HandleCenter()
	canvas.Circle(h.X, h.Y, radial.HandleSize,
		attr("id", sl.ElementID(radial.HandleClass)),
		attr("class", radial.HandleClass),
		attr("fill", st.HandleFill),
		attr("stroke", st.HandleStroke),
		attr("stroke-width", num(st.HandleStrokeWidth)))
	canvas.Gend()
}

func ringPath(cx, cy, r float64) string {
	top := num(cx) + " " + num(cy-r)
	bottom := num(cx) + " " + num(cy+r)
	arc := "A" + num(r) + " " + num(r) + " 0 1 1 "
	return "M" + top + " " + arc + bottom + " " + arc + top
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
