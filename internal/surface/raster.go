package surface

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize draws an SVG document at its native size. The rasterizer strokes
// in device space, so scaling is left to whoever displays the image; that
// keeps stroke widths and dash lengths in canvas units.
func Rasterize(doc []byte) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse surface svg: %w", err)
	}
	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface svg has empty viewbox %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1)
	return img, nil
}

// Image renders the current canvas.
func (s *Surface) Image() (*image.RGBA, error) {
	return Rasterize(s.SVG())
}
