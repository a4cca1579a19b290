package sliderapp

import (
	"errors"
	"fmt"
	"os"

	"github.com/edward-ap/radialslider/internal/config"
	"github.com/edward-ap/radialslider/internal/radial"
	"github.com/edward-ap/radialslider/internal/surface"
	"github.com/edward-ap/radialslider/internal/ui"
)

// ringGap is the distance between the radii of neighbouring rings.
const ringGap = 30

// errNoRoom is returned when another ring would not fit on the canvas.
var errNoRoom = errors.New("no room for another ring")

// newSurface builds a surface and mounts every configured slider. Sliders
// that fail validation are skipped; their errors are joined and returned
// alongside the usable surface.
func newSurface(cfg *config.Config) (*surface.Surface, error) {
	s := surface.New(cfg.Container,
		surface.WithCurrency(cfg.Currency),
		surface.WithTrace(isTraceLogEnabled))
	var errs []error
	for i, opts := range cfg.SliderOptions() {
		if _, err := s.Add(opts); err != nil {
			errs = append(errs, fmt.Errorf("slider #%d: %w", i+1, err))
		}
	}
	return s, errors.Join(errs...)
}

// nextSliderOptions proposes a ring just outside the outermost one.
func nextSliderOptions(s *surface.Surface) (radial.Options, error) {
	o := radial.DefaultOptions()
	o.Container = s.Container()
	sliders := s.Sliders()
	for _, sl := range sliders {
		if r := sl.Options().Radius + ringGap; r > o.Radius {
			o.Radius = r
		}
	}
	w, h := s.Size()
	if o.Radius+s.Style().RingWidth/2 > min(w, h)/2 {
		return radial.Options{}, errNoRoom
	}
	o.Name = fmt.Sprintf("Slider %d", len(sliders)+1)
	o.Color = ui.PaletteColor(len(sliders))
	return o, nil
}

// sliderConfigs captures the current slider set for saving.
func sliderConfigs(s *surface.Surface) []config.SliderConfig {
	sliders := s.Sliders()
	out := make([]config.SliderConfig, 0, len(sliders))
	for _, sl := range sliders {
		out = append(out, config.FromOptions(sl.Options()))
	}
	return out
}

// ExportSVG renders the configured sliders at their initial values into an
// SVG file. It does not need a display.
func ExportSVG(cfg *config.Config, path string) error {
	s, err := newSurface(cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export svg: %w", err)
	}
	if err := s.WriteSVG(f); err != nil {
		f.Close()
		return fmt.Errorf("export svg: %w", err)
	}
	return f.Close()
}
