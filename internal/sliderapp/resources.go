package sliderapp

import (
	"fyne.io/fyne/v2"

	"github.com/edward-ap/radialslider/internal/radial"
	"github.com/edward-ap/radialslider/internal/surface"
)

// AppIcon is the default icon used for the app and window. It is drawn by
// the slider surface itself: one thick ring at three quarters.
var AppIcon fyne.Resource

func init() {
	if b := iconSVG(); len(b) > 0 {
		AppIcon = fyne.NewStaticResource("radialslider.svg", b)
	}
}

func iconSVG() []byte {
	st := surface.DefaultStyle()
	st.RingWidth = 90
	st.HandleSlop = 0
	s := surface.New(radial.DefaultContainer, surface.WithStyle(st))
	o := radial.DefaultOptions()
	o.Radius = 180
	sl, err := s.Add(o)
	if err != nil {
		fyne.LogError("build app icon", err)
		return nil
	}
	sl.SetValue(75)
	return s.SVG()
}
