// Package sliderapp wires the configuration, the slider surface and the fyne
// widgets together into the radial slider window.
package sliderapp

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/radialslider/internal/config"
	"github.com/edward-ap/radialslider/internal/platform/win/windowpos"
	"github.com/edward-ap/radialslider/internal/surface"
	"github.com/edward-ap/radialslider/internal/ui"
)

// App owns the fyne application, the main window and the slider surface.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config

	surface *surface.Surface
	view    *ui.SurfaceView
	legend  *ui.Legend

	// sliders were added or removed from the toolbar and must be saved
	slidersEdited bool
}

// NewApp loads the config from configPath, or from the user config dir when
// it is empty, and builds the window.
func NewApp(configPath string) *App {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Println("config load error:", err)
		cfg = config.Default()
	}

	fa := app.NewWithID(config.AppID)
	fa.Settings().SetTheme(theme.DarkTheme())
	if AppIcon != nil {
		fa.SetIcon(AppIcon)
	}
	w := fa.NewWindow("Radial Slider")
	w.SetMaster()
	if AppIcon != nil {
		w.SetIcon(AppIcon)
	}
	w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	s, setupErr := newSurface(cfg)
	if setupErr != nil {
		log.Println("slider setup error:", setupErr)
	}

	a := &App{
		fa:      fa,
		w:       w,
		config:  cfg,
		surface: s,
	}
	a.buildUI()
	a.restoreWindowPlacement()
	w.SetCloseIntercept(a.close)

	if setupErr != nil {
		ui.CallOnMain(func() { dialog.ShowError(setupErr, w) })
	}
	return a
}

// LoadConfig reads path, or the config in the user config dir when path is
// empty.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// Run enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

// buildUI puts the canvas on the left and the legend with its toolbar on the
// right.
func (a *App) buildUI() {
	a.view = ui.NewSurfaceView(a.surface)
	a.legend = ui.NewLegend(a.surface)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), a.addSlider),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), a.removeLastSlider),
	)
	side := container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(a.legend))
	split := container.NewHSplit(a.view, side)
	split.SetOffset(0.55)
	a.w.SetContent(split)
}

func (a *App) addSlider() {
	opts, err := nextSliderOptions(a.surface)
	if err != nil {
		dialog.ShowInformation("Add slider", err.Error(), a.w)
		return
	}
	if _, err := a.surface.Add(opts); err != nil {
		dialog.ShowError(err, a.w)
		return
	}
	a.slidersEdited = true
}

func (a *App) removeLastSlider() {
	sliders := a.surface.Sliders()
	if len(sliders) == 0 {
		return
	}
	a.surface.Remove(sliders[len(sliders)-1].ID())
	a.slidersEdited = true
}

// close persists window placement and any slider edits, then closes.
func (a *App) close() {
	a.captureWindowPlacement()
	sz := a.w.Canvas().Size()
	if sz.Width > 0 && sz.Height > 0 {
		a.config.WindowW = int(sz.Width)
		a.config.WindowH = int(sz.Height)
	}
	if a.slidersEdited {
		a.config.Sliders = sliderConfigs(a.surface)
	}
	if err := a.config.Save(); err != nil {
		log.Println("config save error:", err)
	}
	a.w.Close()
}

// restoreWindowPlacement moves the window to its saved position when the
// platform supports it. The native window may not exist yet, so a few
// retries are made in the background.
func (a *App) restoreWindowPlacement() {
	pos, ok := windowpos.Saved(a.config.WindowX, a.config.WindowY, a.config.WindowPosValid)
	if !ok {
		return
	}
	if windowpos.Move(a.w, pos) {
		return
	}
	go func() {
		const attempts = 10
		for i := 0; i < attempts; i++ {
			time.Sleep(150 * time.Millisecond)
			if windowpos.Move(a.w, pos) {
				return
			}
		}
	}()
}

func (a *App) captureWindowPlacement() {
	if pos, ok := windowpos.Current(a.w); ok {
		a.config.WindowX = pos.X
		a.config.WindowY = pos.Y
		a.config.WindowPosValid = true
	}
}
