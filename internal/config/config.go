// Package config defines the radial slider app configuration and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"github.com/edward-ap/radialslider/internal/radial"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "radialslider"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "RadialSlider"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWidth is the preferred window width when no persisted value exists.
	DefaultWidth = 820
	// DefaultHeight is the preferred window height.
	DefaultHeight = 540
	// MinWindowWidth leaves room for the canvas next to the legend.
	MinWindowWidth = 480
	// MinWindowHeight keeps the canvas at a usable size.
	MinWindowHeight = 300
	// DefaultCurrency prefixes every legend value.
	DefaultCurrency = "$"
)

// SliderConfig is one slider definition. Unset fields take the widget
// defaults, so a file only needs to name what differs.
type SliderConfig struct {
	Name   *string  `json:"name,omitempty" toml:"name,omitempty"`
	Color  *string  `json:"color,omitempty" toml:"color,omitempty"`
	Min    *float64 `json:"min,omitempty" toml:"min,omitempty"`
	Max    *float64 `json:"max,omitempty" toml:"max,omitempty"`
	Step   *float64 `json:"step,omitempty" toml:"step,omitempty"`
	Radius *float64 `json:"radius,omitempty" toml:"radius,omitempty"`
}

// Config aggregates everything persisted between sessions. Slider values are
// not part of it.
type Config struct {
	Container      string         `json:"container" toml:"container"`
	Currency       string         `json:"currency" toml:"currency"`
	Sliders        []SliderConfig `json:"sliders" toml:"sliders"`
	WindowW        int            `json:"windowW" toml:"windowW"`
	WindowH        int            `json:"windowH" toml:"windowH"`
	WindowX        int            `json:"windowX,omitempty" toml:"windowX,omitempty"`
	WindowY        int            `json:"windowY,omitempty" toml:"windowY,omitempty"`
	WindowPosValid bool           `json:"windowPosValid,omitempty" toml:"windowPosValid,omitempty"`

	path string
}

// Options merges the definition with the widget defaults. The container
// always comes from the enclosing config.
func (s SliderConfig) Options(container string) radial.Options {
	o := radial.DefaultOptions()
	o.Container = container
	if s.Name != nil {
		o.Name = *s.Name
	}
	if s.Color != nil {
		o.Color = *s.Color
	}
	if s.Min != nil {
		o.Min = *s.Min
	}
	if s.Max != nil {
		o.Max = *s.Max
	}
	if s.Step != nil {
		o.Step = *s.Step
	}
	if s.Radius != nil {
		o.Radius = *s.Radius
	}
	return o
}

// FromOptions records every field of o except the container.
func FromOptions(o radial.Options) SliderConfig {
	return SliderConfig{
		Name:   &o.Name,
		Color:  &o.Color,
		Min:    &o.Min,
		Max:    &o.Max,
		Step:   &o.Step,
		Radius: &o.Radius,
	}
}

// SliderOptions returns the merged options of every configured slider.
func (c *Config) SliderOptions() []radial.Options {
	out := make([]radial.Options, 0, len(c.Sliders))
	for _, s := range c.Sliders {
		out = append(out, s.Options(c.Container))
	}
	return out
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from the user config dir, writing the defaults there
// on first run.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = newDefaultConfig()
			cfg.path = path
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads an explicit config file. Files ending in .toml are decoded
// as TOML, anything else as JSON. Save writes back to the same file.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{path: path}
	if isTOML(path) {
		err = toml.Unmarshal(b, cfg)
	} else {
		err = json.Unmarshal(b, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string { return c.path }

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var (
		b   []byte
		err error
	)
	if isTOML(path) {
		b, err = toml.Marshal(c)
	} else {
		b, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Default returns the config a first run starts with.
func Default() *Config { return newDefaultConfig() }

// newDefaultConfig builds an in-memory config with three nested demo sliders.
func newDefaultConfig() *Config {
	cfg := &Config{
		Container: radial.DefaultContainer,
		Currency:  DefaultCurrency,
		WindowW:   DefaultWidth,
		WindowH:   DefaultHeight,
		Sliders: []SliderConfig{
			demoSlider("Transportation", colornames.Darkslateblue, 37, 0, 100, 1),
			demoSlider("Food", colornames.Teal, 67, 0, 500, 5),
			demoSlider("Insurance", colornames.Goldenrod, 97, 100, 1000, 10),
		},
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

func demoSlider(name string, c color.RGBA, radius, min, max, step float64) SliderConfig {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return SliderConfig{Name: &name, Color: &hex, Radius: &radius, Min: &min, Max: &max, Step: &step}
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed, ensuring the UI always receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if strings.TrimSpace(c.Container) == "" {
		c.Container = radial.DefaultContainer
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH == 0 {
		c.WindowH = DefaultHeight
	}
	if c.WindowH < MinWindowHeight {
		c.WindowH = MinWindowHeight
	}
	if !c.WindowPosValid && (c.WindowX != 0 || c.WindowY != 0) {
		c.WindowPosValid = true
	}
	if c.Sliders == nil {
		c.Sliders = []SliderConfig{}
	}
	for i := range c.Sliders {
		if col := c.Sliders[i].Color; col != nil {
			// named colors are matched case-insensitively
			name := strings.ToLower(strings.TrimSpace(*col))
			if _, ok := colornames.Map[name]; ok {
				c.Sliders[i].Color = &name
			}
		}
	}
}
