// Package config loads and validates the limnd configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/limnkit/limn/pkg/overlay"
)

// Duration is a time.Duration that unmarshals from human-readable
// strings like "5s" or "1m30s", or from integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '5s', '1m30s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config is the limnd configuration, loaded from
// ~/.config/limn/limnd.toml.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Surface  SurfaceConfig  `toml:"surface"`
	Theme    ThemeConfig    `toml:"theme"`
	Chime    ChimeConfig    `toml:"chime"`
}

// DefaultsConfig sets the highlight applied when a request carries no
// explicit style or duration.
type DefaultsConfig struct {
	HighlightStyle     string   `toml:"highlight_style"`     // "border" or "fill"
	HighlightColor     string   `toml:"highlight_color"`     // hex, e.g. "#ff0000"
	HighlightThickness float64  `toml:"highlight_thickness"` // border width in pixels
	HighlightOpacity   float64  `toml:"highlight_opacity"`   // fill opacity, 0.0-1.0
	HighlightDuration  Duration `toml:"highlight_duration"`  // e.g. "5s"
}

// SurfaceConfig tunes the overlay surface.
type SurfaceConfig struct {
	FPS       int    `toml:"fps"`       // paint loop frame rate
	Namespace string `toml:"namespace"` // layer-shell namespace
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"` // theme name without .yaml extension
}

// ChimeConfig controls popup sounds.
type ChimeConfig struct {
	Enabled bool        `toml:"enabled"`
	Volume  int         `toml:"volume"` // 0-100
	Sounds  SoundConfig `toml:"sounds"`
}

// SoundConfig maps popup styles to sound file paths.
type SoundConfig struct {
	Info    string `toml:"info"`
	Success string `toml:"success"`
	Warning string `toml:"warning"`
	Error   string `toml:"error"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			HighlightStyle:     "border",
			HighlightColor:     "#ff0000",
			HighlightThickness: 2.0,
			HighlightOpacity:   0.3,
			HighlightDuration:  Duration(5 * time.Second),
		},
		Surface: SurfaceConfig{
			FPS:       60,
			Namespace: "limn-overlay",
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Chime: ChimeConfig{
			Enabled: false,
			Volume:  80,
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "limn", "limnd.toml"), nil
}

// Load reads the configuration from disk. A missing file yields the
// default configuration; file contents overlay the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to disk atomically.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := overlay.ParseStyleKind(c.Defaults.HighlightStyle); err != nil {
		return fmt.Errorf("defaults.highlight_style: %w", err)
	}
	if _, err := overlay.ParseColor(c.Defaults.HighlightColor); err != nil {
		return fmt.Errorf("defaults.highlight_color: %w", err)
	}
	if c.Defaults.HighlightThickness < 0 {
		return fmt.Errorf("defaults.highlight_thickness must not be negative, got %g", c.Defaults.HighlightThickness)
	}
	if c.Defaults.HighlightOpacity < 0 || c.Defaults.HighlightOpacity > 1 {
		return fmt.Errorf("defaults.highlight_opacity must be between 0 and 1, got %g", c.Defaults.HighlightOpacity)
	}
	if c.Defaults.HighlightDuration < 0 {
		return fmt.Errorf("defaults.highlight_duration must not be negative, got %v", c.Defaults.HighlightDuration.Duration())
	}
	if c.Surface.FPS < 1 || c.Surface.FPS > 240 {
		return fmt.Errorf("surface.fps must be between 1 and 240, got %d", c.Surface.FPS)
	}
	if c.Chime.Volume < 0 || c.Chime.Volume > 100 {
		return fmt.Errorf("chime.volume must be between 0 and 100, got %d", c.Chime.Volume)
	}
	return nil
}

// HighlightStyle resolves the configured default highlight style.
// Validate must have passed.
func (c *Config) HighlightStyle() overlay.HighlightStyle {
	kind, _ := overlay.ParseStyleKind(c.Defaults.HighlightStyle)
	color, _ := overlay.ParseColor(c.Defaults.HighlightColor)
	if kind == overlay.StyleFill {
		return overlay.FillStyle(color, c.Defaults.HighlightOpacity)
	}
	return overlay.BorderStyle(c.Defaults.HighlightThickness, color)
}

// SoundFor returns the configured sound path for a popup kind, with ~
// expanded. Empty means no sound.
func (c *Config) SoundFor(kind overlay.PopupKind) string {
	var path string
	switch kind {
	case overlay.PopupSuccess:
		path = c.Chime.Sounds.Success
	case overlay.PopupWarning:
		path = c.Chime.Sounds.Warning
	case overlay.PopupError:
		path = c.Chime.Sounds.Error
	default:
		path = c.Chime.Sounds.Info
	}
	return expandPath(path)
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
