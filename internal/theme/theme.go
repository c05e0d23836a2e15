package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/limnkit/limn/pkg/overlay"
)

// Theme is a named color palette resolved from an embedded or user
// theme file.
type Theme struct {
	Name      string
	Path      string // empty for embedded themes
	IsDefault bool
	Palette   overlay.Palette
}

// paletteFile is the YAML shape of a theme file. Colors are hex
// strings so hand-written themes stay readable.
type paletteFile struct {
	Highlight string `yaml:"highlight"`
	BadgeText string `yaml:"badge_text"`
	Popups    struct {
		Info    colorPairFile `yaml:"info"`
		Success colorPairFile `yaml:"success"`
		Warning colorPairFile `yaml:"warning"`
		Error   colorPairFile `yaml:"error"`
	} `yaml:"popups"`
}

type colorPairFile struct {
	BG string `yaml:"bg"`
	FG string `yaml:"fg"`
}

// UserThemeDir returns the directory searched for user themes.
func UserThemeDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "limn", "themes"), nil
}

// Load resolves a theme by name: user themes take precedence over
// bundled ones, and an unknown name falls back to the default with an
// error so the caller can warn and keep going.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	if dir, err := UserThemeDir(); err == nil {
		path := filepath.Join(dir, name+".yaml")
		if data, err := os.ReadFile(path); err == nil {
			t, err := parse(name, data)
			if err != nil {
				return fallback(), fmt.Errorf("user theme %q: %w", name, err)
			}
			t.Path = path
			return t, nil
		}
	}

	if data, ok := GetEmbeddedTheme(name); ok {
		t, err := parse(name, data)
		if err != nil {
			return fallback(), fmt.Errorf("bundled theme %q: %w", name, err)
		}
		t.IsDefault = name == DefaultThemeName
		return t, nil
	}

	return fallback(), fmt.Errorf("theme %q not found", name)
}

func fallback() *Theme {
	return &Theme{
		Name:      DefaultThemeName,
		IsDefault: true,
		Palette:   overlay.DefaultPalette(),
	}
}

func parse(name string, data []byte) (*Theme, error) {
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	// Missing entries keep the built-in colors.
	p := overlay.DefaultPalette()
	var err error
	if p.Highlight, err = colorOr(pf.Highlight, p.Highlight); err != nil {
		return nil, fmt.Errorf("highlight: %w", err)
	}
	if p.BadgeText, err = colorOr(pf.BadgeText, p.BadgeText); err != nil {
		return nil, fmt.Errorf("badge_text: %w", err)
	}
	if p.Info, err = pairOr(pf.Popups.Info, p.Info); err != nil {
		return nil, fmt.Errorf("popups.info: %w", err)
	}
	if p.Success, err = pairOr(pf.Popups.Success, p.Success); err != nil {
		return nil, fmt.Errorf("popups.success: %w", err)
	}
	if p.Warning, err = pairOr(pf.Popups.Warning, p.Warning); err != nil {
		return nil, fmt.Errorf("popups.warning: %w", err)
	}
	if p.Error, err = pairOr(pf.Popups.Error, p.Error); err != nil {
		return nil, fmt.Errorf("popups.error: %w", err)
	}

	return &Theme{Name: name, Palette: p}, nil
}

func colorOr(s string, def overlay.Color) (overlay.Color, error) {
	if s == "" {
		return def, nil
	}
	return overlay.ParseColor(s)
}

func pairOr(pf colorPairFile, def overlay.ColorPair) (overlay.ColorPair, error) {
	var err error
	if def.BG, err = colorOr(pf.BG, def.BG); err != nil {
		return def, err
	}
	if def.FG, err = colorOr(pf.FG, def.FG); err != nil {
		return def, err
	}
	return def, nil
}

// ListThemes returns bundled and user theme names, bundled first.
func ListThemes() []string {
	names := ListEmbeddedThemes()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}

	if dir, err := UserThemeDir(); err == nil {
		entries, err := os.ReadDir(dir)
		if err == nil {
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if ext := filepath.Ext(e.Name()); ext == ".yaml" {
					name := e.Name()[:len(e.Name())-len(ext)]
					if !seen[name] {
						names = append(names, name)
					}
				}
			}
		}
	}
	return names
}
