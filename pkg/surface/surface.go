package surface

import (
	"log/slog"

	"github.com/limnkit/limn/pkg/overlay"
)

// DefaultFPS is the repaint rate of the paint loop.
const DefaultFPS = 60

// DefaultNamespace is the layer-shell namespace compositors see.
const DefaultNamespace = "limn-overlay"

// PaletteSetter is implemented by drivers whose colors can be swapped
// at runtime, for theme hot reload.
type PaletteSetter interface {
	SetPalette(overlay.Palette)
}

// Options configures a surface driver. The zero value is usable.
type Options struct {
	// FPS is the paint loop frame rate. Zero means DefaultFPS.
	FPS int

	// Namespace identifies the layer surface to the compositor.
	// Empty means DefaultNamespace.
	Namespace string

	// Palette supplies popup and badge colors. Zero value means the
	// built-in palette.
	Palette overlay.Palette

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Palette == (overlay.Palette{}) {
		o.Palette = overlay.DefaultPalette()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
