//go:build !linux

package surface

import (
	"runtime"

	"github.com/limnkit/limn/pkg/overlay"
)

// stubDriver is the non-Linux placeholder. Creation fails so callers
// get an explicit error rather than a silently invisible overlay.
type stubDriver struct{}

// New returns the surface driver for this platform.
func New(_ Options) overlay.Driver {
	return &stubDriver{}
}

func (*stubDriver) Create() error {
	return overlay.NewSurfaceError("overlay surface is not implemented on "+runtime.GOOS, nil)
}

func (*stubDriver) StartPaintLoop(overlay.SnapshotSource) error {
	return overlay.NewSurfaceError("overlay surface is not implemented on "+runtime.GOOS, nil)
}

func (*stubDriver) RequestRepaint() {}

func (*stubDriver) SetPalette(overlay.Palette) {}

func (*stubDriver) Destroy() error { return nil }
