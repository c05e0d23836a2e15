package overlay

import "time"

// SnapshotSource supplies the paint loop with the current frame
// contents. *Queue satisfies it.
type SnapshotSource interface {
	SnapshotAndExpire(now time.Time) Snapshot
}

// Driver is the platform surface capability the engine runs on: a
// transparent, topmost, click-through window plus a repaint loop.
// Implementations live in pkg/surface; tests use fakes.
type Driver interface {
	// Create allocates the surface. It must be callable from any
	// goroutine and idempotent while the surface exists. Failures are
	// reported as *SurfaceError.
	Create() error

	// StartPaintLoop begins repainting from src at the driver's frame
	// rate until Destroy. It must not block.
	StartPaintLoop(src SnapshotSource) error

	// RequestRepaint hints that the queue changed. Coalescing is the
	// driver's business; the call never blocks.
	RequestRepaint()

	// Destroy stops the paint loop, waits for in-flight frames, and
	// releases the surface. Destroying an absent surface is a no-op.
	Destroy() error
}
