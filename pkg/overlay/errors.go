package overlay

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Match with errors.Is.
var (
	// ErrNotRunning is returned by drawing operations while the engine
	// is not in the Running state.
	ErrNotRunning = errors.New("overlay engine is not running")

	// ErrInvalidArgument wraps rejections of malformed caller input,
	// such as an empty popup text or a non-positive popup duration.
	ErrInvalidArgument = errors.New("invalid argument")
)

// SurfaceError reports a failure to create or operate the platform
// overlay surface, carrying the platform cause.
type SurfaceError struct {
	Message string
	Cause   error
}

func (e *SurfaceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("surface: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("surface: %s", e.Message)
}

func (e *SurfaceError) Unwrap() error {
	return e.Cause
}

// NewSurfaceError creates a SurfaceError with the given message and
// optional cause.
func NewSurfaceError(message string, cause error) *SurfaceError {
	return &SurfaceError{Message: message, Cause: cause}
}
