// Package overlay implements the transient screen overlay engine: value
// types for geometry and styling, the thread-safe render queue with timed
// expiry, stateless animation functions, the platform surface-driver
// capability interface, and the engine facade that callers use to
// highlight screen rectangles and show popup notifications.
package overlay
