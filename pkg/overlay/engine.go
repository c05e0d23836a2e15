package overlay

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// State is the engine lifecycle state.
type State int

const (
	// StateUninitialized is the state before the first Start.
	StateUninitialized State = iota
	// StateRunning means the surface exists and drawing calls succeed.
	StateRunning
	// StateStopping is the transient state while Stop tears down.
	StateStopping
	// StateStopped means the surface is gone. Start brings the engine
	// back to Running with a fresh surface.
	StateStopped
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options configures a new Engine. The zero value is usable.
type Options struct {
	// DefaultStyle is applied when a highlight call does not pick a
	// style. Zero value means a 2px red border.
	DefaultStyle HighlightStyle

	// DefaultDuration is applied when a highlight call passes a zero
	// duration. Zero means 5 seconds.
	DefaultDuration time.Duration

	Logger *slog.Logger
}

// DefaultHighlightDuration is the lifetime of a highlight submitted
// without an explicit duration.
const DefaultHighlightDuration = 5 * time.Second

// HighlightOptions carries the per-call knobs of Engine.Highlight. The
// zero value means: defaults from Options, generated id, no animation.
type HighlightOptions struct {
	// ID replaces an existing highlight with the same id. Honored only
	// when the call targets exactly one rectangle; otherwise each
	// rectangle gets a generated id.
	ID string

	// Style overrides the engine default when HasStyle is true.
	Style    HighlightStyle
	HasStyle bool

	// Duration of the highlight. Zero means the engine default,
	// negative means indefinite.
	Duration time.Duration

	Animation Animation
}

// Engine is the overlay engine façade. It owns the render queue and a
// surface driver, and serializes lifecycle transitions; drawing calls
// are safe from any goroutine.
type Engine struct {
	mu     sync.RWMutex
	state  State
	driver Driver
	queue  *Queue

	defaultStyle    HighlightStyle
	defaultDuration time.Duration

	startedAt time.Time
	log       *slog.Logger
}

// NewEngine creates an engine on the given surface driver. The engine
// starts Uninitialized; nothing touches the screen until Start.
func NewEngine(driver Driver, opts Options) *Engine {
	style := opts.DefaultStyle
	if style == (HighlightStyle{}) {
		style = BorderStyle(2, ColorRed)
	}
	dur := opts.DefaultDuration
	if dur <= 0 {
		dur = DefaultHighlightDuration
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		state:           StateUninitialized,
		driver:          driver,
		queue:           NewQueue(),
		defaultStyle:    style,
		defaultDuration: dur,
		log:             log,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Start creates the surface and begins the paint loop. Starting a
// Running engine is a no-op. A Stopped engine restarts with a fresh
// surface and an empty queue.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateRunning:
		return nil
	case StateStopping:
		return fmt.Errorf("%w: engine is stopping", ErrNotRunning)
	}

	e.queue.Clear()
	if err := e.driver.Create(); err != nil {
		return err
	}
	if err := e.driver.StartPaintLoop(e.queue); err != nil {
		derr := e.driver.Destroy()
		if derr != nil {
			e.log.Warn("surface teardown after failed start", "error", derr)
		}
		return err
	}

	e.state = StateRunning
	e.startedAt = time.Now()
	e.log.Info("overlay engine started")
	return nil
}

// Stop tears down the surface and drops all queued content. Stopping
// an engine that is not Running is a no-op. Stop blocks until the
// paint loop has exited and the surface is released.
func (e *Engine) Stop() error {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return nil
	}
	e.state = StateStopping
	e.mu.Unlock()

	err := e.driver.Destroy()

	e.mu.Lock()
	e.queue.Clear()
	e.state = StateStopped
	e.mu.Unlock()

	if err != nil {
		e.log.Warn("surface teardown", "error", err)
		return err
	}
	e.log.Info("overlay engine stopped")
	return nil
}

// Highlight queues one highlight per rectangle and returns their ids
// in the same order. Empty rectangles are skipped with a log line, so
// the returned slice can be shorter than rects.
func (e *Engine) Highlight(rects []Rect, opts HighlightOptions) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state != StateRunning {
		return nil, ErrNotRunning
	}

	style := e.defaultStyle
	if opts.HasStyle {
		style = opts.Style.normalized()
	}
	now := time.Now()
	expires := e.expiry(now, opts.Duration)

	ids := make([]string, 0, len(rects))
	for _, r := range rects {
		if r.Empty() {
			e.log.Debug("skipping empty highlight target", "rect", r)
			continue
		}
		id := opts.ID
		if id == "" || len(rects) != 1 {
			id = NewRequestID()
		}
		e.queue.UpsertHighlight(HighlightRequest{
			ID:          id,
			Target:      r,
			Style:       style,
			Animation:   opts.Animation,
			SubmittedAt: now,
			ExpiresAt:   expires,
		})
		ids = append(ids, id)
	}
	if len(ids) > 0 {
		e.driver.RequestRepaint()
	}
	return ids, nil
}

// ShowPopup queues a popup notification and returns its id. Text must
// be non-blank and duration positive.
func (e *Engine) ShowPopup(text string, duration time.Duration, style PopupStyle) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state != StateRunning {
		return "", ErrNotRunning
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: popup text is empty", ErrInvalidArgument)
	}
	if duration <= 0 {
		return "", fmt.Errorf("%w: popup duration %v is not positive", ErrInvalidArgument, duration)
	}

	now := time.Now()
	id := NewRequestID()
	e.queue.UpsertPopup(PopupRequest{
		ID:          id,
		Text:        text,
		Style:       style,
		SubmittedAt: now,
		ExpiresAt:   now.Add(duration),
	})
	e.driver.RequestRepaint()
	return id, nil
}

// Remove drops the highlight or popup with the given id. Unknown ids
// are a no-op.
func (e *Engine) Remove(id string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state != StateRunning {
		return ErrNotRunning
	}
	e.queue.Remove(id)
	e.driver.RequestRepaint()
	return nil
}

// Clear drops every queued highlight and popup, leaving the surface
// blank but the engine Running.
func (e *Engine) Clear() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state != StateRunning {
		return ErrNotRunning
	}
	e.queue.Clear()
	e.driver.RequestRepaint()
	return nil
}

// SetDefaults replaces the default style and duration, typically on
// config reload. A zero duration keeps the previous value.
func (e *Engine) SetDefaults(style HighlightStyle, duration time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if style != (HighlightStyle{}) {
		e.defaultStyle = style.normalized()
	}
	if duration > 0 {
		e.defaultDuration = duration
	}
}

// Status describes the engine for status reporting.
type Status struct {
	State      State
	Highlights int
	Popups     int
	Uptime     time.Duration
}

// Status returns the current state, live entry counts, and uptime.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	st := Status{State: e.state}
	if e.state == StateRunning {
		st.Highlights, st.Popups = e.queue.Counts(time.Now())
		st.Uptime = time.Since(e.startedAt)
	}
	return st
}

// expiry converts a requested duration into an absolute deadline.
// Zero means the engine default, negative means never.
func (e *Engine) expiry(now time.Time, d time.Duration) time.Time {
	switch {
	case d < 0:
		return time.Time{}
	case d == 0:
		return now.Add(e.defaultDuration)
	default:
		return now.Add(d)
	}
}
