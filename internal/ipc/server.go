package ipc

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/limnkit/limn/pkg/overlay"
)

// PopupHook is called after a popup is accepted, with its style kind.
// The daemon uses it to play chimes.
type PopupHook func(kind overlay.PopupKind)

// Server exports the overlay engine on the session bus.
type Server struct {
	engine *overlay.Engine
	logger *slog.Logger

	mu        sync.Mutex
	conn      *dbus.Conn
	popupHook PopupHook
	running   bool
}

// NewServer creates a control server for the given engine.
func NewServer(engine *overlay.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, logger: logger}
}

// SetPopupHook sets the hook called for each accepted popup.
func (s *Server) SetPopupHook(hook PopupHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popupHook = hook
}

// Start connects to the session bus, exports the control object and
// claims the bus name.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("server already running")
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	if err := conn.Export(s, ObjectPath, Interface); err != nil {
		return fmt.Errorf("failed to export object: %w", err)
	}

	node := &introspect.Node{
		Name: ObjectPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    Interface,
				Methods: controlMethods(),
			},
		},
	}
	if err := conn.Export(introspect.NewIntrospectable(node), ObjectPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("failed to export introspectable: %w", err)
	}

	reply, err := conn.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("bus name %s already taken, is another limnd running", BusName)
	}

	s.conn = conn
	s.running = true
	s.logger.Info("control server started", "bus_name", BusName, "path", ObjectPath)
	return nil
}

// Stop releases the bus name. The shared session connection stays open.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false

	if s.conn != nil {
		if _, err := s.conn.ReleaseName(BusName); err != nil {
			s.logger.Warn("failed to release bus name", "error", err)
		}
	}
	s.logger.Info("control server stopped")
	return nil
}

// Highlight queues a highlight rectangle.
// D-Bus method: Highlight(ddddssddssstxx) -> s
func (s *Server) Highlight(
	x, y, w, h float64,
	style, color string,
	thickness, opacity float64,
	text, corner, animation string,
	periodMs, durationMs int64,
	replaceID string,
) (string, *dbus.Error) {
	call := HighlightCall{
		X: x, Y: y, W: w, H: h,
		Style: style, Color: color,
		Thickness: thickness, Opacity: opacity,
		Text: text, Corner: corner,
		Animation: animation, PeriodMs: periodMs,
		DurationMs: durationMs, ReplaceID: replaceID,
	}
	rect, opts, err := call.Options()
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}

	ids, err := s.engine.Highlight([]overlay.Rect{rect}, opts)
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	if len(ids) == 0 {
		return "", dbus.MakeFailedError(fmt.Errorf("%w: empty highlight target", overlay.ErrInvalidArgument))
	}
	s.logger.Debug("highlight accepted", "id", ids[0], "rect", rect)
	return ids[0], nil
}

// ShowPopup queues a popup notification.
// D-Bus method: ShowPopup(ssssx) -> s
func (s *Server) ShowPopup(text, style, bg, fg string, durationMs int64) (string, *dbus.Error) {
	call := PopupCall{Text: text, Style: style, BG: bg, FG: fg, DurationMs: durationMs}
	msg, dur, pstyle, err := call.Options()
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}

	id, err := s.engine.ShowPopup(msg, dur, pstyle)
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}

	s.mu.Lock()
	hook := s.popupHook
	s.mu.Unlock()
	if hook != nil {
		hook(pstyle.Kind)
	}

	s.logger.Debug("popup accepted", "id", id, "style", pstyle.Kind)
	return id, nil
}

// Remove drops a highlight or popup by id.
// D-Bus method: Remove(s)
func (s *Server) Remove(id string) *dbus.Error {
	if err := s.engine.Remove(id); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// Clear drops all overlay content.
// D-Bus method: Clear()
func (s *Server) Clear() *dbus.Error {
	if err := s.engine.Clear(); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

// Status reports the engine state and queue counts.
// D-Bus method: Status() -> (suux)
func (s *Server) Status() (string, uint32, uint32, int64, *dbus.Error) {
	st := s.engine.Status()
	return st.State.String(), uint32(st.Highlights), uint32(st.Popups), st.Uptime.Milliseconds(), nil
}

func controlMethods() []introspect.Method {
	return []introspect.Method{
		{
			Name: "Highlight",
			Args: []introspect.Arg{
				{Name: "x", Type: "d", Direction: "in"},
				{Name: "y", Type: "d", Direction: "in"},
				{Name: "w", Type: "d", Direction: "in"},
				{Name: "h", Type: "d", Direction: "in"},
				{Name: "style", Type: "s", Direction: "in"},
				{Name: "color", Type: "s", Direction: "in"},
				{Name: "thickness", Type: "d", Direction: "in"},
				{Name: "opacity", Type: "d", Direction: "in"},
				{Name: "text", Type: "s", Direction: "in"},
				{Name: "corner", Type: "s", Direction: "in"},
				{Name: "animation", Type: "s", Direction: "in"},
				{Name: "period_ms", Type: "x", Direction: "in"},
				{Name: "duration_ms", Type: "x", Direction: "in"},
				{Name: "replace_id", Type: "s", Direction: "in"},
				{Name: "id", Type: "s", Direction: "out"},
			},
		},
		{
			Name: "ShowPopup",
			Args: []introspect.Arg{
				{Name: "text", Type: "s", Direction: "in"},
				{Name: "style", Type: "s", Direction: "in"},
				{Name: "bg", Type: "s", Direction: "in"},
				{Name: "fg", Type: "s", Direction: "in"},
				{Name: "duration_ms", Type: "x", Direction: "in"},
				{Name: "id", Type: "s", Direction: "out"},
			},
		},
		{
			Name: "Remove",
			Args: []introspect.Arg{
				{Name: "id", Type: "s", Direction: "in"},
			},
		},
		{Name: "Clear"},
		{
			Name: "Status",
			Args: []introspect.Arg{
				{Name: "state", Type: "s", Direction: "out"},
				{Name: "highlights", Type: "u", Direction: "out"},
				{Name: "popups", Type: "u", Direction: "out"},
				{Name: "uptime_ms", Type: "x", Direction: "out"},
			},
		},
	}
}
