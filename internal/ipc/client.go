package ipc

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

// Client talks to a running limnd over the session bus.
type Client struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// NewClient connects to the session bus and binds the limnd object.
func NewClient() (*Client, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Client{
		conn: conn,
		obj:  conn.Object(BusName, ObjectPath),
	}, nil
}

// Highlight submits a highlight request and returns its id.
func (c *Client) Highlight(call HighlightCall) (string, error) {
	var id string
	err := c.obj.Call(Interface+".Highlight", 0,
		call.X, call.Y, call.W, call.H,
		call.Style, call.Color,
		call.Thickness, call.Opacity,
		call.Text, call.Corner, call.Animation,
		call.PeriodMs, call.DurationMs, call.ReplaceID,
	).Store(&id)
	if err != nil {
		return "", fmt.Errorf("highlight call failed: %w", err)
	}
	return id, nil
}

// ShowPopup submits a popup request and returns its id.
func (c *Client) ShowPopup(call PopupCall) (string, error) {
	var id string
	err := c.obj.Call(Interface+".ShowPopup", 0,
		call.Text, call.Style, call.BG, call.FG, call.DurationMs,
	).Store(&id)
	if err != nil {
		return "", fmt.Errorf("popup call failed: %w", err)
	}
	return id, nil
}

// Remove drops a highlight or popup by id.
func (c *Client) Remove(id string) error {
	if err := c.obj.Call(Interface+".Remove", 0, id).Err; err != nil {
		return fmt.Errorf("remove call failed: %w", err)
	}
	return nil
}

// Clear drops all overlay content.
func (c *Client) Clear() error {
	if err := c.obj.Call(Interface+".Clear", 0).Err; err != nil {
		return fmt.Errorf("clear call failed: %w", err)
	}
	return nil
}

// Status fetches the daemon state and queue counts.
func (c *Client) Status() (StatusReply, error) {
	var reply StatusReply
	err := c.obj.Call(Interface+".Status", 0).Store(
		&reply.State, &reply.Highlights, &reply.Popups, &reply.UptimeMs,
	)
	if err != nil {
		return StatusReply{}, fmt.Errorf("status call failed: %w", err)
	}
	return reply, nil
}

// Uptime returns the reported uptime as a duration.
func (r StatusReply) Uptime() time.Duration {
	return time.Duration(r.UptimeMs) * time.Millisecond
}
