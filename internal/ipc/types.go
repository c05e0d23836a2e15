// Package ipc exposes the overlay engine on the session bus so
// automation tools can drive a long-lived daemon.
package ipc

import (
	"time"

	"github.com/limnkit/limn/pkg/overlay"
)

const (
	// BusName is the well-known bus name limnd claims.
	BusName = "com.github.limnkit.Limn"
	// ObjectPath is the exported object path.
	ObjectPath = "/com/github/limnkit/Limn"
	// Interface is the control interface name.
	Interface = "com.github.limnkit.Limn"
)

// HighlightCall is the wire form of a highlight request. Strings keep
// the D-Bus signature simple; conversion validates them.
type HighlightCall struct {
	X, Y, W, H float64

	Style     string // "", "border", "fill" or "badge"
	Color     string // hex, empty for the daemon default
	Thickness float64
	Opacity   float64
	Text      string // badge text
	Corner    string // badge corner

	Animation  string // "", "none", "pulse" or "blink"
	PeriodMs   int64
	DurationMs int64 // 0 = daemon default, negative = indefinite
	ReplaceID  string
}

// Options converts the call into engine arguments. An empty Style
// means the daemon's configured default.
func (c HighlightCall) Options() (overlay.Rect, overlay.HighlightOptions, error) {
	rect := overlay.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
	opts := overlay.HighlightOptions{
		ID:       c.ReplaceID,
		Duration: time.Duration(c.DurationMs) * time.Millisecond,
	}

	if c.Style != "" {
		kind, err := overlay.ParseStyleKind(c.Style)
		if err != nil {
			return rect, opts, err
		}
		color := overlay.ColorRed
		if c.Color != "" {
			if color, err = overlay.ParseColor(c.Color); err != nil {
				return rect, opts, err
			}
		}
		switch kind {
		case overlay.StyleFill:
			opts.Style = overlay.FillStyle(color, c.Opacity)
		case overlay.StyleBadge:
			corner := overlay.CornerTopLeft
			if c.Corner != "" {
				if corner, err = overlay.ParseCorner(c.Corner); err != nil {
					return rect, opts, err
				}
			}
			opts.Style = overlay.BadgeStyle(c.Text, corner, color)
		default:
			opts.Style = overlay.BorderStyle(c.Thickness, color)
		}
		opts.HasStyle = true
	}

	if c.Animation != "" {
		kind, err := overlay.ParseAnimationKind(c.Animation)
		if err != nil {
			return rect, opts, err
		}
		period := time.Duration(c.PeriodMs) * time.Millisecond
		if period <= 0 {
			period = time.Second
		}
		opts.Animation = overlay.Animation{Kind: kind, Period: period}
	}

	return rect, opts, nil
}

// PopupCall is the wire form of a popup request.
type PopupCall struct {
	Text       string
	Style      string // "", "info", "success", "warning", "error" or "custom"
	BG, FG     string // hex, consulted for "custom"
	DurationMs int64
}

// Options converts the call into engine arguments.
func (c PopupCall) Options() (string, time.Duration, overlay.PopupStyle, error) {
	dur := time.Duration(c.DurationMs) * time.Millisecond

	kind, err := overlay.ParsePopupKind(c.Style)
	if err != nil {
		return "", 0, overlay.PopupStyle{}, err
	}
	style := overlay.PopupStyle{Kind: kind}
	if kind == overlay.PopupCustom {
		if style.BG, err = overlay.ParseColor(c.BG); err != nil {
			return "", 0, overlay.PopupStyle{}, err
		}
		if style.FG, err = overlay.ParseColor(c.FG); err != nil {
			return "", 0, overlay.PopupStyle{}, err
		}
	}
	return c.Text, dur, style, nil
}

// StatusReply is the wire form of the Status method result.
type StatusReply struct {
	State      string
	Highlights uint32
	Popups     uint32
	UptimeMs   int64
}
