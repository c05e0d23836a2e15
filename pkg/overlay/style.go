package overlay

import (
	"fmt"
	"time"
)

// StyleKind selects how a highlight is drawn.
type StyleKind int

const (
	// StyleBorder strokes the rectangle edges.
	StyleBorder StyleKind = iota
	// StyleFill alpha-blends a solid fill over the rectangle.
	StyleFill
	// StyleBadge draws a small labelled box at one corner of the rectangle.
	StyleBadge
)

// String returns the lowercase name of the style kind.
func (k StyleKind) String() string {
	switch k {
	case StyleBorder:
		return "border"
	case StyleFill:
		return "fill"
	case StyleBadge:
		return "badge"
	default:
		return "unknown"
	}
}

// ParseStyleKind parses a style kind name as used by the CLI and the
// D-Bus interface.
func ParseStyleKind(s string) (StyleKind, error) {
	switch s {
	case "border":
		return StyleBorder, nil
	case "fill":
		return StyleFill, nil
	case "badge":
		return StyleBadge, nil
	default:
		return 0, fmt.Errorf("%w: unknown highlight style %q", ErrInvalidArgument, s)
	}
}

// Corner identifies a corner of a target rectangle for badge placement.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// String returns the kebab-case name of the corner.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomLeft:
		return "bottom-left"
	case CornerBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// ParseCorner parses a corner name.
func ParseCorner(s string) (Corner, error) {
	switch s {
	case "top-left":
		return CornerTopLeft, nil
	case "top-right":
		return CornerTopRight, nil
	case "bottom-left":
		return CornerBottomLeft, nil
	case "bottom-right":
		return CornerBottomRight, nil
	default:
		return 0, fmt.Errorf("%w: unknown corner %q", ErrInvalidArgument, s)
	}
}

// HighlightStyle describes how a highlight is rendered. Only the fields
// relevant to Kind are consulted; the rest are ignored.
type HighlightStyle struct {
	Kind StyleKind

	// Border
	Thickness float64

	// Color is the border stroke, fill color, or badge background
	// depending on Kind.
	Color Color

	// Fill
	Opacity float64

	// Badge
	Text   string
	Corner Corner
}

// BorderStyle returns a border highlight style.
func BorderStyle(thickness float64, color Color) HighlightStyle {
	return HighlightStyle{Kind: StyleBorder, Thickness: thickness, Color: color}.normalized()
}

// FillStyle returns a translucent fill highlight style.
func FillStyle(color Color, opacity float64) HighlightStyle {
	return HighlightStyle{Kind: StyleFill, Color: color, Opacity: opacity}.normalized()
}

// BadgeStyle returns a corner badge highlight style.
func BadgeStyle(text string, corner Corner, color Color) HighlightStyle {
	return HighlightStyle{Kind: StyleBadge, Text: text, Corner: corner, Color: color}
}

// normalized clamps malformed numeric fields into their valid ranges.
// Bad values are repaired, never rejected.
func (s HighlightStyle) normalized() HighlightStyle {
	if s.Thickness < 0 {
		s.Thickness = 0
	}
	if s.Opacity < 0 {
		s.Opacity = 0
	}
	if s.Opacity > 1 {
		s.Opacity = 1
	}
	return s
}

// PopupKind selects a popup's color role. Concrete colors come from the
// active palette, except for PopupCustom which carries its own.
type PopupKind int

const (
	PopupInfo PopupKind = iota
	PopupSuccess
	PopupWarning
	PopupError
	PopupCustom
)

// String returns the lowercase name of the popup kind.
func (k PopupKind) String() string {
	switch k {
	case PopupInfo:
		return "info"
	case PopupSuccess:
		return "success"
	case PopupWarning:
		return "warning"
	case PopupError:
		return "error"
	case PopupCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParsePopupKind parses a popup kind name.
func ParsePopupKind(s string) (PopupKind, error) {
	switch s {
	case "", "info":
		return PopupInfo, nil
	case "success":
		return PopupSuccess, nil
	case "warning":
		return PopupWarning, nil
	case "error":
		return PopupError, nil
	case "custom":
		return PopupCustom, nil
	default:
		return 0, fmt.Errorf("%w: unknown popup style %q", ErrInvalidArgument, s)
	}
}

// PopupStyle describes how a popup is rendered.
type PopupStyle struct {
	Kind PopupKind

	// BG and FG are consulted only when Kind is PopupCustom.
	BG Color
	FG Color
}

// CustomPopupStyle returns a popup style with explicit colors.
func CustomPopupStyle(bg, fg Color) PopupStyle {
	return PopupStyle{Kind: PopupCustom, BG: bg, FG: fg}
}

// Resolve returns the background and foreground colors for the style
// under the given palette.
func (s PopupStyle) Resolve(p Palette) (bg, fg Color) {
	if s.Kind == PopupCustom {
		return s.BG, s.FG
	}
	pair := p.Popup(s.Kind)
	return pair.BG, pair.FG
}

// AnimationKind selects a highlight animation.
type AnimationKind int

const (
	AnimationNone AnimationKind = iota
	AnimationPulse
	AnimationBlink
)

// String returns the lowercase name of the animation kind.
func (k AnimationKind) String() string {
	switch k {
	case AnimationNone:
		return "none"
	case AnimationPulse:
		return "pulse"
	case AnimationBlink:
		return "blink"
	default:
		return "unknown"
	}
}

// ParseAnimationKind parses an animation kind name.
func ParseAnimationKind(s string) (AnimationKind, error) {
	switch s {
	case "", "none":
		return AnimationNone, nil
	case "pulse":
		return AnimationPulse, nil
	case "blink":
		return AnimationBlink, nil
	default:
		return 0, fmt.Errorf("%w: unknown animation %q", ErrInvalidArgument, s)
	}
}

// Animation describes a periodic opacity effect applied to a highlight.
type Animation struct {
	Kind   AnimationKind
	Period time.Duration
}

// Pulse returns a pulsing animation with the given period.
func Pulse(period time.Duration) Animation {
	return Animation{Kind: AnimationPulse, Period: period}
}

// Blink returns a blinking animation with the given period.
func Blink(period time.Duration) Animation {
	return Animation{Kind: AnimationBlink, Period: period}
}
