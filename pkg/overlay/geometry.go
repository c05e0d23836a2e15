package overlay

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset returns the rectangle shrunk by d on every edge. The result is
// clamped so width and height never go negative.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Common colors used by default styles and the built-in palette.
var (
	ColorRed         = Color{R: 255, A: 255}
	ColorGreen       = Color{G: 255, A: 255}
	ColorBlue        = Color{B: 255, A: 255}
	ColorYellow      = Color{R: 255, G: 255, A: 255}
	ColorWhite       = Color{R: 255, G: 255, B: 255, A: 255}
	ColorBlack       = Color{A: 255}
	ColorTransparent = Color{}
)

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" hex notation.
// Alpha defaults to opaque when omitted.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	var c Color
	c.A = 255
	switch len(h) {
	case 3:
		v, err := strconv.ParseUint(h, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("%w: bad color %q", ErrInvalidArgument, s)
		}
		c.R = uint8((v >> 8 & 0xf) * 0x11)
		c.G = uint8((v >> 4 & 0xf) * 0x11)
		c.B = uint8((v & 0xf) * 0x11)
	case 6, 8:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: bad color %q", ErrInvalidArgument, s)
		}
		if len(h) == 8 {
			c.A = uint8(v & 0xff)
			v >>= 8
		}
		c.R = uint8(v >> 16)
		c.G = uint8(v >> 8)
		c.B = uint8(v)
	default:
		return Color{}, fmt.Errorf("%w: bad color %q", ErrInvalidArgument, s)
	}
	return c, nil
}

// Hex returns the "#RRGGBBAA" notation of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ScaleAlpha returns the color with its alpha multiplied by f, clamped
// to [0, 1]. Used for fill opacity and animation fading.
func (c Color) ScaleAlpha(f float64) Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.A = uint8(float64(c.A) * f)
	return c
}
