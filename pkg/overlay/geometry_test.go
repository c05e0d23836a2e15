package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{name: "normal", rect: Rect{X: 10, Y: 10, W: 100, H: 50}, want: false},
		{name: "zero width", rect: Rect{W: 0, H: 50}, want: true},
		{name: "zero height", rect: Rect{W: 100, H: 0}, want: true},
		{name: "negative width", rect: Rect{W: -5, H: 50}, want: true},
		{name: "zero value", rect: Rect{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rect.Empty())
		})
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 60}

	got := r.Inset(5)
	assert.Equal(t, Rect{X: 15, Y: 25, W: 90, H: 50}, got)

	// Insets larger than the rect clamp to zero size instead of going
	// negative.
	got = r.Inset(100)
	assert.Equal(t, 0.0, got.W)
	assert.Equal(t, 0.0, got.H)
}

func TestColorScaleAlpha(t *testing.T) {
	c := Color{R: 255, A: 200}

	assert.Equal(t, uint8(100), c.ScaleAlpha(0.5).A)
	assert.Equal(t, uint8(200), c.ScaleAlpha(1).A)
	assert.Equal(t, uint8(0), c.ScaleAlpha(0).A)

	// Out-of-range factors clamp.
	assert.Equal(t, uint8(200), c.ScaleAlpha(2).A)
	assert.Equal(t, uint8(0), c.ScaleAlpha(-1).A)

	// Other channels untouched.
	assert.Equal(t, uint8(255), c.ScaleAlpha(0.5).R)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ff0000", want: ColorRed},
		{in: "ff0000", want: ColorRed},
		{in: "#f00", want: ColorRed},
		{in: "#00ff0080", want: Color{G: 255, A: 128}},
		{in: "#ffa500", want: Color{R: 255, G: 165, A: 255}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{R: 18, G: 52, B: 86, A: 120}
	got, err := ParseColor(c.Hex())
	assert.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestColorWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(128)
	assert.Equal(t, Color{R: 255, A: 128}, c)
	assert.Equal(t, uint8(255), ColorRed.A, "original unchanged")
}
