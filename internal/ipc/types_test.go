package ipc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limnkit/limn/pkg/overlay"
)

func TestHighlightCallDefaults(t *testing.T) {
	call := HighlightCall{X: 10, Y: 20, W: 100, H: 50}

	rect, opts, err := call.Options()
	require.NoError(t, err)

	assert.Equal(t, overlay.Rect{X: 10, Y: 20, W: 100, H: 50}, rect)
	assert.False(t, opts.HasStyle, "empty style means the daemon default")
	assert.Zero(t, opts.Duration)
	assert.Equal(t, overlay.AnimationNone, opts.Animation.Kind)
}

func TestHighlightCallStyles(t *testing.T) {
	tests := []struct {
		name string
		call HighlightCall
		want overlay.HighlightStyle
	}{
		{
			name: "border",
			call: HighlightCall{W: 1, H: 1, Style: "border", Color: "#00ff00", Thickness: 3},
			want: overlay.BorderStyle(3, overlay.ColorGreen),
		},
		{
			name: "fill",
			call: HighlightCall{W: 1, H: 1, Style: "fill", Color: "#0000ff", Opacity: 0.4},
			want: overlay.FillStyle(overlay.ColorBlue, 0.4),
		},
		{
			name: "badge",
			call: HighlightCall{W: 1, H: 1, Style: "badge", Color: "#ff0000", Text: "3", Corner: "top-right"},
			want: overlay.BadgeStyle("3", overlay.CornerTopRight, overlay.ColorRed),
		},
		{
			name: "border without color falls back to red",
			call: HighlightCall{W: 1, H: 1, Style: "border", Thickness: 2},
			want: overlay.BorderStyle(2, overlay.ColorRed),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opts, err := tt.call.Options()
			require.NoError(t, err)
			assert.True(t, opts.HasStyle)
			assert.Equal(t, tt.want, opts.Style)
		})
	}
}

func TestHighlightCallAnimation(t *testing.T) {
	call := HighlightCall{W: 1, H: 1, Animation: "pulse", PeriodMs: 750}
	_, opts, err := call.Options()
	require.NoError(t, err)
	assert.Equal(t, overlay.AnimationPulse, opts.Animation.Kind)
	assert.Equal(t, 750*time.Millisecond, opts.Animation.Period)

	// A missing period gets a sane default.
	call = HighlightCall{W: 1, H: 1, Animation: "blink"}
	_, opts, err = call.Options()
	require.NoError(t, err)
	assert.Equal(t, time.Second, opts.Animation.Period)
}

func TestHighlightCallRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		call HighlightCall
	}{
		{name: "bad style", call: HighlightCall{Style: "glow"}},
		{name: "bad color", call: HighlightCall{Style: "border", Color: "red"}},
		{name: "bad corner", call: HighlightCall{Style: "badge", Corner: "center"}},
		{name: "bad animation", call: HighlightCall{Animation: "spin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.call.Options()
			assert.ErrorIs(t, err, overlay.ErrInvalidArgument)
		})
	}
}

func TestPopupCallOptions(t *testing.T) {
	call := PopupCall{Text: "done", Style: "success", DurationMs: 3000}

	text, dur, style, err := call.Options()
	require.NoError(t, err)
	assert.Equal(t, "done", text)
	assert.Equal(t, 3*time.Second, dur)
	assert.Equal(t, overlay.PopupSuccess, style.Kind)
}

func TestPopupCallCustomColors(t *testing.T) {
	call := PopupCall{Text: "hi", Style: "custom", BG: "#112233", FG: "#ffffff", DurationMs: 1000}

	_, _, style, err := call.Options()
	require.NoError(t, err)
	assert.Equal(t, overlay.PopupCustom, style.Kind)
	assert.Equal(t, overlay.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}, style.BG)
	assert.Equal(t, overlay.ColorWhite, style.FG)

	// Custom without parseable colors is rejected.
	call.BG = ""
	_, _, _, err = call.Options()
	assert.Error(t, err)
}

func TestPopupCallEmptyStyleIsInfo(t *testing.T) {
	_, _, style, err := PopupCall{Text: "x", DurationMs: 1}.Options()
	require.NoError(t, err)
	assert.Equal(t, overlay.PopupInfo, style.Kind)
}

func TestStatusReplyUptime(t *testing.T) {
	r := StatusReply{UptimeMs: 90000}
	assert.Equal(t, 90*time.Second, r.Uptime())
}
