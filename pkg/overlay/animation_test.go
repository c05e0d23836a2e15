package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnimationNoneIsOpaque(t *testing.T) {
	a := Animation{}
	for _, d := range []time.Duration{0, time.Second, time.Hour} {
		assert.Equal(t, 1.0, a.Opacity(d))
	}
}

func TestPulseOpacity(t *testing.T) {
	a := Pulse(time.Second)

	assert.Equal(t, 1.0, a.Opacity(0), "full opacity at period start")
	assert.InDelta(t, pulseFloor, a.Opacity(500*time.Millisecond), 0.001, "floor at half period")
	assert.InDelta(t, 1.0, a.Opacity(time.Second), 0.001, "back to full after one period")

	// Quarter period sits halfway between full and floor.
	mid := pulseFloor + (1-pulseFloor)*0.5
	assert.InDelta(t, mid, a.Opacity(250*time.Millisecond), 0.001)

	// Pure function of elapsed mod period.
	assert.InDelta(t, a.Opacity(300*time.Millisecond), a.Opacity(4300*time.Millisecond), 0.001)
}

func TestBlinkOpacity(t *testing.T) {
	a := Blink(time.Second)

	assert.Equal(t, 1.0, a.Opacity(0))
	assert.Equal(t, 1.0, a.Opacity(499*time.Millisecond))
	assert.Equal(t, 0.0, a.Opacity(500*time.Millisecond))
	assert.Equal(t, 0.0, a.Opacity(999*time.Millisecond))
	assert.Equal(t, 1.0, a.Opacity(time.Second))
}

func TestAnimationDegenerate(t *testing.T) {
	// Non-positive periods disable the effect instead of dividing by
	// zero.
	assert.Equal(t, 1.0, Pulse(0).Opacity(time.Second))
	assert.Equal(t, 1.0, Blink(-time.Second).Opacity(time.Second))

	for _, e := range []time.Duration{0, 123 * time.Millisecond, 700 * time.Millisecond, 3 * time.Second} {
		op := Pulse(time.Second).Opacity(e)
		assert.GreaterOrEqual(t, op, pulseFloor)
		assert.LessOrEqual(t, op, 1.0)
	}
}
