package overlay

import "time"

// pulseFloor is the minimum opacity a pulsing highlight fades down to.
const pulseFloor = 0.25

// Opacity returns the opacity multiplier for a highlight at the given
// time since submission. The result is in [0, 1] and is a pure function
// of elapsed time, so repaints need no animation state.
func (a Animation) Opacity(elapsed time.Duration) float64 {
	if a.Kind == AnimationNone || a.Period <= 0 {
		return 1
	}
	phase := float64(elapsed%a.Period) / float64(a.Period)
	switch a.Kind {
	case AnimationPulse:
		// Triangle wave: full opacity at phase 0, floor at phase 0.5.
		tri := 1 - 2*phase
		if tri < 0 {
			tri = -tri
		}
		return pulseFloor + (1-pulseFloor)*tri
	case AnimationBlink:
		if phase < 0.5 {
			return 1
		}
		return 0
	default:
		return 1
	}
}
