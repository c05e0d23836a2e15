package surface

import "github.com/limnkit/limn/pkg/overlay"

// Popup box geometry. Popups render as a fixed-size box column centered
// on the output, newest at the top.
const (
	popupWidth  = 360.0
	popupHeight = 90.0
	popupGap    = 10.0
)

// Badge geometry.
const (
	badgePadding  = 4.0
	badgeFontSize = 12.0
)

// borderRect returns the rectangle to stroke so that a border of the
// given thickness lies entirely inside the target.
func borderRect(target overlay.Rect, thickness float64) overlay.Rect {
	return target.Inset(thickness / 2)
}

// badgeRect places a badge of the given size at a corner of the target,
// flush with the target's edges.
func badgeRect(target overlay.Rect, corner overlay.Corner, w, h float64) overlay.Rect {
	r := overlay.Rect{W: w, H: h}
	switch corner {
	case overlay.CornerTopRight:
		r.X = target.X + target.W - w
		r.Y = target.Y
	case overlay.CornerBottomLeft:
		r.X = target.X
		r.Y = target.Y + target.H - h
	case overlay.CornerBottomRight:
		r.X = target.X + target.W - w
		r.Y = target.Y + target.H - h
	default:
		r.X = target.X
		r.Y = target.Y
	}
	return r
}

// popupSlot returns the box for popup i of n, where slot 0 is the top
// of the column. The column is centered on a screen of the given size.
func popupSlot(screenW, screenH float64, i, n int) overlay.Rect {
	if n < 1 {
		n = 1
	}
	total := float64(n)*popupHeight + float64(n-1)*popupGap
	top := (screenH - total) / 2
	return overlay.Rect{
		X: (screenW - popupWidth) / 2,
		Y: top + float64(i)*(popupHeight+popupGap),
		W: popupWidth,
		H: popupHeight,
	}
}
