//go:build linux

package surface

import (
	"log/slog"
	"sync"
	"time"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/limnkit/limn/pkg/overlay"
)

// gtkDriver renders the overlay on a gtk4-layer-shell surface: a
// borderless window on the overlay layer, anchored to all four edges,
// transparent and non-targetable so input passes through to whatever
// is underneath.
type gtkDriver struct {
	opts Options
	log  *slog.Logger

	mu      sync.Mutex
	palette overlay.Palette
	created bool
	win     *gtk.Window
	area    *gtk.DrawingArea
	src     overlay.SnapshotSource

	dirty chan struct{}
	stop  chan struct{}
	done  chan struct{}
}

// New creates the GTK surface driver. Nothing touches GTK until Create,
// which must run while a GTK main loop is alive.
func New(opts Options) overlay.Driver {
	o := opts.withDefaults()
	return &gtkDriver{
		opts:    o,
		log:     o.Logger,
		palette: o.Palette,
		dirty:   make(chan struct{}, 1),
	}
}

// SetPalette swaps the popup and badge colors, typically on theme
// reload. Takes effect on the next frame.
func (d *gtkDriver) SetPalette(p overlay.Palette) {
	d.mu.Lock()
	d.palette = p
	d.mu.Unlock()
	d.RequestRepaint()
}

// Create builds the layer surface on the GTK main loop and blocks until
// it exists. Safe to call from any goroutine; a second call while the
// surface exists is a no-op.
func (d *gtkDriver) Create() error {
	d.mu.Lock()
	if d.created {
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()

	errc := make(chan error, 1)
	glib.IdleAdd(func() {
		errc <- d.createOnMain()
	})
	return <-errc
}

func (d *gtkDriver) createOnMain() error {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return overlay.NewSurfaceError("no display available", nil)
	}

	win := gtk.NewWindow()
	win.SetDecorated(false)
	win.SetResizable(false)

	layershell.InitForWindow(win)
	layershell.SetLayer(win, layershell.LayerShellLayerOverlay)
	layershell.SetAnchor(win, layershell.LayerShellEdgeTop, true)
	layershell.SetAnchor(win, layershell.LayerShellEdgeBottom, true)
	layershell.SetAnchor(win, layershell.LayerShellEdgeLeft, true)
	layershell.SetAnchor(win, layershell.LayerShellEdgeRight, true)
	layershell.SetExclusiveZone(win, -1)
	layershell.SetKeyboardMode(win, layershell.LayerShellKeyboardModeNone)
	layershell.SetNamespace(win, d.opts.Namespace)

	// Pointer and keyboard events pass through to whatever is below.
	win.SetCanTarget(false)
	win.SetCanFocus(false)

	provider := gtk.NewCSSProvider()
	provider.LoadFromString("window { background: transparent; }")
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)

	area := gtk.NewDrawingArea()
	area.SetDrawFunc(func(_ *gtk.DrawingArea, cr *cairo.Context, w, h int) {
		d.draw(cr, float64(w), float64(h))
	})
	win.SetChild(area)
	win.Present()

	d.mu.Lock()
	d.win = win
	d.area = area
	d.created = true
	d.mu.Unlock()

	d.log.Debug("overlay surface created", "namespace", d.opts.Namespace, "fps", d.opts.FPS)
	return nil
}

// StartPaintLoop runs the repaint goroutine: a fixed-rate ticker plus
// the coalesced dirty channel, each firing a QueueDraw on the GTK loop.
func (d *gtkDriver) StartPaintLoop(src overlay.SnapshotSource) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.created {
		return overlay.NewSurfaceError("paint loop started before surface creation", nil)
	}
	if d.stop != nil {
		return nil
	}
	d.src = src
	d.stop = make(chan struct{})
	d.done = make(chan struct{})

	go d.paintLoop(d.stop, d.done)
	return nil
}

func (d *gtkDriver) paintLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(time.Second / time.Duration(d.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		case <-d.dirty:
		}
		glib.IdleAdd(func() {
			d.mu.Lock()
			area := d.area
			d.mu.Unlock()
			if area != nil {
				area.QueueDraw()
			}
		})
	}
}

// RequestRepaint nudges the paint loop without blocking. Back-to-back
// hints coalesce into one.
func (d *gtkDriver) RequestRepaint() {
	select {
	case d.dirty <- struct{}{}:
	default:
	}
}

// Destroy stops the paint loop, waits for it, then tears down the
// window on the GTK main loop.
func (d *gtkDriver) Destroy() error {
	d.mu.Lock()
	if !d.created {
		d.mu.Unlock()
		return nil
	}
	stop, done := d.stop, d.done
	d.stop, d.done = nil, nil
	d.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}

	donec := make(chan struct{})
	glib.IdleAdd(func() {
		d.mu.Lock()
		win := d.win
		d.win = nil
		d.area = nil
		d.src = nil
		d.created = false
		d.mu.Unlock()
		if win != nil {
			win.Destroy()
		}
		close(donec)
	})
	<-donec

	d.log.Debug("overlay surface destroyed")
	return nil
}

// draw renders one frame. Runs on the GTK main loop inside the drawing
// area's draw callback.
func (d *gtkDriver) draw(cr *cairo.Context, w, h float64) {
	d.mu.Lock()
	src := d.src
	palette := d.palette
	d.mu.Unlock()

	// Clear the whole surface to fully transparent.
	cr.Save()
	cr.SetOperator(cairo.OPERATOR_SOURCE)
	cr.SetSourceRGBA(0, 0, 0, 0)
	cr.Paint()
	cr.Restore()

	if src == nil {
		return
	}
	now := time.Now()
	snap := src.SnapshotAndExpire(now)

	for _, hl := range snap.Highlights {
		d.drawEntry(hl.ID, func() {
			d.drawHighlight(cr, hl, palette, now)
		})
	}

	// Newest popup takes the top slot.
	n := len(snap.Popups)
	for i := n - 1; i >= 0; i-- {
		p := snap.Popups[i]
		slot := popupSlot(w, h, n-1-i, n)
		d.drawEntry(p.ID, func() {
			d.drawPopup(cr, p, palette, slot)
		})
	}
}

// drawEntry isolates one entry's drawing so a bad entry costs one frame
// of itself, not the frame.
func (d *gtkDriver) drawEntry(id string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Warn("skipping entry this frame", "id", id, "panic", r)
		}
	}()
	fn()
}

func (d *gtkDriver) drawHighlight(cr *cairo.Context, hl overlay.HighlightRequest, palette overlay.Palette, now time.Time) {
	opacity := hl.Animation.Opacity(now.Sub(hl.SubmittedAt))
	if opacity <= 0 {
		return
	}

	switch hl.Style.Kind {
	case overlay.StyleFill:
		c := hl.Style.Color.ScaleAlpha(hl.Style.Opacity * opacity)
		setSource(cr, c)
		cr.Rectangle(hl.Target.X, hl.Target.Y, hl.Target.W, hl.Target.H)
		cr.Fill()

	case overlay.StyleBadge:
		d.drawBadge(cr, hl, palette, opacity)

	default:
		thickness := hl.Style.Thickness
		if thickness <= 0 {
			return
		}
		r := borderRect(hl.Target, thickness)
		if r.Empty() {
			return
		}
		setSource(cr, hl.Style.Color.ScaleAlpha(opacity))
		cr.SetLineWidth(thickness)
		cr.Rectangle(r.X, r.Y, r.W, r.H)
		cr.Stroke()
	}
}

func (d *gtkDriver) drawBadge(cr *cairo.Context, hl overlay.HighlightRequest, palette overlay.Palette, opacity float64) {
	cr.Save()
	defer cr.Restore()

	cr.SelectFontFace("Sans", cairo.FONT_SLANT_NORMAL, cairo.FONT_WEIGHT_BOLD)
	cr.SetFontSize(badgeFontSize)
	ext := cr.TextExtents(hl.Style.Text)

	bw := ext.Width + 2*badgePadding
	bh := ext.Height + 2*badgePadding
	r := badgeRect(hl.Target, hl.Style.Corner, bw, bh)

	setSource(cr, hl.Style.Color.ScaleAlpha(opacity))
	cr.Rectangle(r.X, r.Y, r.W, r.H)
	cr.Fill()

	setSource(cr, palette.BadgeText.ScaleAlpha(opacity))
	cr.MoveTo(r.X+badgePadding-ext.XBearing, r.Y+badgePadding-ext.YBearing)
	cr.ShowText(hl.Style.Text)
}

func (d *gtkDriver) drawPopup(cr *cairo.Context, p overlay.PopupRequest, palette overlay.Palette, slot overlay.Rect) {
	bg, fg := p.Style.Resolve(palette)

	setSource(cr, bg)
	cr.Rectangle(slot.X, slot.Y, slot.W, slot.H)
	cr.Fill()

	cr.Save()
	defer cr.Restore()
	cr.SelectFontFace("Sans", cairo.FONT_SLANT_NORMAL, cairo.FONT_WEIGHT_NORMAL)
	cr.SetFontSize(14)
	ext := cr.TextExtents(p.Text)

	tx := slot.X + (slot.W-ext.Width)/2 - ext.XBearing
	ty := slot.Y + (slot.H-ext.Height)/2 - ext.YBearing
	setSource(cr, fg)
	cr.MoveTo(tx, ty)
	cr.ShowText(p.Text)
}

func setSource(cr *cairo.Context, c overlay.Color) {
	cr.SetSourceRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}
