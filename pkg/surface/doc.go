// Package surface provides the platform overlay surface driver: a
// transparent, topmost, click-through layer window repainted at a fixed
// frame rate. The Linux implementation draws with GTK4, gtk4-layer-shell
// and cairo; other platforms compile a stub that fails at creation.
package surface
