package overlay

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver records driver calls so engine tests run without a display.
type fakeDriver struct {
	mu        sync.Mutex
	created   int
	destroyed int
	loops     int
	repaints  int
	src       SnapshotSource

	createErr error
	loopErr   error
}

func (d *fakeDriver) Create() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.createErr != nil {
		return d.createErr
	}
	d.created++
	return nil
}

func (d *fakeDriver) StartPaintLoop(src SnapshotSource) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loopErr != nil {
		return d.loopErr
	}
	d.loops++
	d.src = src
	return nil
}

func (d *fakeDriver) RequestRepaint() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.repaints++
}

func (d *fakeDriver) Destroy() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.destroyed++
	return nil
}

func (d *fakeDriver) counts() (created, destroyed, repaints int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created, d.destroyed, d.repaints
}

func newTestEngine(t *testing.T) (*Engine, *fakeDriver) {
	t.Helper()
	d := &fakeDriver{}
	return NewEngine(d, Options{}), d
}

func TestEngineLifecycle(t *testing.T) {
	e, d := newTestEngine(t)
	assert.Equal(t, StateUninitialized, e.State())

	require.NoError(t, e.Start())
	assert.Equal(t, StateRunning, e.State())

	// Start while running is a no-op.
	require.NoError(t, e.Start())
	created, _, _ := d.counts()
	assert.Equal(t, 1, created)

	require.NoError(t, e.Stop())
	assert.Equal(t, StateStopped, e.State())

	// Stop while stopped is a no-op.
	require.NoError(t, e.Stop())
	_, destroyed, _ := d.counts()
	assert.Equal(t, 1, destroyed)
}

func TestEngineRestart(t *testing.T) {
	e, d := newTestEngine(t)

	require.NoError(t, e.Start())
	_, err := e.ShowPopup("hello", time.Minute, PopupStyle{})
	require.NoError(t, err)
	require.NoError(t, e.Stop())

	// Restart yields a fresh surface with an empty queue.
	require.NoError(t, e.Start())
	assert.Equal(t, StateRunning, e.State())
	created, destroyed, _ := d.counts()
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, destroyed)

	snap := d.src.SnapshotAndExpire(time.Now())
	assert.Empty(t, snap.Popups)
}

func TestEngineStartFailure(t *testing.T) {
	cause := errors.New("no display")
	d := &fakeDriver{createErr: NewSurfaceError("create window", cause)}
	e := NewEngine(d, Options{})

	err := e.Start()
	require.Error(t, err)
	assert.Equal(t, StateUninitialized, e.State())

	var serr *SurfaceError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, cause)
}

func TestEnginePaintLoopFailureTearsDown(t *testing.T) {
	d := &fakeDriver{loopErr: errors.New("loop failed")}
	e := NewEngine(d, Options{})

	require.Error(t, e.Start())
	assert.NotEqual(t, StateRunning, e.State())
	_, destroyed, _ := d.counts()
	assert.Equal(t, 1, destroyed, "created surface is released on loop failure")
}

func TestEngineOperationsRequireRunning(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.Highlight([]Rect{{W: 10, H: 10}}, HighlightOptions{})
	assert.ErrorIs(t, err, ErrNotRunning)

	_, err = e.ShowPopup("hi", time.Second, PopupStyle{})
	assert.ErrorIs(t, err, ErrNotRunning)

	assert.ErrorIs(t, e.Clear(), ErrNotRunning)
	assert.ErrorIs(t, e.Remove("x"), ErrNotRunning)
}

func TestEngineHighlight(t *testing.T) {
	e, d := newTestEngine(t)
	require.NoError(t, e.Start())

	ids, err := e.Highlight([]Rect{{X: 1, Y: 2, W: 30, H: 40}}, HighlightOptions{})
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.NotEmpty(t, ids[0])

	snap := d.src.SnapshotAndExpire(time.Now())
	require.Len(t, snap.Highlights, 1)
	h := snap.Highlights[0]
	assert.Equal(t, StyleBorder, h.Style.Kind, "default style is a border")
	assert.Equal(t, 2.0, h.Style.Thickness)
	assert.Equal(t, ColorRed, h.Style.Color)
	assert.False(t, h.ExpiresAt.IsZero(), "default duration applies")

	_, _, repaints := d.counts()
	assert.Positive(t, repaints)
}

func TestEngineHighlightBatch(t *testing.T) {
	e, d := newTestEngine(t)
	require.NoError(t, e.Start())

	rects := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 20, Y: 0, W: 10, H: 10},
		{X: 40, Y: 0, W: 10, H: 10},
	}
	ids, err := e.Highlight(rects, HighlightOptions{ID: "ignored-for-batches"})
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.NotContains(t, ids, "ignored-for-batches")
	assert.NotEqual(t, ids[0], ids[1])

	snap := d.src.SnapshotAndExpire(time.Now())
	require.Len(t, snap.Highlights, 3)
	for i, h := range snap.Highlights {
		assert.Equal(t, rects[i], h.Target, "insertion order matches call order")
	}
}

func TestEngineHighlightSkipsEmptyRects(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.Start())

	ids, err := e.Highlight([]Rect{{W: 0, H: 10}, {W: 10, H: 10}}, HighlightOptions{})
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestEngineHighlightUpsert(t *testing.T) {
	e, d := newTestEngine(t)
	require.NoError(t, e.Start())

	_, err := e.Highlight([]Rect{{W: 10, H: 10}}, HighlightOptions{ID: "cursor"})
	require.NoError(t, err)
	ids, err := e.Highlight([]Rect{{X: 50, W: 10, H: 10}}, HighlightOptions{ID: "cursor"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cursor"}, ids)

	snap := d.src.SnapshotAndExpire(time.Now())
	require.Len(t, snap.Highlights, 1)
	assert.Equal(t, 50.0, snap.Highlights[0].Target.X)
}

func TestEngineHighlightDurations(t *testing.T) {
	e, d := newTestEngine(t)
	require.NoError(t, e.Start())

	_, err := e.Highlight([]Rect{{W: 1, H: 1}}, HighlightOptions{ID: "forever", Duration: -1})
	require.NoError(t, err)
	_, err = e.Highlight([]Rect{{X: 5, W: 1, H: 1}}, HighlightOptions{ID: "short", Duration: 50 * time.Millisecond})
	require.NoError(t, err)

	snap := d.src.SnapshotAndExpire(time.Now())
	require.Len(t, snap.Highlights, 2)
	assert.True(t, snap.Highlights[0].ExpiresAt.IsZero(), "negative duration never expires")

	snap = d.src.SnapshotAndExpire(time.Now().Add(time.Second))
	require.Len(t, snap.Highlights, 1)
	assert.Equal(t, "forever", snap.Highlights[0].ID)
}

func TestEngineShowPopupValidation(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.Start())

	_, err := e.ShowPopup("", time.Second, PopupStyle{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.ShowPopup("   ", time.Second, PopupStyle{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.ShowPopup("ok", 0, PopupStyle{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.ShowPopup("ok", -time.Second, PopupStyle{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	id, err := e.ShowPopup("ok", time.Second, PopupStyle{Kind: PopupSuccess})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestEngineClear(t *testing.T) {
	e, d := newTestEngine(t)
	require.NoError(t, e.Start())

	_, err := e.Highlight([]Rect{{W: 10, H: 10}}, HighlightOptions{})
	require.NoError(t, err)
	_, err = e.ShowPopup("bye", time.Minute, PopupStyle{})
	require.NoError(t, err)

	require.NoError(t, e.Clear())
	assert.Equal(t, StateRunning, e.State(), "clear leaves the engine running")

	snap := d.src.SnapshotAndExpire(time.Now())
	assert.Empty(t, snap.Highlights)
	assert.Empty(t, snap.Popups)
}

func TestEngineStatus(t *testing.T) {
	e, _ := newTestEngine(t)

	st := e.Status()
	assert.Equal(t, StateUninitialized, st.State)
	assert.Zero(t, st.Highlights)

	require.NoError(t, e.Start())
	_, err := e.Highlight([]Rect{{W: 10, H: 10}}, HighlightOptions{})
	require.NoError(t, err)
	_, err = e.ShowPopup("hi", time.Minute, PopupStyle{})
	require.NoError(t, err)

	st = e.Status()
	assert.Equal(t, StateRunning, st.State)
	assert.Equal(t, 1, st.Highlights)
	assert.Equal(t, 1, st.Popups)
	assert.GreaterOrEqual(t, st.Uptime, time.Duration(0))
}

func TestEngineSetDefaults(t *testing.T) {
	e, d := newTestEngine(t)
	require.NoError(t, e.Start())

	e.SetDefaults(FillStyle(ColorBlue, 0.3), 10*time.Second)

	_, err := e.Highlight([]Rect{{W: 10, H: 10}}, HighlightOptions{})
	require.NoError(t, err)

	snap := d.src.SnapshotAndExpire(time.Now())
	require.Len(t, snap.Highlights, 1)
	assert.Equal(t, StyleFill, snap.Highlights[0].Style.Kind)
	assert.Equal(t, ColorBlue, snap.Highlights[0].Style.Color)
}

func TestEngineStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "stopping", StateStopping.String())
	assert.Equal(t, "stopped", StateStopped.String())
}
