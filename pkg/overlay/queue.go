package overlay

import (
	"sort"
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of the render queue, with expired
// entries already removed. Slices are insertion-ordered, oldest first.
type Snapshot struct {
	Highlights []HighlightRequest
	Popups     []PopupRequest
}

type highlightEntry struct {
	req HighlightRequest
	seq uint64
}

type popupEntry struct {
	req PopupRequest
	seq uint64
}

// Queue is the thread-safe render queue shared between submitters and
// the paint loop. Upserts are O(1); snapshots copy out so the lock is
// never held while drawing.
type Queue struct {
	mu         sync.Mutex
	seq        uint64
	highlights map[string]highlightEntry
	popups     map[string]popupEntry
}

// NewQueue creates an empty render queue.
func NewQueue() *Queue {
	return &Queue{
		highlights: make(map[string]highlightEntry),
		popups:     make(map[string]popupEntry),
	}
}

// UpsertHighlight inserts the highlight or replaces an existing one
// with the same id. Replacement keeps the original queue position.
func (q *Queue) UpsertHighlight(req HighlightRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()
	seq := q.seq
	if prev, ok := q.highlights[req.ID]; ok {
		seq = prev.seq
	} else {
		q.seq++
	}
	q.highlights[req.ID] = highlightEntry{req: req, seq: seq}
}

// UpsertPopup inserts the popup or replaces an existing one with the
// same id, keeping the original queue position on replacement.
func (q *Queue) UpsertPopup(req PopupRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()
	seq := q.seq
	if prev, ok := q.popups[req.ID]; ok {
		seq = prev.seq
	} else {
		q.seq++
	}
	q.popups[req.ID] = popupEntry{req: req, seq: seq}
}

// Remove drops the entry with the given id, highlight or popup. Absent
// ids are a no-op.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.highlights, id)
	delete(q.popups, id)
}

// Clear drops every queued entry.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.highlights = make(map[string]highlightEntry)
	q.popups = make(map[string]popupEntry)
}

// Counts returns the number of live highlights and popups at now,
// without mutating the queue.
func (q *Queue) Counts(now time.Time) (highlights, popups int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, e := range q.highlights {
		if !e.req.Expired(now) {
			highlights++
		}
	}
	for _, e := range q.popups {
		if !e.req.Expired(now) {
			popups++
		}
	}
	return highlights, popups
}

// SnapshotAndExpire atomically removes entries expired at now and
// returns copies of the survivors in insertion order.
func (q *Queue) SnapshotAndExpire(now time.Time) Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	hs := make([]highlightEntry, 0, len(q.highlights))
	for id, e := range q.highlights {
		if e.req.Expired(now) {
			delete(q.highlights, id)
			continue
		}
		hs = append(hs, e)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i].seq < hs[j].seq })

	ps := make([]popupEntry, 0, len(q.popups))
	for id, e := range q.popups {
		if e.req.Expired(now) {
			delete(q.popups, id)
			continue
		}
		ps = append(ps, e)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].seq < ps[j].seq })

	snap := Snapshot{
		Highlights: make([]HighlightRequest, len(hs)),
		Popups:     make([]PopupRequest, len(ps)),
	}
	for i, e := range hs {
		snap.Highlights[i] = e.req
	}
	for i, e := range ps {
		snap.Popups[i] = e.req
	}
	return snap
}
