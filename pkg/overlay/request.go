package overlay

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// HighlightRequest is a queued highlight: a target rectangle, its
// visual style, an optional animation, and its lifetime.
type HighlightRequest struct {
	ID          string
	Target      Rect
	Style       HighlightStyle
	Animation   Animation
	SubmittedAt time.Time

	// ExpiresAt is the instant the highlight is dropped. The zero
	// value means it never expires.
	ExpiresAt time.Time
}

// Expired reports whether the highlight should be dropped at now.
func (r HighlightRequest) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !r.ExpiresAt.After(now)
}

// PopupRequest is a queued popup notification.
type PopupRequest struct {
	ID          string
	Text        string
	Style       PopupStyle
	SubmittedAt time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the popup should be dropped at now.
func (r PopupRequest) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !r.ExpiresAt.After(now)
}

// NewRequestID generates a unique, lexicographically sortable request id.
func NewRequestID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		// rand.Reader does not fail in practice; fall back to a
		// monotonic-ish id rather than panicking in a draw path.
		return ulid.MustNew(ulid.Timestamp(time.Now()), nil).String()
	}
	return id.String()
}
