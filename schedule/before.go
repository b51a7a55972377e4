package schedule

import "time"

// Before wraps inner, reporting termination once the next candidate instant
// would be at or after t. The comparison is strict: only instants strictly
// less than t are ever yielded.
type Before struct {
	before time.Time
	inner  Schedule
}

// NewBefore builds a Schedule that only yields instants from inner strictly
// before t.
func NewBefore(t time.Time, inner Schedule) *Before {
	return &Before{before: t, inner: inner}
}

// BeforeTime reports the threshold this wrapper was constructed with.
func (b *Before) BeforeTime() time.Time { return b.before }

func (b *Before) PeekNext() (time.Time, bool) {
	next, ok := b.inner.PeekNext()
	if !ok || !next.Before(b.before) {
		return time.Time{}, false
	}
	return next, true
}

func (b *Before) Next() (time.Time, bool) {
	next, ok := b.inner.PeekNext()
	if !ok || !next.Before(b.before) {
		return time.Time{}, false
	}
	return b.inner.Next()
}

func (b *Before) ForwardTo(t time.Time) {
	b.inner.ForwardTo(t)
}
