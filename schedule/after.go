package schedule

import "time"

// After wraps inner, skipping any instants at or before t. It is a
// stateless wrapper: construction forwards inner past t once and delegates
// thereafter.
type After struct {
	after time.Time
	inner Schedule
}

// NewAfter builds a Schedule that only yields instants from inner strictly
// after t.
func NewAfter(t time.Time, inner Schedule) *After {
	inner.ForwardTo(t)
	return &After{after: t, inner: inner}
}

// AfterTime reports the threshold this wrapper was constructed with.
func (a *After) AfterTime() time.Time { return a.after }

func (a *After) PeekNext() (time.Time, bool) { return a.inner.PeekNext() }
func (a *After) Next() (time.Time, bool)     { return a.inner.Next() }
func (a *After) ForwardTo(t time.Time)       { a.inner.ForwardTo(t) }
