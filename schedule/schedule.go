// Package schedule provides the lazy, stateful UTC time-sequence primitives
// and combinators used to describe when a task should fire.
//
// A Schedule is a stateful monotone stream of time.Time instants. Every
// implementation in this package guarantees that successive calls to Next
// (interleaved with ForwardTo) return a non-decreasing sequence, and that
// PeekNext is idempotent until the next mutating call.
package schedule

import "time"

// Schedule is a lazy iterator of UTC instants.
//
// PeekNext reports the next instant without consuming it; ok is false once
// the schedule has terminated. Next consumes and returns the next instant,
// advancing internal state. ForwardTo drops all instants less than or equal
// to t without yielding them; it must not cause the sequence to become
// non-monotone.
//
// Implementations are not safe for concurrent use; a Schedule is owned by
// exactly one Task at a time.
type Schedule interface {
	PeekNext() (t time.Time, ok bool)
	Next() (t time.Time, ok bool)
	ForwardTo(t time.Time)
}

// ForwardDefault implements ForwardTo in terms of PeekNext/Next, for
// schedules with no cheaper way to skip ahead (e.g. Iter). It repeatedly
// consumes instants that are not after t.
func ForwardDefault(s Schedule, t time.Time) {
	for {
		next, ok := s.PeekNext()
		if !ok || next.After(t) {
			return
		}
		s.Next()
	}
}
