package schedule

import "time"

// Chain wraps a Schedule to provide fluent combinator chaining
// (Wrap(s).After(t).Before(t2), and so on). Chain itself implements
// Schedule, so a chained expression can be passed anywhere a Schedule is
// expected, or chained further.
type Chain struct {
	Schedule
}

// Wrap adapts any Schedule for fluent chaining.
func Wrap(s Schedule) Chain {
	return Chain{Schedule: s}
}

// Or returns this schedule combined with other via NewOr.
func (c Chain) Or(other Schedule) Chain {
	return Wrap(NewOr(c.Schedule, other))
}

// Then returns this schedule followed by tail via NewThen.
func (c Chain) Then(tail Schedule) Chain {
	return Wrap(NewThen(c.Schedule, tail))
}

// After returns this schedule skipping instants at or before t.
func (c Chain) After(t time.Time) Chain {
	return Wrap(NewAfter(t, c.Schedule))
}

// Before returns this schedule terminating at t.
func (c Chain) Before(t time.Time) Chain {
	return Wrap(NewBefore(t, c.Schedule))
}

// Throttling returns this schedule with a minimum interval enforced
// between yields.
func (c Chain) Throttling(interval time.Duration) Chain {
	return Wrap(NewThrottling(c.Schedule, interval))
}
