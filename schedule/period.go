package schedule

import (
	"errors"
	"time"
)

// ErrNonPositivePeriod is returned by NewPeriod when period is not strictly positive.
var ErrNonPositivePeriod = errors.New("schedule: period must be strictly positive")

// ErrStaleStart is returned by NewPeriod when start is already more than one
// period in the past relative to now — the entire first tick would be stale.
var ErrStaleStart = errors.New("schedule: start is more than one period before now")

// Period yields start, start+period, start+2*period, ... forever.
type Period struct {
	period time.Duration
	next   time.Time
}

// NewPeriod builds a Schedule that fires every period, starting at start.
//
// period must be strictly positive. start must satisfy
// start > now-period (construction rejects a schedule whose entire first
// tick is already stale by more than one period); now is evaluated once, at
// construction time.
func NewPeriod(period time.Duration, start time.Time) (*Period, error) {
	if period <= 0 {
		return nil, ErrNonPositivePeriod
	}
	if !start.After(time.Now().Add(-period)) {
		return nil, ErrStaleStart
	}
	return &Period{period: period, next: start.UTC()}, nil
}

func (p *Period) PeekNext() (time.Time, bool) {
	return p.next, true
}

func (p *Period) Next() (time.Time, bool) {
	t := p.next
	p.next = t.Add(p.period)
	return t, true
}

// ForwardTo advances next by the smallest integer multiple of period that
// places it strictly after t; it is a no-op if next is already after t.
//
// gap/period truncates toward zero, so periods undercounts by exactly one
// whenever gap isn't an exact multiple; the +1 corrects for that in every
// case, including an exact multiple, so the result is always strictly
// after t with no further adjustment needed.
func (p *Period) ForwardTo(t time.Time) {
	if p.next.After(t) {
		return
	}
	gap := t.Sub(p.next)
	periods := int64(gap/p.period) + 1
	p.next = p.next.Add(time.Duration(periods) * p.period)
}
