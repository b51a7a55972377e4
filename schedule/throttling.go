package schedule

import "time"

// Throttling enforces a minimum gap of interval between consecutive yields
// of inner. Every yielded time is a genuine inner yield (never synthesised);
// inner yields that fall inside the cooldown window are discarded one at a
// time until the next candidate lands at or after the floor.
type Throttling struct {
	inner     Schedule
	interval  time.Duration
	lastYield time.Time
	hasLast   bool
}

// NewThrottling wraps inner with a minimum interval between yields.
func NewThrottling(inner Schedule, interval time.Duration) *Throttling {
	return &Throttling{inner: inner, interval: interval}
}

// skipStale discards inner yields strictly before the cooldown floor. It is
// idempotent: once inner's next candidate clears the floor, repeated calls
// do nothing, so PeekNext can call it freely without surprising Next.
func (t *Throttling) skipStale() {
	if !t.hasLast {
		return
	}
	floor := t.lastYield.Add(t.interval)
	for {
		n, ok := t.inner.PeekNext()
		if !ok || !n.Before(floor) {
			return
		}
		t.inner.Next()
	}
}

func (t *Throttling) PeekNext() (time.Time, bool) {
	t.skipStale()
	return t.inner.PeekNext()
}

func (t *Throttling) Next() (time.Time, bool) {
	t.skipStale()
	n, ok := t.inner.Next()
	if !ok {
		return time.Time{}, false
	}
	t.lastYield = n
	t.hasLast = true
	return n, true
}

func (t *Throttling) ForwardTo(at time.Time) {
	t.inner.ForwardTo(at)
}
