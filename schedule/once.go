package schedule

import "time"

// Once yields a single instant, then terminates.
type Once struct {
	next   time.Time
	pendOK bool
}

// NewOnce builds a Schedule that fires exactly once, at t.
func NewOnce(t time.Time) *Once {
	return &Once{next: t.UTC(), pendOK: true}
}

func (o *Once) PeekNext() (time.Time, bool) {
	return o.next, o.pendOK
}

func (o *Once) Next() (time.Time, bool) {
	if !o.pendOK {
		return time.Time{}, false
	}
	o.pendOK = false
	return o.next, true
}

func (o *Once) ForwardTo(t time.Time) {
	if o.pendOK && !o.next.After(t) {
		o.pendOK = false
	}
}
