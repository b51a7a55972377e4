package schedule

import "time"

// Or yields the earlier of a's and b's next instants, consuming only the
// side that produced it; it terminates once both sides have. Ties prefer a.
type Or struct {
	a, b Schedule
}

// NewOr combines a and b.
func NewOr(a, b Schedule) *Or {
	return &Or{a: a, b: b}
}

func (o *Or) PeekNext() (time.Time, bool) {
	na, okA := o.a.PeekNext()
	nb, okB := o.b.PeekNext()
	switch {
	case !okA && !okB:
		return time.Time{}, false
	case !okA:
		return nb, true
	case !okB:
		return na, true
	case nb.Before(na):
		return nb, true
	default:
		return na, true
	}
}

func (o *Or) Next() (time.Time, bool) {
	na, okA := o.a.PeekNext()
	nb, okB := o.b.PeekNext()
	switch {
	case !okA && !okB:
		return time.Time{}, false
	case !okA:
		return o.b.Next()
	case !okB:
		return o.a.Next()
	case nb.Before(na):
		return o.b.Next()
	default:
		return o.a.Next()
	}
}

func (o *Or) ForwardTo(t time.Time) {
	o.a.ForwardTo(t)
	o.b.ForwardTo(t)
}
