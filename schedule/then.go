package schedule

import "time"

// Then yields every instant from first, then every instant from tail that
// is strictly after the last instant first yielded. Every yield from first
// forwards tail past it, so tail never buffers history of first's output.
type Then struct {
	first Schedule
	tail  Schedule
}

// NewThen builds first.Then(tail).
func NewThen(first, tail Schedule) *Then {
	return &Then{first: first, tail: tail}
}

func (t *Then) PeekNext() (time.Time, bool) {
	if next, ok := t.first.PeekNext(); ok {
		t.tail.ForwardTo(next)
		return next, true
	}
	return t.tail.PeekNext()
}

func (t *Then) Next() (time.Time, bool) {
	if next, ok := t.first.Next(); ok {
		t.tail.ForwardTo(next)
		return next, true
	}
	return t.tail.Next()
}

func (t *Then) ForwardTo(at time.Time) {
	t.first.ForwardTo(at)
	t.tail.ForwardTo(at)
}
