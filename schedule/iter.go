package schedule

import (
	"sort"
	"time"
)

// Iter yields a fixed, non-decreasing sequence of instants in order.
type Iter struct {
	times []time.Time
	pos   int
}

// NewIter builds a Schedule over a copy of times, sorted ascending.
//
// The caller's slice is never mutated.
func NewIter(times []time.Time) *Iter {
	cp := make([]time.Time, len(times))
	copy(cp, times)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Before(cp[j]) })
	return &Iter{times: cp}
}

// Single builds an Iter that yields exactly t, then terminates. A caller
// with an optional instant should use Never{} in place of Single for the
// "none" case, rather than passing a sentinel through Single itself.
func Single(t time.Time) *Iter {
	return &Iter{times: []time.Time{t}}
}

func (it *Iter) PeekNext() (time.Time, bool) {
	if it.pos >= len(it.times) {
		return time.Time{}, false
	}
	return it.times[it.pos], true
}

func (it *Iter) Next() (time.Time, bool) {
	t, ok := it.PeekNext()
	if ok {
		it.pos++
	}
	return t, ok
}

func (it *Iter) ForwardTo(t time.Time) {
	ForwardDefault(it, t)
}

// IterFunc adapts a dynamic, externally-produced non-decreasing sequence
// (e.g. reading from a channel or generator) into a Schedule. next must
// return ok=false once the sequence is exhausted, and must never return a
// time earlier than the previous one it returned.
type IterFunc struct {
	next     func() (time.Time, bool)
	peeked   time.Time
	hasPeek  bool
	peekedOK bool
}

// NewIterFunc wraps next as a Schedule.
func NewIterFunc(next func() (time.Time, bool)) *IterFunc {
	return &IterFunc{next: next}
}

func (f *IterFunc) PeekNext() (time.Time, bool) {
	if !f.hasPeek {
		f.peeked, f.peekedOK = f.next()
		f.hasPeek = true
	}
	return f.peeked, f.peekedOK
}

func (f *IterFunc) Next() (time.Time, bool) {
	t, ok := f.PeekNext()
	f.hasPeek = false
	return t, ok
}

func (f *IterFunc) ForwardTo(t time.Time) {
	ForwardDefault(f, t)
}
