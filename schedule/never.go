package schedule

import "time"

// Never is always terminated. It is the identity element for Or.
type Never struct{}

func (Never) PeekNext() (time.Time, bool) { return time.Time{}, false }
func (Never) Next() (time.Time, bool)     { return time.Time{}, false }
func (Never) ForwardTo(time.Time)         {}
