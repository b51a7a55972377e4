// Package runtime provides the narrow dispatch contract a Scheduler is
// parameterised over, plus a small set of reference adapters sufficient to
// exercise and test the scheduler end-to-end. Concrete production adapters
// (a real thread pool, an async executor, a JS microtask queue) are
// external collaborators and out of scope here.
package runtime

import "time"

// AsyncRuntime is required by package asyncrunner: in addition to being an
// opaque dispatch backend, it must be able to arrange a wake-up callback
// after a duration, so the driver's tick loop stays runtime-agnostic.
type AsyncRuntime interface {
	// WakeAfter arranges for wake to be called after d elapses. It must
	// not block, and wake may be invoked from any goroutine.
	WakeAfter(d time.Duration, wake func())
}
