package runtime

import (
	"fmt"
	"time"

	scheduler "github.com/joeycumines/go-taskscheduler"
	"github.com/joeycumines/go-taskscheduler/schedule"
)

// GoAsync is the reference AsyncRuntime: it implements WakeAfter on top of
// time.AfterFunc, and dispatches each task body on its own goroutine like
// Thread. It stands in for a real async executor (Tokio, async-std, a JS
// microtask queue), which this module does not provide.
type GoAsync struct{}

// NewGoAsync builds a GoAsync runtime.
func NewGoAsync() *GoAsync { return &GoAsync{} }

// WakeAfter implements runtime.AsyncRuntime.
func (g *GoAsync) WakeAfter(d time.Duration, wake func()) {
	time.AfterFunc(d, wake)
}

// Dispatch runs body on a new goroutine, returning a channel that receives
// exactly one value: nil on normal completion, or an error recovered from
// a panic.
func (g *GoAsync) Dispatch(body func()) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("runtime: task body panicked: %v", r)
				return
			}
			done <- nil
		}()
		body()
	}()
	return done
}

// NewGoAsyncTask builds a scheduler.Task whose runner dispatches body on a
// fresh goroutine via a GoAsync runtime.
func NewGoAsyncTask(sched schedule.Schedule, body func()) scheduler.Task[*GoAsync, <-chan error] {
	return scheduler.Task[*GoAsync, <-chan error]{
		Schedule: sched,
		Run: func(rt *GoAsync, _ scheduler.FireRecord) <-chan error {
			return rt.Dispatch(body)
		},
	}
}
