package runtime

import (
	"fmt"

	scheduler "github.com/joeycumines/go-taskscheduler"
	"github.com/joeycumines/go-taskscheduler/schedule"
)

// Thread is the OS-thread-analogue runtime: every dispatch spawns its own
// goroutine. A failure to complete (here: a panic in the task body) is
// encoded into the returned Handle rather than surfaced to the scheduler
// core, since the scheduler never inspects a dispatch's handle itself.
type Thread struct{}

// NewThread builds a Thread runtime.
func NewThread() *Thread { return &Thread{} }

// Dispatch runs body on a new goroutine, returning a channel that receives
// exactly one value: nil on normal completion, or an error recovered from
// a panic.
func (t *Thread) Dispatch(body func()) <-chan error {
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

// NewThreadTask builds a scheduler.Task whose runner dispatches body on a
// fresh goroutine via a Thread runtime. body takes no arguments: a task
// body that wants its id or fire-time should close over them instead of
// relying on argument injection.
func NewThreadTask(sched schedule.Schedule, body func()) scheduler.Task[*Thread, <-chan error] {
	return scheduler.Task[*Thread, <-chan error]{
		Schedule: sched,
		Run: func(rt *Thread, _ scheduler.FireRecord) <-chan error {
			return rt.Dispatch(body)
		},
	}
}
