package runtime

import (
	"fmt"

	scheduler "github.com/joeycumines/go-taskscheduler"
	"github.com/joeycumines/go-taskscheduler/schedule"
)

// Inline is the synchronous runtime: dispatch runs the task body on the
// caller's own goroutine before returning, the same way the scheduler's
// own driver goroutine would if no concurrency were wanted at all.
type Inline struct{}

// Dispatch runs body synchronously, recovering a panic into the returned
// error rather than letting it unwind through Execute.
func (Inline) Dispatch(body func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("runtime: task body panicked: %v", r)
		}
	}()
	body()
	return nil
}

// NewInlineTask builds a scheduler.Task whose runner dispatches body
// synchronously via an Inline runtime.
func NewInlineTask(sched schedule.Schedule, body func()) scheduler.Task[Inline, error] {
	return scheduler.Task[Inline, error]{
		Schedule: sched,
		Run: func(rt Inline, _ scheduler.FireRecord) error {
			return rt.Dispatch(body)
		},
	}
}
