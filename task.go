package scheduler

import (
	"time"

	"github.com/joeycumines/go-taskscheduler/schedule"
)

// FireRecord identifies one pending or dispatched invocation: the task it
// belongs to, and the instant its schedule produced it for.
type FireRecord struct {
	Task TaskUID
	Time time.Time
}

// RunFunc is invoked once per fire-record a live task's schedule yields. It
// receives the runtime (an opaque type parameter as far as the scheduler
// core is concerned) and the fire-record being dispatched, and returns a
// runtime-defined handle.
type RunFunc[RT any, H any] func(runtime RT, fire FireRecord) H

// Task pairs a schedule with the callback that runs when it fires. Once
// added to a Scheduler, a Task is owned by it; the scheduler drops a task
// once its schedule terminates.
type Task[RT any, H any] struct {
	Schedule schedule.Schedule
	Run      RunFunc[RT, H]
}

// HandleManager is the policy object consulted after every dispatch,
// synchronously, on the scheduler's owning goroutine. It must not block.
//
// Discard and Collect (package handlemanager) are the two stock
// implementations.
type HandleManager[H any] interface {
	Accept(fire FireRecord, handle H)
}

// discardHandleManager is the default HandleManager: it does nothing.
type discardHandleManager[H any] struct{}

func (discardHandleManager[H]) Accept(FireRecord, H) {}
