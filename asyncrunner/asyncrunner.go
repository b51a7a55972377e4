// Package asyncrunner provides the async driver: a self-ticking wrapper
// around a *scheduler.Scheduler that lets tasks be added and removed from
// any goroutine via a cheap-to-clone Client, while the scheduler itself
// stays single-threaded, owned by whichever goroutine calls Run.
//
// Run is a blocking loop: one goroutine, blocking until the context is
// cancelled, draining queued Client mutations and dispatching due fires on
// every tick.
package asyncrunner

import (
	"context"
	"fmt"
	"sync"
	"time"

	scheduler "github.com/joeycumines/go-taskscheduler"
	"github.com/joeycumines/go-taskscheduler/internal/obslog"
	"github.com/joeycumines/go-taskscheduler/runtime"
)

// DefaultExecuteInterval is the tick period used when no WithExecuteInterval
// option is given.
const DefaultExecuteInterval = 100 * time.Millisecond

// event is a deferred mutation applied to the owned scheduler on the next
// tick, in the order it was enqueued.
type event[RT any, H any] struct {
	remove bool
	id     scheduler.TaskUID
	task   scheduler.Task[RT, H]
}

// mailbox is the shared, mutex-guarded event queue behind every Client
// cloned from the same AsyncRunner. It is swapped rather than iterated
// under lock, so the mutex is never held for the duration of a drain.
type mailbox[RT any, H any] struct {
	mu     sync.Mutex
	events []event[RT, H]
}

func (m *mailbox[RT, H]) push(e event[RT, H]) {
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
}

// drain swaps out the pending events under lock and returns them, leaving
// the mailbox empty for new submissions.
func (m *mailbox[RT, H]) drain(spare []event[RT, H]) (drained, newSpare []event[RT, H]) {
	m.mu.Lock()
	drained, m.events = m.events, spare[:0]
	m.mu.Unlock()
	return drained, drained[:0]
}

// restore pushes events back to the front of the mailbox, preserving their
// relative order. It is used by applyMailbox to avoid losing in-flight
// mutations when applying an event panics mid-tick.
func (m *mailbox[RT, H]) restore(events []event[RT, H]) {
	if len(events) == 0 {
		return
	}
	m.mu.Lock()
	m.events = append(append([]event[RT, H]{}, events...), m.events...)
	m.mu.Unlock()
}

// AsyncRunner owns a *scheduler.Scheduler and ticks it on a fixed interval,
// applying queued Client mutations in FIFO order before each tick. RT must
// additionally satisfy runtime.AsyncRuntime so the driver can schedule its
// own wake-ups through the runtime rather than a bare time.Sleep.
type AsyncRunner[RT runtime.AsyncRuntime, H any] struct {
	scheduler       *scheduler.Scheduler[RT, H]
	executeInterval time.Duration
	mailbox         *mailbox[RT, H]
	logger          obslog.Logger
}

// Option configures an AsyncRunner at construction.
type Option[RT runtime.AsyncRuntime, H any] func(*AsyncRunner[RT, H])

// WithExecuteInterval overrides DefaultExecuteInterval.
func WithExecuteInterval[RT runtime.AsyncRuntime, H any](d time.Duration) Option[RT, H] {
	return func(r *AsyncRunner[RT, H]) {
		r.executeInterval = d
	}
}

// WithLogger attaches a structured logger, in place of the package default
// no-op.
func WithLogger[RT runtime.AsyncRuntime, H any](l obslog.Logger) Option[RT, H] {
	return func(r *AsyncRunner[RT, H]) {
		if l != nil {
			r.logger = l
		}
	}
}

// New wraps an existing scheduler in an AsyncRunner.
func New[RT runtime.AsyncRuntime, H any](sched *scheduler.Scheduler[RT, H], opts ...Option[RT, H]) *AsyncRunner[RT, H] {
	r := &AsyncRunner[RT, H]{
		scheduler:       sched,
		executeInterval: DefaultExecuteInterval,
		mailbox:         &mailbox[RT, H]{},
		logger:          obslog.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Client returns a new, cheap-to-clone handle for submitting mutations to
// the runner's scheduler from any goroutine. Client values share the same
// underlying mailbox, so copying a Client is as cheap as copying a single
// pointer.
func (r *AsyncRunner[RT, H]) Client() Client[RT, H] {
	return Client[RT, H]{mailbox: r.mailbox}
}

// Client submits task additions and removals to an AsyncRunner's owned
// scheduler. Every method is non-blocking, thread-safe, and infallible:
// mutations are queued and applied on the runner's own goroutine during its
// next tick.
type Client[RT runtime.AsyncRuntime, H any] struct {
	mailbox *mailbox[RT, H]
}

// AddTask queues a task addition, applied in order relative to any other
// queued mutation from any Client sharing this mailbox.
func (c Client[RT, H]) AddTask(id scheduler.TaskUID, task scheduler.Task[RT, H]) {
	c.mailbox.push(event[RT, H]{id: id, task: task})
}

// RemoveTask queues a task removal.
func (c Client[RT, H]) RemoveTask(id scheduler.TaskUID) {
	c.mailbox.push(event[RT, H]{remove: true, id: id})
}

// applyMailbox drains queued mutations and applies them, in FIFO order, to
// the owned scheduler. If applying an event panics, every event still
// unapplied (including the one that panicked) is pushed back to the front
// of the mailbox before the panic is re-raised, so a recovered tick never
// silently drops a queued mutation.
func (r *AsyncRunner[RT, H]) applyMailbox(spare []event[RT, H]) []event[RT, H] {
	drained, newSpare := r.mailbox.drain(spare)
	if len(drained) > 0 {
		r.logger.Debug("mailbox drained", "events", len(drained))
	}
	for i, e := range drained {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					r.mailbox.restore(drained[i:])
					panic(rec)
				}
			}()
			if e.remove {
				r.scheduler.DeleteTask(e.id)
			} else {
				r.scheduler.AddTask(e.id, e.task)
			}
		}()
	}
	return newSpare
}

// Run blocks, ticking the owned scheduler on executeInterval until ctx is
// done. Each tick applies all queued mailbox mutations, dispatches every
// fire due by now, then arranges its own wake-up through the runtime.
func (r *AsyncRunner[RT, H]) Run(ctx context.Context) error {
	_, err := r.run(ctx, false)
	return err
}

// RunWithRecover behaves like Run, but recovers a panic from within a tick
// instead of letting it unwind, and always returns the owned *Scheduler —
// the Go analogue of the original's run_with_shutdown_signal, whose future
// resolves to the runner so the caller can inspect or restart it. Any
// mailbox events not yet applied at the time Run stops are preserved, not
// dropped.
func (r *AsyncRunner[RT, H]) RunWithRecover(ctx context.Context) (sched *scheduler.Scheduler[RT, H], err error) {
	return r.run(ctx, true)
}

func (r *AsyncRunner[RT, H]) run(ctx context.Context, recover_ bool) (sched *scheduler.Scheduler[RT, H], err error) {
	if recover_ {
		defer func() {
			if rec := recover(); rec != nil {
				sched = r.scheduler
				err = fmt.Errorf("asyncrunner: tick panicked: %v", rec)
			}
		}()
	}

	var spare []event[RT, H]
	for {
		spare = r.applyMailbox(spare)
		r.logger.Debug("tick")
		r.scheduler.ExecuteByNow()

		select {
		case <-ctx.Done():
			return r.scheduler, nil
		default:
		}

		wake := make(chan struct{})
		r.scheduler.Runtime().WakeAfter(r.executeInterval, func() { close(wake) })

		select {
		case <-ctx.Done():
			return r.scheduler, nil
		case <-wake:
		}
	}
}
