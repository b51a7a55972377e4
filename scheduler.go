package scheduler

import (
	"container/heap"
	"time"

	"github.com/joeycumines/go-taskscheduler/internal/obslog"
)

// taskBinding pairs a Task with the generation it was bound under. A
// fire-record popped from the heap is only dispatched if its generation
// still matches the live binding's — this is what lets AddTask replace an
// id's binding and invalidate every fire-record already heaped under the
// old one, without walking the heap.
type taskBinding[RT any, H any] struct {
	task       Task[RT, H]
	generation uint64
}

// Scheduler is the task registry and next-fire min-heap at the core of this
// module. It is not safe for concurrent use: callers needing concurrent
// producers should drive it from a single goroutine, e.g. via package
// asyncrunner.
type Scheduler[RT any, H any] struct {
	tasks      map[TaskUID]taskBinding[RT, H]
	pending    fireHeap
	seq        uint64
	generation uint64

	runtime       RT
	handleManager HandleManager[H]
	logger        obslog.Logger
}

// Option configures a Scheduler at construction time.
type Option[RT any, H any] func(*Scheduler[RT, H])

// WithHandleManager sets the policy consulted after every dispatch. The
// default is a no-op (handlemanager.Discard equivalent).
func WithHandleManager[RT any, H any](hm HandleManager[H]) Option[RT, H] {
	return func(s *Scheduler[RT, H]) {
		s.handleManager = hm
	}
}

// WithLogger attaches a structured logger for scheduler lifecycle events.
// The default is a no-op logger.
func WithLogger[RT any, H any](l obslog.Logger) Option[RT, H] {
	return func(s *Scheduler[RT, H]) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a Scheduler dispatching onto runtime.
func New[RT any, H any](runtime RT, opts ...Option[RT, H]) *Scheduler[RT, H] {
	s := &Scheduler[RT, H]{
		tasks:         make(map[TaskUID]taskBinding[RT, H]),
		runtime:       runtime,
		handleManager: discardHandleManager[H]{},
		logger:        obslog.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Runtime returns the dispatch backend this scheduler was constructed with.
func (s *Scheduler[RT, H]) Runtime() RT {
	return s.runtime
}

// AddTask binds id to task. If task.Schedule has already terminated (its
// first Next() yields nothing), the task is discarded without being bound.
//
// Adding with an id that is already bound replaces the earlier binding; any
// fire-record already in the heap for the old binding is discarded when it
// is popped, via lazy deletion (see Execute).
func (s *Scheduler[RT, H]) AddTask(id TaskUID, task Task[RT, H]) {
	next, ok := task.Schedule.Next()
	if !ok {
		s.logger.Debug("task schedule terminated before first fire, discarding", "task", id)
		return
	}
	s.generation++
	s.tasks[id] = taskBinding[RT, H]{task: task, generation: s.generation}
	s.push(id, next, s.generation)
	s.logger.Debug("task added", "task", id, "next", next)
}

// DeleteTask unbinds id, returning the task that was bound, if any. Any
// fire-records already in the heap for id are not removed now; they are
// discarded when popped (lazy deletion).
func (s *Scheduler[RT, H]) DeleteTask(id TaskUID) (Task[RT, H], bool) {
	binding, ok := s.tasks[id]
	if ok {
		delete(s.tasks, id)
		s.logger.Debug("task removed", "task", id)
	}
	return binding.task, ok
}

// ExecuteByNow is shorthand for Execute(time.Now().UTC()).
func (s *Scheduler[RT, H]) ExecuteByNow() {
	s.Execute(time.Now().UTC())
}

// Execute dispatches every pending fire-record whose time is at or before
// now, in non-decreasing time order, exactly once per live task per
// fire-time. Fire-records whose task has since been removed or replaced are
// discarded (lazy deletion) instead of dispatched.
func (s *Scheduler[RT, H]) Execute(now time.Time) {
	for {
		top, ok := s.peekNode()
		if !ok || top.record.Time.After(now) {
			return
		}
		node := s.popNode()

		binding, ok := s.tasks[node.record.Task]
		if !ok || binding.generation != node.generation {
			s.logger.Debug("lazy deletion: discarding stale fire", "task", node.record.Task)
			continue
		}

		s.logger.Debug("dispatching", "task", node.record.Task, "time", node.record.Time)
		handle := binding.task.Run(s.runtime, node.record)
		s.handleManager.Accept(node.record, handle)

		next, ok := binding.task.Schedule.Next()
		if ok {
			s.push(node.record.Task, next, binding.generation)
		} else {
			delete(s.tasks, node.record.Task)
			s.logger.Debug("task schedule exhausted, evicting", "task", node.record.Task)
		}
	}
}

func (s *Scheduler[RT, H]) peekNode() (fireNode, bool) {
	if len(s.pending) == 0 {
		return fireNode{}, false
	}
	return s.pending[0], true
}

func (s *Scheduler[RT, H]) popNode() fireNode {
	return heap.Pop(&s.pending).(fireNode)
}

func (s *Scheduler[RT, H]) push(id TaskUID, t time.Time, generation uint64) {
	s.seq++
	heap.Push(&s.pending, fireNode{
		record:     FireRecord{Task: id, Time: t},
		seq:        s.seq,
		generation: generation,
	})
}
