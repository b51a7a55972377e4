package scheduler

import (
	"testing"
	"time"

	"github.com/joeycumines/go-taskscheduler/schedule"
)

type noopRuntime struct{}

func TestAddTaskDiscardsTerminatedSchedule(t *testing.T) {
	s := New[noopRuntime, int](noopRuntime{})
	s.AddTask(NewTaskUID(), Task[noopRuntime, int]{
		Schedule: schedule.Never{},
		Run:      func(noopRuntime, FireRecord) int { return 0 },
	})
	if len(s.tasks) != 0 || len(s.pending) != 0 {
		t.Fatalf("expected schedule-already-terminated task to be discarded")
	}
}

func TestExecuteOrderingAndExactlyOnce(t *testing.T) {
	d0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var order []string

	s := New[noopRuntime, int](noopRuntime{})
	s.AddTask(TaskUIDFromBytes([16]byte{1}), Task[noopRuntime, int]{
		Schedule: schedule.NewIter([]time.Time{d0, d0.Add(2 * time.Hour)}),
		Run: func(noopRuntime, FireRecord) int {
			order = append(order, "a")
			return 0
		},
	})
	s.AddTask(TaskUIDFromBytes([16]byte{2}), Task[noopRuntime, int]{
		Schedule: schedule.NewIter([]time.Time{d0.Add(time.Hour)}),
		Run: func(noopRuntime, FireRecord) int {
			order = append(order, "b")
			return 0
		},
	})

	s.Execute(d0.Add(3 * time.Hour))

	want := []string{"a", "b", "a"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestExecuteRespectsNow(t *testing.T) {
	d0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ran := 0
	s := New[noopRuntime, int](noopRuntime{})
	s.AddTask(NewTaskUID(), Task[noopRuntime, int]{
		Schedule: schedule.NewOnce(d0),
		Run: func(noopRuntime, FireRecord) int {
			ran++
			return 0
		},
	})
	s.Execute(d0.Add(-time.Hour))
	if ran != 0 {
		t.Fatalf("task dispatched before its fire-time")
	}
	s.Execute(d0)
	if ran != 1 {
		t.Fatalf("expected exactly one dispatch, got %d", ran)
	}
}

func TestLazyDeletionAfterRemove(t *testing.T) {
	d0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ran := 0
	id := NewTaskUID()
	s := New[noopRuntime, int](noopRuntime{})
	s.AddTask(id, Task[noopRuntime, int]{
		Schedule: schedule.NewIter([]time.Time{d0, d0.Add(time.Hour), d0.Add(2 * time.Hour)}),
		Run: func(noopRuntime, FireRecord) int {
			ran++
			return 0
		},
	})
	if _, ok := s.DeleteTask(id); !ok {
		t.Fatalf("expected DeleteTask to find the bound task")
	}
	s.Execute(d0.Add(3 * time.Hour))
	if ran != 0 {
		t.Fatalf("expected no dispatch after delete, got %d runs", ran)
	}
	if _, ok := s.DeleteTask(id); ok {
		t.Fatalf("expected second delete to find nothing")
	}
}

func TestAddTaskReplacesBindingAndInvalidatesOldHeapEntry(t *testing.T) {
	d0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	id := NewTaskUID()
	var ranOld, ranNew bool

	s := New[noopRuntime, int](noopRuntime{})
	s.AddTask(id, Task[noopRuntime, int]{
		Schedule: schedule.NewOnce(d0),
		Run: func(noopRuntime, FireRecord) int {
			ranOld = true
			return 0
		},
	})
	// Replace the binding before the old fire-time is ever dispatched, with
	// a schedule whose first fire is later.
	s.AddTask(id, Task[noopRuntime, int]{
		Schedule: schedule.NewOnce(d0.Add(time.Hour)),
		Run: func(noopRuntime, FireRecord) int {
			ranNew = true
			return 0
		},
	})

	// At d0, only the stale (now-invalid) fire-record for the old binding
	// would have dispatched; it must be discarded instead.
	s.Execute(d0)
	if ranOld || ranNew {
		t.Fatalf("dispatched before either live fire-time: old=%v new=%v", ranOld, ranNew)
	}

	s.Execute(d0.Add(time.Hour))
	if ranOld {
		t.Fatalf("stale binding's task body ran — replace must invalidate the old heap entry")
	}
	if !ranNew {
		t.Fatalf("expected the replacement binding to fire")
	}
}

func TestExecuteCoalescesWithoutSuppression(t *testing.T) {
	d0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var fires []time.Time
	s := New[noopRuntime, int](noopRuntime{})
	s.AddTask(NewTaskUID(), Task[noopRuntime, int]{
		Schedule: schedule.NewIter([]time.Time{d0, d0.Add(time.Hour), d0.Add(2 * time.Hour)}),
		Run: func(_ noopRuntime, fire FireRecord) int {
			fires = append(fires, fire.Time)
			return 0
		},
	})
	s.Execute(d0.Add(24 * time.Hour))
	if len(fires) != 3 {
		t.Fatalf("expected all three stale fires dispatched in one call, got %d", len(fires))
	}
}

func TestHandleManagerInvoked(t *testing.T) {
	d0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var collected []int
	hm := acceptFunc[int](func(_ FireRecord, h int) {
		collected = append(collected, h)
	})
	s := New[noopRuntime, int](noopRuntime{}, WithHandleManager[noopRuntime, int](hm))
	s.AddTask(NewTaskUID(), Task[noopRuntime, int]{
		Schedule: schedule.NewOnce(d0),
		Run:      func(noopRuntime, FireRecord) int { return 42 },
	})
	s.Execute(d0)
	if len(collected) != 1 || collected[0] != 42 {
		t.Fatalf("expected handle manager to observe [42], got %v", collected)
	}
}

type acceptFunc[H any] func(FireRecord, H)

func (f acceptFunc[H]) Accept(fire FireRecord, h H) { f(fire, h) }
