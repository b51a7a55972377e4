package runtime

import (
	"testing"
	"time"

	scheduler "github.com/joeycumines/go-taskscheduler"
	"github.com/joeycumines/go-taskscheduler/schedule"
)

func TestInlineDispatchCompletes(t *testing.T) {
	var rt Inline
	if err := rt.Dispatch(func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInlineDispatchRecoversPanic(t *testing.T) {
	var rt Inline
	if err := rt.Dispatch(func() { panic("boom") }); err == nil {
		t.Fatal("expected an error from a panicking task body")
	}
}

func TestInlineSchedule(t *testing.T) {
	d0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ran := false
	task := NewInlineTask(schedule.NewOnce(d0), func() { ran = true })

	s := scheduler.New[Inline, error](Inline{})
	s.AddTask(scheduler.NewTaskUID(), task)
	s.Execute(d0)

	if !ran {
		t.Fatal("expected inline task body to have run synchronously inside Execute")
	}
}
