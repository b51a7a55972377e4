package runtime

import (
	"testing"
	"time"
)

func TestGoAsyncWakeAfter(t *testing.T) {
	rt := NewGoAsync()
	woke := make(chan struct{}, 1)
	rt.WakeAfter(10*time.Millisecond, func() { woke <- struct{}{} })
	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for WakeAfter callback")
	}
}

func TestGoAsyncDispatchCompletes(t *testing.T) {
	rt := NewGoAsync()
	done := rt.Dispatch(func() {})
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatch")
	}
}

func TestGoAsyncDispatchRecoversPanic(t *testing.T) {
	rt := NewGoAsync()
	done := rt.Dispatch(func() { panic("boom") })
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error from a panicking task body")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatch")
	}
}
