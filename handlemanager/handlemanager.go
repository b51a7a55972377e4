// Package handlemanager provides the stock HandleManager policies: Discard
// (fire-and-forget) and Collect (join-all teardown).
package handlemanager

import scheduler "github.com/joeycumines/go-taskscheduler"

// Discard is a no-op HandleManager, for fire-and-forget use.
type Discard[H any] struct{}

// Accept implements scheduler.HandleManager.
func (Discard[H]) Accept(scheduler.FireRecord, H) {}

// Collect appends every dispatched handle, in dispatch order, for later
// join-all teardown. It is safe to use unsynchronized because Accept is
// only ever called from the single goroutine that owns the Scheduler.
type Collect[H any] struct {
	Handles []H
}

// NewCollect builds an empty Collect.
func NewCollect[H any]() *Collect[H] {
	return &Collect[H]{}
}

// Accept implements scheduler.HandleManager.
func (c *Collect[H]) Accept(_ scheduler.FireRecord, handle H) {
	c.Handles = append(c.Handles, handle)
}
