// Package scheduler implements a task registry and min-heap dispatch core:
// clients bind a schedule.Schedule to a runner callback, and
// Scheduler.Execute dispatches every fire-time a live task's schedule
// yields, exactly once, in non-decreasing time order.
package scheduler

import (
	"bytes"

	"github.com/google/uuid"
)

// TaskUID is a 128-bit opaque task identifier. The zero value is not a
// valid id produced by NewTaskUID, but is a legitimate caller-supplied one.
type TaskUID [16]byte

// NewTaskUID generates a random (v4) task id.
func NewTaskUID() TaskUID {
	return TaskUID(uuid.New())
}

// TaskUIDFromBytes builds a TaskUID from a caller-supplied 16-byte value.
func TaskUIDFromBytes(b [16]byte) TaskUID {
	return TaskUID(b)
}

// ParseTaskUID parses the canonical UUID string form.
func ParseTaskUID(s string) (TaskUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TaskUID{}, err
	}
	return TaskUID(u), nil
}

// String renders the canonical UUID form.
func (id TaskUID) String() string {
	return uuid.UUID(id).String()
}

// Compare gives a total order over TaskUID by numeric (big-endian byte)
// value: negative if id < other, zero if equal, positive if id > other.
func (id TaskUID) Compare(other TaskUID) int {
	return bytes.Compare(id[:], other[:])
}
