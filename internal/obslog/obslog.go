// Package obslog is a minimal structured logging facade for the scheduler
// core and async driver, mirroring the package-level Logger pattern used by
// github.com/joeycumines/go-eventloop (eventloop/logging.go): callers wire
// in zerolog, logrus, slog, or anything else by implementing the four-
// method Logger interface; the default is a zero-cost no-op.
package obslog

// Logger receives structured, leveled events at key scheduler and driver
// transitions (task added/removed, dispatch, lazy-deletion skip, mailbox
// drain, tick). Arguments after msg are alternating key/value pairs, in the
// style of log/slog and zerolog's sugared APIs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// NoOp returns a Logger that discards everything. It is the default used
// by Scheduler and AsyncRunner when no logger is configured.
func NoOp() Logger {
	return noop{}
}
