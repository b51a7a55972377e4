package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronConfig holds NewCron construction options.
type cronConfig struct {
	fields cron.ParseOption
}

// CronOption configures NewCron.
type CronOption func(*cronConfig)

// WithCronSeconds enables an optional leading seconds field, so expressions
// may specify six fields (seconds minutes hours day-of-month month
// day-of-week) instead of the standard five.
func WithCronSeconds() CronOption {
	return func(c *cronConfig) {
		c.fields |= cron.SecondOptional
	}
}

func defaultCronConfig() *cronConfig {
	return &cronConfig{
		fields: cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	}
}

// Cron wraps a cron expression, producing UTC fire-times computed in the
// given timezone.
type Cron struct {
	sched cron.Schedule
	loc   *time.Location
	next  time.Time
	hasOK bool
}

// NewCron parses expr (a standard 5-field cron expression, or 6-field when
// WithCronSeconds is given, or a "@every"/"@daily"-style descriptor) and
// builds a Schedule that yields fire-times in loc, converted to UTC on
// yield. A nil loc defaults to time.UTC.
func NewCron(expr string, loc *time.Location, opts ...CronOption) (*Cron, error) {
	cfg := defaultCronConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	sched, err := cron.NewParser(cfg.fields).Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid cron expression %q: %w", expr, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	c := &Cron{sched: sched, loc: loc}
	c.reseed(time.Now())
	return c, nil
}

// MustNewCron is like NewCron but panics on a parse error.
func MustNewCron(expr string, loc *time.Location, opts ...CronOption) *Cron {
	c, err := NewCron(expr, loc, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Cron) reseed(from time.Time) {
	next := c.sched.Next(from.In(c.loc))
	c.hasOK = !next.IsZero()
	c.next = next.UTC()
}

func (c *Cron) PeekNext() (time.Time, bool) {
	return c.next, c.hasOK
}

func (c *Cron) Next() (time.Time, bool) {
	if !c.hasOK {
		return time.Time{}, false
	}
	t := c.next
	c.reseed(t)
	return t, true
}

// ForwardTo re-seeds the underlying cron iterator from t, in this Cron's
// timezone, so the next yield (if any) is strictly after t.
func (c *Cron) ForwardTo(t time.Time) {
	c.reseed(t)
}
