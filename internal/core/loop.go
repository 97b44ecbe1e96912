package core

import (
	"context"
	"time"
)

// Ticker delivers one timestamp per refresh interval to a callback until its
// context is cancelled. Timestamps are milliseconds since Run started.
type Ticker struct {
	Interval time.Duration
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

// NewTicker returns a Ticker firing at the given refresh rate.
func NewTicker(hz int) *Ticker {
	if hz <= 0 {
		hz = 60
	}
	return &Ticker{Interval: time.Second / time.Duration(hz)}
}

// Run invokes fn once per interval. Cancellation is checked at the top of each
// iteration, so fn never runs after ctx is done. It returns ctx.Err() on
// cancellation or the first error returned by fn.
func (t *Ticker) Run(ctx context.Context, fn func(nowMillis int64) error) error {
	now := t.Now
	if now == nil {
		now = time.Now
	}
	interval := t.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(now().Sub(start).Milliseconds()); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
