package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFPS is returned when a frame rate limit is not positive.
var ErrInvalidFPS = errors.New("max fps must be positive")

// rateWindow is the span over which accepted ticks are counted before the
// observed frame rate is published.
const rateWindow int64 = 1000

// FrameClock throttles a stream of millisecond timestamps to a maximum frame
// rate and tracks the frame rate that was actually achieved.
type FrameClock struct {
	maxFPS      int
	minInterval int64

	started     bool
	last        int64
	windowStart int64
	counter     int
	observed    int
}

// NewFrameClock constructs a FrameClock that accepts at most maxFPS ticks per
// second.
func NewFrameClock(maxFPS int) (*FrameClock, error) {
	fc := &FrameClock{}
	if err := fc.SetMaxFPS(maxFPS); err != nil {
		return nil, err
	}
	return fc, nil
}

// SetMaxFPS changes the frame rate limit. It is safe to call from the main loop.
func (f *FrameClock) SetMaxFPS(maxFPS int) error {
	if maxFPS <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFPS, maxFPS)
	}
	f.maxFPS = maxFPS
	f.minInterval = 1000 / int64(maxFPS)
	return nil
}

// MaxFPS returns the configured frame rate limit.
func (f *FrameClock) MaxFPS() int { return f.maxFPS }

// MinInterval returns the minimum spacing between accepted ticks.
func (f *FrameClock) MinInterval() time.Duration {
	return time.Duration(f.minInterval) * time.Millisecond
}

// Tick offers a timestamp in milliseconds and reports whether a frame should
// be rendered for it. The first tick is always accepted.
func (f *FrameClock) Tick(nowMillis int64) bool {
	if f.started && nowMillis-f.last < f.minInterval {
		return false
	}
	if !f.started {
		f.started = true
		f.windowStart = nowMillis
	}
	f.last = nowMillis

	if nowMillis-f.windowStart >= rateWindow {
		f.observed = f.counter
		f.counter = 0
		f.windowStart = nowMillis
	}
	f.counter++
	return true
}

// LastTick returns the most recently accepted timestamp.
func (f *FrameClock) LastTick() int64 { return f.last }

// ObservedFPS returns the number of ticks accepted during the last completed
// one-second window.
func (f *FrameClock) ObservedFPS() int { return f.observed }

// Reset forgets all tick history while keeping the frame rate limit.
func (f *FrameClock) Reset() {
	f.started = false
	f.last = 0
	f.windowStart = 0
	f.counter = 0
	f.observed = 0
}
