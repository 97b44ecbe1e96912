package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTickerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tk := &Ticker{Interval: time.Millisecond}
	calls := 0
	err := tk.Run(ctx, func(int64) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("callback must not run after cancellation, ran %d times", calls)
	}
}

func TestTickerReportsElapsedMillis(t *testing.T) {
	base := time.Unix(100, 0)
	step := 0
	tk := &Ticker{
		Interval: time.Millisecond,
		Now: func() time.Time {
			return base.Add(time.Duration(step) * 25 * time.Millisecond)
		},
	}

	stop := errors.New("stop")
	var stamps []int64
	err := tk.Run(context.Background(), func(now int64) error {
		stamps = append(stamps, now)
		step++
		if len(stamps) == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error to propagate, got %v", err)
	}
	if stamps[0] != 0 || stamps[1] != 25 || stamps[2] != 50 {
		t.Fatalf("unexpected timestamps %v", stamps)
	}
}

func TestTickerDoesNotRunWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewTicker(60).Run(ctx, func(int64) error {
		called = true
		return nil
	})
	if called {
		t.Fatal("callback ran with an already cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
