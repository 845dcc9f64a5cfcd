package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
)

func TestPollerRunsTicksOnInterval(t *testing.T) {
	var calls atomic.Int32
	notify := make(chan struct{}, 16)

	p := New("lifecycle", func(context.Context) error {
		calls.Add(1)
		notify <- struct{}{}
		return nil
	}, 10*time.Millisecond, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	for i := 0; i < 3; i++ {
		select {
		case <-notify:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for tick %d", i+1)
		}
	}

	cancel()
	p.Stop()

	if calls.Load() < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", calls.Load())
	}
	if !p.Status().IsReady() {
		t.Fatalf("expected ready status after successful ticks: %+v", p.Status())
	}
}

func TestPollerSkipsOverlappingCycles(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	p := New("scoring", func(context.Context) error {
		close(entered)
		<-release
		return nil
	}, time.Hour, logging.NewNop())

	go p.RunOnce(context.Background())
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first cycle to start")
	}

	if ran := p.RunOnce(context.Background()); ran {
		t.Fatal("expected overlapping cycle to be skipped")
	}
	close(release)

	if got := p.Status().SkippedCycles; got != 1 {
		t.Fatalf("expected 1 skipped cycle, got %d", got)
	}
}

func TestPollerRecordsFailuresUntilSuccess(t *testing.T) {
	tickErr := errors.New("provider down")
	var fail atomic.Bool
	fail.Store(true)

	p := New("lifecycle", func(context.Context) error {
		if fail.Load() {
			return tickErr
		}
		return nil
	}, time.Hour, logging.NewNop())

	for i := 0; i < 3; i++ {
		p.RunOnce(context.Background())
	}

	status := p.Status()
	if status.ConsecutiveFailures != 3 {
		t.Fatalf("expected 3 consecutive failures, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "provider down" {
		t.Fatalf("unexpected last error: %q", status.LastError)
	}
	if status.IsReady() {
		t.Fatal("expected not ready while failing")
	}

	fail.Store(false)
	p.RunOnce(context.Background())

	status = p.Status()
	if status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("expected failure state cleared, got %+v", status)
	}
	if !status.IsReady() {
		t.Fatal("expected ready after recovery")
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	notify := make(chan struct{}, 16)
	p := New("lifecycle", func(context.Context) error {
		select {
		case notify <- struct{}{}:
		default:
		}
		return nil
	}, 5*time.Millisecond, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	select {
	case <-notify:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first tick")
	}

	cancel()
	p.Stop()

	// drain anything in flight, then confirm the loop is quiet
	time.Sleep(20 * time.Millisecond)
	attempts := p.Status().LastAttempt
	time.Sleep(30 * time.Millisecond)
	if p.Status().LastAttempt != attempts {
		t.Fatal("expected no ticks after stop")
	}
}
