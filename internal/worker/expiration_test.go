package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type facadeStub struct {
	calls int32
	err   error
	n     int
}

func (f *facadeStub) ExpireBookings(ctx context.Context, asOf time.Time) (int, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.n, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweeperRunsImmediatelyOnStart(t *testing.T) {
	facade := &facadeStub{n: 2}
	sweeper := NewExpirationSweeper(facade, time.Hour, testLogger())

	sweeper.Start(context.Background())
	defer sweeper.Stop()

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&facade.calls) == 0 {
		select {
		case <-deadline:
			t.Fatal("sweep did not run on start")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeperTicks(t *testing.T) {
	facade := &facadeStub{}
	sweeper := NewExpirationSweeper(facade, 10*time.Millisecond, testLogger())

	sweeper.Start(context.Background())
	defer sweeper.Stop()

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&facade.calls) < 3 {
		select {
		case <-deadline:
			t.Fatalf("sweeps = %d, want at least 3", atomic.LoadInt32(&facade.calls))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeperStopHaltsSweeping(t *testing.T) {
	facade := &facadeStub{}
	sweeper := NewExpirationSweeper(facade, 10*time.Millisecond, testLogger())

	sweeper.Start(context.Background())
	sweeper.Stop()

	settled := atomic.LoadInt32(&facade.calls)
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt32(&facade.calls); got != settled {
		t.Fatalf("sweeps continued after Stop: %d -> %d", settled, got)
	}
}

func TestSweeperOutlivesStartContext(t *testing.T) {
	facade := &facadeStub{}
	sweeper := NewExpirationSweeper(facade, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	sweeper.Start(ctx)
	defer sweeper.Stop()

	<-ctx.Done()
	settled := atomic.LoadInt32(&facade.calls)

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&facade.calls) <= settled {
		select {
		case <-deadline:
			t.Fatalf("sweeping stalled after start context expired: stuck at %d sweeps", settled)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeperKeepsRunningAfterError(t *testing.T) {
	facade := &facadeStub{err: errors.New("db down")}
	sweeper := NewExpirationSweeper(facade, 10*time.Millisecond, testLogger())

	sweeper.Start(context.Background())
	defer sweeper.Stop()

	deadline := time.After(time.Second)
	for atomic.LoadInt32(&facade.calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper stopped after first error")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSweeperDefaultsInterval(t *testing.T) {
	sweeper := NewExpirationSweeper(&facadeStub{}, 0, testLogger())
	if sweeper.interval != time.Hour {
		t.Fatalf("interval = %s, want 1h", sweeper.interval)
	}
}
