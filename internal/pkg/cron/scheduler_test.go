package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnceExecutesEveryTask(t *testing.T) {
	var first, second atomic.Int32

	s := NewScheduler(nil)
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	// A failing task is logged, not propagated.
	assert.Equal(t, int32(1), second.Load())
}

func TestRunOnceContainsPanics(t *testing.T) {
	var after atomic.Int32

	s := NewScheduler(nil)
	s.AddJob("panics", time.Hour, func(ctx context.Context) error {
		panic("boom")
	})
	s.AddJob("after", time.Hour, func(ctx context.Context) error {
		after.Add(1)
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), after.Load())
}

func TestStartRunsTaskImmediately(t *testing.T) {
	ran := make(chan struct{})

	s := NewScheduler(nil)
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		close(ran)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run at startup")
	}
}

func TestStopWaitsForTasks(t *testing.T) {
	var runs atomic.Int32

	s := NewScheduler(nil)
	s.AddJob("counter", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	got := runs.Load()
	assert.GreaterOrEqual(t, got, int32(1))

	// No further runs after Stop returns.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, got, runs.Load())
}

func TestStopWithoutStart(t *testing.T) {
	s := NewScheduler(nil)
	assert.NotPanics(t, s.Stop)
}
