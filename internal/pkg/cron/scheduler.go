package cron

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// task is one registered background job.
type task struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Scheduler runs background tasks on fixed intervals. Each task fires once
// at startup and then on every tick until Stop is called.
type Scheduler struct {
	logger *slog.Logger

	mu    sync.Mutex
	tasks []task

	cancel context.CancelFunc
	done   sync.WaitGroup
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{logger: logger}
}

// AddJob registers a task. Tasks added after Start are not picked up until
// the next Start.
func (s *Scheduler) AddJob(name string, every time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task{name: name, every: every, run: run})
	s.logger.Info("background task registered", "task", name, "interval", every)
}

// Start launches one goroutine per registered task.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.cancel = cancel
	tasks := make([]task, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	for _, t := range tasks {
		s.done.Add(1)
		go func(t task) {
			defer s.done.Done()
			s.loop(ctx, t)
		}(t)
	}
	s.logger.Info("background scheduler started", "tasks", len(tasks))
}

// Stop cancels all running tasks and waits for them to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.done.Wait()
	s.logger.Info("background scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, t task) {
	ticker := time.NewTicker(t.every)
	defer ticker.Stop()

	// The first run happens right away so a restart never delays the task
	// by a full interval.
	s.runOne(ctx, t)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOne(ctx, t)
		}
	}
}

// runOne executes a single task run. A panicking task is logged and
// contained so it cannot take down the process or its sibling tasks.
func (s *Scheduler) runOne(ctx context.Context, t task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("background task panicked",
				"task", t.name,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	start := time.Now()
	if err := t.run(ctx); err != nil {
		s.logger.Error("background task failed",
			"task", t.name,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return
	}
	s.logger.Debug("background task finished",
		"task", t.name,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// RunOnce executes every registered task a single time on the caller's
// context, independent of Start.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	tasks := make([]task, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	for _, t := range tasks {
		s.runOne(ctx, t)
	}
}
