package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"tweet-insights-srv/pkg/log"
)

// DefaultJobTimeout bounds a single scheduled run.
const DefaultJobTimeout = 30 * time.Minute

// Job represents a scheduled task
type Job func(ctx context.Context) error

// Scheduler runs named jobs on cron schedules. Overlapping runs of the same job are skipped.
type Scheduler struct {
	l          log.Logger
	cron       *cron.Cron
	mu         sync.Mutex
	jobs       map[string]cron.EntryID
	jobTimeout time.Duration
}

// New creates a new scheduler with the given timezone
func New(l log.Logger, timezone string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Scheduler{
		l:          l,
		cron:       c,
		jobs:       make(map[string]cron.EntryID),
		jobTimeout: DefaultJobTimeout,
	}, nil
}

// AddJob adds a job with a standard five-field cron schedule, e.g. "0 6 * * *".
func (s *Scheduler) AddJob(name, schedule string, job Job) error {
	entryID, err := s.cron.AddFunc(schedule, func() {
		_ = s.run(name, job)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.mu.Lock()
	s.jobs[name] = entryID
	s.mu.Unlock()

	s.l.Infof(context.Background(), "pkg.scheduler.AddJob: added job %s (schedule: %s)", name, schedule)
	return nil
}

// RunNow executes job immediately in the caller's goroutine.
func (s *Scheduler) RunNow(name string, job Job) error {
	return s.run(name, job)
}

func (s *Scheduler) run(name string, job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	s.l.Infof(ctx, "pkg.scheduler.run: starting job %s", name)
	start := time.Now()

	if err := job(ctx); err != nil {
		s.l.Errorf(ctx, "pkg.scheduler.run: job %s failed: %v", name, err)
		return err
	}
	s.l.Infof(ctx, "pkg.scheduler.run: job %s completed in %v", name, time.Since(start))
	return nil
}

// NextRun returns the next activation of a job, or the zero time if it is unknown.
func (s *Scheduler) NextRun(name string) time.Time {
	s.mu.Lock()
	id, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler. The returned context is done once running jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
