// Package scheduler owns all recurring background work: insight
// schedule runs, discovery sync, retention, and the nightly trace
// evaluation.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultGracePeriod bounds how long Stop waits for running jobs.
const DefaultGracePeriod = 300 * time.Second

// AnalysisGracePeriod is the longer budget used when analysis jobs
// may be in flight.
const AnalysisGracePeriod = 600 * time.Second

// Job is one schedulable unit. The context is cancelled when the
// scheduler stops.
type Job func(ctx context.Context)

// Scheduler is a managed cron runner with idempotent job
// registration: registering the same job id with the same spec is a
// no-op, a changed spec replaces the entry. Per job id, overlapping
// runs are skipped.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	grace  time.Duration

	mu      sync.Mutex
	entries map[string]cron.EntryID
	specs   map[string]string
	inRun   map[string]bool

	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

// New creates a scheduler in the given timezone.
func New(loc *time.Location, grace time.Duration, logger *slog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		logger:  logger,
		grace:   grace,
		entries: make(map[string]cron.EntryID),
		specs:   make(map[string]string),
		inRun:   make(map[string]bool),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Register adds or updates a job. Safe to call repeatedly with the
// same arguments; only a spec change touches the cron table.
func (s *Scheduler) Register(jobID, spec string, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.specs[jobID]; ok {
		if existing == spec {
			return nil
		}
		s.cron.Remove(s.entries[jobID])
		delete(s.entries, jobID)
		delete(s.specs, jobID)
	}

	entryID, err := s.cron.AddFunc(spec, s.wrap(jobID, job))
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", jobID, err)
	}
	s.entries[jobID] = entryID
	s.specs[jobID] = spec
	s.logger.Info("job registered", "job_id", jobID, "spec", spec)
	return nil
}

// Remove drops a job if present.
func (s *Scheduler) Remove(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entryID, ok := s.entries[jobID]; ok {
		s.cron.Remove(entryID)
		delete(s.entries, jobID)
		delete(s.specs, jobID)
		s.logger.Info("job removed", "job_id", jobID)
	}
}

// JobIDs returns the registered job ids.
func (s *Scheduler) JobIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for id := range s.entries {
		out = append(out, id)
	}
	return out
}

// JobSpec pairs a cron spec with its job for SyncPrefix.
type JobSpec struct {
	Spec string
	Job  Job
}

// SyncPrefix reconciles the jobs under a naming prefix against a
// desired set: missing jobs are added, changed specs replaced, and
// jobs no longer desired are removed. Idempotent.
func (s *Scheduler) SyncPrefix(prefix string, desired map[string]JobSpec) error {
	for jobID, d := range desired {
		if err := s.Register(jobID, d.Spec, d.Job); err != nil {
			return err
		}
	}
	for _, jobID := range s.JobIDs() {
		if len(jobID) >= len(prefix) && jobID[:len(prefix)] == prefix {
			if _, ok := desired[jobID]; !ok {
				s.Remove(jobID)
			}
		}
	}
	return nil
}

// wrap enforces the no-overlap rule and recovers panics so one bad
// job cannot take the scheduler down.
func (s *Scheduler) wrap(jobID string, job Job) func() {
	return func() {
		s.mu.Lock()
		if s.inRun[jobID] {
			s.mu.Unlock()
			s.logger.Warn("job still running, skipping this tick", "job_id", jobID)
			return
		}
		s.inRun[jobID] = true
		ctx := s.ctx
		s.mu.Unlock()

		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("job panicked", "job_id", jobID, "panic", r)
			}
			s.mu.Lock()
			delete(s.inRun, jobID)
			s.mu.Unlock()
		}()

		start := time.Now()
		job(ctx)
		s.logger.Debug("job finished", "job_id", jobID, "elapsed", time.Since(start))
	}
}

// Start begins dispatching jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
	s.logger.Info("scheduler started", "grace", s.grace)
}

// Stop halts dispatch and waits up to the grace period for running
// jobs, then cancels their context.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(s.grace):
		s.logger.Warn("grace period elapsed, cancelling running jobs")
	}
	s.cancel()
	s.logger.Info("scheduler stopped")
}
