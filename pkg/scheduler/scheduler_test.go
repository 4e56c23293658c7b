package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s := New(time.UTC, time.Second, slog.Default())
	t.Cleanup(s.Stop)
	return s
}

func noopJob(context.Context) {}

func TestScheduler_Register(t *testing.T) {
	t.Run("same spec is a no-op", func(t *testing.T) {
		s := newTestScheduler(t)
		require.NoError(t, s.Register("retention", "0 3 * * *", noopJob))
		first := s.entries["retention"]

		require.NoError(t, s.Register("retention", "0 3 * * *", noopJob))
		assert.Equal(t, first, s.entries["retention"], "unchanged spec keeps the cron entry")
	})

	t.Run("changed spec replaces the entry", func(t *testing.T) {
		s := newTestScheduler(t)
		require.NoError(t, s.Register("retention", "0 3 * * *", noopJob))
		first := s.entries["retention"]

		require.NoError(t, s.Register("retention", "30 4 * * *", noopJob))
		assert.NotEqual(t, first, s.entries["retention"])
		assert.Equal(t, "30 4 * * *", s.specs["retention"])
	})

	t.Run("rejects an invalid spec", func(t *testing.T) {
		s := newTestScheduler(t)
		err := s.Register("bad", "not a cron spec", noopJob)
		assert.Error(t, err)
		assert.NotContains(t, s.specs, "bad")
	})
}

func TestScheduler_Remove(t *testing.T) {
	s := newTestScheduler(t)
	require.NoError(t, s.Register("discovery", "*/15 * * * *", noopJob))

	s.Remove("discovery")
	assert.Empty(t, s.JobIDs())

	s.Remove("discovery") // absent is fine
}

func TestScheduler_SyncPrefix(t *testing.T) {
	s := newTestScheduler(t)
	require.NoError(t, s.Register("retention", "0 3 * * *", noopJob))
	require.NoError(t, s.Register("insight:stale", "0 1 * * *", noopJob))

	desired := map[string]JobSpec{
		"insight:nightly": {Spec: "0 2 * * *", Job: noopJob},
		"insight:weekly":  {Spec: "0 5 * * 0", Job: noopJob},
	}
	require.NoError(t, s.SyncPrefix("insight:", desired))

	assert.ElementsMatch(t,
		[]string{"retention", "insight:nightly", "insight:weekly"},
		s.JobIDs(), "stale prefixed jobs go, unprefixed jobs stay")

	// A second sync with the same desired set changes nothing.
	nightly := s.entries["insight:nightly"]
	require.NoError(t, s.SyncPrefix("insight:", desired))
	assert.Equal(t, nightly, s.entries["insight:nightly"])
}

func TestScheduler_WrapSkipsOverlap(t *testing.T) {
	s := newTestScheduler(t)

	release := make(chan struct{})
	started := make(chan struct{})
	var runs atomic.Int32
	wrapped := s.wrap("slow", func(ctx context.Context) {
		runs.Add(1)
		close(started)
		<-release
	})

	go wrapped()
	<-started

	// A tick while the job is in flight is skipped, not queued.
	wrapped()
	assert.Equal(t, int32(1), runs.Load())

	close(release)
	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return !s.inRun["slow"]
	}, time.Second, 5*time.Millisecond)

	wrapped()
	assert.Equal(t, int32(2), runs.Load())
}

func TestScheduler_WrapRecoversPanic(t *testing.T) {
	s := newTestScheduler(t)
	wrapped := s.wrap("flaky", func(ctx context.Context) {
		panic("boom")
	})

	assert.NotPanics(t, wrapped)

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.False(t, s.inRun["flaky"], "panicked job is no longer marked running")
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(time.UTC, 50*time.Millisecond, slog.Default())

	var ticks atomic.Int32
	require.NoError(t, s.Register("fast", "@every 10ms", func(ctx context.Context) {
		ticks.Add(1)
	}))

	s.Start()
	s.Start() // idempotent

	require.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop() // idempotent

	settled := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, ticks.Load(), "no dispatch after stop")
}
