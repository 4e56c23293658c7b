package debounce

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-home/aether/pkg/models"
)

// captureSink records every flushed batch and can be told to fail.
type captureSink struct {
	mu      sync.Mutex
	batches [][]models.EntitySnapshot
	err     error
}

func (c *captureSink) fn(_ context.Context, batch []models.EntitySnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	copied := make([]models.EntitySnapshot, len(batch))
	copy(copied, batch)
	c.batches = append(c.batches, copied)
	return nil
}

func (c *captureSink) last() []models.EntitySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.batches) == 0 {
		return nil
	}
	return c.batches[len(c.batches)-1]
}

func (c *captureSink) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func snap(entityID, state string) models.EntitySnapshot {
	return models.EntitySnapshot{EntityID: entityID, State: state}
}

func stateOf(batch []models.EntitySnapshot, entityID string) (string, bool) {
	for _, s := range batch {
		if s.EntityID == entityID {
			return s.State, true
		}
	}
	return "", false
}

func TestDebouncer_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("last snapshot per entity wins", func(t *testing.T) {
		sink := &captureSink{}
		d := New(time.Hour, 0, sink.fn, slog.Default())

		d.Offer(snap("light.porch", "off"))
		d.Offer(snap("light.porch", "on"))
		d.Offer(snap("sensor.kitchen_temp", "21.4"))
		assert.Equal(t, 3, d.Stats().QueueSize)
		d.Flush(ctx)

		batch := sink.last()
		require.Len(t, batch, 2)
		state, ok := stateOf(batch, "light.porch")
		require.True(t, ok)
		assert.Equal(t, "on", state)

		stats := d.Stats()
		assert.Equal(t, uint64(3), stats.Received)
		assert.Equal(t, uint64(2), stats.Flushed)
		assert.Zero(t, stats.QueueSize)
		assert.Zero(t, stats.PendingSize)
	})

	t.Run("empty flush skips the sink", func(t *testing.T) {
		sink := &captureSink{}
		d := New(time.Hour, 0, sink.fn, slog.Default())
		d.Flush(ctx)
		assert.Empty(t, sink.batches)
	})

	t.Run("failed batch is retried with newer snapshots winning", func(t *testing.T) {
		sink := &captureSink{}
		d := New(time.Hour, 0, sink.fn, slog.Default())

		sink.setErr(assert.AnError)
		d.Offer(snap("light.porch", "off"))
		d.Flush(ctx)
		assert.Empty(t, sink.batches)
		assert.Equal(t, uint64(1), d.Stats().Failures)
		assert.Equal(t, 1, d.Stats().PendingSize)

		// A newer state arrives before the retry succeeds.
		sink.setErr(nil)
		d.Offer(snap("light.porch", "on"))
		d.Flush(ctx)

		batch := sink.last()
		require.Len(t, batch, 1)
		assert.Equal(t, "on", batch[0].State)

		// Nothing left pending once the retry lands.
		d.Flush(ctx)
		assert.Len(t, sink.batches, 1)
	})

	t.Run("overflow drops the oldest event", func(t *testing.T) {
		sink := &captureSink{}
		d := New(time.Hour, 2, sink.fn, slog.Default())

		d.Offer(snap("a.one", "1"))
		d.Offer(snap("a.two", "2"))
		d.Offer(snap("a.three", "3"))
		d.Flush(ctx)

		batch := sink.last()
		require.Len(t, batch, 2)
		_, kept := stateOf(batch, "a.one")
		assert.False(t, kept, "the oldest event is dropped on overflow")
		assert.Equal(t, uint64(1), d.Stats().Dropped)
	})

	t.Run("blank entity ids are ignored", func(t *testing.T) {
		sink := &captureSink{}
		d := New(time.Hour, 0, sink.fn, slog.Default())
		d.Offer(models.EntitySnapshot{State: "orphan"})
		d.Flush(ctx)
		assert.Empty(t, sink.batches)
		assert.Zero(t, d.Stats().Received)
	})
}

func TestDebouncer_StartStop(t *testing.T) {
	sink := &captureSink{}
	d := New(10*time.Millisecond, 0, sink.fn, slog.Default())

	require.NoError(t, d.Start())
	assert.Error(t, d.Start(), "second start is rejected")

	d.Offer(snap("light.porch", "on"))
	require.Eventually(t, func() bool {
		return len(sink.last()) == 1
	}, time.Second, 5*time.Millisecond, "ticker flushes the queue")

	// Stop performs a final flush for anything still buffered.
	d.Offer(snap("sensor.kitchen_temp", "21.4"))
	d.Stop()
	_, ok := stateOf(sink.last(), "sensor.kitchen_temp")
	assert.True(t, ok)

	d.Stop() // idempotent
}
