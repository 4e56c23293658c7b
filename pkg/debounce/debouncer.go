// Package debounce coalesces the controller event firehose into
// batched entity snapshot writes.
package debounce

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aether-home/aether/pkg/models"
)

const (
	// DefaultFlushInterval is how often pending snapshots are written.
	DefaultFlushInterval = 1500 * time.Millisecond
	// DefaultCapacity bounds the intake queue. When full, the oldest
	// event is dropped; it would have been overwritten anyway for a
	// chatty entity, and for a quiet one the next event resyncs it.
	DefaultCapacity = 1000
)

// Sink receives one flushed batch. Implemented by the entity service.
type Sink func(ctx context.Context, batch []models.EntitySnapshot) error

// Stats are the debouncer's lifetime counters plus two point-in-time
// gauges: the queue not yet flushed and the retry backlog.
type Stats struct {
	Received uint64 `json:"received"`
	Dropped  uint64 `json:"dropped"`
	Flushed  uint64 `json:"flushed"`
	Failures uint64 `json:"failures"`

	QueueSize   int `json:"queue_size"`
	PendingSize int `json:"pending_size"`
}

// Debouncer buffers entity snapshots and flushes them on a fixed
// cadence. Per entity, only the latest snapshot in a window survives;
// intermediate states are intentionally lost.
type Debouncer struct {
	interval time.Duration
	capacity int
	sink     Sink
	logger   *slog.Logger

	mu    sync.Mutex
	queue []models.EntitySnapshot
	// pending holds snapshots whose last flush failed; they are
	// retried next tick unless a newer snapshot replaces them.
	pending map[string]models.EntitySnapshot
	stats   Stats

	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// New creates a debouncer. Zero interval or capacity use the defaults.
func New(interval time.Duration, capacity int, sink Sink, logger *slog.Logger) *Debouncer {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Debouncer{
		interval: interval,
		capacity: capacity,
		sink:     sink,
		logger:   logger,
		pending:  make(map[string]models.EntitySnapshot),
	}
}

// Offer enqueues one snapshot. Never blocks; when the queue is full
// the oldest entry is dropped.
func (d *Debouncer) Offer(snap models.EntitySnapshot) {
	if snap.EntityID == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stats.Received++
	if len(d.queue) >= d.capacity {
		d.queue = d.queue[1:]
		d.stats.Dropped++
	}
	d.queue = append(d.queue, snap)
}

// Start launches the flush loop.
func (d *Debouncer) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return fmt.Errorf("debouncer already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})
	d.running = true

	go d.run(ctx)
	d.logger.Info("debouncer started", "interval", d.interval, "capacity", d.capacity)
	return nil
}

// Stop halts the loop and performs a final flush so nothing observed
// before shutdown is lost.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.cancel()
	done := d.done
	d.running = false
	d.mu.Unlock()

	<-done
	d.Flush(context.Background())
	d.logger.Info("debouncer stopped")
}

// Stats returns a copy of the counters with the gauges filled in.
func (d *Debouncer) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.stats
	out.QueueSize = len(d.queue)
	out.PendingSize = len(d.pending)
	return out
}

func (d *Debouncer) run(ctx context.Context) {
	defer close(d.done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Flush(ctx)
		}
	}
}

// Flush drains the queue into the pending map (last write per entity
// wins) and writes the batch. On failure the batch stays pending and
// is retried next tick, with newer snapshots taking precedence.
func (d *Debouncer) Flush(ctx context.Context) {
	d.mu.Lock()
	for _, snap := range d.queue {
		d.pending[snap.EntityID] = snap
	}
	d.queue = d.queue[:0]

	if len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	batch := make([]models.EntitySnapshot, 0, len(d.pending))
	for _, snap := range d.pending {
		batch = append(batch, snap)
	}
	d.mu.Unlock()

	flushCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err := d.sink(flushCtx, batch)
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.stats.Failures++
		d.logger.Warn("debounce flush failed, batch kept for retry",
			"batch_size", len(batch), "error", err)
		return
	}
	// Pending is only touched here and flushes are serialized, so the
	// whole batch can be cleared. Events that arrived meanwhile are
	// still in the queue.
	for _, snap := range batch {
		delete(d.pending, snap.EntityID)
	}
	d.stats.Flushed += uint64(len(batch))
}
