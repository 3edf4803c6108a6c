// Package offline keeps dose confirmations made without connectivity and
// replays them, in order, once the server is reachable again.
package offline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// PendingConfirmation is a dose confirmation waiting to be delivered.
type PendingConfirmation struct {
	LogID     string
	CreatedAt time.Time
}

// Handler delivers one confirmation. A non-nil error halts the flush.
type Handler func(ctx context.Context, p PendingConfirmation) error

// FlushResult describes a single flush pass.
type FlushResult struct {
	Synced    int
	Remaining int
	// Halted is set when a handler failure or a cancelled context stopped
	// the pass before the queue drained.
	Halted bool
	Err    error
}

// Queue is an in-memory FIFO of pending confirmations. Its contents are lost
// when the process exits.
type Queue struct {
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time

	mu    sync.Mutex
	items []PendingConfirmation

	flight singleflight.Group
}

// NewQueue creates an empty queue. metrics may be nil.
func NewQueue(log *slog.Logger, metrics *Metrics) *Queue {
	return &Queue{
		log:     log.With("component", "offline_queue"),
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Enqueue appends logID at the tail, stamped with the current time.
// Duplicates are kept.
func (q *Queue) Enqueue(logID string) {
	q.EnqueueAt(logID, q.now())
}

// EnqueueAt appends a confirmation recorded at createdAt.
func (q *Queue) EnqueueAt(logID string, createdAt time.Time) {
	q.mu.Lock()
	q.items = append(q.items, PendingConfirmation{LogID: logID, CreatedAt: createdAt.UTC()})
	n := len(q.items)
	q.mu.Unlock()

	q.metrics.setPending(n)
	q.log.Debug("confirmation queued", slog.String("log_id", logID), slog.Int("pending", n))
}

// Peek returns a copy of the pending confirmations, head first.
func (q *Queue) Peek() []PendingConfirmation {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]PendingConfirmation, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Flush delivers pending confirmations head first, one at a time. The first
// failure stops the pass and leaves that entry and everything behind it
// queued. Concurrent calls share the pass already in progress.
//
// ctx is checked between items only; an item already handed to handler is
// always allowed to finish.
func (q *Queue) Flush(ctx context.Context, handler Handler) FlushResult {
	v, _, _ := q.flight.Do("flush", func() (any, error) {
		return q.flush(ctx, handler), nil
	})
	return v.(FlushResult)
}

func (q *Queue) flush(ctx context.Context, handler Handler) FlushResult {
	var res FlushResult

	for {
		if err := ctx.Err(); err != nil {
			res.Halted = true
			res.Err = err
			break
		}

		head, ok := q.head()
		if !ok {
			break
		}

		if err := handler(ctx, head); err != nil {
			q.metrics.incFailed()
			q.log.WarnContext(ctx, "confirmation sync failed, halting flush",
				slog.String("log_id", head.LogID),
				slog.String("error", err.Error()),
			)
			res.Halted = true
			res.Err = err
			break
		}

		q.popHead()
		q.metrics.incSynced()
		res.Synced++
	}

	res.Remaining = q.Len()
	q.metrics.setPending(res.Remaining)
	if res.Synced > 0 || res.Halted {
		q.log.InfoContext(ctx, "flush finished",
			slog.Int("synced", res.Synced),
			slog.Int("remaining", res.Remaining),
			slog.Bool("halted", res.Halted),
		)
	}
	return res
}

func (q *Queue) head() (PendingConfirmation, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return PendingConfirmation{}, false
	}
	return q.items[0], true
}

// popHead drops the head. Only the running flush removes entries, so the
// head is still the item that was just delivered.
func (q *Queue) popHead() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items[0] = PendingConfirmation{}
	q.items = q.items[1:]
}
