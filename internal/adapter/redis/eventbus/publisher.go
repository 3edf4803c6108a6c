// Package eventbus publishes domain events to a Redis stream.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

// Metrics counts published and failed events by name.
type Metrics struct {
	Published *prometheus.CounterVec
	Failed    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Published: f.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_events_published_total",
			Help: "Total number of domain events written to the event stream",
		}, []string{"name"}),
		Failed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_events_publish_failures_total",
			Help: "Total number of domain events that could not be written",
		}, []string{"name"}),
	}
}

// Publisher appends each event as one stream entry with fields "name" and
// "envelope" (the JSON EventEnvelope).
type Publisher struct {
	client  redis.Cmdable
	stream  string
	maxLen  int64
	metrics *Metrics
	log     *slog.Logger
}

// NewPublisher creates a Publisher. maxLen <= 0 leaves the stream untrimmed.
// metrics may be nil.
func NewPublisher(log *slog.Logger, client redis.Cmdable, stream string, maxLen int64, metrics *Metrics) *Publisher {
	return &Publisher{
		client:  client,
		stream:  stream,
		maxLen:  maxLen,
		metrics: metrics,
		log:     log.With("component", "eventbus"),
	}
}

// Publish writes events in order, stopping at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	for _, e := range events {
		if err := p.publishOne(ctx, e); err != nil {
			if p.metrics != nil {
				p.metrics.Failed.WithLabelValues(e.Kind().String()).Inc()
			}
			return err
		}
		if p.metrics != nil {
			p.metrics.Published.WithLabelValues(e.Kind().String()).Inc()
		}
	}
	return nil
}

func (p *Publisher) publishOne(ctx context.Context, e domain.Event) error {
	body, err := json.Marshal(domain.NewEventEnvelope(e))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", e.Kind(), err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"name":     e.Kind().String(),
			"envelope": string(body),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", e.Kind(), err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("name", e.Kind().String()),
		slog.String("stream_id", id),
	)
	return nil
}

// LogPublisher only logs events. It is used when no Redis URL is configured.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log.With("component", "eventbus")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	for _, e := range events {
		p.log.InfoContext(ctx, "domain event",
			slog.String("name", e.Kind().String()),
			slog.Time("occurred_at", e.OccurredAt()),
		)
	}
	return nil
}
