package offline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the offline confirmation queue.
type Metrics struct {
	Pending prometheus.Gauge
	Synced  prometheus.Counter
	Failed  prometheus.Counter
}

// NewMetrics registers the queue metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Pending: f.NewGauge(prometheus.GaugeOpts{
			Name: "agenda_offline_pending_confirmations",
			Help: "Current number of dose confirmations waiting to be synced",
		}),
		Synced: f.NewCounter(prometheus.CounterOpts{
			Name: "agenda_offline_synced_total",
			Help: "Total number of queued dose confirmations delivered",
		}),
		Failed: f.NewCounter(prometheus.CounterOpts{
			Name: "agenda_offline_sync_failures_total",
			Help: "Total number of flush passes halted by a failed delivery",
		}),
	}
}

func (m *Metrics) setPending(n int) {
	if m != nil {
		m.Pending.Set(float64(n))
	}
}

func (m *Metrics) incSynced() {
	if m != nil {
		m.Synced.Inc()
	}
}

func (m *Metrics) incFailed() {
	if m != nil {
		m.Failed.Inc()
	}
}
