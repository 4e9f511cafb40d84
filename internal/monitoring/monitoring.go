package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics owns the collectors of one application instance and the registry they
// are exposed from.
type Metrics struct {
	Registry        *prometheus.Registry
	RequestDuration *prometheus.HistogramVec
	EntityWrites    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		EntityWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entity_writes_total",
				Help: "Create, update and delete operations per entity and outcome.",
			},
			[]string{"entity", "action", "outcome"},
		),
	}
	m.Registry.MustRegister(
		m.RequestDuration,
		m.EntityWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordWrite counts one write. Safe on a nil receiver.
func (m *Metrics) RecordWrite(entity, action, outcome string) {
	if m == nil {
		return
	}
	m.EntityWrites.WithLabelValues(entity, action, outcome).Inc()
}
