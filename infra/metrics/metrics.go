// Package metrics records order-processing activity in Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/patternkit/patternkit/core/orders"
)

// ProcessorMetrics holds the collectors for one processor chain.
type ProcessorMetrics struct {
	processed *prometheus.CounterVec
	duration  prometheus.Histogram
}

// New registers order-processing metrics on the default Prometheus registerer.
func New() (*ProcessorMetrics, error) {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers metrics on the provided registerer. A nil
// registerer defaults to the global Prometheus registerer.
func NewWithRegistry(reg prometheus.Registerer) (*ProcessorMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	processed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_processed_total",
		Help: "Total number of orders processed",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orders_process_duration_seconds",
		Help:    "Time spent processing one order",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(processed); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			processed = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &ProcessorMetrics{processed: processed, duration: duration}, nil
}

// Instrument returns a decorator recording outcome counts and duration for
// every Process call. The wrapped processor runs exactly once per call.
func (m *ProcessorMetrics) Instrument() orders.Decorator {
	return func(next orders.Processor) orders.Processor {
		return orders.ProcessorFunc(func(o orders.Order) (string, error) {
			start := time.Now()
			res, err := next.Process(o)
			m.duration.Observe(time.Since(start).Seconds())
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			m.processed.WithLabelValues(outcome).Inc()
			return res, err
		})
	}
}
