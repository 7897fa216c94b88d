package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transfer_market"

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	TransferTransitionsTotal *prometheus.CounterVec
	TransfersCreatedTotal    *prometheus.CounterVec
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		TransferTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "transfers",
				Name:      "transitions_total",
				Help:      "Transfer status transitions committed by responses",
			},
			[]string{"from", "to"},
		),
		TransfersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "transfers",
				Name:      "created_total",
				Help:      "Transfers created, by initial status",
			},
			[]string{"status"},
		),
	}
}

func (m *Metrics) ObserveTransition(from, to string) {
	m.TransferTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveCreated(status string) {
	m.TransfersCreatedTotal.WithLabelValues(status).Inc()
}
