package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricTransfersTotal          = "transfers_total"
	MetricTransferReplays         = "transfer_replays_total"
	MetricTransferDecryptFailures = "transfer_decrypt_failures_total"
	MetricCardStatusChanges       = "card_status_changes_total"
	MetricTransferAmount          = "transfer_amount"
	MetricTransferDurationSuccess = "transfer_duration_success"
	MetricTransferDurationFailed  = "transfer_duration_failed"
)

type PrometheusMetrics struct {
	transfersTotal          *prometheus.CounterVec
	transferDuration        *prometheus.HistogramVec
	transferAmount          prometheus.Histogram
	transferReplays         prometheus.Counter
	transferDecryptFailures prometheus.Counter
	cardStatusChanges       *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service metrics on reg. Tests pass a
// fresh registry; the server passes its own registry, which also backs /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricTransfersTotal,
				Help: "Total number of transfers processed",
			},
			[]string{"status"},
		),
		transferDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"outcome"},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricTransferAmount,
				Help:    "Completed transfer amount in EUR",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		transferReplays: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricTransferReplays,
				Help: "Total number of resubmitted payloads answered from a stored record",
			},
		),
		transferDecryptFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: MetricTransferDecryptFailures,
				Help: "Total number of transfer payloads that could not be decrypted",
			},
		),
		cardStatusChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricCardStatusChanges,
				Help: "Total number of card activations and deactivations",
			},
			[]string{"active"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransfersTotal:
		if status := tags["status"]; status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	case MetricTransferReplays:
		m.transferReplays.Inc()
	case MetricTransferDecryptFailures:
		m.transferDecryptFailures.Inc()
	case MetricCardStatusChanges:
		if active := tags["active"]; active != "" {
			m.cardStatusChanges.WithLabelValues(active).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricTransferDurationSuccess:
		m.transferDuration.WithLabelValues("success").Observe(float64(duration.Milliseconds()))
	case MetricTransferDurationFailed:
		m.transferDuration.WithLabelValues("failed").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricTransferAmount {
		m.transferAmount.Observe(value)
	}
}
