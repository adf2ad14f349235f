// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chat_ocr_reconstruct"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Capture metrics
	CapturesTotal   prometheus.Counter
	CaptureDuration prometheus.Histogram

	// Pipeline metrics
	LinesReceived prometheus.Counter
	LinesDropped  *prometheus.CounterVec
	MessagesBuilt prometheus.Counter
	Attributions  *prometheus.CounterVec

	// Classification metrics
	Classifications   *prometheus.CounterVec
	EntitiesExtracted prometheus.Counter

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec

	// Suggestion client metrics
	SuggestLatency *prometheus.HistogramVec
	SuggestErrors  *prometheus.CounterVec

	// HTTP metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		CapturesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captures_total",
			Help:      "Total number of captures reconstructed",
		}),
		CaptureDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "capture_duration_seconds",
			Help:      "Duration of one reconstruction run in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		LinesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_received_total",
			Help:      "Total OCR lines received",
		}),
		LinesDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_dropped_total",
			Help:      "Total OCR lines dropped by the noise filter",
		}, []string{"rule"}),
		MessagesBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_built_total",
			Help:      "Total messages produced by the segment merger",
		}),
		Attributions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attributions_total",
			Help:      "Total line attributions by deciding signal",
		}, []string{"decision"}),

		Classifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Total classifications by text type",
		}, []string{"text_type"}),
		EntitiesExtracted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_extracted_total",
			Help:      "Total entities extracted from reconstructed text",
		}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),

		SuggestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "suggest_latency_seconds",
			Help:      "Reply-suggestion backend latency in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"provider"}),
		SuggestErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggest_errors_total",
			Help:      "Total reply-suggestion backend errors",
		}, []string{"provider"}),

		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path and status code",
		}, []string{"method", "path", "code"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path"}),
	}
}

// RecordCapture records one completed reconstruction run.
func (m *Metrics) RecordCapture(durationSeconds float64) {
	m.CapturesTotal.Inc()
	m.CaptureDuration.Observe(durationSeconds)
}

// RecordLinesReceived records raw OCR lines entering the pipeline.
func (m *Metrics) RecordLinesReceived(n int) {
	m.LinesReceived.Add(float64(n))
}

// RecordLineDropped records a line rejected by the named noise rule.
func (m *Metrics) RecordLineDropped(rule string) {
	m.LinesDropped.WithLabelValues(rule).Inc()
}

// RecordMessagesBuilt records messages produced by the merger.
func (m *Metrics) RecordMessagesBuilt(n int) {
	m.MessagesBuilt.Add(float64(n))
}

// RecordAttribution records which signal decided a line's speaker.
func (m *Metrics) RecordAttribution(decision string) {
	m.Attributions.WithLabelValues(decision).Inc()
}

// RecordClassification records the text type of one capture.
func (m *Metrics) RecordClassification(textType string, entityCount int) {
	m.Classifications.WithLabelValues(textType).Inc()
	m.EntitiesExtracted.Add(float64(entityCount))
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}

// RecordSuggest records a reply-suggestion backend call.
func (m *Metrics) RecordSuggest(provider string, err error, latencySeconds float64) {
	m.SuggestLatency.WithLabelValues(provider).Observe(latencySeconds)
	if err != nil {
		m.SuggestErrors.WithLabelValues(provider).Inc()
	}
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, code string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(method, path, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}
