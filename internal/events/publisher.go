// Package events provides event publishing functionality.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"chat-ocr-reconstruct-service/internal/observability/metrics"
)

// Publisher publishes capture events to separate Kafka topics: one for
// reconstructed transcripts, one for content classifications.
type Publisher struct {
	writerTranscripts     *kafka.Writer
	writerClassifications *kafka.Writer
	principal             string
	topicTranscripts      string
	topicClassifications  string
	enabled               bool
	metrics               *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers              []string
	TopicTranscripts     string
	TopicClassifications string
	Principal            string
	Enabled              bool
}

// New creates a new Kafka event publisher. When disabled (or given no
// brokers) it runs in log-only mode: events are logged and counted but not
// written anywhere.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled: false,
			metrics: m,
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:            cfg.Principal,
			topicTranscripts:     cfg.TopicTranscripts,
			topicClassifications: cfg.TopicClassifications,
			enabled:              false,
			metrics:              m,
		}
	}

	// Longer dial timeout for DNS resolution in Kubernetes.
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	writerTranscripts := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicTranscripts,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	writerClassifications := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicClassifications,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicTranscripts", cfg.TopicTranscripts).
		Str("topicClassifications", cfg.TopicClassifications).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerTranscripts:     writerTranscripts,
		writerClassifications: writerClassifications,
		principal:             cfg.Principal,
		topicTranscripts:      cfg.TopicTranscripts,
		topicClassifications:  cfg.TopicClassifications,
		enabled:               true,
		metrics:               m,
	}
}

// PublishTranscript publishes a reconstructed-transcript event, keyed by
// capture ID.
func (p *Publisher) PublishTranscript(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerTranscripts, p.topicTranscripts, "transcript", key, event)
}

// PublishClassification publishes a classification event, keyed by capture
// ID.
func (p *Publisher) PublishClassification(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerClassifications, p.topicClassifications, "classification", key, event)
}

func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(eventType)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerTranscripts != nil {
		if e := p.writerTranscripts.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing transcripts writer")
			err = e
		}
	}
	if p.writerClassifications != nil {
		if e := p.writerClassifications.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing classifications writer")
			err = e
		}
	}
	return err
}
