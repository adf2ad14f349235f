// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ServiceConfig identifies the service and its listen ports.
type ServiceConfig struct {
	Principal   string
	HTTPPort    string
	MetricsPort string
}

// PipelineConfig holds reconstruction knobs.
type PipelineConfig struct {
	// ScreenWidthPx anchors the position-signal thresholds when a capture
	// does not carry its own screen width.
	ScreenWidthPx int
	// MaxLines caps accepted captures at the service boundary. The pipeline
	// itself has no timeout; oversized inputs are rejected instead.
	MaxLines int
}

// SuggestConfig selects and configures the reply-suggestion backend.
type SuggestConfig struct {
	Provider string // none, mock, http
	Endpoint string
	Timeout  time.Duration
}

// KafkaConfig holds event publishing configuration.
type KafkaConfig struct {
	Enabled              bool
	Brokers              []string
	TopicTranscripts     string
	TopicClassifications string
}

// ObservabilityConfig holds logging configuration.
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string
}

// Configuration is the full service configuration.
type Configuration struct {
	Service       ServiceConfig
	Pipeline      PipelineConfig
	Suggest       SuggestConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// Load reads configuration from the environment with defaults.
func Load() *Configuration {
	return &Configuration{
		Service: ServiceConfig{
			Principal:   envOrDefault("SERVICE_PRINCIPAL", "svc-chat-ocr-reconstruct"),
			HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
			MetricsPort: envOrDefault("METRICS_PORT", "9090"),
		},
		Pipeline: PipelineConfig{
			ScreenWidthPx: envInt("PIPELINE_SCREEN_WIDTH_PX", 1080),
			MaxLines:      envInt("PIPELINE_MAX_LINES", 500),
		},
		Suggest: SuggestConfig{
			Provider: envOrDefault("SUGGEST_PROVIDER", "mock"),
			Endpoint: envOrDefault("SUGGEST_ENDPOINT", ""),
			Timeout:  envDuration("SUGGEST_TIMEOUT", 5*time.Second),
		},
		Kafka: KafkaConfig{
			Enabled:              envBool("KAFKA_ENABLED", false),
			Brokers:              envList("KAFKA_BROKERS", []string{"localhost:9092"}),
			TopicTranscripts:     envOrDefault("KAFKA_TOPIC_TRANSCRIPTS", "capture.transcript.reconstructed"),
			TopicClassifications: envOrDefault("KAFKA_TOPIC_CLASSIFICATIONS", "capture.transcript.classified"),
		},
		Observability: ObservabilityConfig{
			LogLevel:  envOrDefault("LOG_LEVEL", "info"),
			LogFormat: envOrDefault("LOG_FORMAT", "json"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
