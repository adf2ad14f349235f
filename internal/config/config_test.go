package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear relevant env vars
	envVars := []string{
		"SERVICE_PRINCIPAL", "HTTP_PORT", "METRICS_PORT",
		"PIPELINE_SCREEN_WIDTH_PX", "PIPELINE_MAX_LINES",
		"SUGGEST_PROVIDER", "SUGGEST_ENDPOINT", "SUGGEST_TIMEOUT",
		"KAFKA_ENABLED", "KAFKA_BROKERS",
		"KAFKA_TOPIC_TRANSCRIPTS", "KAFKA_TOPIC_CLASSIFICATIONS",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg := Load()

	// Service defaults
	if cfg.Service.Principal != "svc-chat-ocr-reconstruct" {
		t.Errorf("expected default principal 'svc-chat-ocr-reconstruct', got %s", cfg.Service.Principal)
	}
	if cfg.Service.HTTPPort != "8080" {
		t.Errorf("expected default HTTP port '8080', got %s", cfg.Service.HTTPPort)
	}
	if cfg.Service.MetricsPort != "9090" {
		t.Errorf("expected default metrics port '9090', got %s", cfg.Service.MetricsPort)
	}

	// Pipeline defaults
	if cfg.Pipeline.ScreenWidthPx != 1080 {
		t.Errorf("expected default screen width 1080, got %d", cfg.Pipeline.ScreenWidthPx)
	}
	if cfg.Pipeline.MaxLines != 500 {
		t.Errorf("expected default max lines 500, got %d", cfg.Pipeline.MaxLines)
	}

	// Suggest defaults
	if cfg.Suggest.Provider != "mock" {
		t.Errorf("expected default suggest provider 'mock', got %s", cfg.Suggest.Provider)
	}
	if cfg.Suggest.Timeout != 5*time.Second {
		t.Errorf("expected default suggest timeout 5s, got %v", cfg.Suggest.Timeout)
	}

	// Kafka defaults
	if cfg.Kafka.Enabled {
		t.Error("expected Kafka disabled by default")
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "localhost:9092" {
		t.Errorf("expected default brokers [localhost:9092], got %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.TopicTranscripts != "capture.transcript.reconstructed" {
		t.Errorf("unexpected default transcripts topic %s", cfg.Kafka.TopicTranscripts)
	}
	if cfg.Kafka.TopicClassifications != "capture.transcript.classified" {
		t.Errorf("unexpected default classifications topic %s", cfg.Kafka.TopicClassifications)
	}

	// Observability defaults
	if cfg.Observability.LogLevel != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.Observability.LogLevel)
	}
	if cfg.Observability.LogFormat != "json" {
		t.Errorf("expected default log format 'json', got %s", cfg.Observability.LogFormat)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("SERVICE_PRINCIPAL", "custom-principal")
	os.Setenv("HTTP_PORT", "8888")
	os.Setenv("METRICS_PORT", "9999")
	os.Setenv("PIPELINE_SCREEN_WIDTH_PX", "720")
	os.Setenv("PIPELINE_MAX_LINES", "1000")
	os.Setenv("SUGGEST_PROVIDER", "http")
	os.Setenv("SUGGEST_ENDPOINT", "http://suggester:8080/v1/suggest")
	os.Setenv("SUGGEST_TIMEOUT", "10s")
	os.Setenv("KAFKA_ENABLED", "true")
	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("SERVICE_PRINCIPAL")
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("METRICS_PORT")
		os.Unsetenv("PIPELINE_SCREEN_WIDTH_PX")
		os.Unsetenv("PIPELINE_MAX_LINES")
		os.Unsetenv("SUGGEST_PROVIDER")
		os.Unsetenv("SUGGEST_ENDPOINT")
		os.Unsetenv("SUGGEST_TIMEOUT")
		os.Unsetenv("KAFKA_ENABLED")
		os.Unsetenv("KAFKA_BROKERS")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg := Load()

	if cfg.Service.Principal != "custom-principal" {
		t.Errorf("expected principal 'custom-principal', got %s", cfg.Service.Principal)
	}
	if cfg.Service.HTTPPort != "8888" {
		t.Errorf("expected HTTP port '8888', got %s", cfg.Service.HTTPPort)
	}
	if cfg.Service.MetricsPort != "9999" {
		t.Errorf("expected metrics port '9999', got %s", cfg.Service.MetricsPort)
	}
	if cfg.Pipeline.ScreenWidthPx != 720 {
		t.Errorf("expected screen width 720, got %d", cfg.Pipeline.ScreenWidthPx)
	}
	if cfg.Pipeline.MaxLines != 1000 {
		t.Errorf("expected max lines 1000, got %d", cfg.Pipeline.MaxLines)
	}
	if cfg.Suggest.Provider != "http" {
		t.Errorf("expected suggest provider 'http', got %s", cfg.Suggest.Provider)
	}
	if cfg.Suggest.Endpoint != "http://suggester:8080/v1/suggest" {
		t.Errorf("unexpected suggest endpoint %s", cfg.Suggest.Endpoint)
	}
	if cfg.Suggest.Timeout != 10*time.Second {
		t.Errorf("expected suggest timeout 10s, got %v", cfg.Suggest.Timeout)
	}
	if !cfg.Kafka.Enabled {
		t.Error("expected Kafka enabled")
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "kafka-1:9092" || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Errorf("expected trimmed broker list, got %v", cfg.Kafka.Brokers)
	}
	if cfg.Observability.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Observability.LogLevel)
	}
}

func TestLoad_InvalidValues_FallbackToDefaults(t *testing.T) {
	os.Setenv("PIPELINE_SCREEN_WIDTH_PX", "not-a-number")
	os.Setenv("PIPELINE_MAX_LINES", "invalid")
	os.Setenv("SUGGEST_TIMEOUT", "invalid")
	os.Setenv("KAFKA_ENABLED", "invalid")

	defer func() {
		os.Unsetenv("PIPELINE_SCREEN_WIDTH_PX")
		os.Unsetenv("PIPELINE_MAX_LINES")
		os.Unsetenv("SUGGEST_TIMEOUT")
		os.Unsetenv("KAFKA_ENABLED")
	}()

	cfg := Load()

	if cfg.Pipeline.ScreenWidthPx != 1080 {
		t.Errorf("expected default screen width on invalid input, got %d", cfg.Pipeline.ScreenWidthPx)
	}
	if cfg.Pipeline.MaxLines != 500 {
		t.Errorf("expected default max lines on invalid input, got %d", cfg.Pipeline.MaxLines)
	}
	if cfg.Suggest.Timeout != 5*time.Second {
		t.Errorf("expected default suggest timeout on invalid input, got %v", cfg.Suggest.Timeout)
	}
	if cfg.Kafka.Enabled {
		t.Error("expected Kafka disabled on invalid input")
	}
}

func TestEnvList(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected []string
	}{
		{"single", "a:9092", []string{"a:9092"}},
		{"multiple with spaces", "a:9092, b:9092 ,c:9092", []string{"a:9092", "b:9092", "c:9092"}},
		{"only commas", ",,", []string{"fallback"}},
		{"empty", "", []string{"fallback"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_LIST_VAR"
			if tt.envValue != "" {
				os.Setenv(key, tt.envValue)
			} else {
				os.Unsetenv(key)
			}
			defer os.Unsetenv(key)

			got := envList(key, []string{"fallback"})
			if len(got) != len(tt.expected) {
				t.Fatalf("envList(%q) = %v, want %v", tt.envValue, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("envList(%q)[%d] = %q, want %q", tt.envValue, i, got[i], tt.expected[i])
				}
			}
		})
	}
}
