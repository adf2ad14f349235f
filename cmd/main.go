package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"chat-ocr-reconstruct-service/internal/api/rest"
	"chat-ocr-reconstruct-service/internal/config"
	"chat-ocr-reconstruct-service/internal/events"
	"chat-ocr-reconstruct-service/internal/observability"
	"chat-ocr-reconstruct-service/internal/observability/logging"
	"chat-ocr-reconstruct-service/internal/schema"
	"chat-ocr-reconstruct-service/internal/service/reconstruct"
	"chat-ocr-reconstruct-service/internal/service/suggest"
	"chat-ocr-reconstruct-service/internal/service/suggest/httpapi"
	"chat-ocr-reconstruct-service/internal/service/suggest/mock"
)

func main() {
	cfg := config.Load()

	logging.Init(logging.Config{
		Level:      cfg.Observability.LogLevel,
		Format:     cfg.Observability.LogFormat,
		TimeFormat: time.RFC3339,
	})

	publisher := events.New(&events.Config{
		Enabled:              cfg.Kafka.Enabled,
		Brokers:              cfg.Kafka.Brokers,
		TopicTranscripts:     cfg.Kafka.TopicTranscripts,
		TopicClassifications: cfg.Kafka.TopicClassifications,
		Principal:            cfg.Service.Principal,
	})
	defer publisher.Close()

	suggester := newSuggester(cfg)
	if suggester != nil {
		defer suggester.Close()
	}

	obsServer := observability.NewServer(":"+cfg.Service.MetricsPort, nil)
	obsServer.Start()

	pipeline := reconstruct.New(cfg.Pipeline.ScreenWidthPx)
	validator := schema.New(cfg.Pipeline.MaxLines)
	api := rest.NewServer(pipeline, publisher, suggester, validator, cfg.Suggest.Provider)

	server := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      api.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Service.HTTPPort).Msg("Chat OCR reconstruct service started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown error")
	}
	if err := obsServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Observability shutdown error")
	}
}

// newSuggester selects the reply-suggestion backend. An unknown or "none"
// provider disables suggestions.
func newSuggester(cfg *config.Configuration) suggest.Adapter {
	switch cfg.Suggest.Provider {
	case "mock":
		log.Info().Msg("Using mock suggestion adapter")
		return mock.New()
	case "http":
		if cfg.Suggest.Endpoint == "" {
			log.Warn().Msg("SUGGEST_PROVIDER=http but SUGGEST_ENDPOINT is empty, disabling suggestions")
			return nil
		}
		log.Info().Str("endpoint", cfg.Suggest.Endpoint).Msg("Using HTTP suggestion adapter")
		return httpapi.New(cfg.Suggest.Endpoint, cfg.Suggest.Timeout)
	default:
		log.Info().Str("provider", cfg.Suggest.Provider).Msg("Suggestions disabled")
		return nil
	}
}
