// Package rest exposes the reconstruction pipeline over HTTP.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"chat-ocr-reconstruct-service/internal/events"
	"chat-ocr-reconstruct-service/internal/models"
	"chat-ocr-reconstruct-service/internal/observability"
	"chat-ocr-reconstruct-service/internal/observability/logging"
	"chat-ocr-reconstruct-service/internal/observability/metrics"
	"chat-ocr-reconstruct-service/internal/schema"
	"chat-ocr-reconstruct-service/internal/service/reconstruct"
	"chat-ocr-reconstruct-service/internal/service/suggest"
)

// Server handles capture reconstruction requests.
type Server struct {
	pipeline        *reconstruct.Pipeline
	publisher       *events.Publisher
	suggester       suggest.Adapter
	validator       *schema.Validator
	suggestProvider string
	metrics         *metrics.Metrics
}

// NewServer wires the pipeline, publisher and optional suggestion adapter.
// suggester may be nil; responses then carry no suggestions.
func NewServer(pipeline *reconstruct.Pipeline, publisher *events.Publisher, suggester suggest.Adapter, validator *schema.Validator, suggestProvider string) *Server {
	return &Server{
		pipeline:        pipeline,
		publisher:       publisher,
		suggester:       suggester,
		validator:       validator,
		suggestProvider: suggestProvider,
		metrics:         metrics.DefaultMetrics,
	}
}

// Router constructs the HTTP router for the service.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observability.Middleware(s.metrics))

	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Post("/v1/reconstruct", s.handleReconstruct)

	return r
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleReconstruct(w http.ResponseWriter, r *http.Request) {
	var req models.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	if err := s.validator.ValidateCapture(&req); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, schema.ErrTooManyLines) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, errorBody{Error: err.Error()})
		return
	}

	if req.CaptureID == "" {
		req.CaptureID = uuid.NewString()
	}
	logger := logging.WithCapture(req.CaptureID, req.DeviceID)

	result, err := s.pipeline.Reconstruct(req.Lines, req.ScreenWidthPx)
	if err != nil {
		// Only the nil-lines contract violation reaches here, and the
		// validator already rejected it; treat anything else as a bug.
		logger.Error().Err(err).Msg("Reconstruction failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "reconstruction failed"})
		return
	}

	logger.Info().
		Int("linesIn", len(req.Lines)).
		Int("messages", len(result.Messages)).
		Str("textType", string(result.Classification.TextType)).
		Float64("ocrConfidence", result.Classification.OCRConfidence).
		Msg("Capture reconstructed")

	s.publishEvents(r, &req, result)

	resp := models.CaptureResponse{
		CaptureID:      req.CaptureID,
		Messages:       result.Messages,
		Classification: result.Classification,
		Transcript:     result.Transcript,
	}
	if s.suggester != nil && len(result.Messages) > 0 {
		resp.Suggestions = s.suggestReplies(r, &req, result)
	}

	writeJSON(w, http.StatusOK, resp)
}

// publishEvents emits the transcript and classification events. Publish
// failures are logged and counted but never fail the response.
func (s *Server) publishEvents(r *http.Request, req *models.CaptureRequest, result *reconstruct.Result) {
	if s.publisher == nil {
		return
	}
	ctx := r.Context()
	now := time.Now().UnixMilli()

	_ = s.publisher.PublishTranscript(ctx, req.CaptureID, models.TranscriptReconstructed{
		EventType:     models.EventTranscriptReconstructed,
		CaptureID:     req.CaptureID,
		DeviceID:      req.DeviceID,
		Timestamp:     now,
		Transcript:    result.Transcript,
		MessageCount:  len(result.Messages),
		OCRConfidence: result.Classification.OCRConfidence,
	})

	_ = s.publisher.PublishClassification(ctx, req.CaptureID, models.TranscriptClassified{
		EventType:   models.EventTranscriptClassified,
		CaptureID:   req.CaptureID,
		DeviceID:    req.DeviceID,
		Timestamp:   now,
		TextType:    result.Classification.TextType,
		Language:    result.Classification.Language,
		Keywords:    result.Classification.Keywords,
		EntityCount: len(result.Classification.Entities),
	})
}

// suggestReplies asks the suggestion backend for replies. Backend failures
// degrade to no suggestions.
func (s *Server) suggestReplies(r *http.Request, req *models.CaptureRequest, result *reconstruct.Result) []string {
	start := time.Now()
	suggestions, err := s.suggester.Suggest(r.Context(), result.Transcript, result.Classification)
	s.metrics.RecordSuggest(s.suggestProvider, err, time.Since(start).Seconds())
	if err != nil {
		logger := logging.WithProvider(req.CaptureID, s.suggestProvider)
		logger.Warn().Err(err).Msg("Suggestion backend failed, returning none")
		return nil
	}
	return suggestions
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
