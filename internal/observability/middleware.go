package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"chat-ocr-reconstruct-service/internal/observability/metrics"
)

// Middleware returns HTTP middleware that logs each request and records
// request metrics. The route pattern, not the raw URL, is used as the path
// label to keep cardinality bounded.
func Middleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}
			code := strconv.Itoa(ww.Status())

			m.RecordHTTPRequest(r.Method, path, code, duration.Seconds())

			log.Info().
				Str("method", r.Method).
				Str("path", path).
				Str("code", code).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", duration).
				Msg("HTTP request completed")
		})
	}
}
