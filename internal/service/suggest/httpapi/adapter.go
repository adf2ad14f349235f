// Package httpapi implements the suggestion adapter against a remote HTTP
// suggestion service.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"chat-ocr-reconstruct-service/internal/models"
)

// request is the payload sent to the suggestion backend. The transcript
// field carries the bracket-label wire format unchanged.
type request struct {
	Transcript string          `json:"transcript"`
	TextType   models.TextType `json:"textType"`
	Language   models.Language `json:"language"`
	Keywords   []string        `json:"keywords"`
}

type response struct {
	Suggestions []string `json:"suggestions"`
}

// Adapter calls a remote suggestion service over HTTP.
type Adapter struct {
	endpoint string
	client   *http.Client
}

// New creates an adapter for the given endpoint.
func New(endpoint string, timeout time.Duration) *Adapter {
	return &Adapter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Suggest posts the transcript and returns the backend's suggested replies.
func (a *Adapter) Suggest(ctx context.Context, transcript string, c models.ClassificationResult) ([]string, error) {
	payload, err := json.Marshal(request{
		Transcript: transcript,
		TextType:   c.TextType,
		Language:   c.Language,
		Keywords:   c.Keywords,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Warn().
			Int("status", resp.StatusCode).
			Str("endpoint", a.endpoint).
			Bytes("body", body).
			Msg("Suggestion backend returned non-OK status")
		return nil, fmt.Errorf("suggestion backend returned status %d", resp.StatusCode)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// Close is a no-op; the shared HTTP client needs no teardown.
func (a *Adapter) Close() error {
	return nil
}
