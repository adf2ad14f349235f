// Package mock provides a mock suggestion adapter for running the service
// without a remote suggestion backend.
package mock

import (
	"context"
	"sync"

	"chat-ocr-reconstruct-service/internal/models"
)

// DefaultSuggestions are returned for every transcript. Real suggestion
// content is the remote service's concern; the mock only exercises the
// wiring.
var DefaultSuggestions = []string{
	"네, 알겠어요!",
	"좋아요, 그렇게 해요.",
	"지금은 어려울 것 같아요.",
}

// Adapter implements suggest.Adapter with fixed responses. It records the
// last transcript it was asked about so tests can assert the wire format
// reached the backend intact.
type Adapter struct {
	mu             sync.Mutex
	closed         bool
	calls          int
	lastTranscript string
}

// New creates a new mock suggestion adapter.
func New() *Adapter {
	return &Adapter{}
}

// Suggest returns the fixed suggestion set.
func (a *Adapter) Suggest(ctx context.Context, transcript string, c models.ClassificationResult) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil, nil
	}
	a.calls++
	a.lastTranscript = transcript
	out := make([]string, len(DefaultSuggestions))
	copy(out, DefaultSuggestions)
	return out, nil
}

// Close marks the adapter closed; further calls return nothing.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

// Calls returns how many times Suggest was invoked.
func (a *Adapter) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// LastTranscript returns the transcript from the most recent Suggest call.
func (a *Adapter) LastTranscript() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastTranscript
}
