// Package suggest defines the interface for reply-suggestion backends.
package suggest

import (
	"context"

	"chat-ocr-reconstruct-service/internal/models"
)

// Adapter defines the interface to a remote reply-suggestion service. The
// flattened transcript (the bracket-label wire format) is what backends
// consume; the classification rides along so a backend can tune suggestions
// to the content type.
type Adapter interface {
	// Suggest returns suggested replies for the reconstructed transcript.
	Suggest(ctx context.Context, transcript string, c models.ClassificationResult) ([]string, error)

	// Close releases backend resources.
	Close() error
}
