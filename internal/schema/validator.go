// Package schema validates capture requests at the service boundary.
package schema

import (
	"errors"
	"fmt"

	"chat-ocr-reconstruct-service/internal/models"
)

// ErrNilLines marks the one contract violation the pipeline refuses: a
// request whose line list is absent or null. An empty list is valid input.
var ErrNilLines = errors.New("lines must be present (an empty list is allowed, null is not)")

// ErrTooManyLines marks a capture over the configured line cap.
var ErrTooManyLines = errors.New("capture exceeds the line cap")

// Validator checks capture requests before they reach the pipeline.
type Validator struct {
	maxLines int
}

// New creates a validator. maxLines <= 0 disables the line cap.
func New(maxLines int) *Validator {
	return &Validator{maxLines: maxLines}
}

// ValidateCapture checks the request shape. The pipeline has no internal
// timeout, so the line cap here is what bounds a reconstruction call.
func (v *Validator) ValidateCapture(req *models.CaptureRequest) error {
	if req == nil || req.Lines == nil {
		return ErrNilLines
	}
	if v.maxLines > 0 && len(req.Lines) > v.maxLines {
		return fmt.Errorf("%w: %d lines, limit is %d", ErrTooManyLines, len(req.Lines), v.maxLines)
	}
	if req.ScreenWidthPx < 0 {
		return fmt.Errorf("screenWidthPx must not be negative, got %d", req.ScreenWidthPx)
	}
	return nil
}
