package schema

import (
	"errors"
	"testing"

	"chat-ocr-reconstruct-service/internal/models"
)

func TestValidateCapture_NilRequest(t *testing.T) {
	v := New(500)
	if err := v.ValidateCapture(nil); !errors.Is(err, ErrNilLines) {
		t.Errorf("expected ErrNilLines for nil request, got %v", err)
	}
}

func TestValidateCapture_NilLines(t *testing.T) {
	v := New(500)
	req := &models.CaptureRequest{CaptureID: "cap-1"}
	if err := v.ValidateCapture(req); !errors.Is(err, ErrNilLines) {
		t.Errorf("expected ErrNilLines for null lines, got %v", err)
	}
}

func TestValidateCapture_EmptyLinesValid(t *testing.T) {
	v := New(500)
	req := &models.CaptureRequest{Lines: []models.RawLine{}}
	if err := v.ValidateCapture(req); err != nil {
		t.Errorf("empty line list must be valid, got %v", err)
	}
}

func TestValidateCapture_LineCap(t *testing.T) {
	v := New(2)
	req := &models.CaptureRequest{Lines: []models.RawLine{
		{Text: "a"}, {Text: "b"}, {Text: "c"},
	}}
	err := v.ValidateCapture(req)
	if !errors.Is(err, ErrTooManyLines) {
		t.Errorf("expected ErrTooManyLines, got %v", err)
	}
}

func TestValidateCapture_CapDisabled(t *testing.T) {
	v := New(0)
	lines := make([]models.RawLine, 1000)
	for i := range lines {
		lines[i] = models.RawLine{Text: "x"}
	}
	if err := v.ValidateCapture(&models.CaptureRequest{Lines: lines}); err != nil {
		t.Errorf("cap disabled, expected no error, got %v", err)
	}
}

func TestValidateCapture_NegativeScreenWidth(t *testing.T) {
	v := New(500)
	req := &models.CaptureRequest{
		ScreenWidthPx: -1,
		Lines:         []models.RawLine{{Text: "안녕"}},
	}
	err := v.ValidateCapture(req)
	if err == nil {
		t.Fatal("expected error for negative screen width")
	}
	if errors.Is(err, ErrTooManyLines) {
		t.Error("negative width must not be reported as a line-cap violation")
	}
}
