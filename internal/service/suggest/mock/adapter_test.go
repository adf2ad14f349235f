package mock

import (
	"context"
	"testing"

	"chat-ocr-reconstruct-service/internal/models"
)

func TestSuggest_ReturnsFixedSet(t *testing.T) {
	a := New()

	got, err := a.Suggest(context.Background(), "[엄마] 밥 먹었어?", models.ClassificationResult{TextType: models.TypeQuestion})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != len(DefaultSuggestions) {
		t.Fatalf("expected %d suggestions, got %d", len(DefaultSuggestions), len(got))
	}
	for i := range got {
		if got[i] != DefaultSuggestions[i] {
			t.Errorf("suggestion %d: expected %q, got %q", i, DefaultSuggestions[i], got[i])
		}
	}
}

func TestSuggest_RecordsCalls(t *testing.T) {
	a := New()

	a.Suggest(context.Background(), "first", models.ClassificationResult{})
	a.Suggest(context.Background(), "second", models.ClassificationResult{})

	if a.Calls() != 2 {
		t.Errorf("expected 2 calls, got %d", a.Calls())
	}
	if a.LastTranscript() != "second" {
		t.Errorf("expected last transcript 'second', got %q", a.LastTranscript())
	}
}

func TestSuggest_ResultIsACopy(t *testing.T) {
	a := New()

	got, _ := a.Suggest(context.Background(), "x", models.ClassificationResult{})
	got[0] = "mutated"

	again, _ := a.Suggest(context.Background(), "x", models.ClassificationResult{})
	if again[0] == "mutated" {
		t.Error("mutating a returned slice must not affect later calls")
	}
}

func TestClose_StopsSuggesting(t *testing.T) {
	a := New()

	if err := a.Close(); err != nil {
		t.Fatalf("expected no error on close, got %v", err)
	}

	got, err := a.Suggest(context.Background(), "after close", models.ClassificationResult{})
	if err != nil {
		t.Errorf("expected no error after close, got %v", err)
	}
	if got != nil {
		t.Errorf("expected no suggestions after close, got %v", got)
	}
	if a.Calls() != 0 {
		t.Errorf("closed adapter must not count calls, got %d", a.Calls())
	}
}
