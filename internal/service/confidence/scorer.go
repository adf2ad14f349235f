// Package confidence computes the transcript-level OCR confidence and the
// per-message attribution confidence. Both values are always clamped to
// [0, 1].
package confidence

import (
	"unicode/utf8"

	"chat-ocr-reconstruct-service/internal/models"
)

// DefaultOCRConfidence is used when the OCR collaborator supplied no
// per-element confidences at all.
const DefaultOCRConfidence = 0.5

// Attribution adjustment terms.
const (
	base          = 0.5
	positionBonus = 0.3
	longTextBonus = 0.1
	shortTextCost = 0.1
	timeBonus     = 0.1

	longTextRunes  = 50
	shortTextRunes = 10
)

// OCR returns the arithmetic mean of every per-element confidence across all
// lines of the capture.
func OCR(lines []models.RawLine) float64 {
	var sum float64
	var n int
	for _, ln := range lines {
		for _, c := range ln.ElementConfidence {
			sum += c
			n++
		}
	}
	if n == 0 {
		return DefaultOCRConfidence
	}
	return clamp(sum / float64(n))
}

// Attribution scores how confidently a message was assigned its speaker.
// positionAgrees is whether the position signal implied the same role the
// message ended up with; when an override beat a disagreeing position vote,
// the missing bonus surfaces the disagreement.
func Attribution(text string, timeFound, positionAgrees bool) float64 {
	c := base
	if positionAgrees {
		c += positionBonus
	}
	switch n := utf8.RuneCountInString(text); {
	case n > longTextRunes:
		c += longTextBonus
	case n < shortTextRunes:
		c -= shortTextCost
	}
	if timeFound {
		c += timeBonus
	}
	return clamp(c)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
