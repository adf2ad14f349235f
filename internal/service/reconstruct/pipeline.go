// Package reconstruct runs the five-stage pipeline that turns raw OCR lines
// from a messaging-app screenshot into a speaker-attributed transcript and a
// semantic classification of its content.
//
// The pipeline is a pure, synchronous computation over an in-memory list: it
// performs no I/O and holds no shared mutable state, so independent captures
// may be reconstructed concurrently as long as each call receives its own
// line list.
package reconstruct

import (
	"errors"
	"time"

	"chat-ocr-reconstruct-service/internal/models"
	"chat-ocr-reconstruct-service/internal/observability/metrics"
	"chat-ocr-reconstruct-service/internal/service/classify"
	"chat-ocr-reconstruct-service/internal/service/confidence"
	"chat-ocr-reconstruct-service/internal/service/merge"
	"chat-ocr-reconstruct-service/internal/service/noise"
	"chat-ocr-reconstruct-service/internal/service/speaker"
)

// ErrNilLines is returned for a nil line list, the only input shape treated
// as a contract violation. An empty or fully-noise list is not a fault; it
// yields an empty transcript.
var ErrNilLines = errors.New("raw line list must not be nil")

// Result is the output of one reconstruction call.
type Result struct {
	Messages       []models.Message
	Classification models.ClassificationResult
	Transcript     string
}

// Pipeline wires the five stages together.
type Pipeline struct {
	defaultScreenWidth int
	metrics            *metrics.Metrics
}

// New creates a pipeline. defaultScreenWidthPx anchors the position-signal
// thresholds when a capture does not carry its own width.
func New(defaultScreenWidthPx int) *Pipeline {
	return &Pipeline{
		defaultScreenWidth: defaultScreenWidthPx,
		metrics:            metrics.DefaultMetrics,
	}
}

// Reconstruct runs noise filtering, speaker attribution, segment merging,
// classification and confidence scoring over one capture. screenWidthPx may
// be zero; the pipeline then falls back to the configured default or, failing
// that, the widest observed bounding box.
func (p *Pipeline) Reconstruct(lines []models.RawLine, screenWidthPx int) (*Result, error) {
	if lines == nil {
		return nil, ErrNilLines
	}
	start := time.Now()
	p.metrics.RecordLinesReceived(len(lines))

	kept, dropped := noise.Apply(lines)
	for _, d := range dropped {
		p.metrics.RecordLineDropped(d.Rule)
	}

	attributor := speaker.New(p.screenWidth(screenWidthPx, kept))
	acc := merge.NewAccumulator()
	for _, ln := range kept {
		att := attributor.Attribute(ln, acc.LastTwoParty())
		p.metrics.RecordAttribution(string(att.Decision))
		acc.Add(ln, att)
	}
	merged := acc.Finish()

	messages := make([]models.Message, 0, len(merged))
	var full []byte
	for _, m := range merged {
		msg := m.Message
		msg.AttributionConfidence = confidence.Attribution(msg.Text, msg.TimeInfo != "", m.PositionAgrees)
		messages = append(messages, msg)
		if len(full) > 0 {
			full = append(full, '\n')
		}
		full = append(full, msg.Text...)
	}
	p.metrics.RecordMessagesBuilt(len(messages))

	classification := classify.Classify(string(full))
	classification.OCRConfidence = confidence.OCR(lines)
	p.metrics.RecordClassification(string(classification.TextType), len(classification.Entities))

	p.metrics.RecordCapture(time.Since(start).Seconds())
	return &Result{
		Messages:       messages,
		Classification: classification,
		Transcript:     merge.Flatten(messages),
	}, nil
}

// screenWidth picks the coordinate-space width for position voting: the
// capture's own width, then the configured default, then the widest box edge
// seen. Zero disables the position signal entirely.
func (p *Pipeline) screenWidth(requested int, lines []models.RawLine) int {
	if requested > 0 {
		return requested
	}
	if p.defaultScreenWidth > 0 {
		return p.defaultScreenWidth
	}
	width := 0
	for _, ln := range lines {
		if ln.Box.Valid() && ln.Box.Right > width {
			width = ln.Box.Right
		}
	}
	return width
}
