package models

// CaptureRequest is one OCR capture submitted for reconstruction. Lines must
// preserve the original top-to-bottom visual order. ScreenWidthPx anchors the
// position-signal thresholds; when zero the pipeline derives a width from the
// observed boxes.
type CaptureRequest struct {
	CaptureID     string    `json:"captureId,omitempty"`
	DeviceID      string    `json:"deviceId,omitempty"`
	ScreenWidthPx int       `json:"screenWidthPx,omitempty"`
	Lines         []RawLine `json:"lines"`
}

// CaptureResponse is the reconstruction result returned to the caller.
type CaptureResponse struct {
	CaptureID      string               `json:"captureId"`
	Messages       []Message            `json:"messages"`
	Classification ClassificationResult `json:"classification"`
	Transcript     string               `json:"transcript"`
	Suggestions    []string             `json:"suggestions,omitempty"`
}

// Event types published to Kafka.
const (
	EventTranscriptReconstructed = "capture.transcript.reconstructed"
	EventTranscriptClassified    = "capture.transcript.classified"
)

// TranscriptReconstructed is the event emitted once per capture with the
// flattened transcript.
type TranscriptReconstructed struct {
	EventType     string  `json:"eventType"`
	CaptureID     string  `json:"captureId"`
	DeviceID      string  `json:"deviceId,omitempty"`
	Timestamp     int64   `json:"timestamp"`
	Transcript    string  `json:"transcript"`
	MessageCount  int     `json:"messageCount"`
	OCRConfidence float64 `json:"ocrConfidence"`
}

// TranscriptClassified is the event emitted once per capture with the
// semantic classification of the reconstructed text.
type TranscriptClassified struct {
	EventType   string   `json:"eventType"`
	CaptureID   string   `json:"captureId"`
	DeviceID    string   `json:"deviceId,omitempty"`
	Timestamp   int64    `json:"timestamp"`
	TextType    TextType `json:"textType"`
	Language    Language `json:"language"`
	Keywords    []string `json:"keywords"`
	EntityCount int      `json:"entityCount"`
}
