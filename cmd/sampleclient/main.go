// sampleclient posts a bundled Korean sample capture to a running service
// and prints the reconstructed transcript.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	"chat-ocr-reconstruct-service/internal/models"
)

func box(left, top, right, bottom int) *models.BoundingBox {
	return &models.BoundingBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "service base URL")
	flag.Parse()

	capture := models.CaptureRequest{
		CaptureID:     "cap-sample-1",
		DeviceID:      "device-local",
		ScreenWidthPx: 1080,
		Lines: []models.RawLine{
			{Text: "오후 4:43"},
			{Text: "엄마", Box: box(40, 120, 160, 170)},
			{Text: "밥 먹었어?", Box: box(40, 190, 380, 260), ElementConfidence: []float64{0.93, 0.88}},
			{Text: "아직", Box: box(760, 300, 1020, 370), ElementConfidence: []float64{0.95}},
			{Text: "이따 먹으려고", Box: box(700, 390, 1020, 460), ElementConfidence: []float64{0.9, 0.87}},
			{Text: "메시지 입력"},
		},
	}

	payload, err := json.Marshal(capture)
	if err != nil {
		log.Fatalf("failed to marshal capture: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(*addr+"/v1/reconstruct", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("unexpected status: %s", resp.Status)
	}

	var result models.CaptureResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("failed to decode response: %v", err)
	}

	log.Printf("captureId=%s textType=%s language=%s ocrConfidence=%.2f",
		result.CaptureID,
		result.Classification.TextType,
		result.Classification.Language,
		result.Classification.OCRConfidence)
	for _, m := range result.Messages {
		log.Printf("[%s] %s (confidence %.2f)", m.Speaker.Label(), m.Text, m.AttributionConfidence)
	}
	for _, s := range result.Suggestions {
		log.Printf("suggestion: %s", s)
	}
}
