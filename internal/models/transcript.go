// Package models defines the data structures for capture reconstruction.
package models

import (
	"encoding/json"
	"fmt"
)

// BoundingBox is an axis-aligned pixel rectangle in screen coordinates,
// as reported by the OCR engine.
type BoundingBox struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Valid reports whether the box has positive area and non-negative origin.
// OCR engines occasionally emit zero-area or inverted rectangles; those are
// treated the same as a missing box.
func (b *BoundingBox) Valid() bool {
	return b != nil && b.Left >= 0 && b.Top >= 0 && b.Right > b.Left && b.Bottom > b.Top
}

// CenterX returns the horizontal center of the box in screen pixels.
func (b *BoundingBox) CenterX() int {
	return (b.Left + b.Right) / 2
}

// RawLine is one OCR-detected text line with optional geometry and
// per-token confidence. Produced by the OCR collaborator, never mutated.
type RawLine struct {
	Text              string       `json:"text"`
	Box               *BoundingBox `json:"boundingBox,omitempty"`
	ElementConfidence []float64    `json:"elementConfidence,omitempty"`
}

// Role is the conversational slot a line or message belongs to.
type Role int

const (
	RoleUnknown Role = iota
	RoleSelf
	RoleCounterpart
	RoleSystem
)

var roleNames = map[Role]string{
	RoleUnknown:     "unknown",
	RoleSelf:        "self",
	RoleCounterpart: "counterpart",
	RoleSystem:      "system",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// MarshalJSON renders the role as its lowercase name.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON parses the lowercase role name.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for role, name := range roleNames {
		if name == s {
			*r = role
			return nil
		}
	}
	return fmt.Errorf("unknown role %q", s)
}

// Speaker is a resolved conversational role. A counterpart whose concrete
// name was discovered in the text (e.g. "엄마") carries it in Name; a generic
// counterpart has an empty Name.
type Speaker struct {
	Role Role   `json:"role"`
	Name string `json:"name,omitempty"`
}

// Named reports whether this is a counterpart resolved to a concrete name.
func (s Speaker) Named() bool {
	return s.Role == RoleCounterpart && s.Name != ""
}

// Default display labels for the flattened transcript. The generic
// counterpart placeholder is a display choice; callers rendering a contact
// card may substitute their own.
const (
	LabelSelf        = "나"
	LabelCounterpart = "상대방"
	LabelSystem      = "시스템"
	LabelUnknown     = "?"
)

// Label returns the literal speaker label used in the flattened transcript.
func (s Speaker) Label() string {
	switch s.Role {
	case RoleSelf:
		return LabelSelf
	case RoleCounterpart:
		if s.Name != "" {
			return s.Name
		}
		return LabelCounterpart
	case RoleSystem:
		return LabelSystem
	default:
		return LabelUnknown
	}
}

// Message is one logical chat bubble: consecutive same-speaker lines merged
// into a single text, joined by newlines. Immutable once appended to the
// transcript.
type Message struct {
	Speaker               Speaker `json:"speaker"`
	Text                  string  `json:"text"`
	AttributionConfidence float64 `json:"attributionConfidence"`
	TimeInfo              string  `json:"timeInfo,omitempty"`
}
