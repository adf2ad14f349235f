// Package merge groups consecutive same-speaker lines into logical messages
// and resolves the counterpart name across the whole transcript.
package merge

import (
	"strings"

	"chat-ocr-reconstruct-service/internal/models"
	"chat-ocr-reconstruct-service/internal/service/speaker"
)

// Merged is one completed message plus the per-message signals the
// confidence scorer consumes.
type Merged struct {
	Message        models.Message
	PositionAgrees bool
}

// Accumulator walks attributed lines once, left to right, keeping a
// current-speaker/current-buffer pair. A role change flushes the buffer as a
// completed message. Not safe for concurrent use; one accumulator per
// capture.
type Accumulator struct {
	done []Merged

	current    models.Speaker
	buffer     []string
	timeInfo   string
	posAgrees  bool
	buffering  bool
	namedLabel string
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// LastTwoParty returns the role of the most recent line attributed into the
// {self, counterpart} alternation, including the unflushed buffer, or
// RoleUnknown when no such line exists yet. The attributor's alternation
// fallback reads this.
func (a *Accumulator) LastTwoParty() models.Role {
	if a.buffering && (a.current.Role == models.RoleSelf || a.current.Role == models.RoleCounterpart) {
		return a.current.Role
	}
	for i := len(a.done) - 1; i >= 0; i-- {
		role := a.done[i].Message.Speaker.Role
		if role == models.RoleSelf || role == models.RoleCounterpart {
			return role
		}
	}
	return models.RoleUnknown
}

// Add appends one attributed line. Name-label lines are consumed: they
// record the counterpart name but contribute no message text.
func (a *Accumulator) Add(line models.RawLine, att speaker.Attribution) {
	if att.NameLabel {
		if a.namedLabel == "" {
			a.namedLabel = att.Speaker.Name
		}
		return
	}

	text := strings.TrimSpace(line.Text)
	if text == "" {
		return
	}

	if a.buffering && att.Speaker == a.current {
		a.buffer = append(a.buffer, text)
		if a.timeInfo == "" {
			a.timeInfo = att.TimeInfo
		}
		if att.PositionRole != models.RoleUnknown && att.PositionRole == a.current.Role {
			a.posAgrees = true
		}
		return
	}

	a.flush()
	a.current = att.Speaker
	a.buffer = []string{text}
	a.timeInfo = att.TimeInfo
	a.posAgrees = att.PositionRole != models.RoleUnknown && att.PositionRole == att.Speaker.Role
	a.buffering = true
}

func (a *Accumulator) flush() {
	if !a.buffering || len(a.buffer) == 0 {
		a.buffering = false
		return
	}
	a.done = append(a.done, Merged{
		Message: models.Message{
			Speaker:  a.current,
			Text:     strings.Join(a.buffer, "\n"),
			TimeInfo: a.timeInfo,
		},
		PositionAgrees: a.posAgrees,
	})
	a.buffer = nil
	a.timeInfo = ""
	a.posAgrees = false
	a.buffering = false
}

// Finish flushes the final buffer and resolves the counterpart name: the
// first name discovered in the transcript rewrites every generic
// counterpart message, so the transcript never mixes a generic and a named
// label for the same person.
func (a *Accumulator) Finish() []Merged {
	a.flush()

	name := a.namedLabel
	if name == "" {
		for _, m := range a.done {
			if m.Message.Speaker.Named() {
				name = m.Message.Speaker.Name
				break
			}
		}
	}
	if name != "" {
		for i := range a.done {
			if a.done[i].Message.Speaker.Role == models.RoleCounterpart {
				a.done[i].Message.Speaker.Name = name
			}
		}
	}
	return a.done
}
