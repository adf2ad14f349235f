package merge

import (
	"regexp"
	"strings"

	"chat-ocr-reconstruct-service/internal/models"
)

// The flattened transcript is the de facto wire format other components
// parse back out: one "[label] text" line per message, continuation lines of
// a multi-line message following raw. A continuation line that itself looks
// like a message header is escaped with a leading backslash before its "[",
// so the round trip stays unambiguous; normal content is byte-for-byte
// identical to the wire format.

var headerRe = regexp.MustCompile(`^\[([^\[\]]+)\] (.*)$`)

// Flatten renders the transcript in the bracket-label wire format.
func Flatten(msgs []models.Message) string {
	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteByte('\n')
		}
		lines := strings.Split(m.Text, "\n")
		b.WriteString("[" + m.Speaker.Label() + "] " + lines[0])
		for _, ln := range lines[1:] {
			b.WriteByte('\n')
			if headerRe.MatchString(ln) {
				b.WriteString(`\`)
			}
			b.WriteString(ln)
		}
	}
	return b.String()
}

// ParseFlattened rebuilds the message list from a flattened transcript.
// Only the speaker and text survive the wire format; confidence and time
// info do not round-trip.
func ParseFlattened(s string) []models.Message {
	if s == "" {
		return nil
	}
	var msgs []models.Message
	for _, ln := range strings.Split(s, "\n") {
		if m := headerRe.FindStringSubmatch(ln); m != nil {
			msgs = append(msgs, models.Message{
				Speaker: speakerForLabel(m[1]),
				Text:    m[2],
			})
			continue
		}
		if strings.HasPrefix(ln, `\[`) {
			ln = ln[1:]
		}
		if len(msgs) == 0 {
			// Content before any header; keep it rather than lose text.
			msgs = append(msgs, models.Message{Speaker: models.Speaker{Role: models.RoleUnknown}, Text: ln})
			continue
		}
		msgs[len(msgs)-1].Text += "\n" + ln
	}
	return msgs
}

func speakerForLabel(label string) models.Speaker {
	switch label {
	case models.LabelSelf:
		return models.Speaker{Role: models.RoleSelf}
	case models.LabelCounterpart:
		return models.Speaker{Role: models.RoleCounterpart}
	case models.LabelSystem:
		return models.Speaker{Role: models.RoleSystem}
	case models.LabelUnknown:
		return models.Speaker{Role: models.RoleUnknown}
	default:
		return models.Speaker{Role: models.RoleCounterpart, Name: label}
	}
}
