// Package noise removes OCR artifact lines before reconstruction. Rules are
// an ordered table; the first matching rule drops the line and later rules
// are never consulted, which keeps the policy deterministic and
// order-sensitive.
package noise

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"chat-ocr-reconstruct-service/internal/models"
)

// Rule names, used as the metrics label for dropped lines.
const (
	RuleEmpty    = "empty"
	RuleTime     = "time"
	RuleURL      = "url"
	RuleNumeric  = "numeric"
	RuleKeyboard = "keyboard"
	RuleChrome   = "chrome"
)

var (
	// Whole-line clock forms: 오전/오후 H:MM, H:MM (optionally AM/PM),
	// AM/PM H:MM, H시 MM분.
	timeLineRe = regexp.MustCompile(`^(?:(?:오전|오후)\s*\d{1,2}:\d{2}|(?i:AM|PM)\s*\d{1,2}:\d{2}|\d{1,2}:\d{2}(?:\s*(?i:AM|PM))?|\d{1,2}시\s*\d{1,2}분)$`)

	// Whole line of digits, whitespace and arithmetic glyphs.
	numericNoiseRe = regexp.MustCompile(`^[\d\s+\-*/=.]+$`)

	// Entirely bare jamo/vowel glyphs with no complete syllables.
	jamoOnlyRe = regexp.MustCompile(`^[ㄱ-ㅎㅏ-ㅣ\s]+$`)

	// A pure Hangul-syllable word ("네", "응") that must survive the
	// short-line chrome rule.
	hangulWordRe = regexp.MustCompile(`^[가-힣]+$`)
)

var urlMarkers = []string{"http", "www.", ".com", ".kr", "://", "/"}

var keyboardTokens = map[string]struct{}{
	"ㄷ": {}, "ㅋ": {}, "트": {}, "초": {}, "요": {}, "이": {}, "ㅠ": {}, "L": {}, "Pass": {},
}

var chromeTokens = map[string]struct{}{
	"메시지 입력": {},
	"←": {}, "→": {}, "↑": {}, "↓": {},
	"+": {}, "!": {}, "#": {},
}

type rule struct {
	name  string
	match func(string) bool
}

// The ordered rejection table. A line is tested top to bottom; first match
// wins.
var rules = []rule{
	{RuleEmpty, func(s string) bool { return s == "" }},
	{RuleTime, timeLineRe.MatchString},
	{RuleURL, func(s string) bool {
		for _, m := range urlMarkers {
			if strings.Contains(s, m) {
				return true
			}
		}
		return false
	}},
	{RuleNumeric, func(s string) bool {
		return utf8.RuneCountInString(s) <= 5 && numericNoiseRe.MatchString(s)
	}},
	{RuleKeyboard, func(s string) bool {
		if _, ok := keyboardTokens[s]; ok {
			return true
		}
		return jamoOnlyRe.MatchString(s)
	}},
	{RuleChrome, func(s string) bool {
		if _, ok := chromeTokens[s]; ok {
			return true
		}
		return utf8.RuneCountInString(s) <= 3 && !hangulWordRe.MatchString(s)
	}},
}

// Reject tests a single line against the rule table and returns the name of
// the first matching rule.
func Reject(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	for _, r := range rules {
		if r.match(trimmed) {
			return r.name, true
		}
	}
	return "", false
}

// Drop records one rejected line.
type Drop struct {
	Rule string
	Text string
}

// Apply filters the lines and reports what was dropped and why.
func Apply(lines []models.RawLine) ([]models.RawLine, []Drop) {
	kept := make([]models.RawLine, 0, len(lines))
	var dropped []Drop
	for _, ln := range lines {
		if name, rejected := Reject(ln.Text); rejected {
			dropped = append(dropped, Drop{Rule: name, Text: ln.Text})
			continue
		}
		kept = append(kept, ln)
	}
	return kept, dropped
}

// Filter returns the lines that survive every rejection rule, in input order.
// Idempotent: filtering already-filtered output changes nothing.
func Filter(lines []models.RawLine) []models.RawLine {
	kept, _ := Apply(lines)
	return kept
}
