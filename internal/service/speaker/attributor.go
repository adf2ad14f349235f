// Package speaker assigns a conversational role to each surviving OCR line.
//
// Three unreliable signals (bubble position, lexical content, time adjacency)
// are combined by additive weighted voting. A narrow ownership table of
// lexically unambiguous phrases overrides the vote, and a named-speaker
// detector runs before everything else so a bare role-label line ("엄마")
// can seed the counterpart name for the whole transcript. When nothing
// decides, the attributor falls back to two-party alternation.
package speaker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"chat-ocr-reconstruct-service/internal/models"
)

// Voting weights per signal.
const (
	weightPosition = 3
	weightLexical  = 2
	weightTime     = 1
)

// Horizontal thresholds as fractions of screen width: right 30% of the
// screen votes self, left 30% votes counterpart, the middle 40% votes
// system.
const (
	leftFraction  = 0.3
	rightFraction = 0.7
)

// Decision names how an attribution was reached, for metrics and
// diagnostics.
type Decision string

const (
	DecisionNameLabel   Decision = "name_label"
	DecisionOverride    Decision = "override"
	DecisionVote        Decision = "vote"
	DecisionAlternation Decision = "alternation"
)

// Attribution is the result for one line. PositionRole is the role implied
// by the bounding box alone (RoleUnknown when the box is absent or garbage);
// it is kept separately so the confidence scorer can see when an override
// disagreed with the geometry.
type Attribution struct {
	Speaker      models.Speaker
	Decision     Decision
	Score        int
	PositionRole models.Role
	TimeInfo     string
	NameLabel    bool
}

// Clock-time substring, also reused for the message timeInfo field.
var timeRe = regexp.MustCompile(`(?:오전|오후)\s*\d{1,2}:\d{2}|\d{1,2}:\d{2}|\d{1,2}시\s*\d{1,2}분`)

// Kinship/role nouns that mark a line as a counterpart name label.
var counterpartNames = []string{
	"엄마", "아빠", "할머니", "할아버지",
	"언니", "오빠", "누나", "형",
	"이모", "삼촌", "고모", "선생님",
}

const nameLabelMaxRunes = 15

// Lexical marker families, highest hit count wins, ties abstain.
var lexicalFamilies = []struct {
	role    models.Role
	markers []string
}{
	{models.RoleSelf, []string{"나", "내가", "제가", "우리"}},
	{models.RoleCounterpart, []string{"너", "당신", "어떻게", "언제", "왜", "뭐"}},
	{models.RoleSystem, []string{"입장", "퇴장", "초대", "공지", "알림"}},
}

// Ownership overrides: fixed phrases unambiguous regardless of position
// noise. When one fires it beats the voting result outright.
var ownershipOverrides = []struct {
	exact   bool
	pattern string
	role    models.Role
}{
	{true, "네", models.RoleSelf},
	{true, "응", models.RoleSelf},
	{true, "알겠어", models.RoleSelf},
	{true, "알겠어요", models.RoleSelf},
	{true, "알겠습니다", models.RoleSelf},
	{false, "하려고 약속했어", models.RoleCounterpart},
	{false, "물어보는거야", models.RoleCounterpart},
	{false, "물어봤어", models.RoleCounterpart},
}

// Attributor holds the geometry context for one capture.
type Attributor struct {
	screenWidth int
}

// New creates an attributor for a capture rendered at the given screen width
// in pixels. A non-positive width disables the position signal.
func New(screenWidthPx int) *Attributor {
	return &Attributor{screenWidth: screenWidthPx}
}

// Attribute decides the role for one line. lastTwoParty is the role of the
// most recent line attributed into the {self, counterpart} alternation
// (RoleUnknown at the start of a transcript).
func (a *Attributor) Attribute(line models.RawLine, lastTwoParty models.Role) Attribution {
	text := strings.TrimSpace(line.Text)
	timeInfo := timeRe.FindString(text)
	posRole := a.positionRole(line.Box)

	// Name-label lines are consumed before any other signal.
	if name, ok := detectNameLabel(text); ok {
		return Attribution{
			Speaker:      models.Speaker{Role: models.RoleCounterpart, Name: name},
			Decision:     DecisionNameLabel,
			PositionRole: posRole,
			TimeInfo:     timeInfo,
			NameLabel:    true,
		}
	}

	votes := map[models.Role]int{}
	if posRole != models.RoleUnknown {
		votes[posRole] += weightPosition
	}
	if lexRole := lexicalRole(text); lexRole != models.RoleUnknown {
		votes[lexRole] += weightLexical
	}
	if timeInfo != "" {
		votes[models.RoleCounterpart] += weightTime
	}

	if role, ok := overrideRole(text); ok {
		return Attribution{
			Speaker:      models.Speaker{Role: role},
			Decision:     DecisionOverride,
			Score:        votes[role],
			PositionRole: posRole,
			TimeInfo:     timeInfo,
		}
	}

	if role, score, ok := winner(votes); ok {
		return Attribution{
			Speaker:      models.Speaker{Role: role},
			Decision:     DecisionVote,
			Score:        score,
			PositionRole: posRole,
			TimeInfo:     timeInfo,
		}
	}

	return Attribution{
		Speaker:      models.Speaker{Role: alternate(lastTwoParty)},
		Decision:     DecisionAlternation,
		PositionRole: posRole,
		TimeInfo:     timeInfo,
	}
}

// positionRole maps the box center onto the left/middle/right screen bands.
// Garbage geometry counts as absent.
func (a *Attributor) positionRole(box *models.BoundingBox) models.Role {
	if a.screenWidth <= 0 || !box.Valid() || box.Right > a.screenWidth {
		return models.RoleUnknown
	}
	center := float64(box.CenterX())
	width := float64(a.screenWidth)
	switch {
	case center >= width*rightFraction:
		return models.RoleSelf
	case center <= width*leftFraction:
		return models.RoleCounterpart
	default:
		return models.RoleSystem
	}
}

func detectNameLabel(text string) (string, bool) {
	if utf8.RuneCountInString(text) > nameLabelMaxRunes {
		return "", false
	}
	for _, name := range counterpartNames {
		if strings.Contains(text, name) {
			return name, true
		}
	}
	return "", false
}

func lexicalRole(text string) models.Role {
	best := models.RoleUnknown
	bestCount := 0
	tied := false
	for _, fam := range lexicalFamilies {
		count := 0
		for _, m := range fam.markers {
			if strings.Contains(text, m) {
				count++
			}
		}
		switch {
		case count > bestCount:
			best, bestCount, tied = fam.role, count, false
		case count == bestCount && count > 0:
			tied = true
		}
	}
	if bestCount == 0 || tied {
		return models.RoleUnknown
	}
	return best
}

func overrideRole(text string) (models.Role, bool) {
	for _, o := range ownershipOverrides {
		if o.exact {
			if text == o.pattern {
				return o.role, true
			}
		} else if strings.HasSuffix(text, o.pattern) {
			return o.role, true
		}
	}
	return models.RoleUnknown, false
}

func winner(votes map[models.Role]int) (models.Role, int, bool) {
	best := models.RoleUnknown
	bestScore := 0
	tied := false
	for _, role := range []models.Role{models.RoleSelf, models.RoleCounterpart, models.RoleSystem} {
		score := votes[role]
		switch {
		case score > bestScore:
			best, bestScore, tied = role, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}
	if bestScore == 0 || tied {
		return models.RoleUnknown, 0, false
	}
	return best, bestScore, true
}

// alternate returns the opposite slot of the two-party alternation,
// defaulting to self for the first line of a transcript.
func alternate(last models.Role) models.Role {
	switch last {
	case models.RoleSelf:
		return models.RoleCounterpart
	case models.RoleCounterpart:
		return models.RoleSelf
	default:
		return models.RoleSelf
	}
}
