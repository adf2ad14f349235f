// Package classify labels the reconstructed text with a semantic category,
// extracts typed entity spans and frequency keywords, and detects the
// dominant language. Categories are a fixed priority table evaluated top to
// bottom on the lower-cased text; the first match wins.
package classify

import (
	"regexp"
	"strings"

	"chat-ocr-reconstruct-service/internal/models"
)

var (
	phoneRe    = regexp.MustCompile(`0\d{1,2}[-\s]?\d{3,4}[-\s]?\d{4}`)
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	digitRe    = regexp.MustCompile(`\d`)
	isoDateRe  = regexp.MustCompile(`\d{4}[-./]\d{1,2}[-./]\d{1,2}`)
	clockRe    = regexp.MustCompile(`\d{1,2}:\d{2}|\d{1,2}시|\d{1,2}분`)
	ampmRe     = regexp.MustCompile(`\d\s*(?:am|pm)`)
	roadAddrRe = regexp.MustCompile(`[가-힣]+(?:로|길)\s*\d+`)
)

var questionMarkers = []string{"?", "어떻게", "언제", "왜", "뭐", "누구", "어디", "무엇", "어느", "까요", "나요"}

var urlMarkers = []string{"http", "www.", ".com", ".kr", "://"}

var dateTimeMarkers = []string{"오전", "오후", "오늘", "내일", "어제", "모레"}

var codeMarkers = []string{"function", "class", "import", "func ", "def "}

var casualMarkers = []string{"안녕", "하이", "ㅋㅋ", "ㅎㅎ", "ㅠㅠ", "하하", "반가", "잘자"}

var addressMarkers = []string{"번지", "아파트", "빌딩", "오피스텔"}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// The category priority table. Order matters: a URL containing a date must
// classify as url, not dateTime.
var typeRules = []struct {
	textType models.TextType
	match    func(string) bool
}{
	{models.TypeQuestion, func(s string) bool { return containsAny(s, questionMarkers) }},
	{models.TypeURL, func(s string) bool { return containsAny(s, urlMarkers) }},
	{models.TypePhoneNumber, phoneRe.MatchString},
	{models.TypeEmail, emailRe.MatchString},
	{models.TypeAddress, func(s string) bool {
		return containsAny(s, addressMarkers) || roadAddrRe.MatchString(s)
	}},
	{models.TypeDateTime, func(s string) bool {
		return containsAny(s, dateTimeMarkers) || isoDateRe.MatchString(s) || clockRe.MatchString(s) || ampmRe.MatchString(s)
	}},
	{models.TypeNumber, digitRe.MatchString},
	{models.TypeCode, func(s string) bool {
		if containsAny(s, codeMarkers) {
			return true
		}
		return strings.Contains(s, "{") && strings.Contains(s, "}")
	}},
	{models.TypeMessage, func(s string) bool { return containsAny(s, casualMarkers) }},
}

// Classify labels the full reconstructed text. OCRConfidence is filled by
// the caller; classification itself only sees text.
func Classify(text string) models.ClassificationResult {
	lowered := strings.ToLower(text)

	textType := models.TypeGeneralText
	for _, r := range typeRules {
		if r.match(lowered) {
			textType = r.textType
			break
		}
	}

	return models.ClassificationResult{
		TextType: textType,
		Language: detectLanguage(text),
		Entities: ExtractEntities(text),
		Keywords: Keywords(text),
	}
}

// detectLanguage compares Hangul-syllable, Latin-letter and digit counts;
// the strictly highest count wins, ties or all-zero give mixed.
func detectLanguage(text string) models.Language {
	var hangul, latin, digit int
	for _, r := range text {
		switch {
		case r >= '가' && r <= '힣':
			hangul++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		case r >= '0' && r <= '9':
			digit++
		}
	}
	switch {
	case hangul > latin && hangul > digit:
		return models.LangKorean
	case latin > hangul && latin > digit:
		return models.LangEnglish
	case digit > hangul && digit > latin:
		return models.LangNumber
	default:
		return models.LangMixed
	}
}
