package classify

import (
	"regexp"
	"unicode/utf8"

	"chat-ocr-reconstruct-service/internal/models"
)

// One pattern per entity kind. Every match is recorded with its rune span;
// spans of different kinds may overlap and are not merged.
var entityPatterns = []struct {
	kind models.EntityKind
	re   *regexp.Regexp
}{
	{models.EntityEmail, regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
	{models.EntityURL, regexp.MustCompile(`https?://\S+|www\.\S+`)},
	{models.EntityPhone, regexp.MustCompile(`0\d{1,2}[-\s]?\d{3,4}[-\s]?\d{4}`)},
	{models.EntityHashtag, regexp.MustCompile(`#[0-9A-Za-z가-힣_]+`)},
	{models.EntityMention, regexp.MustCompile(`@[0-9A-Za-z가-힣_.]+`)},
	{models.EntityMoney, regexp.MustCompile(`(?:₩|\$)\s?\d[\d,]*(?:\.\d+)?|\d[\d,]*\s*(?:원|달러|만원|억)`)},
	{models.EntityPercent, regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|퍼센트|프로)`)},
	{models.EntityTime, regexp.MustCompile(`(?:오전|오후)\s*\d{1,2}:\d{2}|\d{1,2}:\d{2}|\d{1,2}시\s*(?:\d{1,2}분)?`)},
	{models.EntityDate, regexp.MustCompile(`\d{4}[-./]\d{1,2}[-./]\d{1,2}|\d{1,2}월\s*\d{1,2}일|오늘|내일|어제|모레`)},
	{models.EntityPerson, regexp.MustCompile(`[가-힣]{2,4}\s?(?:씨|님)|엄마|아빠|할머니|할아버지|언니|오빠|누나|이모|삼촌|선생님`)},
	{models.EntityLocation, regexp.MustCompile(`(?:서울|부산|대구|인천|광주|대전|울산|제주)[가-힣]*|[가-힣]{2,}(?:역|공항|공원|시장)`)},
	{models.EntityOrganization, regexp.MustCompile(`[가-힣]{2,}(?:회사|은행|학교|대학교|병원|카페|마트)`)},
}

// ExtractEntities scans the full text with every entity pattern. Offsets are
// rune indexes into the text.
func ExtractEntities(text string) []models.Entity {
	var entities []models.Entity
	for _, p := range entityPatterns {
		for _, span := range p.re.FindAllStringIndex(text, -1) {
			entities = append(entities, models.Entity{
				Text:       text[span[0]:span[1]],
				Kind:       p.kind,
				StartIndex: utf8.RuneCountInString(text[:span[0]]),
				EndIndex:   utf8.RuneCountInString(text[:span[1]]),
			})
		}
	}
	return entities
}
