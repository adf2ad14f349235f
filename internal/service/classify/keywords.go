package classify

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const maxKeywords = 5

// Korean particles, conjunctions and filler tokens excluded from keyword
// ranking.
var stopwords = map[string]struct{}{
	"그리고": {}, "그래서": {}, "하지만": {}, "그런데": {}, "근데": {},
	"나는": {}, "저는": {}, "너는": {}, "우리는": {}, "제가": {}, "내가": {},
	"이거": {}, "그거": {}, "저거": {}, "이게": {}, "그게": {},
	"너무": {}, "진짜": {}, "정말": {}, "그냥": {}, "아주": {},
	"지금": {}, "이제": {}, "다시": {}, "오늘은": {},
	"the": {}, "and": {}, "for": {}, "you": {}, "are": {},
}

var keywordTokenRe = regexp.MustCompile(`^[가-힣a-zA-Z0-9]+$`)

// Keywords tokenizes on whitespace and returns the top tokens by raw
// frequency, ties broken by first-seen order. Single-rune tokens, stopwords
// and tokens with punctuation or symbols are dropped.
func Keywords(text string) []string {
	counts := map[string]int{}
	var order []string

	for _, tok := range strings.Fields(text) {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if _, stop := stopwords[strings.ToLower(tok)]; stop {
			continue
		}
		if !keywordTokenRe.MatchString(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	firstSeen := make(map[string]int, len(order))
	for i, tok := range order {
		firstSeen[tok] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}
