package noise

import (
	"reflect"
	"testing"

	"chat-ocr-reconstruct-service/internal/models"
)

func lines(texts ...string) []models.RawLine {
	out := make([]models.RawLine, len(texts))
	for i, t := range texts {
		out[i] = models.RawLine{Text: t}
	}
	return out
}

func texts(lines []models.RawLine) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.Text
	}
	return out
}

func TestFilter_DropsNoiseExample(t *testing.T) {
	in := lines("오후 4:43", "https://x.kr", "123", "엄마", "밥 먹었어?")
	got := texts(Filter(in))
	want := []string{"엄마", "밥 먹었어?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	in := lines("오전 9:12", "ㅋㅋㅋ", "내일 몇 시에 만날까?", "+", "좋아 그때 보자", "1+1=2", "네")
	once := Filter(in)
	twice := Filter(once)
	if !reflect.DeepEqual(texts(once), texts(twice)) {
		t.Errorf("filter not idempotent: %v != %v", texts(once), texts(twice))
	}
}

func TestReject_Rules(t *testing.T) {
	tests := []struct {
		text string
		rule string
	}{
		{"오후 4:43", RuleTime},
		{"12:30", RuleTime},
		{"3시 15분", RuleTime},
		{"AM 9:00", RuleTime},
		{"www.example.com", RuleURL},
		{"검색 naver.com 참고", RuleURL},
		{"1/2", RuleURL}, // bare slash hits the URL rule before numeric
		{"123", RuleNumeric},
		{"2+2=4", RuleNumeric},
		{"ㅋ", RuleKeyboard},
		{"ㅠㅠㅠ", RuleKeyboard},
		{"Pass", RuleKeyboard},
		{"메시지 입력", RuleChrome},
		{"→", RuleChrome},
		{"!", RuleChrome},
		{"ab", RuleChrome},
		{"", RuleEmpty},
		{"   ", RuleEmpty},
	}
	for _, tt := range tests {
		rule, rejected := Reject(tt.text)
		if !rejected {
			t.Errorf("expected %q to be rejected", tt.text)
			continue
		}
		if rule != tt.rule {
			t.Errorf("expected %q to hit rule %s, got %s", tt.text, tt.rule, rule)
		}
	}
}

func TestReject_KeepsContent(t *testing.T) {
	keep := []string{
		"네",
		"응",
		"밥 먹었어?",
		"내일 보자",
		"123456", // six glyphs, over the numeric-noise length cap
	}
	for _, text := range keep {
		if rule, rejected := Reject(text); rejected {
			t.Errorf("expected %q to survive, dropped by rule %s", text, rule)
		}
	}
}

func TestApply_ReportsDrops(t *testing.T) {
	in := lines("오후 4:43", "엄마", "123")
	kept, dropped := Apply(in)
	if len(kept) != 1 || kept[0].Text != "엄마" {
		t.Errorf("unexpected kept lines: %v", texts(kept))
	}
	if len(dropped) != 2 {
		t.Fatalf("expected 2 drops, got %d", len(dropped))
	}
	if dropped[0].Rule != RuleTime || dropped[1].Rule != RuleNumeric {
		t.Errorf("unexpected drop rules: %+v", dropped)
	}
}
