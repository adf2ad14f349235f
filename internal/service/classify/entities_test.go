package classify

import (
	"testing"

	"chat-ocr-reconstruct-service/internal/models"
)

func findEntity(entities []models.Entity, kind models.EntityKind) *models.Entity {
	for i := range entities {
		if entities[i].Kind == kind {
			return &entities[i]
		}
	}
	return nil
}

func TestExtractEntities_Kinds(t *testing.T) {
	tests := []struct {
		text string
		kind models.EntityKind
		want string
	}{
		{"회신은 kim@example.com 으로", models.EntityEmail, "kim@example.com"},
		{"여기 봐 https://blog.example.com/post", models.EntityURL, "https://blog.example.com/post"},
		{"내 번호는 010-1234-5678 이야", models.EntityPhone, "010-1234-5678"},
		{"#주말모임 어때", models.EntityHashtag, "#주말모임"},
		{"@minsu 너도 올래", models.EntityMention, "@minsu"},
		{"회비는 50000원 이야", models.EntityMoney, "50000원"},
		{"벌써 80% 끝났어", models.EntityPercent, "80%"},
		{"오후 4:30 어때", models.EntityTime, "오후 4:30"},
		{"12월 25일에 보자", models.EntityDate, "12월 25일"},
		{"엄마 생신 선물 샀어", models.EntityPerson, "엄마"},
		{"강남역 근처에서 만나", models.EntityLocation, "강남역"},
		{"국민은행 앞이야", models.EntityOrganization, "국민은행"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ent := findEntity(ExtractEntities(tt.text), tt.kind)
			if ent == nil {
				t.Fatalf("%q: expected a %s entity", tt.text, tt.kind)
			}
			if ent.Text != tt.want {
				t.Errorf("expected %q, got %q", tt.want, ent.Text)
			}
		})
	}
}

func TestExtractEntities_RuneOffsets(t *testing.T) {
	text := "오후 4:30에 보자"
	ent := findEntity(ExtractEntities(text), models.EntityTime)
	if ent == nil {
		t.Fatal("expected a time entity")
	}
	if ent.StartIndex != 0 || ent.EndIndex != 7 {
		t.Errorf("expected rune span [0,7), got [%d,%d)", ent.StartIndex, ent.EndIndex)
	}
	if ent.Text != "오후 4:30" {
		t.Errorf("unexpected entity text %q", ent.Text)
	}
}

func TestExtractEntities_OverlapsAllowed(t *testing.T) {
	// "오후 4:30" is a time; "4:30" alone would be too. Different kinds may
	// also overlap the same span; nothing is merged or deduplicated.
	entities := ExtractEntities("내일 오후 4:30")
	if findEntity(entities, models.EntityTime) == nil {
		t.Error("expected a time entity")
	}
	if findEntity(entities, models.EntityDate) == nil {
		t.Error("expected a date entity (내일)")
	}
}

func TestExtractEntities_None(t *testing.T) {
	if got := ExtractEntities("그냥 평범한 말"); len(got) != 0 {
		t.Errorf("expected no entities, got %+v", got)
	}
}
