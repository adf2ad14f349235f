package merge

import (
	"testing"

	"chat-ocr-reconstruct-service/internal/models"
)

func msg(s models.Speaker, text string) models.Message {
	return models.Message{Speaker: s, Text: text}
}

func TestFlatten_WireFormat(t *testing.T) {
	msgs := []models.Message{
		msg(models.Speaker{Role: models.RoleCounterpart, Name: "엄마"}, "밥 먹었어?"),
		msg(models.Speaker{Role: models.RoleSelf}, "아직\n이따 먹으려고"),
	}
	got := Flatten(msgs)
	want := "[엄마] 밥 먹었어?\n[나] 아직\n이따 먹으려고"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFlatten_Empty(t *testing.T) {
	if got := Flatten(nil); got != "" {
		t.Errorf("expected empty transcript, got %q", got)
	}
}

func roundTrip(t *testing.T, msgs []models.Message) {
	t.Helper()
	parsed := ParseFlattened(Flatten(msgs))
	if len(parsed) != len(msgs) {
		t.Fatalf("expected %d messages, got %d", len(msgs), len(parsed))
	}
	for i := range msgs {
		if parsed[i].Speaker != msgs[i].Speaker {
			t.Errorf("message %d: expected speaker %+v, got %+v", i, msgs[i].Speaker, parsed[i].Speaker)
		}
		if parsed[i].Text != msgs[i].Text {
			t.Errorf("message %d: expected text %q, got %q", i, msgs[i].Text, parsed[i].Text)
		}
	}
}

func TestRoundTrip_Basic(t *testing.T) {
	roundTrip(t, []models.Message{
		msg(models.Speaker{Role: models.RoleSelf}, "주말에 시간 돼?"),
		msg(models.Speaker{Role: models.RoleCounterpart}, "토요일은 안 되고\n일요일 오후는 괜찮아"),
		msg(models.Speaker{Role: models.RoleSystem}, "상대방이 대화방을 나갔습니다"),
	})
}

func TestRoundTrip_NamedCounterpart(t *testing.T) {
	roundTrip(t, []models.Message{
		msg(models.Speaker{Role: models.RoleCounterpart, Name: "아빠"}, "용돈 보냈다"),
		msg(models.Speaker{Role: models.RoleSelf}, "감사합니다!"),
	})
}

func TestRoundTrip_ContentResemblingHeader(t *testing.T) {
	// A continuation line that itself looks like a message header must not
	// be mis-split; flatten escapes it, parse unescapes it.
	roundTrip(t, []models.Message{
		msg(models.Speaker{Role: models.RoleSelf}, "전달받은 내용이야\n[엄마] 밥 먹었어?"),
		msg(models.Speaker{Role: models.RoleCounterpart}, "그렇구나"),
	})
}

func TestParseFlattened_Empty(t *testing.T) {
	if got := ParseFlattened(""); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
