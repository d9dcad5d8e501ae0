package llm

import (
	"testing"

	"github.com/korahq/kora-agent/internal/domain"
)

func TestParseActionAddTask(t *testing.T) {
	raw := `{"action": "add_task", "title": "call the dentist", "priority": "high"}`

	res, err := parseAction(raw)
	if err != nil {
		t.Fatalf("parseAction failed: %v", err)
	}
	if res.Kind != domain.ReplyAddTask {
		t.Fatalf("Kind = %q, want add_task", res.Kind)
	}
	if res.Task == nil || res.Task.Title != "call the dentist" || res.Task.Priority != "high" {
		t.Errorf("Task = %+v, want title and priority parsed", res.Task)
	}
}

func TestParseActionScheduleEvent(t *testing.T) {
	raw := "Sure, here you go:\n```json\n{\"action\": \"schedule_event\", \"title\": \"dentist\", \"when\": \"3:00 PM\"}\n```"

	res, err := parseAction(raw)
	if err != nil {
		t.Fatalf("parseAction failed: %v", err)
	}
	if res.Kind != domain.ReplyScheduleEvent {
		t.Fatalf("Kind = %q, want schedule_event", res.Kind)
	}
	if res.Event == nil || res.Event.Title != "dentist" || res.Event.When != "3:00 PM" {
		t.Errorf("Event = %+v, want title and time parsed", res.Event)
	}
}

func TestParseActionNone(t *testing.T) {
	raw := `{"action": "none", "reply": "Happy to chat instead."}`

	res, err := parseAction(raw)
	if err != nil {
		t.Fatalf("parseAction failed: %v", err)
	}
	if res.Kind != domain.ReplyFreeText || res.Text != "Happy to chat instead." {
		t.Errorf("got %+v, want free text with the reply field", res)
	}
}

func TestParseActionPlainTextDegradesToFreeText(t *testing.T) {
	raw := "Let's just talk about your morning instead."

	res, err := parseAction(raw)
	if err != nil {
		t.Fatalf("parseAction failed: %v", err)
	}
	if res.Kind != domain.ReplyFreeText || res.Text != raw {
		t.Errorf("got %+v, want the raw text as free text", res)
	}
}

func TestParseActionMissingTitle(t *testing.T) {
	if _, err := parseAction(`{"action": "add_task"}`); err == nil {
		t.Error("expected error for add_task without title")
	}
	if _, err := parseAction(`{"action": "schedule_event"}`); err == nil {
		t.Error("expected error for schedule_event without title")
	}
}

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`prefix {"a": 1} suffix`, `{"a": 1}`},
		{`{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{`{"s": "brace } in string"}`, `{"s": "brace } in string"}`},
		{`no json here`, ``},
		{`{"unterminated": `, ``},
	}

	for _, tc := range cases {
		if got := extractJSONObject(tc.in); got != tc.want {
			t.Errorf("extractJSONObject(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
