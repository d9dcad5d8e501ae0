package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/korahq/kora-agent/internal/domain"
)

type actionPayload struct {
	Action   string `json:"action"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	When     string `json:"when"`
	Reply    string `json:"reply"`
}

// parseAction turns the model's raw text into a tagged ReplyResult.
// Models wrap JSON in prose or code fences often enough that we cut the
// first top-level object out of the text before unmarshalling. Anything
// unparseable degrades to free text so the turn still gets a reply.
func parseAction(raw string) (*domain.ReplyResult, error) {
	blob := extractJSONObject(raw)
	if blob == "" {
		return &domain.ReplyResult{
			Kind: domain.ReplyFreeText,
			Text: strings.TrimSpace(raw),
		}, nil
	}

	var p actionPayload
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return &domain.ReplyResult{
			Kind: domain.ReplyFreeText,
			Text: strings.TrimSpace(raw),
		}, nil
	}

	switch p.Action {
	case "add_task":
		if p.Title == "" {
			return nil, fmt.Errorf("add_task action without title")
		}
		return &domain.ReplyResult{
			Kind: domain.ReplyAddTask,
			Task: &domain.TaskRequest{Title: p.Title, Priority: p.Priority},
		}, nil

	case "schedule_event":
		if p.Title == "" {
			return nil, fmt.Errorf("schedule_event action without title")
		}
		return &domain.ReplyResult{
			Kind:  domain.ReplyScheduleEvent,
			Event: &domain.EventRequest{Title: p.Title, When: p.When},
		}, nil

	case "none", "":
		text := p.Reply
		if text == "" {
			text = strings.TrimSpace(raw)
		}
		return &domain.ReplyResult{Kind: domain.ReplyFreeText, Text: text}, nil
	}

	return nil, fmt.Errorf("unknown action %q", p.Action)
}

// extractJSONObject returns the first balanced {...} block in s, or "".
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
