package tools

import (
	"context"
	"fmt"

	"github.com/korahq/kora-agent/internal/domain"
)

// CalendarTool schedules an event through the external calendar service.
type CalendarTool struct {
	svc domain.CalendarService
}

func NewCalendarTool(svc domain.CalendarService) *CalendarTool {
	return &CalendarTool{svc: svc}
}

func (t *CalendarTool) Name() string {
	return "schedule_event"
}

// Call expects an input with this shape:
//
//	{
//	  "title": "dentist appointment",
//	  "when": "3:00 PM"
//	}
func (t *CalendarTool) Call(
	ctx context.Context,
	tctx ToolContext,
	input map[string]any,
) (map[string]any, error) {

	title := getString(input, "title")
	if title == "" {
		return nil, fmt.Errorf("schedule_event: title is required")
	}

	when := getString(input, "when")

	if err := t.svc.ScheduleEvent(ctx, title, when); err != nil {
		return nil, fmt.Errorf("schedule_event: %w", err)
	}

	msg := fmt.Sprintf("Scheduled %q", title)
	if when != "" {
		msg += " at " + when
	}
	msg += "."

	return map[string]any{
		"status":  "ok",
		"message": msg,
	}, nil
}
