package tools

import (
	"context"
	"fmt"

	"github.com/korahq/kora-agent/internal/domain"
)

// TaskTool writes a task to the external task/knowledge-base service.
type TaskTool struct {
	svc domain.TaskService
}

func NewTaskTool(svc domain.TaskService) *TaskTool {
	return &TaskTool{svc: svc}
}

func (t *TaskTool) Name() string {
	return "add_task"
}

// Call expects an input with this shape:
//
//	{
//	  "title": "call the dentist",
//	  "priority": "medium"
//	}
func (t *TaskTool) Call(
	ctx context.Context,
	tctx ToolContext,
	input map[string]any,
) (map[string]any, error) {

	title := getString(input, "title")
	if title == "" {
		return nil, fmt.Errorf("add_task: title is required")
	}

	priority := getString(input, "priority")
	if priority == "" {
		priority = "medium"
	}

	if err := t.svc.AddTask(ctx, title, priority); err != nil {
		return nil, fmt.Errorf("add_task: %w", err)
	}

	return map[string]any{
		"status":  "ok",
		"message": fmt.Sprintf("Added %q to your tasks.", title),
	}, nil
}
