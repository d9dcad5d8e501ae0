package tools

import (
	"context"
)

// ToolContext brings metadata of the call to the tool.
type ToolContext struct {
	CallID    string
	RequestID string
}

// Tool represents an action the turn processor can dispatch.
// input/output is a generic map to maintain flexibility.
type Tool interface {
	Name() string
	Call(ctx context.Context, tctx ToolContext, input map[string]any) (map[string]any, error)
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
