package llm

import (
	"context"
	"strings"

	"github.com/korahq/kora-agent/internal/domain"
)

// MockClient is a deterministic ReplyClient for local mode and tests.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GenerateReply(ctx context.Context, history []domain.ContextMessage) (string, error) {
	last := lastUserMessage(history)
	if last == "" {
		return "I'm listening. What's on your mind?", nil
	}
	return "Got it. What's one small step you could take on that today?", nil
}

func (m *MockClient) GenerateCoachReply(ctx context.Context, history []domain.ContextMessage, planSummary string) (string, error) {
	if planSummary == "" {
		return m.GenerateReply(ctx, history)
	}
	return "Looking at your plan, pick the first open item and give it fifteen minutes. Which one will it be?", nil
}

// GenerateAction guesses the action from the utterance with the same
// keyword shapes a real model would be prompted toward.
func (m *MockClient) GenerateAction(ctx context.Context, history []domain.ContextMessage, utterance string) (*domain.ReplyResult, error) {
	lower := strings.ToLower(utterance)

	switch {
	case strings.Contains(lower, "calendar") || strings.Contains(lower, "schedule"):
		return &domain.ReplyResult{
			Kind:  domain.ReplyScheduleEvent,
			Event: &domain.EventRequest{Title: strings.TrimSpace(utterance), When: ""},
		}, nil
	case strings.Contains(lower, "task") || strings.Contains(lower, "remind") ||
		strings.Contains(lower, "todo") || strings.Contains(lower, "add"):
		return &domain.ReplyResult{
			Kind: domain.ReplyAddTask,
			Task: &domain.TaskRequest{Title: strings.TrimSpace(utterance), Priority: "medium"},
		}, nil
	}

	return &domain.ReplyResult{
		Kind: domain.ReplyFreeText,
		Text: "I can add tasks or put things on your calendar. Which would you like?",
	}, nil
}

func lastUserMessage(history []domain.ContextMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.RoleUser {
			return history[i].Content
		}
	}
	return ""
}
