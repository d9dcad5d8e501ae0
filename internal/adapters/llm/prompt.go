package llm

import (
	"strings"

	"github.com/korahq/kora-agent/internal/domain"
)

const coachInstructions = `
Keep your reply short enough to speak out loud in a few seconds.
Reference the caller's plan for today where it is relevant.
Nudge toward one small, concrete next step.
`

const actionInstructions = `The caller asked for something to be saved or scheduled.
Decide which action fits and answer with a single JSON object, nothing else:

{"action": "add_task", "title": "...", "priority": "low|medium|high"}
{"action": "schedule_event", "title": "...", "when": "..."}
{"action": "none", "reply": "a short spoken reply instead"}

Use "none" when the request is not actually a task or calendar entry.`

// historyText flattens the conversation for models driven through a
// single text turn. The system entry is handled separately.
func historyText(history []domain.ContextMessage) string {
	var sb strings.Builder
	for _, m := range history {
		switch m.Role {
		case domain.RoleUser:
			sb.WriteString("user: ")
		case domain.RoleAssistant:
			sb.WriteString("assistant: ")
		default:
			continue
		}
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

// systemPrompt pulls the persona entry off the front of the history,
// falling back to a minimal instruction if the context was not
// initialized through the context store.
func systemPrompt(history []domain.ContextMessage) string {
	if len(history) > 0 && history[0].Role == domain.RoleSystem {
		return history[0].Content
	}
	return "You are a friendly phone coach. Keep replies short and speakable."
}

func buildActionPrompt(history []domain.ContextMessage, utterance string) string {
	var sb strings.Builder
	sb.WriteString("Conversation so far:\n")
	sb.WriteString(historyText(history))
	sb.WriteString("\nThe caller just said:\n")
	sb.WriteString(utterance)
	sb.WriteString("\n\n")
	sb.WriteString(actionInstructions)
	return sb.String()
}

func buildCoachPrompt(planSummary string) string {
	var sb strings.Builder
	sb.WriteString(coachInstructions)
	if planSummary != "" {
		sb.WriteString("\nThe caller's plan for today:\n")
		sb.WriteString(planSummary)
		sb.WriteString("\n")
	}
	return sb.String()
}
