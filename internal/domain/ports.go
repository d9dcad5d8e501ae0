package domain

import "context"

// ReplyKind tags the outcome of an action-generation request. The set
// is closed: callers switch exhaustively on it.
type ReplyKind string

const (
	ReplyFreeText      ReplyKind = "free_text"
	ReplyAddTask       ReplyKind = "add_task"
	ReplyScheduleEvent ReplyKind = "schedule_event"
)

// TaskRequest carries the parameters of an add-task action.
type TaskRequest struct {
	Title    string
	Priority string
}

// EventRequest carries the parameters of a schedule-event action.
type EventRequest struct {
	Title string
	When  string
}

// ReplyResult is the tagged result of GenerateAction: either free text
// or a concrete tool request. Exactly one of Task/Event is set when the
// kind is the matching tool kind.
type ReplyResult struct {
	Kind  ReplyKind
	Text  string
	Task  *TaskRequest
	Event *EventRequest
}

// ReplyClient defines how the core talks to the reply-generation service.
type ReplyClient interface {
	// GenerateReply produces a free-text reply from the conversation history.
	GenerateReply(ctx context.Context, history []ContextMessage) (string, error)

	// GenerateCoachReply is the enriched path: it also receives a
	// day-plan analysis so the reply can reference today's habits.
	GenerateCoachReply(ctx context.Context, history []ContextMessage, planSummary string) (string, error)

	// GenerateAction asks the service whether the utterance requests a
	// side-effecting action, returning a tagged result.
	GenerateAction(ctx context.Context, history []ContextMessage, utterance string) (*ReplyResult, error)
}

// TaskService is the external task/knowledge-base collaborator.
type TaskService interface {
	AddTask(ctx context.Context, title, priority string) error
}

// CalendarService is the external calendar collaborator.
type CalendarService interface {
	ScheduleEvent(ctx context.Context, title, when string) error
}

// DayPlanSource is queried once at call start for today's snapshot.
type DayPlanSource interface {
	TodayPlan(ctx context.Context) (*DayPlan, error)
}

// ExchangeRecord is one turn as written to the log store.
type ExchangeRecord struct {
	ID        RecordID
	CallID    CallID
	UserText  string
	AgentText string
	ToolUsed  string
	State     SessionState
	At        Timestamp
}

// MissedCallRecord marks a call answered by voicemail.
type MissedCallRecord struct {
	ID     RecordID
	CallID CallID
	Heard  string // the utterance that triggered the voicemail call
	At     Timestamp
}

// CallLogStore is the append-only audit sink. Writes are fire-and-forget
// from the core's perspective: failures are logged, never propagated.
type CallLogStore interface {
	AppendExchange(ctx context.Context, rec *ExchangeRecord) error
	AppendMissedCall(ctx context.Context, rec *MissedCallRecord) error
	AppendInsight(ctx context.Context, callID CallID, ins *InsightSummary) error
}

// StoredInsight is an insight summary as read back from the log store.
type StoredInsight struct {
	CallID  CallID         `json:"call_id"`
	Summary InsightSummary `json:"summary"`
}

// InsightReader exposes stored summaries for review surfaces.
type InsightReader interface {
	// RecentInsights returns up to limit summaries, newest first.
	RecentInsights(ctx context.Context, limit int) ([]*StoredInsight, error)

	// InsightForCall returns the summary for one call, or nil when the
	// call has no stored summary.
	InsightForCall(ctx context.Context, id CallID) (*StoredInsight, error)
}

// SessionStore owns the registry of active call sessions. None of its
// operations fail: Get creates a default session on first access, and
// terminal states make later mutations no-ops.
type SessionStore interface {
	// Create registers a fresh session for id, replacing any live one.
	Create(id CallID) *CallSession

	// Get returns the session for id, creating one with TypeUnknown if absent.
	Get(id CallID) *CallSession

	// MarkVoicemail flips the session to the terminal voicemail state. Idempotent.
	MarkVoicemail(id CallID)

	SetState(id CallID, state SessionState)
	SetPlan(id CallID, plan *DayPlan)
	RecordExchange(id CallID, userText, agentText, toolUsed string)
	RecordDecision(id CallID, text string)

	// End finalizes the session and removes it from the registry,
	// returning the final snapshot. finalized is false when the session
	// was already terminal, so callers can skip duplicate side effects.
	End(id CallID) (snapshot *CallSession, finalized bool)
}

// ContextStore owns the per-call conversation context, independent of
// session metadata.
type ContextStore interface {
	// Init resets the context for id to a single system entry.
	Init(id CallID, systemPrompt string)

	Append(id CallID, role Role, content string)
	History(id CallID) []ContextMessage
	Clear(id CallID)
}
