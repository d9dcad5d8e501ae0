package domain

// Exchange is one user/agent turn pair, with the tool used during the
// turn (empty when no tool ran).
type Exchange struct {
	UserText  string
	AgentText string
	ToolUsed  string
	At        Timestamp
}

// CallSession holds everything the agent knows about one active call.
// It is created on the first gateway event for a call id and mutated
// only by the call service until it reaches a terminal state.
type CallSession struct {
	ID    CallID
	State SessionState
	Type  SessionType

	// Exchanges and Decisions are append-only.
	Exchanges []Exchange
	Decisions []string

	// Plan is fetched once at call start and read-only afterwards.
	Plan *DayPlan

	StartedAt Timestamp
	EndedAt   Timestamp
}
