package domain

import "time"

type CallID string
type RecordID string

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SessionState tracks where a call is inside its lifecycle.
type SessionState string

const (
	StateInitializing SessionState = "initializing" // call event received, plan not loaded yet
	StateOverview     SessionState = "overview"     // day plan loaded, greeting spoken
	StateConversation SessionState = "conversation" // normal back-and-forth
	StateEnding       SessionState = "ending"       // wrap-up in progress
	StateEnded        SessionState = "ended"        // terminal
	StateVoicemail    SessionState = "voicemail"    // terminal, answered by a machine
)

// IsTerminal reports whether no further state transitions are allowed.
func (s SessionState) IsTerminal() bool {
	return s == StateEnded || s == StateVoicemail
}

// SessionType is decided once per call and never reverted.
type SessionType string

const (
	TypeUnknown      SessionType = "unknown"
	TypeConversation SessionType = "conversation"
	TypeVoicemail    SessionType = "voicemail"
)

// CallStatus is the gateway's status code for a call.
type CallStatus string

const (
	StatusInProgress CallStatus = "in-progress"
	StatusCompleted  CallStatus = "completed"
	StatusNoAnswer   CallStatus = "no-answer"
	StatusBusy       CallStatus = "busy"
	StatusFailed     CallStatus = "failed"
	StatusCanceled   CallStatus = "canceled"
)

// IsTerminal reports whether the status means the call is over on the gateway side.
func (s CallStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusNoAnswer, StatusBusy, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

type Timestamp = time.Time
