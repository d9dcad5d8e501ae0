package domain

// ContextMessage is one entry of the per-call conversation context sent
// to the reply-generation service.
type ContextMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
