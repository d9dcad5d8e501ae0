package memory

import (
	"sync"

	"github.com/korahq/kora-agent/internal/domain"
)

// ContextStore holds the per-call conversation context. Its lifecycle
// is independent of the session registry: replaced at call start,
// cleared at call end.
type ContextStore struct {
	mu       sync.RWMutex
	contexts map[domain.CallID][]domain.ContextMessage
}

func NewContextStore() *ContextStore {
	return &ContextStore{
		contexts: make(map[domain.CallID][]domain.ContextMessage),
	}
}

// Init resets the context for id to a single system entry. The list
// always begins with exactly one system message.
func (s *ContextStore) Init(id domain.CallID, systemPrompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts[id] = []domain.ContextMessage{
		{Role: domain.RoleSystem, Content: systemPrompt},
	}
}

func (s *ContextStore) Append(id domain.CallID, role domain.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts[id] = append(s.contexts[id], domain.ContextMessage{
		Role:    role,
		Content: content,
	})
}

// History returns a copy of the ordered context for id.
func (s *ContextStore) History(id domain.CallID) []domain.ContextMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.contexts[id]
	out := make([]domain.ContextMessage, len(msgs))
	copy(out, msgs)
	return out
}

func (s *ContextStore) Clear(id domain.CallID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, id)
}
