package memory

import (
	"sync"
	"time"

	"github.com/korahq/kora-agent/internal/domain"
)

// SessionStore is the in-process registry of active call sessions.
// One entry per call id; terminal sessions are removed on End.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[domain.CallID]*domain.CallSession
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.CallID]*domain.CallSession),
		now:      time.Now,
	}
}

// Create registers a fresh session for id. A second Create for a live
// id replaces the existing session rather than duplicating it.
func (s *SessionStore) Create(id domain.CallID) *domain.CallSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &domain.CallSession{
		ID:        id,
		State:     domain.StateInitializing,
		Type:      domain.TypeUnknown,
		StartedAt: s.now(),
	}
	s.sessions[id] = sess
	return sess
}

// Get returns the session for id, creating a default one if absent.
// It never fails: a status event can arrive before any speech event.
func (s *SessionStore) Get(id domain.CallID) *domain.CallSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(id)
}

func (s *SessionStore) getLocked(id domain.CallID) *domain.CallSession {
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &domain.CallSession{
		ID:        id,
		State:     domain.StateInitializing,
		Type:      domain.TypeUnknown,
		StartedAt: s.now(),
	}
	s.sessions[id] = sess
	return sess
}

// MarkVoicemail flips the session into the terminal voicemail state.
// Idempotent; a no-op when the session is already terminal or gone.
func (s *SessionStore) MarkVoicemail(id domain.CallID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.State.IsTerminal() {
		return
	}
	sess.Type = domain.TypeVoicemail
	sess.State = domain.StateVoicemail
	if sess.EndedAt.IsZero() {
		sess.EndedAt = s.now()
	}
}

// SetState transitions the session. Terminal states are sticky: once
// ended or voicemail, classifier-driven transitions are no-ops. An
// already-removed session is never resurrected by a transition.
func (s *SessionStore) SetState(id domain.CallID, state domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.State.IsTerminal() {
		return
	}
	sess.State = state
	if state == domain.StateConversation && sess.Type == domain.TypeUnknown {
		sess.Type = domain.TypeConversation
	}
}

func (s *SessionStore) SetPlan(id domain.CallID, plan *domain.DayPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.Plan = plan
	}
}

func (s *SessionStore) RecordExchange(id domain.CallID, userText, agentText, toolUsed string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	sess.Exchanges = append(sess.Exchanges, domain.Exchange{
		UserText:  userText,
		AgentText: agentText,
		ToolUsed:  toolUsed,
		At:        s.now(),
	})
}

func (s *SessionStore) RecordDecision(id domain.CallID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.Decisions = append(sess.Decisions, text)
	}
}

// End finalizes the session and removes it from the registry. The
// second of two racing End calls observes the already-terminal snapshot
// and gets finalized=false, so it performs no duplicate side effects.
func (s *SessionStore) End(id domain.CallID) (*domain.CallSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		// Already ended and removed; synthesize a terminal snapshot.
		return &domain.CallSession{
			ID:    id,
			State: domain.StateEnded,
			Type:  domain.TypeUnknown,
		}, false
	}

	finalized := !sess.State.IsTerminal()
	if finalized {
		sess.State = domain.StateEnded
		if sess.Type == domain.TypeUnknown {
			sess.Type = domain.TypeConversation
		}
	}
	if sess.EndedAt.IsZero() {
		sess.EndedAt = s.now()
	}

	delete(s.sessions, id)
	return sess, finalized
}

// Len reports the number of live sessions. Used by tests and the
// health endpoint.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
