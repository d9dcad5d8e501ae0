package call

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/korahq/kora-agent/internal/app/classify"
	"github.com/korahq/kora-agent/internal/app/insight"
	"github.com/korahq/kora-agent/internal/app/tools"
	"github.com/korahq/kora-agent/internal/domain"
	"github.com/korahq/kora-agent/internal/observability"
)

// Service is the turn processor: it reacts to gateway events for a call
// id, routes each utterance through the classifiers, keeps session and
// context state, dispatches tools and produces response directives.
type Service struct {
	replies  domain.ReplyClient
	sessions domain.SessionStore
	contexts domain.ContextStore
	logs     domain.CallLogStore
	plans    domain.DayPlanSource

	taskTool     tools.Tool
	calendarTool tools.Tool

	listenTimeout time.Duration
	closingIdx    atomic.Uint64
	now           func() time.Time
}

func NewService(
	replies domain.ReplyClient,
	sessions domain.SessionStore,
	contexts domain.ContextStore,
	logs domain.CallLogStore,
	plans domain.DayPlanSource,
	taskSvc domain.TaskService,
	calendarSvc domain.CalendarService,
	listenTimeout time.Duration,
) *Service {
	if listenTimeout <= 0 {
		listenTimeout = DefaultListenTimeout
	}

	return &Service{
		replies:       replies,
		sessions:      sessions,
		contexts:      contexts,
		logs:          logs,
		plans:         plans,
		taskTool:      tools.NewTaskTool(taskSvc),
		calendarTool:  tools.NewCalendarTool(calendarSvc),
		listenTimeout: listenTimeout,
		now:           time.Now,
	}
}

// StartCall creates the session for a new call, loads today's plan and
// returns the greeting directive. A plan-source failure is logged and
// the call continues without a plan.
func (s *Service) StartCall(ctx context.Context, id domain.CallID) Directive {
	log := observability.LoggerFromContext(ctx).With("call_id", id)
	log.Info("call started")

	s.sessions.Create(id)
	s.contexts.Init(id, personaPrompt)

	var summary string
	plan, err := s.plans.TodayPlan(ctx)
	if err != nil {
		log.Error("failed to load day plan", "error", err)
	} else {
		s.sessions.SetPlan(id, plan)
		summary = plan.Summary()
	}

	s.sessions.SetState(id, domain.StateOverview)

	greeting := greetingLine(summary)
	s.contexts.Append(id, domain.RoleAssistant, greeting)
	return s.listen(greeting)
}

// HandleStatus reacts to a call-status notification from the gateway.
// Terminal statuses finalize the session; no spoken response is emitted
// either way.
func (s *Service) HandleStatus(ctx context.Context, id domain.CallID, status domain.CallStatus) {
	log := observability.LoggerFromContext(ctx).With("call_id", id, "status", status)

	if !status.IsTerminal() {
		log.Info("non-terminal status, ignoring")
		return
	}

	log.Info("terminal status, finalizing session")
	s.finalize(ctx, id)
}

// HandleUtterance processes one inbound utterance and returns the
// response directive. The caller always gets a spoken line and a
// terminal action, whatever goes wrong inside.
func (s *Service) HandleUtterance(ctx context.Context, id domain.CallID, text string) Directive {
	log := observability.LoggerFromContext(ctx).With("call_id", id)

	// Voicemail wins over end intent: machine greetings can
	// coincidentally resemble closing phrases.
	if classify.IsVoicemail(text) {
		log.Info("voicemail detected", "text", text)
		return s.handleVoicemail(ctx, id, text)
	}

	if classify.IsEndIntent(text) {
		log.Info("end intent detected", "text", text)
		return s.endSession(ctx, id)
	}

	return s.handleTurn(ctx, id, text)
}

// handleVoicemail short-circuits the whole pipeline: mark, log the
// missed call, tear down, hang up.
func (s *Service) handleVoicemail(ctx context.Context, id domain.CallID, text string) Directive {
	log := observability.LoggerFromContext(ctx).With("call_id", id)

	s.sessions.MarkVoicemail(id)

	rec := &domain.MissedCallRecord{
		ID:     domain.RecordID(uuid.NewString()),
		CallID: id,
		Heard:  text,
		At:     s.now(),
	}
	if err := s.logs.AppendMissedCall(ctx, rec); err != nil {
		log.Error("failed to log missed call", "error", err)
	}

	s.sessions.End(id)
	s.contexts.Clear(id)

	return hangup(voicemailClosingLine)
}

// handleTurn is the normal-conversation path of the pipeline.
func (s *Service) handleTurn(ctx context.Context, id domain.CallID, text string) Directive {
	log := observability.LoggerFromContext(ctx).With("call_id", id)

	sess := s.sessions.Get(id)
	if sess.State == domain.StateInitializing || sess.State == domain.StateOverview {
		s.sessions.SetState(id, domain.StateConversation)
	}

	s.contexts.Append(id, domain.RoleUser, text)
	history := s.contexts.History(id)

	var reply, toolUsed string
	if classify.IsActionRequest(text) {
		reply, toolUsed = s.runAction(ctx, id, history, text)
	}
	if reply == "" {
		reply = s.generateReply(ctx, history, sess.Plan)
	}

	s.contexts.Append(id, domain.RoleAssistant, reply)
	s.sessions.RecordExchange(id, text, reply, toolUsed)

	if classify.IsCommitment(text) {
		s.sessions.RecordDecision(id, text)
	}

	rec := &domain.ExchangeRecord{
		ID:        domain.RecordID(uuid.NewString()),
		CallID:    id,
		UserText:  text,
		AgentText: reply,
		ToolUsed:  toolUsed,
		State:     s.sessions.Get(id).State,
		At:        s.now(),
	}
	if err := s.logs.AppendExchange(ctx, rec); err != nil {
		log.Error("failed to log exchange", "error", err)
	}

	log.Info("turn completed", "tool", toolUsed)
	return s.listen(reply)
}

// runAction asks the reply service for a structured action and
// dispatches it. Returns ("", "") when the result is free text with no
// usable reply, so the caller falls through to plain generation.
func (s *Service) runAction(ctx context.Context, id domain.CallID, history []domain.ContextMessage, text string) (reply, toolUsed string) {
	log := observability.LoggerFromContext(ctx).With("call_id", id)

	res, err := s.replies.GenerateAction(ctx, history, text)
	if err != nil {
		log.Error("action generation failed", "error", err)
		return "", ""
	}

	tctx := tools.ToolContext{CallID: string(id)}

	switch res.Kind {
	case domain.ReplyAddTask:
		if res.Task == nil {
			return "", ""
		}
		out, err := s.taskTool.Call(ctx, tctx, map[string]any{
			"title":    res.Task.Title,
			"priority": res.Task.Priority,
		})
		if err != nil {
			log.Error("task dispatch failed", "error", err)
			return taskFailureLine, s.taskTool.Name()
		}
		return toolMessage(out), s.taskTool.Name()

	case domain.ReplyScheduleEvent:
		if res.Event == nil {
			return "", ""
		}
		out, err := s.calendarTool.Call(ctx, tctx, map[string]any{
			"title": res.Event.Title,
			"when":  res.Event.When,
		})
		if err != nil {
			log.Error("calendar dispatch failed", "error", err)
			return eventFailureLine, s.calendarTool.Name()
		}
		return toolMessage(out), s.calendarTool.Name()

	case domain.ReplyFreeText:
		return res.Text, ""
	}

	log.Warn("unknown reply kind", "kind", res.Kind)
	return "", ""
}

func toolMessage(out map[string]any) string {
	if msg, ok := out["message"].(string); ok && msg != "" {
		return msg
	}
	return "Done."
}

// generateReply prefers the plan-aware path and degrades twice: first
// to plain generation, then to a fixed line. It never fails.
func (s *Service) generateReply(ctx context.Context, history []domain.ContextMessage, plan *domain.DayPlan) string {
	log := observability.LoggerFromContext(ctx)

	if !plan.IsEmpty() {
		reply, err := s.replies.GenerateCoachReply(ctx, history, plan.Summary())
		if err == nil {
			return reply
		}
		log.Warn("contextual reply failed, falling back to plain generation", "error", err)
	}

	reply, err := s.replies.GenerateReply(ctx, history)
	if err != nil {
		log.Error("reply generation failed", "error", err)
		return fallbackLine
	}
	return reply
}

// FallbackDirective is the last-resort response for a turn that failed
// outright: a fixed spoken line and a keep-listening action.
func (s *Service) FallbackDirective() Directive {
	return s.listen(fallbackLine)
}

// endSession runs the wrap-up: extract insights, finalize, clear the
// context and hang up with a closing line. Nothing here can prevent
// the hangup.
func (s *Service) endSession(ctx context.Context, id domain.CallID) Directive {
	s.sessions.SetState(id, domain.StateEnding)

	sum := s.finalize(ctx, id)

	if p := sum.TopPriority(); p != "" {
		return hangup(priorityClosing(p))
	}

	idx := s.closingIdx.Add(1)
	return hangup(genericClosings[int(idx)%len(genericClosings)])
}

// finalize extracts the end-of-call summary, ends the session and
// clears the context. Only the invocation that actually finalizes the
// session writes the insight record; a second racing call is a no-op
// on the log store.
func (s *Service) finalize(ctx context.Context, id domain.CallID) *domain.InsightSummary {
	log := observability.LoggerFromContext(ctx).With("call_id", id)

	// History first, then End: the snapshot carries decisions and plan,
	// and a second racing finalize sees finalized=false.
	history := s.contexts.History(id)
	snap, finalized := s.sessions.End(id)
	sum := insight.Extract(history, snap.Decisions, snap.Plan, s.now())

	if finalized {
		if err := s.logs.AppendInsight(ctx, id, sum); err != nil {
			log.Error("failed to store insight summary", "error", err)
		}
		log.Info("session finalized",
			"mood", sum.Mood,
			"priorities", len(sum.Priorities),
		)
	}

	s.contexts.Clear(id)
	return sum
}
