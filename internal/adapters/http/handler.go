package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/korahq/kora-agent/internal/app/call"
	"github.com/korahq/kora-agent/internal/domain"
	"github.com/korahq/kora-agent/internal/observability"
)

type Server struct {
	svc      *call.Service
	insights domain.InsightReader
}

func NewServer(svc *call.Service, insights domain.InsightReader) http.Handler {
	s := &Server{svc: svc, insights: insights}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /calls/{id}/events → POST: one gateway event (start, speech or status)
	mux.HandleFunc("/calls/", s.handleCallWithID)

	// /insights          → GET: recent end-of-call summaries
	// /insights/{callID} → GET: summary for one call
	mux.HandleFunc("/insights", s.handleRecentInsights)
	mux.HandleFunc("/insights/", s.handleInsightForCall)

	return chainMiddlewares(mux, withLogging)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type callEventRequest struct {
	Type   string `json:"type"` // "start", "speech" or "status"
	Text   string `json:"text,omitempty"`
	Status string `json:"status,omitempty"`
}

type directiveResponse struct {
	Say             []string `json:"say"`
	Action          string   `json:"action"`
	ListenTimeoutMS int64    `json:"listen_timeout_ms,omitempty"`
	Reprompts       []string `json:"reprompts,omitempty"`
}

func toDirectiveResponse(d call.Directive) directiveResponse {
	return directiveResponse{
		Say:             d.Say,
		Action:          string(d.Action),
		ListenTimeoutMS: d.ListenTimeout.Milliseconds(),
		Reprompts:       d.Reprompts,
	}
}

// ─────────────────────────────────────────────
// Basic routing
// ─────────────────────────────────────────────

// /calls/{id}/events
func (s *Server) handleCallWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/calls/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[0] == "" || parts[1] != "events" {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	s.handleCallEvent(w, r, domain.CallID(parts[0]))
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCallEvent(w http.ResponseWriter, r *http.Request, id domain.CallID) {
	var req callEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	ctx := observability.WithCallID(r.Context(), string(id))

	switch req.Type {
	case "start":
		d := s.svc.StartCall(ctx, id)
		writeJSON(w, http.StatusOK, toDirectiveResponse(d))

	case "speech":
		if strings.TrimSpace(req.Text) == "" {
			badRequest(w, "text is required for speech events")
			return
		}
		d := s.safeHandleUtterance(ctx, id, req.Text)
		writeJSON(w, http.StatusOK, toDirectiveResponse(d))

	case "status":
		if req.Status == "" {
			badRequest(w, "status is required for status events")
			return
		}
		s.svc.HandleStatus(ctx, id, domain.CallStatus(req.Status))
		w.WriteHeader(http.StatusNoContent)

	default:
		badRequest(w, "unknown event type")
	}
}

// safeHandleUtterance is the turn boundary: whatever blows up inside a
// turn, the caller still gets a spoken line and a terminal action.
func (s *Server) safeHandleUtterance(ctx context.Context, id domain.CallID, text string) (d call.Directive) {
	defer func() {
		if rec := recover(); rec != nil {
			observability.LoggerFromContext(ctx).Error("panic during turn", "panic", rec)
			d = s.svc.FallbackDirective()
		}
	}()
	return s.svc.HandleUtterance(ctx, id, text)
}

func (s *Server) handleRecentInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	out, err := s.insights.RecentInsights(r.Context(), limit)
	if err != nil {
		internalError(w, err)
		return
	}
	if out == nil {
		out = []*domain.StoredInsight{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"insights": out})
}

func (s *Server) handleInsightForCall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/insights/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	ins, err := s.insights.InsightForCall(r.Context(), domain.CallID(id))
	if err != nil {
		internalError(w, err)
		return
	}
	if ins == nil {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, ins)
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
