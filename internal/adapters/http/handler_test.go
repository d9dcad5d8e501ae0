package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/korahq/kora-agent/internal/adapters/http"
	"github.com/korahq/kora-agent/internal/adapters/llm"
	"github.com/korahq/kora-agent/internal/adapters/storage/memory"
	"github.com/korahq/kora-agent/internal/app/call"
	"github.com/korahq/kora-agent/internal/domain"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	plan := &domain.DayPlan{
		Habits: []domain.Habit{{Name: "morning run"}},
	}
	book := memory.NewPlanBook(plan)
	log := memory.NewCallLog()

	svc := call.NewService(
		llm.NewMockClient(),
		memory.NewSessionStore(),
		memory.NewContextStore(),
		log,
		book,
		book,
		book,
		0,
	)

	return httpadapter.NewServer(svc, log)
}

func postEvent(t *testing.T, srv http.Handler, callID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/calls/"+callID+"/events", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestStartAndSpeechEvents(t *testing.T) {
	srv := newTestServer(t)

	w := postEvent(t, srv, "call-1", `{"type":"start"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var d struct {
		Say             []string `json:"say"`
		Action          string   `json:"action"`
		ListenTimeoutMS int64    `json:"listen_timeout_ms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("decoding start response: %v", err)
	}
	if d.Action != "listen" || len(d.Say) == 0 || d.ListenTimeoutMS <= 0 {
		t.Errorf("start directive = %+v, want greeting + listen + timeout", d)
	}

	w = postEvent(t, srv, "call-1", `{"type":"speech","text":"I'll do my run at noon"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("speech: expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("decoding speech response: %v", err)
	}
	if d.Action != "listen" {
		t.Errorf("speech action = %q, want listen", d.Action)
	}
}

func TestVoicemailEventHangsUp(t *testing.T) {
	srv := newTestServer(t)

	postEvent(t, srv, "call-1", `{"type":"start"}`)
	w := postEvent(t, srv, "call-1", `{"type":"speech","text":"858 386 6200"}`)

	var d struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if d.Action != "hangup" {
		t.Errorf("action = %q, want hangup", d.Action)
	}
}

func TestStatusEventReturnsNoContent(t *testing.T) {
	srv := newTestServer(t)

	postEvent(t, srv, "call-1", `{"type":"start"}`)
	w := postEvent(t, srv, "call-1", `{"type":"status","status":"completed"}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestBadEventRequests(t *testing.T) {
	srv := newTestServer(t)

	if w := postEvent(t, srv, "call-1", `not json`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON: got %d, want 400", w.Code)
	}
	if w := postEvent(t, srv, "call-1", `{"type":"speech"}`); w.Code != http.StatusBadRequest {
		t.Errorf("speech without text: got %d, want 400", w.Code)
	}
	if w := postEvent(t, srv, "call-1", `{"type":"teleport"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown type: got %d, want 400", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/calls/call-1/events", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET events: got %d, want 405", w.Code)
	}
}

func TestInsightEndpoints(t *testing.T) {
	srv := newTestServer(t)

	postEvent(t, srv, "call-1", `{"type":"start"}`)
	postEvent(t, srv, "call-1", `{"type":"speech","text":"I'll focus on the report for 30 minutes"}`)
	postEvent(t, srv, "call-1", `{"type":"speech","text":"that's it, thanks"}`)

	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("recent insights: expected 200, got %d", w.Code)
	}

	var recent struct {
		Insights []struct {
			CallID string `json:"call_id"`
		} `json:"insights"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &recent); err != nil {
		t.Fatalf("decoding recent insights: %v", err)
	}
	if len(recent.Insights) != 1 || recent.Insights[0].CallID != "call-1" {
		t.Errorf("insights = %+v, want one for call-1", recent.Insights)
	}

	req = httptest.NewRequest(http.MethodGet, "/insights/call-1", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("insight for call: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/insights/unknown-call", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown call: expected 404, got %d", w.Code)
	}
}
