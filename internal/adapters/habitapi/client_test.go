package habitapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/korahq/kora-agent/internal/adapters/habitapi"
)

func TestTodayPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/plan/today" {
			t.Errorf("path = %q, want /plan/today", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"habits":[{"name":"morning run","streak":4,"done":false}],"events":[{"title":"standup","when":"9:30 AM"}]}`))
	}))
	defer srv.Close()

	client := habitapi.NewClient(srv.URL)
	plan, err := client.TodayPlan(context.Background())
	if err != nil {
		t.Fatalf("TodayPlan failed: %v", err)
	}
	if len(plan.Habits) != 1 || plan.Habits[0].Name != "morning run" {
		t.Errorf("Habits = %+v", plan.Habits)
	}
	if len(plan.Events) != 1 || plan.Events[0].When != "9:30 AM" {
		t.Errorf("Events = %+v", plan.Events)
	}
}

func TestAddTask(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks" {
			t.Errorf("%s %s, want POST /tasks", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := habitapi.NewClient(srv.URL)
	if err := client.AddTask(context.Background(), "call the dentist", "high"); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if got["title"] != "call the dentist" || got["priority"] != "high" {
		t.Errorf("body = %v", got)
	}
}

func TestScheduleEventFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := habitapi.NewClient(srv.URL)
	if err := client.ScheduleEvent(context.Background(), "dentist", "3:00 PM"); err == nil {
		t.Fatal("expected error on 502")
	}
}
