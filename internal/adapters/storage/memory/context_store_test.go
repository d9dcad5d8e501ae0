package memory_test

import (
	"testing"

	"github.com/korahq/kora-agent/internal/adapters/storage/memory"
	"github.com/korahq/kora-agent/internal/domain"
)

func TestContextStartsWithSystemEntry(t *testing.T) {
	store := memory.NewContextStore()

	store.Init("call-1", "persona")
	store.Append("call-1", domain.RoleUser, "hello")
	store.Append("call-1", domain.RoleAssistant, "hi there")

	history := store.History("call-1")
	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	if history[0].Role != domain.RoleSystem || history[0].Content != "persona" {
		t.Errorf("history[0] = %+v, want the system entry first", history[0])
	}

	// Re-init replaces the whole context, keeping a single system entry.
	store.Init("call-1", "persona")
	if got := store.History("call-1"); len(got) != 1 {
		t.Errorf("len(history) after re-init = %d, want 1", len(got))
	}
}

func TestContextClear(t *testing.T) {
	store := memory.NewContextStore()

	store.Init("call-1", "persona")
	store.Clear("call-1")

	if got := store.History("call-1"); len(got) != 0 {
		t.Errorf("history after Clear = %v, want empty", got)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	store := memory.NewContextStore()

	store.Init("call-1", "persona")
	history := store.History("call-1")
	history[0].Content = "mutated"

	if got := store.History("call-1")[0].Content; got != "persona" {
		t.Errorf("stored content = %q, want unaffected by caller mutation", got)
	}
}
