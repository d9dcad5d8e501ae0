package main

import (
	"context"
	"log"
	"net/http"

	"github.com/korahq/kora-agent/internal/adapters/habitapi"
	httpadapter "github.com/korahq/kora-agent/internal/adapters/http"
	"github.com/korahq/kora-agent/internal/adapters/llm"
	firestorestore "github.com/korahq/kora-agent/internal/adapters/storage/firestore"
	memstore "github.com/korahq/kora-agent/internal/adapters/storage/memory"
	"github.com/korahq/kora-agent/internal/app/call"
	"github.com/korahq/kora-agent/internal/config"
	"github.com/korahq/kora-agent/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Reply generation: mock or Vertex by config (useful for dev)
	var (
		replyClient domain.ReplyClient
		err         error
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using mock reply client")
		replyClient = llm.NewMockClient()
	} else {
		log.Println("[LLM] Using Vertex reply client")
		replyClient, err = llm.NewVertexClient(ctx)
		if err != nil {
			log.Fatalf("error initializing Vertex reply client: %v", err)
		}
	}

	// Call log: Firestore or Memory
	var (
		callLog  domain.CallLogStore
		insights domain.InsightReader
	)

	switch cfg.StorageBackend {
	case "firestore":
		if cfg.GCPProjectID == "" {
			log.Fatal("KORA_GCP_PROJECT is required for Firestore storage backend")
		}

		log.Printf("[STORE] Using Firestore call log (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}

		// 1 store, implements 2 interfaces
		callLog = fsStore
		insights = fsStore

	default:
		log.Println("[STORE] Using in-memory call log")
		memLog := memstore.NewCallLog()
		callLog = memLog
		insights = memLog
	}

	// Day-plan source and task/calendar services: the habit API when
	// configured, otherwise a local in-memory book.
	var (
		planSource  domain.DayPlanSource
		taskSvc     domain.TaskService
		calendarSvc domain.CalendarService
	)

	if cfg.HabitAPIURL != "" {
		log.Printf("[HABITS] Using habit API at %s", cfg.HabitAPIURL)
		client := habitapi.NewClient(cfg.HabitAPIURL)
		planSource = client
		taskSvc = client
		calendarSvc = client
	} else {
		log.Println("[HABITS] Using in-memory plan book")
		book := memstore.NewPlanBook(&domain.DayPlan{})
		planSource = book
		taskSvc = book
		calendarSvc = book
	}

	// Call service
	svc := call.NewService(
		replyClient,
		memstore.NewSessionStore(),
		memstore.NewContextStore(),
		callLog,
		planSource,
		taskSvc,
		calendarSvc,
		cfg.ListenTimeout,
	)

	// HTTP server
	handler := httpadapter.NewServer(svc, insights)

	port := ":" + cfg.Port
	log.Println("Kora API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
