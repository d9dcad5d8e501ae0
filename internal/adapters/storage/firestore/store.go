package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/korahq/kora-agent/internal/domain"
)

// Store is the durable call-log/audit store on Firestore. It implements
// domain.CallLogStore and domain.InsightReader.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store.
// Uses the project passed (KORA_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) exchangesCol() *firestore.CollectionRef {
	return s.client.Collection("exchanges")
}

func (s *Store) missedCallsCol() *firestore.CollectionRef {
	return s.client.Collection("missed_calls")
}

func (s *Store) insightsCol() *firestore.CollectionRef {
	return s.client.Collection("insights")
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type exchangeDoc struct {
	CallID    string    `firestore:"call_id"`
	UserText  string    `firestore:"user_text"`
	AgentText string    `firestore:"agent_text"`
	ToolUsed  string    `firestore:"tool_used"`
	State     string    `firestore:"state"`
	At        time.Time `firestore:"at"`
}

type missedCallDoc struct {
	CallID string    `firestore:"call_id"`
	Heard  string    `firestore:"heard"`
	At     time.Time `firestore:"at"`
}

type insightDoc struct {
	CallID     string    `firestore:"call_id"`
	Date       time.Time `firestore:"date"`
	Priorities []string  `firestore:"priorities"`
	Mood       string    `firestore:"mood"`
	Energy     string    `firestore:"energy_level"`
	Notes      string    `firestore:"notes"`
}

// ─────────────────────────────────────────
// CallLogStore implementation
// ─────────────────────────────────────────

func (s *Store) AppendExchange(ctx context.Context, rec *domain.ExchangeRecord) error {
	doc := exchangeDoc{
		CallID:    string(rec.CallID),
		UserText:  rec.UserText,
		AgentText: rec.AgentText,
		ToolUsed:  rec.ToolUsed,
		State:     string(rec.State),
		At:        rec.At,
	}

	_, err := s.exchangesCol().Doc(string(rec.ID)).Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendExchange: %w", err)
	}
	return nil
}

func (s *Store) AppendMissedCall(ctx context.Context, rec *domain.MissedCallRecord) error {
	doc := missedCallDoc{
		CallID: string(rec.CallID),
		Heard:  rec.Heard,
		At:     rec.At,
	}

	_, err := s.missedCallsCol().Doc(string(rec.ID)).Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendMissedCall: %w", err)
	}
	return nil
}

func (s *Store) AppendInsight(ctx context.Context, callID domain.CallID, ins *domain.InsightSummary) error {
	doc := insightDoc{
		CallID:     string(callID),
		Date:       ins.Date,
		Priorities: ins.Priorities,
		Mood:       string(ins.Mood),
		Energy:     string(ins.Energy),
		Notes:      ins.Notes,
	}

	// Doc id = call id: AppendInsight runs at most once per call, and a
	// retried write stays idempotent on the store side.
	_, err := s.insightsCol().Doc(string(callID)).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendInsight: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────
// InsightReader implementation
// ─────────────────────────────────────────

func (s *Store) RecentInsights(ctx context.Context, limit int) ([]*domain.StoredInsight, error) {
	if limit <= 0 {
		limit = 20
	}

	iter := s.insightsCol().
		OrderBy("date", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var out []*domain.StoredInsight
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore RecentInsights: %w", err)
		}

		var doc insightDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("firestore RecentInsights decode: %w", err)
		}
		out = append(out, toStoredInsight(&doc))
	}

	return out, nil
}

func (s *Store) InsightForCall(ctx context.Context, id domain.CallID) (*domain.StoredInsight, error) {
	snap, err := s.insightsCol().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("firestore InsightForCall: %w", err)
	}

	var doc insightDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore InsightForCall decode: %w", err)
	}
	return toStoredInsight(&doc), nil
}

func toStoredInsight(doc *insightDoc) *domain.StoredInsight {
	return &domain.StoredInsight{
		CallID: domain.CallID(doc.CallID),
		Summary: domain.InsightSummary{
			Date:       doc.Date,
			Priorities: doc.Priorities,
			Mood:       domain.Mood(doc.Mood),
			Energy:     domain.EnergyLevel(doc.Energy),
			Notes:      doc.Notes,
		},
	}
}
