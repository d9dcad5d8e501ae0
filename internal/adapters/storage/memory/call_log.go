package memory

import (
	"context"
	"sync"

	"github.com/korahq/kora-agent/internal/domain"
)

// CallLog is an in-memory implementation of domain.CallLogStore and
// domain.InsightReader. It is NOT persistent and is only suitable for
// development / local mode.
type CallLog struct {
	mu          sync.RWMutex
	exchanges   []*domain.ExchangeRecord
	missedCalls []*domain.MissedCallRecord
	insights    []*domain.StoredInsight
	byCall      map[domain.CallID]*domain.StoredInsight
}

func NewCallLog() *CallLog {
	return &CallLog{
		byCall: make(map[domain.CallID]*domain.StoredInsight),
	}
}

func (l *CallLog) AppendExchange(ctx context.Context, rec *domain.ExchangeRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.exchanges = append(l.exchanges, rec)
	return nil
}

func (l *CallLog) AppendMissedCall(ctx context.Context, rec *domain.MissedCallRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.missedCalls = append(l.missedCalls, rec)
	return nil
}

func (l *CallLog) AppendInsight(ctx context.Context, callID domain.CallID, ins *domain.InsightSummary) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := &domain.StoredInsight{CallID: callID, Summary: *ins}
	l.insights = append(l.insights, stored)
	l.byCall[callID] = stored
	return nil
}

// RecentInsights returns up to limit summaries, newest first.
func (l *CallLog) RecentInsights(ctx context.Context, limit int) ([]*domain.StoredInsight, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []*domain.StoredInsight
	for i := len(l.insights) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, l.insights[i])
	}
	return out, nil
}

// InsightForCall returns the summary for one call, or nil.
func (l *CallLog) InsightForCall(ctx context.Context, id domain.CallID) (*domain.StoredInsight, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byCall[id], nil
}

// Exchanges returns a copy of all exchange records, in append order.
func (l *CallLog) Exchanges() []*domain.ExchangeRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*domain.ExchangeRecord, len(l.exchanges))
	copy(out, l.exchanges)
	return out
}

// MissedCalls returns a copy of all missed-call records.
func (l *CallLog) MissedCalls() []*domain.MissedCallRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*domain.MissedCallRecord, len(l.missedCalls))
	copy(out, l.missedCalls)
	return out
}

// Insight returns the stored insight for a call, or nil.
func (l *CallLog) Insight(callID domain.CallID) *domain.InsightSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if stored, ok := l.byCall[callID]; ok {
		return &stored.Summary
	}
	return nil
}
