package memory

import (
	"context"
	"sync"

	"github.com/korahq/kora-agent/internal/domain"
)

// PlanBook is an in-memory stand-in for the habit/calendar service.
// Local mode only: tasks and events land here instead of the real API.
type PlanBook struct {
	mu     sync.Mutex
	plan   *domain.DayPlan
	tasks  []domain.TaskRequest
	events []domain.EventRequest
}

func NewPlanBook(plan *domain.DayPlan) *PlanBook {
	return &PlanBook{plan: plan}
}

func (b *PlanBook) TodayPlan(ctx context.Context) (*domain.DayPlan, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.plan, nil
}

func (b *PlanBook) AddTask(ctx context.Context, title, priority string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append(b.tasks, domain.TaskRequest{Title: title, Priority: priority})
	return nil
}

func (b *PlanBook) ScheduleEvent(ctx context.Context, title, when string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, domain.EventRequest{Title: title, When: when})
	return nil
}

// Tasks returns a copy of everything recorded via AddTask.
func (b *PlanBook) Tasks() []domain.TaskRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.TaskRequest, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Events returns a copy of everything recorded via ScheduleEvent.
func (b *PlanBook) Events() []domain.EventRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.EventRequest, len(b.events))
	copy(out, b.events)
	return out
}
