package domain

import "strings"

// Habit is one recurring practice the caller is tracking.
type Habit struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
	Done   bool   `json:"done"`
}

// PlannedEvent is an upcoming calendar entry for today.
type PlannedEvent struct {
	Title string `json:"title"`
	When  string `json:"when"` // e.g. "3:00 PM"
}

// DayPlan is the snapshot of today's habits and events fetched at call
// start. It is never refreshed during a call.
type DayPlan struct {
	Habits []Habit        `json:"habits"`
	Events []PlannedEvent `json:"events"`
}

// Summary renders the plan as a short spoken-friendly line.
func (p *DayPlan) Summary() string {
	if p == nil {
		return ""
	}

	var parts []string

	var pending []string
	for _, h := range p.Habits {
		if !h.Done {
			pending = append(pending, h.Name)
		}
	}
	if len(pending) > 0 {
		parts = append(parts, "Still open today: "+strings.Join(pending, ", ")+".")
	}

	for _, ev := range p.Events {
		if ev.When != "" {
			parts = append(parts, ev.Title+" at "+ev.When+".")
		} else {
			parts = append(parts, ev.Title+".")
		}
	}

	return strings.Join(parts, " ")
}

// IsEmpty reports whether the plan carries nothing worth speaking.
func (p *DayPlan) IsEmpty() bool {
	return p == nil || (len(p.Habits) == 0 && len(p.Events) == 0)
}
