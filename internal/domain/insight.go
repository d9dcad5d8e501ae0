package domain

import "time"

// Mood is the coarse emotional read of the call.
type Mood string

const (
	MoodPositive Mood = "positive"
	MoodLow      Mood = "low"
	MoodNeutral  Mood = "neutral"
	MoodFocused  Mood = "focused"
)

// EnergyLevel is the coarse energy read of the call.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// InsightSummary is the structured end-of-call summary. It is produced
// exactly once per session, written to the log store, then discarded.
type InsightSummary struct {
	Date       time.Time   `json:"date"`
	Priorities []string    `json:"priorities"` // at most 3, first-seen order
	Mood       Mood        `json:"mood"`
	Energy     EnergyLevel `json:"energy_level"`
	Notes      string      `json:"notes"`
}

// TopPriority returns the first extracted priority, or "" when none.
func (i *InsightSummary) TopPriority() string {
	if i == nil || len(i.Priorities) == 0 {
		return ""
	}
	return i.Priorities[0]
}
