// Package insight derives the structured end-of-call summary from a
// finished session. Extraction is a pure function: same history, same
// decisions, same plan, same summary.
package insight

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/korahq/kora-agent/internal/domain"
)

// DefaultNotes is the digest used when the call carried nothing to
// summarize: no decisions, no priorities, fewer than two user turns.
const DefaultNotes = "Quick check-in, nothing specific discussed"

const maxPriorities = 3

var (
	durationPattern   = regexp.MustCompile(`\b\d+\s*(?:minutes?|mins?|hours?|hrs?)\b`)
	actionVerbPattern = regexp.MustCompile(`\b(?:start|begin|do|work on|focus on)\s+([a-z0-9][a-z0-9' ]{2,40})`)
)

// Keyword sets for the mood read, checked in order. First set with a
// hit decides both mood and energy.
var (
	positiveWords = []string{"great", "good", "awesome", "amazing", "excited", "motivated", "energized", "fantastic", "happy"}
	negativeWords = []string{"tired", "exhausted", "hard", "struggling", "struggle", "stressed", "overwhelmed", "difficult", "can't", "anxious", "down"}
	neutralWords  = []string{"okay", "ok", "fine", "alright", "sure", "not bad"}
	focusWords    = []string{"focus", "focused", "busy", "deadline", "urgent", "need to", "have to"}
)

// Extract builds the InsightSummary for one session.
func Extract(history []domain.ContextMessage, decisions []string, plan *domain.DayPlan, now time.Time) *domain.InsightSummary {
	userTurns := userTurns(history)
	mood, energy := moodAndEnergy(userTurns)

	return &domain.InsightSummary{
		Date:       now,
		Priorities: extractPriorities(userTurns, plan),
		Mood:       mood,
		Energy:     energy,
		Notes:      buildNotes(userTurns, decisions, plan),
	}
}

func userTurns(history []domain.ContextMessage) []string {
	var turns []string
	for _, m := range history {
		if m.Role == domain.RoleUser {
			turns = append(turns, m.Content)
		}
	}
	return turns
}

// extractPriorities scans user turns for habit mentions, time-duration
// mentions and action-verb phrases, deduplicated in first-seen order.
func extractPriorities(turns []string, plan *domain.DayPlan) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p == "" || len(out) >= maxPriorities {
			return
		}
		key := strings.ToLower(p)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	for _, turn := range turns {
		lower := strings.ToLower(turn)

		if plan != nil {
			for _, h := range plan.Habits {
				fields := strings.Fields(strings.ToLower(h.Name))
				if len(fields) == 0 {
					continue
				}
				if strings.Contains(lower, fields[0]) {
					add(h.Name)
				}
			}
		}

		if m := durationPattern.FindString(lower); m != "" {
			add(m)
		}

		if m := actionVerbPattern.FindStringSubmatch(lower); m != nil {
			add(m[1])
		}
	}

	return out
}

func moodAndEnergy(turns []string) (domain.Mood, domain.EnergyLevel) {
	joined := strings.ToLower(strings.Join(turns, " "))

	switch {
	case containsAny(joined, positiveWords):
		return domain.MoodPositive, domain.EnergyHigh
	case containsAny(joined, negativeWords):
		return domain.MoodLow, domain.EnergyLow
	case containsAny(joined, neutralWords):
		return domain.MoodNeutral, domain.EnergyMedium
	case containsAny(joined, focusWords):
		return domain.MoodFocused, domain.EnergyHigh
	}
	return domain.MoodNeutral, domain.EnergyMedium
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// buildNotes assembles a short human-readable digest: decision count,
// top priority, and a coarse length qualifier.
func buildNotes(turns []string, decisions []string, plan *domain.DayPlan) string {
	var parts []string

	if n := len(decisions); n > 0 {
		word := "commitments"
		if n == 1 {
			word = "commitment"
		}
		parts = append(parts, fmt.Sprintf("%d %s made", n, word))
	}

	if prios := extractPriorities(turns, plan); len(prios) > 0 {
		parts = append(parts, "top priority: "+prios[0])
	}

	switch {
	case len(turns) > 3:
		parts = append(parts, "extended conversation")
	case len(turns) >= 2:
		parts = append(parts, "brief conversation")
	}

	if len(parts) == 0 {
		return DefaultNotes
	}
	return strings.Join(parts, "; ")
}
