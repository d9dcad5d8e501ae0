// Package classify holds the fixed pattern sets used to route a call
// turn: voicemail detection, end-of-call intent, action triggers and
// commitment phrases. All predicates are pure and case-insensitive;
// the pattern lists are evaluated top to bottom, first match wins.
package classify

import (
	"regexp"
	"strings"
)

// Automated-greeting phrases. Tuned against one phone carrier's
// voicemail prompts, not a general model.
var voicemailPhrases = []*regexp.Regexp{
	regexp.MustCompile(`leave\s+(a|your)?\s*(voice\s*)?(message|voicemail)`),
	regexp.MustCompile(`(after|at)\s+the\s+(tone|beep)`),
	regexp.MustCompile(`record\s+your\s+message`),
	regexp.MustCompile(`(mailbox|voice\s*mail(box)?)\s+is\s+full`),
	regexp.MustCompile(`mailbox\s+full`),
	regexp.MustCompile(`you('| ha)?ve\s+reached`),
	regexp.MustCompile(`is\s+not\s+available`),
	regexp.MustCompile(`unable\s+to\s+(take|answer)\s+your\s+call`),
	regexp.MustCompile(`please\s+leave\s+your\s+name`),
	regexp.MustCompile(`automated\s+(voice\s+)?(message|messaging|system)`),
	regexp.MustCompile(`press\s+\d+\s+(to|for)`),
	regexp.MustCompile(`your\s+call\s+(has\s+been|will\s+be)\s+forwarded`),
}

// Voicemail systems often read back a callback number, or a fragment of
// one, before any human speaks. These shapes classify as voicemail even
// though a human could in principle say them; a false positive only
// costs an early, polite hangup.
var voicemailNumberShapes = []*regexp.Regexp{
	// Bare phone number: 858 386 6200, (858) 386-6200, 858.386.6200
	regexp.MustCompile(`^\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\.?$`),
	// Two short digit groups: "386 6200", "86 6200."
	regexp.MustCompile(`^\d{1,3}[\s.\-]\d{2,4}\.?$`),
	// A digit fragment on its own: "866200."
	regexp.MustCompile(`^\d{3,10}\.?$`),
}

// Closing phrases the caller uses to end a session.
var endIntentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bthat('?s| is| was)\s+(it|all|everything)\b`),
	regexp.MustCompile(`\bi('?m| am)\s+(all\s+)?(done|good|set|finished)\b`),
	regexp.MustCompile(`\b(good)?bye\b`),
	regexp.MustCompile(`\bthanks?(\s+you)?,?\s+(bye|goodbye|that'?s)`),
	regexp.MustCompile(`\bend\s+(the\s+)?call\b`),
	regexp.MustCompile(`\bhang\s+up\b`),
	regexp.MustCompile(`\b(talk|speak)\s+(to\s+you\s+)?(tomorrow|later|soon)\b`),
	regexp.MustCompile(`\bsee\s+you\b`),
	regexp.MustCompile(`\bgotta\s+(go|run)\b`),
	regexp.MustCompile(`\bnothing\s+else\b`),
}

// Verbs and phrases that mean the caller wants a side effect, not a reply.
var actionTriggerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\badd\b`),
	regexp.MustCompile(`\bcreate\b`),
	regexp.MustCompile(`\bschedule\b`),
	regexp.MustCompile(`\bremind(er)?\b`),
	regexp.MustCompile(`\bput\b.*\bcalendar\b`),
	regexp.MustCompile(`\btodo\b`),
	regexp.MustCompile(`\bto-do\b`),
}

// Phrases that read as a commitment the caller is making.
var commitmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bi('?ll| will)\b`),
	regexp.MustCompile(`\bwill\b`),
	regexp.MustCompile(`\b(i'?m )?going\s+to\b`),
	regexp.MustCompile(`\bgonna\b`),
	regexp.MustCompile(`\bplan(ning)?\s+to\b`),
	regexp.MustCompile(`\bcommit(ting)?\b`),
	regexp.MustCompile(`\bpromise\b`),
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// IsVoicemail reports whether the utterance sounds like an answering
// machine rather than a live person. Phrase patterns are checked before
// number shapes. When a turn is reachable by both this and IsEndIntent,
// callers must check IsVoicemail first: machine greetings can
// coincidentally resemble closing phrases.
func IsVoicemail(text string) bool {
	t := normalize(text)
	if t == "" {
		return false
	}
	if matchAny(voicemailPhrases, t) {
		return true
	}
	return matchAny(voicemailNumberShapes, t)
}

// IsEndIntent reports whether the caller wants to wrap up the session.
func IsEndIntent(text string) bool {
	return matchAny(endIntentPatterns, normalize(text))
}

// IsActionRequest reports whether the utterance asks for a side-effecting
// action (task or calendar entry) rather than conversation.
func IsActionRequest(text string) bool {
	return matchAny(actionTriggerPatterns, normalize(text))
}

// IsCommitment reports whether the utterance reads as a commitment worth
// recording as a session decision.
func IsCommitment(text string) bool {
	return matchAny(commitmentPatterns, normalize(text))
}
