package classify_test

import (
	"testing"

	"github.com/korahq/kora-agent/internal/app/classify"
)

func TestIsVoicemailPhrases(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Leave a message after the tone", true},
		{"Please leave your name and number", true},
		{"The mailbox is full and cannot accept messages", true},
		{"You've reached the voicemail of 858 386 6200", true},
		{"The person you are calling is not available", true},
		{"Press 1 to leave a callback number", true},
		{"Your call has been forwarded to an automated voice messaging system", true},
		{"Hey, good morning!", false},
		{"Let's schedule a workout at 9am", false},
		{"I want to leave a message for my boss", true}, // known overreach of the phrase set
	}

	for _, tc := range cases {
		if got := classify.IsVoicemail(tc.text); got != tc.want {
			t.Errorf("IsVoicemail(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsVoicemailNumberShapes(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"858 386 6200", true},
		{"(858) 386-6200", true},
		{"858.386.6200", true},
		{"866200.", true},
		{"386 6200", true},
		{"  858 386 6200  ", true}, // whitespace trimmed before matching
		{"123", true},
		{"12", false},
		{"call me at 858 386 6200 later", false}, // shapes only match the whole utterance
		{"", false},
	}

	for _, tc := range cases {
		if got := classify.IsVoicemail(tc.text); got != tc.want {
			t.Errorf("IsVoicemail(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsEndIntent(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"that's it, thanks", true},
		{"That is all for today", true},
		{"I'm done", true},
		{"okay bye", true},
		{"goodbye!", true},
		{"please end the call", true},
		{"you can hang up now", true},
		{"talk to you tomorrow", true},
		{"gotta go, my meeting is starting", true},
		{"nothing else from me", true},
		{"add a task to call mom", false},
		{"maybe we could try that", false},
		{"what should I focus on", false},
	}

	for _, tc := range cases {
		if got := classify.IsEndIntent(tc.text); got != tc.want {
			t.Errorf("IsEndIntent(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsActionRequest(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"add a reminder to call the dentist", true},
		{"create a task for the report", true},
		{"schedule a workout at 9am", true},
		{"put the dentist appointment on my calendar", true},
		{"add that to my todo list", true},
		{"how was my week", false},
		{"I feel pretty good today", false},
	}

	for _, tc := range cases {
		if got := classify.IsActionRequest(tc.text); got != tc.want {
			t.Errorf("IsActionRequest(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsCommitment(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I'll go for a run before lunch", true},
		{"I am going to finish the draft tonight", true},
		{"I plan to meditate every morning", true},
		{"I promise to call her back", true},
		{"I commit to the 30 day challenge", true},
		{"add a reminder to call the dentist", false},
		{"how are you", false},
	}

	for _, tc := range cases {
		if got := classify.IsCommitment(tc.text); got != tc.want {
			t.Errorf("IsCommitment(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

// Voicemail takes priority when a machine greeting also resembles a
// closing phrase.
func TestVoicemailBeatsEndIntent(t *testing.T) {
	text := "you've reached John, goodbye"

	if !classify.IsVoicemail(text) {
		t.Fatalf("expected IsVoicemail(%q) to be true", text)
	}
	if !classify.IsEndIntent(text) {
		t.Fatalf("expected IsEndIntent(%q) to be true (both match, caller checks voicemail first)", text)
	}
}
