package call

import "fmt"

// Persona entry placed at the head of every conversation context.
const personaPrompt = `You are "Kora", a warm, upbeat accountability coach speaking with your client on a phone call.
You keep replies short (1-3 sentences), conversational and speakable out loud.
You ask at most one question per reply. You never mention that you are an AI or a phone system.
You help the client commit to small, concrete steps for today.`

// fallbackLine is spoken when a turn fails internally. The caller never
// hears an error.
const fallbackLine = "Sorry, I didn't catch that. Could you say it again?"

// voicemailClosingLine is spoken before hanging up on an answering machine.
const voicemailClosingLine = "Sorry I missed you! I'll catch you next time."

// Generic encouragements, rotated when no priority was extracted.
var genericClosings = []string{
	"You've got this. Talk to you tomorrow!",
	"Great talking with you. Make today count!",
	"One step at a time. Catch you soon!",
	"Go make it happen. Talk soon!",
}

func priorityClosing(priority string) string {
	return fmt.Sprintf("Sounds like %s is the thing to tackle today. You've got this, talk soon!", priority)
}

func greetingLine(planSummary string) string {
	if planSummary == "" {
		return "Good morning! It's Kora. How are you feeling today?"
	}
	return "Good morning! It's Kora. Here's where today stands. " + planSummary + " What's first?"
}

const taskFailureLine = "I couldn't save that task just now, sorry about that. I'll remind you to try again later."
const eventFailureLine = "I couldn't reach your calendar just now, sorry about that. Let's note it and try again later."
