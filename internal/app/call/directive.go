package call

import "time"

// Action is the terminal instruction of a response directive. Every
// directive carries exactly one.
type Action string

const (
	// ActionListen tells the gateway to keep the line open and wait for
	// more speech.
	ActionListen Action = "listen"
	// ActionHangup tells the gateway to speak the lines and end the call.
	ActionHangup Action = "hangup"
)

// Directive is what the core hands back to the telephony gateway for
// one inbound event: zero or more spoken lines plus one terminal action.
type Directive struct {
	Say    []string
	Action Action

	// ListenTimeout is the speech-end timeout for ActionListen.
	ListenTimeout time.Duration

	// Reprompts are spoken one by one, escalating, if the caller stays
	// silent past the timeout. Only meaningful with ActionListen.
	Reprompts []string
}

// DefaultListenTimeout is used when the service is built without an
// explicit timeout.
const DefaultListenTimeout = 5 * time.Second

var defaultReprompts = []string{
	"Are you still there?",
	"Take your time. I'm here when you're ready.",
	"Okay, I'll let you go. Talk soon!",
}

func (s *Service) listen(line string) Directive {
	return Directive{
		Say:           []string{line},
		Action:        ActionListen,
		ListenTimeout: s.listenTimeout,
		Reprompts:     defaultReprompts,
	}
}

func hangup(line string) Directive {
	return Directive{
		Say:    []string{line},
		Action: ActionHangup,
	}
}
