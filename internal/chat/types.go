package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	MaxTurns         = 20
	MaxMessageLength = 2000
	FinishReasonStop = "stop"
)

// Turn is one message of the conversation sent by the client.
type Turn struct {
	Role    string
	Content string
}

type StreamInput struct {
	Messages []Turn
}

// Citation is a retrieved tweet shown next to the answer.
type Citation struct {
	URL     string
	Snippet string
	Date    string
}

type EventKind int

const (
	EventStart EventKind = iota
	EventDelta
	EventDone
	EventError
)

// Event is one element of the answer stream.
type Event struct {
	Kind      EventKind
	Content   string
	Citations []Citation
	FollowUps []string
	Err       string
}
