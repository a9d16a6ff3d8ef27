package sse

// SSE event type constants
const (
	EventBoard        = "board"
	EventAlert        = "alert"
	EventCue          = "cue"
	EventRollCall     = "rollcall"
	EventErrorMessage = "error-message"
)
