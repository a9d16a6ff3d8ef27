package conference

import "time"

// Event is a fire-and-forget notification produced by the session.
// It is either an Alert or a Cue.
type Event interface {
	event()
}

// AlertKind classifies an alert for styling
type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertWarning AlertKind = "warning"
	AlertCrisis  AlertKind = "crisis"
)

// Alert is a transient on-screen message
type Alert struct {
	Kind     AlertKind     `json:"kind"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"-"`
}

// DurationMs is the display duration in milliseconds
func (a Alert) DurationMs() int64 {
	return a.Duration.Milliseconds()
}

// CueReason names the condition that produced an audible cue
type CueReason string

const (
	CueTenSeconds           CueReason = "ten-seconds"
	CueSpeakerTimeUp        CueReason = "speaker-time-up"
	CueFormalHalfTime       CueReason = "formal-half-time"
	CueInformalThreeQuarter CueReason = "informal-three-quarter"
	CueDebateTimeUp         CueReason = "debate-time-up"
	CueCrisis               CueReason = "crisis"
)

// Cue is an audible tone descriptor; synthesis is up to the shell
type Cue struct {
	Reason      CueReason     `json:"reason"`
	FrequencyHz float64       `json:"hz"`
	Duration    time.Duration `json:"-"`
}

// Seconds is the tone length in seconds
func (c Cue) Seconds() float64 {
	return c.Duration.Seconds()
}

func (Alert) event() {}
func (Cue) event()   {}
