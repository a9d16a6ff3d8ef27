package conference

import (
	"time"

	"github.com/aaronzipp/mun-display/internal/models"
)

const (
	// AlertDuration is how long ordinary alerts stay on screen
	AlertDuration = 3 * time.Second

	// CrisisAlertDuration is how long the crisis activation alert stays on screen
	CrisisAlertDuration = 5 * time.Second

	// SpeakerWarningSeconds is the remaining time at which the speaker is warned
	SpeakerWarningSeconds = 10

	// FormalCuePercent is the share of a Formal Debate left when its cue fires
	FormalCuePercent = 30

	// InformalCuePercent is the share of an Informal Debate left when its cue fires
	InformalCuePercent = 45
)

// Synthetic crisis motion
const (
	CrisisProposer        = "Crisis Committee"
	CrisisTopic           = "Urgent Crisis Response"
	CrisisDurationMinutes = 20
	CrisisMotionKind      = models.KindFormalDebate
)

// Cue tones (Hz, length)
var (
	toneTenSeconds   = Cue{Reason: CueTenSeconds, FrequencyHz: 330, Duration: 300 * time.Millisecond}
	toneSpeakerUp    = Cue{Reason: CueSpeakerTimeUp, FrequencyHz: 440, Duration: 500 * time.Millisecond}
	toneFormalCue    = Cue{Reason: CueFormalHalfTime, FrequencyHz: 392, Duration: 300 * time.Millisecond}
	toneInformalCue  = Cue{Reason: CueInformalThreeQuarter, FrequencyHz: 349, Duration: 300 * time.Millisecond}
	toneDebateUp     = Cue{Reason: CueDebateTimeUp, FrequencyHz: 523, Duration: 500 * time.Millisecond}
	toneCrisisActive = Cue{Reason: CueCrisis, FrequencyHz: 587, Duration: time.Second}
)
