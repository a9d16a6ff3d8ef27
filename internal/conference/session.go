// Package conference implements the committee session engine: the stage
// machine, speaker rotation, motion lifecycle, crisis override and the
// countdown timers.
//
// A Session is a plain single-threaded aggregate. Callers that share one
// across goroutines must serialize access themselves. Every action queues
// notification events which the caller drains with Events once it is done
// mutating.
package conference

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/models"
)

var (
	ErrUnknownCommittee   = errors.New("unknown committee")
	ErrUnknownMotion      = errors.New("unknown motion")
	ErrMotionNotPassed    = errors.New("motion has not passed")
	ErrDebateInProgress   = errors.New("a debate is already in progress")
	ErrCrisisActive       = errors.New("crisis mode is active")
	ErrNoDuration         = errors.New("motion has no duration")
	ErrRollCallIncomplete = errors.New("roll call has no present countries")
)

// Session is the state of one committee session
type Session struct {
	provider committee.Provider
	now      func() time.Time

	record committee.Record
	stage  models.Stage

	queue            []models.Speaker
	current          *models.Speaker
	speakerRemaining int

	motions         []models.Motion
	active          *models.Motion
	motionRemaining int

	paused       bool
	crisis       bool
	present      []string
	rollCallOpen bool

	events []Event
}

// Option configures a Session
type Option func(*Session)

// WithClock overrides the wall clock used to mint crisis motion ids
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session for the committee identified by code. The speaker
// queue and motion set are loaded from the provider without an alert.
func New(provider committee.Provider, code string, opts ...Option) (*Session, error) {
	s := &Session{
		provider: provider,
		now:      time.Now,
		stage:    models.StageNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(code); err != nil {
		return nil, err
	}
	s.events = nil
	return s, nil
}

func (s *Session) load(code string) error {
	rec, ok := s.provider.Lookup(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommittee, code)
	}
	s.record = rec
	s.queue = slices.Clone(rec.Speakers)
	s.motions = slices.Clone(rec.Motions)
	return nil
}

// SelectCommittee switches to another committee. Only the speaker queue and
// motion set are replaced; stage, current speaker, timers, crisis mode and
// roll call results carry over.
func (s *Session) SelectCommittee(code string) error {
	if err := s.load(code); err != nil {
		return err
	}
	s.alert(AlertInfo, "Selected committee: "+s.record.DisplayName, AlertDuration)
	return nil
}

// CommitteeCode is the code of the selected committee
func (s *Session) CommitteeCode() string { return s.record.Code }

// Stage is the current conference stage
func (s *Session) Stage() models.Stage { return s.stage }

// Paused reports whether countdowns are frozen
func (s *Session) Paused() bool { return s.paused }

// CrisisMode reports whether the crisis override is on
func (s *Session) CrisisMode() bool { return s.crisis }

// Countries is the roll for the selected committee, in speaker order. It is
// taken from the committee data, not the current queue.
func (s *Session) Countries() []string {
	return s.record.Countries()
}

// Events returns and clears the queued notifications
func (s *Session) Events() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Session) alert(kind AlertKind, msg string, d time.Duration) {
	s.events = append(s.events, Alert{Kind: kind, Message: msg, Duration: d})
}

func (s *Session) cue(c Cue) {
	s.events = append(s.events, c)
}

func (s *Session) motionIndex(id int64) int {
	return slices.IndexFunc(s.motions, func(m models.Motion) bool { return m.ID == id })
}
