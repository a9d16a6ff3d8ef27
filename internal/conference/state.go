package conference

import (
	"fmt"
	"slices"

	"github.com/aaronzipp/mun-display/internal/models"
)

// State is an immutable copy of a session, shaped for display
type State struct {
	CommitteeCode string       `json:"committee"`
	DisplayName   string       `json:"displayName"`
	Topic         string       `json:"topic"`
	SubTopic      string       `json:"subTopic"`
	Stage         models.Stage `json:"stage"`

	Queue            []models.Speaker `json:"queue"`
	CurrentSpeaker   *models.Speaker  `json:"currentSpeaker,omitempty"`
	SpeakerRemaining int              `json:"speakerRemaining"`

	Motions         []MotionView   `json:"motions"`
	ActiveMotion    *models.Motion `json:"activeMotion,omitempty"`
	MotionRemaining int            `json:"motionRemaining"`

	Paused           bool     `json:"paused"`
	Crisis           bool     `json:"crisis"`
	PresentCountries []string `json:"presentCountries"`
	RollCallOpen     bool     `json:"rollCallOpen"`
}

// MotionView is a motion with the controls that currently apply to it
type MotionView struct {
	models.Motion
	Active         bool `json:"active"`
	CanPass        bool `json:"canPass"`
	CanStartDebate bool `json:"canStartDebate"`
}

// Snapshot copies the session state
func (s *Session) Snapshot() State {
	st := State{
		CommitteeCode:    s.record.Code,
		DisplayName:      s.record.DisplayName,
		Topic:            s.record.Topic,
		SubTopic:         s.SubTopic(),
		Stage:            s.stage,
		Queue:            slices.Clone(s.queue),
		SpeakerRemaining: s.speakerRemaining,
		MotionRemaining:  s.motionRemaining,
		Paused:           s.paused,
		Crisis:           s.crisis,
		PresentCountries: slices.Clone(s.present),
		RollCallOpen:     s.rollCallOpen,
	}
	if s.current != nil {
		sp := *s.current
		st.CurrentSpeaker = &sp
	}
	if s.active != nil {
		m := *s.active
		st.ActiveMotion = &m
	}
	st.Motions = make([]MotionView, 0, len(s.motions))
	for _, m := range s.motions {
		st.Motions = append(st.Motions, MotionView{
			Motion:         m,
			Active:         s.active != nil && s.active.ID == m.ID,
			CanPass:        s.canPass(m),
			CanStartDebate: s.canStartDebate(m),
		})
	}
	return st
}

// MotionClock formats the debate time left as m:ss
func (st State) MotionClock() string {
	return FormatClock(st.MotionRemaining)
}

// ActiveKind is the kind of the motion under debate, or "" when none
func (st State) ActiveKind() models.MotionKind {
	if st.ActiveMotion == nil {
		return ""
	}
	return st.ActiveMotion.Kind
}

// FormatClock renders seconds as m:ss
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
