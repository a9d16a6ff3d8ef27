package conference

import (
	"fmt"

	"github.com/aaronzipp/mun-display/internal/models"
)

// PassMotion marks the motion passed and every other motion not passed.
// Not available during crisis mode, nor while another motion is being
// debated (the active motion must stay the passed one).
func (s *Session) PassMotion(id int64) error {
	if s.crisis {
		return ErrCrisisActive
	}
	idx := s.motionIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownMotion, id)
	}
	if s.active != nil && s.active.ID != id {
		return ErrDebateInProgress
	}
	for i := range s.motions {
		s.motions[i].Passed = i == idx
	}
	return nil
}

// StartDebate begins the debate on a passed motion and forces the Debate stage
func (s *Session) StartDebate(id int64) error {
	if s.crisis {
		return ErrCrisisActive
	}
	if s.active != nil {
		return ErrDebateInProgress
	}
	idx := s.motionIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownMotion, id)
	}
	m := s.motions[idx]
	if !m.Passed {
		return ErrMotionNotPassed
	}
	if !m.HasDuration() {
		return ErrNoDuration
	}
	s.beginDebate(m)
	return nil
}

// beginDebate is the shared start path for manual and crisis debates
func (s *Session) beginDebate(m models.Motion) {
	s.active = &m
	s.motionRemaining = m.TotalSeconds()
	s.stage = models.StageDebate
}

// ClearMotions discards every motion and stops any running debate
func (s *Session) ClearMotions() {
	s.motions = nil
	s.stopDebate()
	s.alert(AlertInfo, "All motions have been cleared", AlertDuration)
}

func (s *Session) stopDebate() {
	s.active = nil
	s.motionRemaining = 0
}

// ActiveMotion returns the motion under debate and its remaining seconds
func (s *Session) ActiveMotion() (models.Motion, int, bool) {
	if s.active == nil {
		return models.Motion{}, 0, false
	}
	return *s.active, s.motionRemaining, true
}

// Motions returns a copy of the motion set in display order
func (s *Session) Motions() []models.Motion {
	return append([]models.Motion(nil), s.motions...)
}

func (s *Session) canPass(m models.Motion) bool {
	return !s.crisis && (s.active == nil || s.active.ID == m.ID)
}

func (s *Session) canStartDebate(m models.Motion) bool {
	return !s.crisis && s.active == nil && m.Passed && m.HasDuration()
}
