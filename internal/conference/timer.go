package conference

import "github.com/aaronzipp/mun-display/internal/models"

// Tick advances every running countdown by one second and reports whether
// anything changed. Nothing moves while the session is paused.
func (s *Session) Tick() bool {
	if s.paused {
		return false
	}
	speaker := s.tickSpeaker()
	motion := s.tickMotion()
	return speaker || motion
}

func (s *Session) tickSpeaker() bool {
	if s.current == nil || s.speakerRemaining <= 0 {
		return false
	}
	s.speakerRemaining--
	switch s.speakerRemaining {
	case 0:
		s.cue(toneSpeakerUp)
		s.alert(AlertWarning, "Speaker's time is up!", AlertDuration)
	case SpeakerWarningSeconds:
		s.cue(toneTenSeconds)
		s.alert(AlertWarning, "10 seconds remaining", AlertDuration)
	}
	return true
}

func (s *Session) tickMotion() bool {
	if s.active == nil || s.motionRemaining <= 0 {
		return false
	}
	s.motionRemaining--
	if s.motionRemaining == 0 {
		s.cue(toneDebateUp)
		s.alert(AlertWarning, "Debate time is up!", AlertDuration)
		s.stopDebate()
		return true
	}

	total := s.active.TotalSeconds()
	switch s.active.Kind {
	case models.KindFormalDebate:
		if s.motionRemaining == total*FormalCuePercent/100 {
			s.cue(toneFormalCue)
			s.alert(AlertInfo, "Half-time for formal debate", AlertDuration)
		}
	case models.KindInformalDebate:
		if s.motionRemaining == total*InformalCuePercent/100 {
			s.cue(toneInformalCue)
			s.alert(AlertInfo, "3/4-time for informal debate", AlertDuration)
		}
	}
	return true
}

// TogglePause freezes or resumes both countdowns
func (s *Session) TogglePause() {
	s.paused = !s.paused
	if s.paused {
		s.alert(AlertInfo, "Conference Paused", AlertDuration)
	} else {
		s.alert(AlertInfo, "Conference Resumed", AlertDuration)
	}
}
