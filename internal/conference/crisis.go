package conference

import "github.com/aaronzipp/mun-display/internal/models"

// ToggleCrisisMode flips the crisis override.
//
// Activation discards the motion set, replaces it with a single passed
// Formal Debate proposed by the Crisis Committee and starts debating it at
// once, moving the session to Debate from any stage. Deactivation stops the
// crisis debate; the discarded motions are not restored.
func (s *Session) ToggleCrisisMode() {
	s.crisis = !s.crisis
	if !s.crisis {
		s.alert(AlertInfo, "Crisis Mode Deactivated", AlertDuration)
		s.stopDebate()
		return
	}

	s.cue(toneCrisisActive)
	s.alert(AlertCrisis, "Crisis Mode Activated! Starting new Formal Debate.", CrisisAlertDuration)

	m := models.Motion{
		ID:              s.crisisMotionID(),
		Kind:            CrisisMotionKind,
		Proposer:        CrisisProposer,
		DurationMinutes: CrisisDurationMinutes,
		Topic:           CrisisTopic,
		Passed:          true,
	}
	s.motions = []models.Motion{m}
	s.beginDebate(m)
}

// crisisMotionID mints an id from the clock, bumped past any id already in
// use so it is unique at creation time.
func (s *Session) crisisMotionID() int64 {
	id := s.now().UnixMilli()
	for s.motionIndex(id) >= 0 || (s.active != nil && s.active.ID == id) {
		id++
	}
	return id
}

// SubTopic is the agenda sub-topic shown on the display
func (s *Session) SubTopic() string {
	if s.crisis {
		return CrisisTopic
	}
	return s.record.SubTopic
}
