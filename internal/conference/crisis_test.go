package conference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/mun-display/internal/models"
)

func TestCrisisActivation(t *testing.T) {
	s := newSession(t, "UNSC")
	s.StartNextSpeaker()

	s.ToggleCrisisMode()

	assert.True(t, s.CrisisMode())
	assert.Equal(t, models.StageDebate, s.Stage())

	motions := s.Motions()
	require.Len(t, motions, 1)
	m := motions[0]
	assert.Equal(t, models.KindFormalDebate, m.Kind)
	assert.Equal(t, "Crisis Committee", m.Proposer)
	assert.Equal(t, 20, m.DurationMinutes)
	assert.Equal(t, "Urgent Crisis Response", m.Topic)
	assert.True(t, m.Passed)
	assert.Equal(t, fixedNow.UnixMilli(), m.ID)

	active, remaining, ok := s.ActiveMotion()
	require.True(t, ok)
	assert.Equal(t, m.ID, active.ID)
	assert.Equal(t, 1200, remaining)

	assert.Equal(t, "Urgent Crisis Response", s.SubTopic())
	assert.Equal(t, 2, s.QueueLen(), "speaker queue untouched")

	ev := s.Events()
	assert.Equal(t, []Cue{toneCrisisActive}, cues(ev))
	as := alerts(ev)
	require.Len(t, as, 1)
	assert.Equal(t, AlertCrisis, as[0].Kind)
	assert.Equal(t, "Crisis Mode Activated! Starting new Formal Debate.", as[0].Message)
	assert.Equal(t, CrisisAlertDuration, as[0].Duration)
}

func TestCrisisActivationReplacesRunningDebate(t *testing.T) {
	s := newSession(t, "UNSC")
	require.NoError(t, s.PassMotion(3))
	require.NoError(t, s.StartDebate(3))

	s.ToggleCrisisMode()

	active, remaining, ok := s.ActiveMotion()
	require.True(t, ok)
	assert.Equal(t, CrisisProposer, active.Proposer)
	assert.Equal(t, 1200, remaining)
	assert.Equal(t, 1, passedCount(s))
}

func TestCrisisDeactivation(t *testing.T) {
	s := newSession(t, "UNSC")
	s.ToggleCrisisMode()
	s.Events()

	s.ToggleCrisisMode()

	assert.False(t, s.CrisisMode())
	_, _, ok := s.ActiveMotion()
	assert.False(t, ok)
	assert.Equal(t, "Cybersecurity Threats", s.SubTopic())

	motions := s.Motions()
	require.Len(t, motions, 1, "original motions are not restored")
	assert.Equal(t, CrisisProposer, motions[0].Proposer)

	as := alerts(s.Events())
	require.Len(t, as, 1)
	assert.Equal(t, "Crisis Mode Deactivated", as[0].Message)
	assert.Equal(t, AlertInfo, as[0].Kind)
	assert.Equal(t, models.StageDebate, s.Stage())
}

func TestCrisisBlocksMotionActions(t *testing.T) {
	s := newSession(t, "UNSC")
	s.ToggleCrisisMode()
	id := s.Motions()[0].ID

	assert.ErrorIs(t, s.PassMotion(id), ErrCrisisActive)
	assert.ErrorIs(t, s.StartDebate(id), ErrCrisisActive)

	st := s.Snapshot()
	assert.False(t, st.Motions[0].CanPass)
	assert.False(t, st.Motions[0].CanStartDebate)
}

func TestCrisisMotionIDIsUnique(t *testing.T) {
	s := newSession(t, "UNSC")
	s.ToggleCrisisMode()
	first := s.Motions()[0].ID
	s.ToggleCrisisMode()

	s.ToggleCrisisMode()
	second := s.Motions()[0].ID

	assert.Equal(t, first+1, second)
}
