package conference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/mun-display/internal/models"
)

func TestSpeakerCountdown(t *testing.T) {
	s := newSession(t, "UNSC")
	s.queue = []models.Speaker{{Name: "Delegate of Peru", Country: "Peru", AllottedSeconds: 12}}
	s.StartNextSpeaker()

	var timeUp, warnings int
	for range 12 {
		require.True(t, s.Tick())
		for _, c := range cues(s.Events()) {
			switch c.Reason {
			case CueSpeakerTimeUp:
				timeUp++
			case CueTenSeconds:
				warnings++
			}
		}
	}
	_, remaining, ok := s.CurrentSpeaker()
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, 1, timeUp)
	assert.Equal(t, 1, warnings)

	assert.False(t, s.Tick())
	assert.Empty(t, s.Events())
}

func TestSpeakerWarningAtTenSeconds(t *testing.T) {
	s := newSession(t, "UNSC")
	s.queue = []models.Speaker{{Name: "Delegate of Peru", Country: "Peru", AllottedSeconds: 11}}
	s.StartNextSpeaker()

	s.Tick()
	ev := s.Events()
	require.Len(t, cues(ev), 1)
	assert.Equal(t, toneTenSeconds, cues(ev)[0])
	as := alerts(ev)
	require.Len(t, as, 1)
	assert.Equal(t, "10 seconds remaining", as[0].Message)
	assert.Equal(t, AlertWarning, as[0].Kind)
}

func TestSpeakerTimeUpAlert(t *testing.T) {
	s := newSession(t, "UNSC")
	s.queue = []models.Speaker{{Name: "Delegate of Peru", Country: "Peru", AllottedSeconds: 1}}
	s.StartNextSpeaker()

	s.Tick()
	ev := s.Events()
	assert.Equal(t, []Cue{toneSpeakerUp}, cues(ev))
	as := alerts(ev)
	require.Len(t, as, 1)
	assert.Equal(t, "Speaker's time is up!", as[0].Message)
}

func TestTickWithNothingRunning(t *testing.T) {
	s := newSession(t, "UNSC")
	assert.False(t, s.Tick())
	assert.Empty(t, s.Events())
}

func TestFormalDebateCue(t *testing.T) {
	s := newSession(t, "UNSC")
	require.NoError(t, s.PassMotion(1))
	require.NoError(t, s.StartDebate(1))

	var cueAt []int
	var timeUp int
	for range 600 {
		s.Tick()
		_, remaining, _ := s.ActiveMotion()
		for _, c := range cues(s.Events()) {
			switch c.Reason {
			case CueFormalHalfTime:
				cueAt = append(cueAt, remaining)
			case CueDebateTimeUp:
				timeUp++
			}
		}
	}

	assert.Equal(t, []int{180}, cueAt)
	assert.Equal(t, 1, timeUp)
	_, _, ok := s.ActiveMotion()
	assert.False(t, ok, "debate stops when time runs out")
}

func TestInformalDebateCue(t *testing.T) {
	s := newSession(t, "UNSC")
	require.NoError(t, s.PassMotion(2))
	require.NoError(t, s.StartDebate(2))

	// 900 seconds, cue at 45% left
	for range 900 - 405 - 1 {
		s.Tick()
	}
	assert.Empty(t, cues(s.Events()))

	s.Tick()
	ev := s.Events()
	assert.Equal(t, []Cue{toneInformalCue}, cues(ev))
	as := alerts(ev)
	require.Len(t, as, 1)
	assert.Equal(t, "3/4-time for informal debate", as[0].Message)
}

func TestCaucusHasNoMidpointCue(t *testing.T) {
	s := newSession(t, "UNSC")
	require.NoError(t, s.PassMotion(3))
	require.NoError(t, s.StartDebate(3))

	var reasons []CueReason
	for range 1200 {
		s.Tick()
		for _, c := range cues(s.Events()) {
			reasons = append(reasons, c.Reason)
		}
	}
	assert.Equal(t, []CueReason{CueDebateTimeUp}, reasons)
}

func TestDebateTimeUpAlert(t *testing.T) {
	s := newSession(t, "UNSC")
	require.NoError(t, s.PassMotion(1))
	require.NoError(t, s.StartDebate(1))
	s.motionRemaining = 1

	s.Tick()
	as := alerts(s.Events())
	require.Len(t, as, 1)
	assert.Equal(t, "Debate time is up!", as[0].Message)
	assert.Equal(t, 0, s.Snapshot().MotionRemaining)
}

func TestPauseFreezesCountdowns(t *testing.T) {
	s := newSession(t, "UNSC")
	s.StartNextSpeaker()
	require.NoError(t, s.PassMotion(1))
	require.NoError(t, s.StartDebate(1))
	s.Tick()
	s.Events()

	s.TogglePause()
	as := alerts(s.Events())
	require.Len(t, as, 1)
	assert.Equal(t, "Conference Paused", as[0].Message)

	for range 30 {
		assert.False(t, s.Tick())
	}
	_, speaker, _ := s.CurrentSpeaker()
	_, motion, _ := s.ActiveMotion()
	assert.Equal(t, 119, speaker)
	assert.Equal(t, 599, motion)

	s.TogglePause()
	as = alerts(s.Events())
	require.Len(t, as, 1)
	assert.Equal(t, "Conference Resumed", as[0].Message)

	assert.True(t, s.Tick())
	_, speaker, _ = s.CurrentSpeaker()
	assert.Equal(t, 118, speaker)
}

func TestPauseAllowsOtherActions(t *testing.T) {
	s := newSession(t, "UNSC")
	s.TogglePause()

	s.StartNextSpeaker()
	require.NoError(t, s.PassMotion(1))
	require.NoError(t, s.StartDebate(1))
	s.ToggleCrisisMode()

	assert.True(t, s.Paused())
	assert.True(t, s.CrisisMode())
}
