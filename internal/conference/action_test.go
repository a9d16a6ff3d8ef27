package conference

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/mun-display/internal/models"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want Action
	}{
		{"next-speaker", nil, NextSpeaker{}},
		{"start-debate", url.Values{"id": {"2"}}, StartDebate{ID: 2}},
		{"pass-motion", url.Values{"id": {"3"}}, PassMotion{ID: 3}},
		{"clear-motions", nil, ClearMotions{}},
		{"toggle-crisis", nil, ToggleCrisis{}},
		{"toggle-pause", nil, TogglePause{}},
		{"advance-stage", nil, AdvanceStage{}},
		{"select-committee", url.Values{"code": {"WHO"}}, SelectCommittee{Code: "WHO"}},
		{"complete-roll-call", url.Values{"present": {"USA", "China"}}, CompleteRollCall{Present: []string{"USA", "China"}}},
		{"open-roll-call", nil, OpenRollCall{}},
		{"close-roll-call", nil, CloseRollCall{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.name, tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.Name())
		})
	}
}

func TestCrisisMotionRoundTripsThroughForm(t *testing.T) {
	s := newSession(t, "UNSC")
	s.ToggleCrisisMode()
	id := s.Motions()[0].ID
	assert.Greater(t, id, int64(1<<31), "millisecond ids exceed 32 bits")

	s.ToggleCrisisMode()
	action, err := ParseAction("pass-motion", url.Values{"id": {"1709283600000"}})
	require.NoError(t, err)
	assert.Equal(t, PassMotion{ID: fixedNow.UnixMilli()}, action)
	require.NoError(t, s.Dispatch(action))
	assert.True(t, s.Motions()[0].Passed)
}

func TestParseActionErrors(t *testing.T) {
	_, err := ParseAction("launch-missiles", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = ParseAction("pass-motion", url.Values{"id": {"abc"}})
	assert.Error(t, err)

	_, err = ParseAction("start-debate", nil)
	assert.Error(t, err)

	_, err = ParseAction("select-committee", url.Values{})
	assert.Error(t, err)
}

func TestDispatch(t *testing.T) {
	s := newSession(t, "UNSC")

	require.NoError(t, s.Dispatch(NextSpeaker{}))
	require.NoError(t, s.Dispatch(PassMotion{ID: 1}))
	require.NoError(t, s.Dispatch(StartDebate{ID: 1}))
	require.NoError(t, s.Dispatch(TogglePause{}))

	st := s.Snapshot()
	assert.Equal(t, "Delegate of USA", st.CurrentSpeaker.Name)
	assert.Equal(t, 600, st.MotionRemaining)
	assert.True(t, st.Paused)
	assert.Equal(t, models.StageDebate, st.Stage)

	assert.ErrorIs(t, s.Dispatch(SelectCommittee{Code: "XX"}), ErrUnknownCommittee)
	assert.ErrorIs(t, s.Dispatch(PassMotion{ID: 2}), ErrDebateInProgress)
}

func TestRollCallScenario(t *testing.T) {
	s := newSession(t, "UNSC")

	require.NoError(t, s.Dispatch(AdvanceStage{}))
	require.NoError(t, s.Dispatch(CompleteRollCall{Present: []string{"USA", "China"}}))

	assert.Equal(t, models.StageOpeningSpeeches, s.Stage())
	assert.Equal(t, []string{"USA", "China"}, s.PresentCountries())
}
