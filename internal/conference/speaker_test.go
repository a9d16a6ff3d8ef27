package conference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/mun-display/internal/models"
)

func TestStartNextSpeakerIsFIFO(t *testing.T) {
	s := newSession(t, "UNSC")

	for _, want := range []string{"Delegate of USA", "Delegate of China", "Delegate of Russia"} {
		s.StartNextSpeaker()
		sp, remaining, ok := s.CurrentSpeaker()
		require.True(t, ok)
		assert.Equal(t, want, sp.Name)
		assert.Equal(t, 120, remaining)
	}
	assert.Equal(t, 0, s.QueueLen())
}

func TestStartNextSpeakerDrainsQueue(t *testing.T) {
	s := newSession(t, "UNGA")
	n := s.QueueLen()

	for range n {
		s.StartNextSpeaker()
	}
	assert.Equal(t, 0, s.QueueLen())
	_, _, ok := s.CurrentSpeaker()
	assert.True(t, ok, "last speaker still holds the floor")

	s.StartNextSpeaker()
	_, remaining, ok := s.CurrentSpeaker()
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestFirstSpeakerOpensOpeningSpeeches(t *testing.T) {
	s := newSession(t, "UNSC")
	s.StartNextSpeaker()
	assert.Equal(t, models.StageOpeningSpeeches, s.Stage())
}

func TestFirstSpeakerDoesNotRewindStage(t *testing.T) {
	s := newSession(t, "UNSC")
	s.stage = models.StageVoting
	s.StartNextSpeaker()
	assert.Equal(t, models.StageVoting, s.Stage())
}

func TestEmptyQueueEndsOpeningSpeeches(t *testing.T) {
	s := newSession(t, "UNSC")
	for range 3 {
		s.StartNextSpeaker()
	}
	assert.Equal(t, models.StageOpeningSpeeches, s.Stage())

	s.StartNextSpeaker()
	assert.Equal(t, models.StageDebate, s.Stage())

	// further calls are no-ops
	s.StartNextSpeaker()
	assert.Equal(t, models.StageDebate, s.Stage())
	_, _, ok := s.CurrentSpeaker()
	assert.False(t, ok)
}

func TestEmptyQueueOutsideOpeningSpeechesKeepsStage(t *testing.T) {
	s := newSession(t, "UNSC")
	s.queue = nil
	s.StartNextSpeaker()
	assert.Equal(t, models.StageNotStarted, s.Stage())
}
