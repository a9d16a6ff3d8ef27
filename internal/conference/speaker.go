package conference

import "github.com/aaronzipp/mun-display/internal/models"

// StartNextSpeaker gives the floor to the head of the queue. The first
// speaker of a fresh session opens Opening Speeches; running out of speakers
// during Opening Speeches moves on to Debate.
func (s *Session) StartNextSpeaker() {
	if len(s.queue) == 0 {
		s.current = nil
		s.speakerRemaining = 0
		if s.stage == models.StageOpeningSpeeches {
			s.stage = models.StageDebate
		}
		return
	}

	next := s.queue[0]
	s.queue = s.queue[1:]
	s.current = &next
	s.speakerRemaining = next.AllottedSeconds
	if s.stage == models.StageNotStarted {
		s.stage = models.StageOpeningSpeeches
	}
}

// CurrentSpeaker returns the speaker holding the floor and their remaining seconds
func (s *Session) CurrentSpeaker() (models.Speaker, int, bool) {
	if s.current == nil {
		return models.Speaker{}, 0, false
	}
	return *s.current, s.speakerRemaining, true
}

// QueueLen is the number of speakers still waiting
func (s *Session) QueueLen() int { return len(s.queue) }
