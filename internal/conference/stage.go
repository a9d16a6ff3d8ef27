package conference

import (
	"fmt"
	"slices"

	"github.com/aaronzipp/mun-display/internal/models"
)

// AdvanceStage moves to the next stage in procedural order. Leaving Roll
// Call requires at least one present country; otherwise an alert is raised
// and ErrRollCallIncomplete returned with the state unchanged. Closed is
// terminal.
func (s *Session) AdvanceStage() error {
	switch s.stage {
	case models.StageNotStarted:
		s.stage = models.StageRollCall
		s.rollCallOpen = true
	case models.StageRollCall:
		if len(s.present) == 0 {
			s.alert(AlertWarning, "Please complete the roll call before advancing", AlertDuration)
			return ErrRollCallIncomplete
		}
		s.stage = models.StageOpeningSpeeches
		s.alert(AlertInfo, rollCallSummary(len(s.present)), AlertDuration)
	default:
		if next, ok := s.stage.Next(); ok {
			s.stage = next
		}
	}
	return nil
}

// CompleteRollCall records the present countries and moves straight to
// Opening Speeches, whatever the current stage.
func (s *Session) CompleteRollCall(present []string) {
	s.present = slices.Clone(present)
	s.rollCallOpen = false
	s.alert(AlertInfo, rollCallSummary(len(s.present)), AlertDuration)
	s.stage = models.StageOpeningSpeeches
}

// OpenRollCall opens the roll call collection flow
func (s *Session) OpenRollCall() {
	s.rollCallOpen = true
}

// CloseRollCall dismisses the roll call flow without recording anything
func (s *Session) CloseRollCall() {
	s.rollCallOpen = false
}

// RollCallOpen reports whether attendance is being collected
func (s *Session) RollCallOpen() bool { return s.rollCallOpen }

// PresentCountries returns the result of the last completed roll call
func (s *Session) PresentCountries() []string {
	return slices.Clone(s.present)
}

func rollCallSummary(n int) string {
	return fmt.Sprintf("Roll Call completed. %d countries present.", n)
}
