package models

// Stage represents the current phase of a committee session
type Stage string

const (
	StageNotStarted      Stage = "Not Started"
	StageRollCall        Stage = "Roll Call"
	StageOpeningSpeeches Stage = "Opening Speeches"
	StageDebate          Stage = "Debate"
	StageVoting          Stage = "Voting"
	StageClosed          Stage = "Closed"
)

// Stages lists every stage in procedural order
var Stages = []Stage{
	StageNotStarted,
	StageRollCall,
	StageOpeningSpeeches,
	StageDebate,
	StageVoting,
	StageClosed,
}

// Next returns the stage that follows s. Closed has no successor.
func (s Stage) Next() (Stage, bool) {
	for i, st := range Stages {
		if st == s && i+1 < len(Stages) {
			return Stages[i+1], true
		}
	}
	return s, false
}

// Terminal reports whether no further transition is possible
func (s Stage) Terminal() bool {
	return s == StageClosed
}
