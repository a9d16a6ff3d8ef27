package models

// MotionKind is the debate format a motion proposes. The set is open;
// the constants below are the kinds the session engine knows about.
type MotionKind string

const (
	KindFormalDebate      MotionKind = "Formal Debate"
	KindInformalDebate    MotionKind = "Informal Debate"
	KindModeratedCaucus   MotionKind = "Moderated Caucus"
	KindUnmoderatedCaucus MotionKind = "Unmoderated Caucus"
)

// Motion is a procedural proposal that must pass before it can be debated
type Motion struct {
	ID              int64      `yaml:"id" json:"id"`
	Kind            MotionKind `yaml:"kind" json:"kind"`
	Proposer        string     `yaml:"proposer" json:"proposer"`
	DurationMinutes int        `yaml:"durationMinutes,omitempty" json:"durationMinutes,omitempty"` // 0 = no duration
	Topic           string     `yaml:"topic,omitempty" json:"topic,omitempty"`
	Passed          bool       `yaml:"passed,omitempty" json:"passed"`
}

// HasDuration reports whether the motion carries a debate duration
func (m Motion) HasDuration() bool {
	return m.DurationMinutes > 0
}

// TotalSeconds is the debate length in seconds
func (m Motion) TotalSeconds() int {
	return m.DurationMinutes * 60
}
