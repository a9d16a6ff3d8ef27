package conference

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

var ErrUnknownAction = errors.New("unknown action")

// Action is an operator command applied through Session.Dispatch
type Action interface {
	Name() string
	apply(s *Session) error
}

type (
	NextSpeaker      struct{}
	StartDebate      struct{ ID int64 }
	PassMotion       struct{ ID int64 }
	ClearMotions     struct{}
	ToggleCrisis     struct{}
	TogglePause      struct{}
	AdvanceStage     struct{}
	SelectCommittee  struct{ Code string }
	CompleteRollCall struct{ Present []string }
	OpenRollCall     struct{}
	CloseRollCall    struct{}
)

func (NextSpeaker) Name() string      { return "next-speaker" }
func (StartDebate) Name() string      { return "start-debate" }
func (PassMotion) Name() string       { return "pass-motion" }
func (ClearMotions) Name() string     { return "clear-motions" }
func (ToggleCrisis) Name() string     { return "toggle-crisis" }
func (TogglePause) Name() string      { return "toggle-pause" }
func (AdvanceStage) Name() string     { return "advance-stage" }
func (SelectCommittee) Name() string  { return "select-committee" }
func (CompleteRollCall) Name() string { return "complete-roll-call" }
func (OpenRollCall) Name() string     { return "open-roll-call" }
func (CloseRollCall) Name() string    { return "close-roll-call" }

func (NextSpeaker) apply(s *Session) error        { s.StartNextSpeaker(); return nil }
func (a StartDebate) apply(s *Session) error      { return s.StartDebate(a.ID) }
func (a PassMotion) apply(s *Session) error       { return s.PassMotion(a.ID) }
func (ClearMotions) apply(s *Session) error       { s.ClearMotions(); return nil }
func (ToggleCrisis) apply(s *Session) error       { s.ToggleCrisisMode(); return nil }
func (TogglePause) apply(s *Session) error        { s.TogglePause(); return nil }
func (AdvanceStage) apply(s *Session) error       { return s.AdvanceStage() }
func (a SelectCommittee) apply(s *Session) error  { return s.SelectCommittee(a.Code) }
func (a CompleteRollCall) apply(s *Session) error { s.CompleteRollCall(a.Present); return nil }
func (OpenRollCall) apply(s *Session) error       { s.OpenRollCall(); return nil }
func (CloseRollCall) apply(s *Session) error      { s.CloseRollCall(); return nil }

// Dispatch applies an action to the session
func (s *Session) Dispatch(a Action) error {
	return a.apply(s)
}

// ParseAction builds an action from its name and form values. Motion
// actions read "id", committee selection reads "code" and roll call
// completion reads every "present" value.
func ParseAction(name string, form url.Values) (Action, error) {
	switch name {
	case "next-speaker":
		return NextSpeaker{}, nil
	case "start-debate", "pass-motion":
		id, err := strconv.ParseInt(form.Get("id"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid motion id %q", name, form.Get("id"))
		}
		if name == "start-debate" {
			return StartDebate{ID: id}, nil
		}
		return PassMotion{ID: id}, nil
	case "clear-motions":
		return ClearMotions{}, nil
	case "toggle-crisis":
		return ToggleCrisis{}, nil
	case "toggle-pause":
		return TogglePause{}, nil
	case "advance-stage":
		return AdvanceStage{}, nil
	case "select-committee":
		code := form.Get("code")
		if code == "" {
			return nil, fmt.Errorf("%s: missing committee code", name)
		}
		return SelectCommittee{Code: code}, nil
	case "complete-roll-call":
		return CompleteRollCall{Present: form["present"]}, nil
	case "open-roll-call":
		return OpenRollCall{}, nil
	case "close-roll-call":
		return CloseRollCall{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
}
