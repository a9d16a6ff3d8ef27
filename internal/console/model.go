// Package console is the terminal shell for a committee session: the same
// engine as the web display, driven from the keyboard.
package console

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/rollcall"
)

// mode is which overlay currently owns the keyboard
type mode int

const (
	modeBoard mode = iota
	modeRollCall
	modeCommittee
)

type tickMsg time.Time

type dismissAlertMsg struct{ seq int }

type dismissCueMsg struct{ seq int }

type shownAlert struct {
	seq   int
	alert conference.Alert
}

// Model is the root bubbletea model
type Model struct {
	session    *conference.Session
	committees committee.Provider
	every      time.Duration

	keys keyMap
	help help.Model
	mode mode

	motionCursor    int
	rollCall        *rollcall.Tracker
	rollCursor      int
	committeeCodes  []string
	committeeCursor int

	alerts  []shownAlert
	cue     *conference.Cue
	cueSeq  int
	seq     int
	lastErr string

	width int
}

// New creates a console model ticking every interval
func New(session *conference.Session, committees committee.Provider, every time.Duration) Model {
	return Model{
		session:    session,
		committees: committees,
		every:      every,
		keys:       defaultKeyMap(),
		help:       help.New(),
		rollCall:   rollcall.New(session.Countries()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.session.Tick()
		cmd := m.drain()
		return m, tea.Batch(cmd, m.scheduleTick())

	case dismissAlertMsg:
		for i, a := range m.alerts {
			if a.seq == msg.seq {
				m.alerts = append(m.alerts[:i:i], m.alerts[i+1:]...)
				break
			}
		}
		return m, nil

	case dismissCueMsg:
		if msg.seq == m.cueSeq {
			m.cue = nil
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (m.mode == modeBoard || msg.String() == "ctrl+c") {
			return m, tea.Quit
		}
		switch m.mode {
		case modeRollCall:
			return m.updateRollCall(msg)
		case modeCommittee:
			return m.updateCommittee(msg)
		default:
			return m.updateBoard(msg)
		}
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	motions := m.session.Motions()
	selected := func() (int64, bool) {
		if m.motionCursor < 0 || m.motionCursor >= len(motions) {
			return 0, false
		}
		return motions[m.motionCursor].ID, true
	}

	var action conference.Action
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.motionCursor > 0 {
			m.motionCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.motionCursor < len(motions)-1 {
			m.motionCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.NextSpeaker):
		action = conference.NextSpeaker{}
	case key.Matches(msg, m.keys.Advance):
		action = conference.AdvanceStage{}
	case key.Matches(msg, m.keys.Pause):
		action = conference.TogglePause{}
	case key.Matches(msg, m.keys.Crisis):
		action = conference.ToggleCrisis{}
	case key.Matches(msg, m.keys.Clear):
		action = conference.ClearMotions{}
	case key.Matches(msg, m.keys.Pass):
		id, ok := selected()
		if !ok {
			return m, nil
		}
		action = conference.PassMotion{ID: id}
	case key.Matches(msg, m.keys.Debate):
		id, ok := selected()
		if !ok {
			return m, nil
		}
		action = conference.StartDebate{ID: id}
	case key.Matches(msg, m.keys.RollCall):
		action = conference.OpenRollCall{}
	case key.Matches(msg, m.keys.Committee):
		m.committeeCodes = m.committees.Codes()
		m.committeeCursor = 0
		for i, code := range m.committeeCodes {
			if code == m.session.CommitteeCode() {
				m.committeeCursor = i
			}
		}
		m.mode = modeCommittee
		return m, nil
	default:
		return m, nil
	}
	return m.dispatch(action)
}

func (m Model) updateRollCall(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	countries := m.rollCall.Countries()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.rollCursor > 0 {
			m.rollCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.rollCursor < len(countries)-1 {
			m.rollCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.rollCursor < len(countries) {
			m.rollCall.Toggle(countries[m.rollCursor])
		}
	case key.Matches(msg, m.keys.Confirm):
		return m.dispatch(conference.CompleteRollCall{Present: m.rollCall.Present()})
	case key.Matches(msg, m.keys.Cancel):
		return m.dispatch(conference.CloseRollCall{})
	}
	return m, nil
}

func (m Model) updateCommittee(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.committeeCursor > 0 {
			m.committeeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.committeeCursor < len(m.committeeCodes)-1 {
			m.committeeCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeBoard
		if m.committeeCursor < len(m.committeeCodes) {
			return m.dispatch(conference.SelectCommittee{Code: m.committeeCodes[m.committeeCursor]})
		}
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBoard
	}
	return m, nil
}

// dispatch applies an action and syncs the overlays with the session
func (m Model) dispatch(a conference.Action) (tea.Model, tea.Cmd) {
	m.lastErr = ""
	if err := m.session.Dispatch(a); err != nil {
		m.lastErr = err.Error()
	}

	if m.session.RollCallOpen() {
		if m.mode != modeRollCall {
			m.rollCall = rollcall.New(m.session.Countries())
			m.rollCursor = 0
		}
		m.mode = modeRollCall
	} else if m.mode == modeRollCall {
		m.mode = modeBoard
	}
	if n := len(m.session.Motions()); m.motionCursor >= n {
		m.motionCursor = max(n-1, 0)
	}
	return m, m.drain()
}

// drain turns queued session events into visible alerts and cue indicators
func (m *Model) drain() tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.session.Events() {
		m.seq++
		seq := m.seq
		switch e := ev.(type) {
		case conference.Alert:
			m.alerts = append(m.alerts, shownAlert{seq: seq, alert: e})
			cmds = append(cmds, tea.Tick(e.Duration, func(time.Time) tea.Msg { return dismissAlertMsg{seq: seq} }))
		case conference.Cue:
			cue := e
			m.cue = &cue
			m.cueSeq = seq
			cmds = append(cmds, tea.Tick(e.Duration, func(time.Time) tea.Msg { return dismissCueMsg{seq: seq} }))
		}
	}
	return tea.Batch(cmds...)
}
