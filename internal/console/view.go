package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaronzipp/mun-display/internal/conference"
)

func (m Model) View() string {
	st := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(m.viewHeader(st))
	b.WriteString("\n")
	for _, a := range m.alerts {
		style, ok := alertStyles[string(a.alert.Kind)]
		if !ok {
			style = alertStyles["info"]
		}
		b.WriteString(style.Render(a.alert.Message))
		b.WriteString("\n")
	}
	if m.cue != nil {
		b.WriteString(cueStyle.Render(fmt.Sprintf("♪ %.0f Hz", m.cue.FrequencyHz)))
		b.WriteString("\n")
	}
	if m.lastErr != "" {
		b.WriteString(warnStyle.Render("! " + m.lastErr))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeRollCall:
		b.WriteString(m.viewRollCall())
	case modeCommittee:
		b.WriteString(m.viewCommittee())
	default:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Render(m.viewSpeakers(st)),
			panelStyle.Render(m.viewMotions(st)),
		))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewHeader(st conference.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(st.DisplayName))
	b.WriteString("  ")
	b.WriteString(stageStyle.Render(string(st.Stage)))
	if st.Paused {
		b.WriteString("  ")
		b.WriteString(warnStyle.Render("PAUSED"))
	}
	b.WriteString("\n")
	b.WriteString(st.Topic)
	b.WriteString(" · ")
	if st.Crisis {
		b.WriteString(crisisStyle.Render(st.SubTopic))
	} else {
		b.WriteString(subTopicStyle.Render(st.SubTopic))
	}
	if n := len(st.PresentCountries); n > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d present)", n)))
	}
	return b.String()
}

func (m Model) viewSpeakers(st conference.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Current Speaker"))
	b.WriteString("\n")
	if st.CurrentSpeaker != nil {
		clock := clockStyle
		if st.SpeakerRemaining <= conference.SpeakerWarningSeconds {
			clock = warnStyle
		}
		b.WriteString(st.CurrentSpeaker.Name)
		b.WriteString("  ")
		b.WriteString(clock.Render(conference.FormatClock(st.SpeakerRemaining)))
	} else {
		b.WriteString(dimStyle.Render("No speaker has the floor"))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Speakers List (%d)", len(st.Queue))))
	for i, sp := range st.Queue {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, sp.Country))
	}
	return b.String()
}

func (m Model) viewMotions(st conference.State) string {
	var b strings.Builder
	if st.ActiveMotion != nil {
		b.WriteString(titleStyle.Render(string(st.ActiveMotion.Kind)))
		b.WriteString("  ")
		b.WriteString(clockStyle.Render(st.MotionClock()))
		b.WriteString("\n\n")
	}
	b.WriteString(titleStyle.Render("Motions"))
	if len(st.Motions) == 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("No motions on the floor"))
	}
	for i, mv := range st.Motions {
		b.WriteString("\n")
		if i == m.motionCursor {
			b.WriteString(cursorStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		line := fmt.Sprintf("%s · %s", mv.Kind, mv.Proposer)
		if mv.HasDuration() {
			line += fmt.Sprintf(" · %d min", mv.DurationMinutes)
		}
		if mv.Topic != "" {
			line += " · " + mv.Topic
		}
		switch {
		case mv.Active:
			b.WriteString(passedStyle.Bold(true).Render(line + " [debating]"))
		case mv.Passed:
			b.WriteString(passedStyle.Render(line + " [passed]"))
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}

func (m Model) viewRollCall() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Roll Call"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d present", m.rollCall.Count(), m.rollCall.Total())))
	for i, c := range m.rollCall.Countries() {
		b.WriteString("\n")
		if i == m.rollCursor {
			b.WriteString(cursorStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		if m.rollCall.IsPresent(c) {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
		b.WriteString(c)
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("space toggle · enter complete · esc cancel"))
	return modalStyle.Render(b.String())
}

func (m Model) viewCommittee() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Committee"))
	for i, code := range m.committeeCodes {
		name := code
		if rec, ok := m.committees.Lookup(code); ok {
			name = rec.DisplayName
		}
		b.WriteString("\n")
		if i == m.committeeCursor {
			b.WriteString(cursorStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
	}
	return modalStyle.Render(b.String())
}
