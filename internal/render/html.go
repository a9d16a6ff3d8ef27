package render

import (
	"encoding/json"
	htmlpkg "html"
	"strconv"
	"strings"

	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/rollcall"
)

// Board generates the full display for a room. Operator boards carry the
// chair's controls; screen boards are read-only.
func Board(code string, st conference.State, operator bool) string {
	var b strings.Builder
	b.WriteString(`<div class="board`)
	if st.Crisis {
		b.WriteString(` board-crisis`)
	}
	if st.Paused {
		b.WriteString(` board-paused`)
	}
	b.WriteString(`">`)
	b.WriteString(Header(st))
	if st.Paused {
		b.WriteString(`<div class="banner banner-paused">Conference Paused</div>`)
	}
	b.WriteString(`<div class="panels">`)
	b.WriteString(SpeakerPanel(code, st, operator))
	b.WriteString(MotionPanel(code, st, operator))
	b.WriteString(`</div>`)
	if operator {
		b.WriteString(Controls(code, st))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Header generates the committee title, agenda and stage badge
func Header(st conference.State) string {
	var b strings.Builder
	b.WriteString(`<header class="board-header"><h1 class="committee-name">`)
	b.WriteString(htmlpkg.EscapeString(st.DisplayName))
	b.WriteString(`</h1><p class="topic">`)
	b.WriteString(htmlpkg.EscapeString(st.Topic))
	b.WriteString(`</p><p class="sub-topic`)
	if st.Crisis {
		b.WriteString(` sub-topic-crisis`)
	}
	b.WriteString(`">`)
	b.WriteString(htmlpkg.EscapeString(st.SubTopic))
	b.WriteString(`</p><span class="badge stage-badge">`)
	b.WriteString(htmlpkg.EscapeString(string(st.Stage)))
	b.WriteString(`</span>`)
	if st.Crisis {
		b.WriteString(`<span class="badge badge-crisis">Crisis Mode</span>`)
	}
	if len(st.PresentCountries) > 0 {
		b.WriteString(`<span class="badge badge-present">`)
		b.WriteString(strconv.Itoa(len(st.PresentCountries)))
		b.WriteString(` present</span>`)
	}
	b.WriteString(`</header>`)
	return b.String()
}

// SpeakerPanel generates the current speaker, their clock and the queue
func SpeakerPanel(code string, st conference.State, operator bool) string {
	var b strings.Builder
	b.WriteString(`<section class="card speaker-panel"><h2>Current Speaker</h2>`)
	if st.CurrentSpeaker != nil {
		b.WriteString(`<p class="speaker-name">`)
		b.WriteString(htmlpkg.EscapeString(st.CurrentSpeaker.Name))
		b.WriteString(`</p><p class="clock`)
		if st.SpeakerRemaining <= conference.SpeakerWarningSeconds {
			b.WriteString(` clock-warning`)
		}
		b.WriteString(`">`)
		b.WriteString(conference.FormatClock(st.SpeakerRemaining))
		b.WriteString(`</p>`)
	} else {
		b.WriteString(`<p class="text-muted">No speaker has the floor</p>`)
	}

	b.WriteString(`<h3>Speakers List (`)
	b.WriteString(strconv.Itoa(len(st.Queue)))
	b.WriteString(`)</h3><ol class="speaker-queue">`)
	for _, sp := range st.Queue {
		b.WriteString(`<li><span class="speaker-country">`)
		b.WriteString(htmlpkg.EscapeString(sp.Country))
		b.WriteString(`</span> <span class="text-muted">`)
		b.WriteString(conference.FormatClock(sp.AllottedSeconds))
		b.WriteString(`</span></li>`)
	}
	b.WriteString(`</ol>`)
	if operator {
		b.WriteString(actionButton(code, "next-speaker", nil, "Next Speaker", "btn-primary", false))
	}
	b.WriteString(`</section>`)
	return b.String()
}

// MotionPanel generates the running debate and the motion list
func MotionPanel(code string, st conference.State, operator bool) string {
	var b strings.Builder
	b.WriteString(`<section class="card motion-panel">`)
	if st.ActiveMotion != nil {
		b.WriteString(`<div class="active-motion"><h2>`)
		b.WriteString(htmlpkg.EscapeString(string(st.ActiveMotion.Kind)))
		b.WriteString(`</h2>`)
		if st.ActiveMotion.Topic != "" {
			b.WriteString(`<p class="motion-topic">`)
			b.WriteString(htmlpkg.EscapeString(st.ActiveMotion.Topic))
			b.WriteString(`</p>`)
		}
		b.WriteString(`<p class="clock">`)
		b.WriteString(st.MotionClock())
		b.WriteString(`</p></div>`)
	}

	b.WriteString(`<h2>Motions</h2>`)
	if len(st.Motions) == 0 {
		b.WriteString(`<p class="text-muted">No motions on the floor</p>`)
	}
	b.WriteString(`<ul class="motion-list">`)
	for _, mv := range st.Motions {
		b.WriteString(MotionItem(code, mv, operator))
	}
	b.WriteString(`</ul>`)
	if operator {
		b.WriteString(actionButton(code, "clear-motions", nil, "Clear Motions", "btn-secondary", len(st.Motions) == 0))
	}
	b.WriteString(`</section>`)
	return b.String()
}

// MotionItem generates one row of the motion list
func MotionItem(code string, mv conference.MotionView, operator bool) string {
	var b strings.Builder
	b.WriteString(`<li class="motion-item`)
	if mv.Passed {
		b.WriteString(` motion-passed`)
	}
	if mv.Active {
		b.WriteString(` motion-active`)
	}
	b.WriteString(`"><span class="motion-kind">`)
	b.WriteString(htmlpkg.EscapeString(string(mv.Kind)))
	b.WriteString(`</span> <span class="motion-proposer">`)
	b.WriteString(htmlpkg.EscapeString(mv.Proposer))
	b.WriteString(`</span>`)
	if mv.HasDuration() {
		b.WriteString(` <span class="motion-duration">`)
		b.WriteString(strconv.Itoa(mv.DurationMinutes))
		b.WriteString(` min</span>`)
	}
	if mv.Topic != "" {
		b.WriteString(` <span class="motion-topic">`)
		b.WriteString(htmlpkg.EscapeString(mv.Topic))
		b.WriteString(`</span>`)
	}
	if mv.Passed {
		b.WriteString(` <span class="badge badge-win">Passed</span>`)
	}
	if operator {
		id := map[string]string{"id": strconv.FormatInt(mv.ID, 10)}
		b.WriteString(`<span class="motion-controls">`)
		b.WriteString(actionButton(code, "pass-motion", id, "Pass", "btn-small", !mv.CanPass))
		b.WriteString(actionButton(code, "start-debate", id, "Start Debate", "btn-small", !mv.CanStartDebate))
		b.WriteString(`</span>`)
	}
	b.WriteString(`</li>`)
	return b.String()
}

// Controls generates the chair's session-wide controls
func Controls(code string, st conference.State) string {
	var b strings.Builder
	b.WriteString(`<nav class="controls button-row">`)
	b.WriteString(actionButton(code, "advance-stage", nil, "Next Stage", "btn-primary", st.Stage.Terminal()))
	pause := "Pause"
	if st.Paused {
		pause = "Resume"
	}
	b.WriteString(actionButton(code, "toggle-pause", nil, pause, "btn-secondary", false))
	crisis := "Crisis Mode"
	if st.Crisis {
		crisis = "End Crisis"
	}
	b.WriteString(actionButton(code, "toggle-crisis", nil, crisis, "btn-danger", false))
	b.WriteString(actionButton(code, "open-roll-call", nil, "Roll Call", "btn-secondary", st.RollCallOpen))
	b.WriteString(`</nav>`)
	return b.String()
}

// RollCall generates the attendance sheet shown while roll is being taken.
// It is empty when the flow is closed.
func RollCall(code string, t *rollcall.Tracker, open bool) string {
	if !open {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="modal roll-call"><div class="card"><h2>Roll Call</h2>`)
	b.WriteString(ReadyCount(t.Count(), t.Total(), "countries present"))
	b.WriteString(`<ul class="roll-call-list">`)
	for _, c := range t.Countries() {
		b.WriteString(`<li><label><input type="checkbox" hx-post="/`)
		b.WriteString(code)
		b.WriteString(`/rollcall/toggle" hx-vals="`)
		b.WriteString(hxVals(map[string]string{"country": c}))
		b.WriteString(`" hx-swap="none"`)
		if t.IsPresent(c) {
			b.WriteString(` checked`)
		}
		b.WriteString(`> `)
		b.WriteString(htmlpkg.EscapeString(c))
		b.WriteString(`</label></li>`)
	}
	b.WriteString(`</ul><div class="button-row"><button class="btn btn-primary" hx-post="/`)
	b.WriteString(code)
	b.WriteString(`/rollcall/complete" hx-swap="none">Complete Roll Call</button>`)
	b.WriteString(actionButton(code, "close-roll-call", nil, "Cancel", "btn-secondary", false))
	b.WriteString(`</div></div></div>`)
	return b.String()
}

// ReadyCount generates a "n/total label" counter
func ReadyCount(ready, total int, label string) string {
	var b strings.Builder
	b.WriteString(`<p class="ready-count">`)
	b.WriteString(strconv.Itoa(ready))
	b.WriteString(`/`)
	b.WriteString(strconv.Itoa(total))
	b.WriteString(` `)
	b.WriteString(label)
	b.WriteString(`</p>`)
	return b.String()
}

// Alert generates a transient notification. The display script removes it
// after data-dismiss-ms.
func Alert(a conference.Alert) string {
	var b strings.Builder
	b.WriteString(`<div class="alert alert-`)
	b.WriteString(string(a.Kind))
	b.WriteString(`" role="alert" data-dismiss-ms="`)
	b.WriteString(strconv.FormatInt(a.DurationMs(), 10))
	b.WriteString(`">`)
	b.WriteString(htmlpkg.EscapeString(a.Message))
	b.WriteString(`</div>`)
	return b.String()
}

// ErrorMessage generates an inline error for a rejected action
func ErrorMessage(msg string) string {
	return Alert(conference.Alert{Kind: conference.AlertWarning, Message: msg, Duration: conference.AlertDuration})
}

// Cue encodes a tone descriptor for the browser's audio player
func Cue(c conference.Cue) string {
	buf, err := json.Marshal(struct {
		Reason  conference.CueReason `json:"reason"`
		Hz      float64              `json:"hz"`
		Seconds float64              `json:"seconds"`
	}{c.Reason, c.FrequencyHz, c.Seconds()})
	if err != nil {
		return "{}"
	}
	return string(buf)
}

func actionButton(code, action string, vals map[string]string, label, class string, disabled bool) string {
	var b strings.Builder
	b.WriteString(`<button class="btn `)
	b.WriteString(class)
	b.WriteString(`" hx-post="/`)
	b.WriteString(code)
	b.WriteString(`/action/`)
	b.WriteString(action)
	b.WriteString(`" hx-swap="none"`)
	if len(vals) > 0 {
		b.WriteString(` hx-vals="`)
		b.WriteString(hxVals(vals))
		b.WriteString(`"`)
	}
	if disabled {
		b.WriteString(` disabled`)
	}
	b.WriteString(`>`)
	b.WriteString(htmlpkg.EscapeString(label))
	b.WriteString(`</button>`)
	return b.String()
}

// hxVals encodes form values for an hx-vals attribute
func hxVals(vals map[string]string) string {
	buf, _ := json.Marshal(vals)
	return htmlpkg.EscapeString(string(buf))
}
