package handlers

import (
	"errors"
	"net/http"

	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/render"
	"github.com/aaronzipp/mun-display/internal/sse"
	"github.com/aaronzipp/mun-display/internal/store"
)

// update is everything a display needs after one mutation of a room
type update struct {
	version  uint64
	state    conference.State
	events   []conference.Event
	rollCall *string // nil when the roll call sheet is unchanged
}

// HandleAction dispatches a chair action to the room's session
func (ctx *Context) HandleAction(w http.ResponseWriter, r *http.Request) {
	room, ok := ctx.requireRoom(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	name := r.PathValue("name")
	action, err := conference.ParseAction(name, r.Form)
	if err != nil {
		ctx.Metrics.Action(name, "invalid")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = ctx.apply(room, func(room *store.Room) error {
		return room.Session.Dispatch(action)
	})
	ctx.respond(w, room, action.Name(), err)
}

// HandleRollCallToggle marks one country present or absent
func (ctx *Context) HandleRollCallToggle(w http.ResponseWriter, r *http.Request) {
	room, ok := ctx.requireRoom(w, r)
	if !ok {
		return
	}
	country := r.FormValue("country")

	room.Lock()
	room.SyncRollCall()
	if !room.Session.RollCallOpen() {
		room.Unlock()
		http.Error(w, "Roll call is not open", http.StatusConflict)
		return
	}
	room.RollCall.Toggle(country)
	html := render.RollCall(room.Code, room.RollCall, true)
	version := room.NextVersion()
	room.Unlock()

	room.Publish(version, func(stale bool) {
		if !stale {
			ctx.Metrics.Dropped(ctx.broadcastRollCall(room, html))
		}
	})
	w.WriteHeader(http.StatusNoContent)
}

// HandleRollCallComplete records the marked countries as present
func (ctx *Context) HandleRollCallComplete(w http.ResponseWriter, r *http.Request) {
	room, ok := ctx.requireRoom(w, r)
	if !ok {
		return
	}
	action := conference.CompleteRollCall{}
	err := ctx.apply(room, func(room *store.Room) error {
		action.Present = room.RollCall.Present()
		return room.Session.Dispatch(action)
	})
	ctx.respond(w, room, action.Name(), err)
}

// apply runs fn under the room lock and publishes the result after
// releasing it. Events queued before a rejection are still published.
func (ctx *Context) apply(room *store.Room, fn func(room *store.Room) error) error {
	room.Lock()
	room.SyncRollCall()
	err := fn(room)
	room.SyncRollCall()
	u := update{
		version: room.NextVersion(),
		state:   room.Session.Snapshot(),
		events:  room.Session.Events(),
	}
	html := render.RollCall(room.Code, room.RollCall, room.Session.RollCallOpen())
	u.rollCall = &html
	room.Unlock()

	ctx.publish(room, u)
	return err
}

func (ctx *Context) respond(w http.ResponseWriter, room *store.Room, name string, err error) {
	switch {
	case err == nil:
		ctx.Metrics.Action(name, "ok")
		ctx.Logger.Info("action", "room", room.Code, "action", name)
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, conference.ErrUnknownCommittee):
		ctx.Metrics.Action(name, "invalid")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(render.ErrorMessage(err.Error())))
	default:
		ctx.Metrics.Action(name, "rejected")
		ctx.Logger.Info("action rejected", "room", room.Code, "action", name, "reason", err)
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(render.ErrorMessage(err.Error())))
	}
}

// tick advances the room's countdowns and publishes if anything moved
func (ctx *Context) tick(room *store.Room) {
	room.Lock()
	if !room.Session.Tick() {
		room.Unlock()
		return
	}
	u := update{
		version: room.NextVersion(),
		state:   room.Session.Snapshot(),
		events:  room.Session.Events(),
	}
	room.Unlock()

	ctx.Metrics.Tick()
	ctx.publish(room, u)
}

// publish fans an update out to SSE and websocket displays in version
// order. A snapshot older than one already sent only delivers its events.
func (ctx *Context) publish(room *store.Room, u update) {
	room.Publish(u.version, func(stale bool) {
		ctx.send(room, u, stale)
	})
}

func (ctx *Context) send(room *store.Room, u update, stale bool) {
	dropped := 0
	if !stale {
		dropped += ctx.Broadcaster.BroadcastPersonalized(room, func(v store.Viewer) string {
			return render.Board(room.Code, u.state, v.Mode == store.ViewOperator)
		}, sse.EventBoard)
	}

	for _, ev := range u.events {
		switch e := ev.(type) {
		case conference.Alert:
			ctx.Metrics.Alert(string(e.Kind))
			dropped += ctx.Broadcaster.Broadcast(room, sse.EventAlert, render.Alert(e))
		case conference.Cue:
			ctx.Metrics.Cue(string(e.Reason))
			dropped += ctx.Broadcaster.Broadcast(room, sse.EventCue, render.Cue(e))
		}
	}

	if !stale {
		if u.rollCall != nil {
			dropped += ctx.broadcastRollCall(room, *u.rollCall)
		}
		dropped += ctx.Broadcaster.PublishState(room, u.state)
	}
	ctx.Metrics.Dropped(dropped)
}

// broadcastRollCall sends the attendance sheet to operators only
func (ctx *Context) broadcastRollCall(room *store.Room, html string) int {
	return ctx.Broadcaster.BroadcastPersonalized(room, func(v store.Viewer) string {
		if v.Mode != store.ViewOperator {
			return ""
		}
		return html
	}, sse.EventRollCall)
}
