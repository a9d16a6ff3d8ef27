package handlers

import (
	"net/http"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/store"
)

// openRoom returns the room for the committee named in the URL, creating it
// and starting its countdown loop on first use. ok is false for codes with
// no committee record.
func (ctx *Context) openRoom(r *http.Request) (*store.Room, bool) {
	code := committee.Normalize(r.PathValue("code"))
	if _, ok := ctx.Committees.Lookup(code); !ok {
		return nil, false
	}

	room, created, err := ctx.Rooms.GetOrCreate(code, func() (*store.Room, error) {
		session, err := conference.New(ctx.Committees, code)
		if err != nil {
			return nil, err
		}
		room := store.NewRoom(code, session)
		room.Ticker.Start(ctx.baseCtx, ctx.Config.TickInterval, func() { ctx.tick(room) })
		return room, nil
	})
	if err != nil {
		ctx.Logger.Error("opening room", "room", code, "error", err)
		return nil, false
	}
	if created {
		ctx.Metrics.RoomOpened()
		ctx.Logger.Info("room opened", "room", code)
	}
	return room, true
}

// requireRoom is openRoom for API endpoints: unknown codes get a 404
func (ctx *Context) requireRoom(w http.ResponseWriter, r *http.Request) (*store.Room, bool) {
	room, ok := ctx.openRoom(r)
	if !ok {
		http.Error(w, "Committee not found", http.StatusNotFound)
	}
	return room, ok
}

func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies
}
