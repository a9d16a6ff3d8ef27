package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/aaronzipp/mun-display/internal/render"
	"github.com/aaronzipp/mun-display/internal/sse"
	"github.com/aaronzipp/mun-display/internal/store"
)

// HandleSSE streams board, alert, cue and roll call updates for a room.
// ?view=screen selects the read-only board.
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	room, ok := ctx.requireRoom(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	viewer := store.Viewer{
		ID:   uuid.New().String(),
		Mode: store.ParseViewMode(r.URL.Query().Get("view")),
	}
	operator := viewer.Mode == store.ViewOperator

	setSSEHeaders(w)
	flusher.Flush()

	clientChan := make(chan store.SSEMessage, ctx.Config.SSEBufferSize)
	ctx.Broadcaster.AddClient(room, clientChan, viewer)
	defer ctx.Broadcaster.RemoveClient(room, clientChan)
	ctx.Metrics.DisplayConnected("sse", 1)
	defer ctx.Metrics.DisplayConnected("sse", -1)

	// Send the current board so a reconnecting display catches up
	room.Lock()
	room.SyncRollCall()
	st := room.Session.Snapshot()
	rollCall := render.RollCall(room.Code, room.RollCall, st.RollCallOpen && operator)
	room.Unlock()

	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventBoard, render.Board(room.Code, st, operator))
	if operator {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventRollCall, rollCall)
	}
	flusher.Flush()
	ctx.Logger.Debug("sse connected", "room", room.Code, "viewer", viewer.ID, "mode", viewer.Mode)

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			ctx.Logger.Debug("sse disconnected", "room", room.Code, "viewer", viewer.ID)
			return
		case <-ctx.baseCtx.Done():
			return
		case msg := <-clientChan:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}
