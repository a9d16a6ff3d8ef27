package handlers

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/aaronzipp/mun-display/internal/conference"
)

// HandleWebSocket streams JSON snapshots of a room to external displays
func (ctx *Context) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	room, ok := ctx.requireRoom(w, r)
	if !ok {
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		ctx.Logger.Debug("websocket accept failed", "room", room.Code, "error", err)
		return
	}
	defer conn.CloseNow()

	// Clients only listen; CloseRead handles control frames and cancels
	// connCtx when the peer goes away.
	connCtx := conn.CloseRead(r.Context())

	id := uuid.New().String()
	updates := make(chan conference.State, ctx.Config.SSEBufferSize)

	room.Lock()
	room.AddWSClient(updates, id)
	st := room.Session.Snapshot()
	room.Unlock()
	ctx.Metrics.DisplayConnected("websocket", 1)
	defer func() {
		room.Lock()
		room.RemoveWSClient(updates)
		room.Unlock()
		ctx.Metrics.DisplayConnected("websocket", -1)
	}()

	if err := ctx.writeState(connCtx, conn, st); err != nil {
		return
	}
	for {
		select {
		case <-connCtx.Done():
			return
		case <-ctx.baseCtx.Done():
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case st := <-updates:
			if err := ctx.writeState(connCtx, conn, st); err != nil {
				ctx.Logger.Debug("websocket write failed", "room", room.Code, "client", id, "error", err)
				return
			}
		}
	}
}

func (ctx *Context) writeState(c context.Context, conn *websocket.Conn, st conference.State) error {
	wctx, cancel := context.WithTimeout(c, ctx.Config.SSETimeout)
	defer cancel()
	return wsjson.Write(wctx, conn, st)
}
