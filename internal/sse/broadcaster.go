package sse

import (
	"log/slog"
	"time"

	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/store"
)

// Broadcaster fans room updates out to attached displays
type Broadcaster struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewBroadcaster creates a broadcaster that gives up on a client after timeout
func NewBroadcaster(timeout time.Duration, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{
		timeout: timeout,
		logger:  logger.With("component", "sse"),
	}
}

// AddClient adds a new SSE client to the room
func (b *Broadcaster) AddClient(room *store.Room, client chan store.SSEMessage, viewer store.Viewer) {
	room.Lock()
	defer room.Unlock()
	room.AddSSEClient(client, viewer)
	b.logger.Debug("client added", "room", room.Code, "viewer", viewer.ID, "mode", viewer.Mode, "clients", room.SSEClientCount())
}

// RemoveClient removes an SSE client from the room
func (b *Broadcaster) RemoveClient(room *store.Room, client chan store.SSEMessage) {
	room.Lock()
	defer room.Unlock()
	room.RemoveSSEClient(client)
	b.logger.Debug("client removed", "room", room.Code, "clients", room.SSEClientCount())
}

// Broadcast sends a message to all connected SSE clients and returns how
// many could not be reached in time
func (b *Broadcaster) Broadcast(room *store.Room, event, data string) int {
	return b.BroadcastPersonalized(room, func(store.Viewer) string { return data }, event)
}

// BroadcastPersonalized sends each client a message rendered for its viewer
func (b *Broadcaster) BroadcastPersonalized(room *store.Room, renderFunc func(viewer store.Viewer) string, event string) int {
	room.RLock()
	clients := room.GetSSEClients()
	room.RUnlock()

	// Send WITHOUT holding the lock
	dropped := 0
	rendered := make(map[store.ViewMode]string, 2)
	for client, viewer := range clients {
		data, ok := rendered[viewer.Mode]
		if !ok {
			data = renderFunc(viewer)
			rendered[viewer.Mode] = data
		}
		if !b.send(client, store.SSEMessage{Event: event, Data: data}) {
			dropped++
		}
	}
	b.logger.Debug("broadcast", "room", room.Code, "event", event, "clients", len(clients), "dropped", dropped)
	return dropped
}

// PublishState pushes a snapshot to every websocket subscriber
func (b *Broadcaster) PublishState(room *store.Room, st conference.State) int {
	room.RLock()
	clients := room.GetWSClients()
	room.RUnlock()

	dropped := 0
	for client := range clients {
		select {
		case client <- st:
		case <-time.After(b.timeout):
			dropped++
		}
	}
	return dropped
}

func (b *Broadcaster) send(client chan store.SSEMessage, msg store.SSEMessage) bool {
	select {
	case client <- msg:
		return true
	case <-time.After(b.timeout):
		return false
	}
}
