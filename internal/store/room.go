package store

import (
	"slices"
	"sync"

	"github.com/aaronzipp/mun-display/internal/clock"
	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/rollcall"
)

// ViewMode selects which controls a display connection renders
type ViewMode string

const (
	ViewOperator ViewMode = "operator"
	ViewScreen   ViewMode = "screen"
)

// ParseViewMode maps a query value to a view mode, defaulting to operator
func ParseViewMode(v string) ViewMode {
	if ViewMode(v) == ViewScreen {
		return ViewScreen
	}
	return ViewOperator
}

// Viewer identifies one open display connection
type Viewer struct {
	ID   string
	Mode ViewMode
}

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "board", "alert")
	Data  string // HTML fragment or JSON payload
}

// Room is one running committee session and the displays attached to it
type Room struct {
	Code     string
	Session  *conference.Session
	RollCall *rollcall.Tracker
	Ticker   clock.Loop

	mu           sync.RWMutex
	sseClients   map[chan SSEMessage]Viewer
	wsClients    map[chan conference.State]string // channel -> client id
	rollCallOpen bool
	version      uint64

	// publishMu orders fan-out; never acquire it while holding mu
	publishMu sync.Mutex
	published uint64
}

// NewRoom wraps a session in a room
func NewRoom(code string, session *conference.Session) *Room {
	r := &Room{
		Code:       code,
		Session:    session,
		RollCall:   rollcall.New(session.Countries()),
		sseClients: make(map[chan SSEMessage]Viewer),
		wsClients:  make(map[chan conference.State]string),
	}
	r.rollCallOpen = session.RollCallOpen()
	return r
}

// Lock acquires the room's write lock
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's write lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// RLock acquires the room's read lock
func (r *Room) RLock() {
	r.mu.RLock()
}

// RUnlock releases the room's read lock
func (r *Room) RUnlock() {
	r.mu.RUnlock()
}

// SyncRollCall starts a fresh attendance sheet when the roll call flow is
// reopened or the committee changed underneath it (must be called with
// lock held)
func (r *Room) SyncRollCall() {
	open := r.Session.RollCallOpen()
	reopened := open && !r.rollCallOpen
	r.rollCallOpen = open

	countries := r.Session.Countries()
	if reopened || !slices.Equal(countries, r.RollCall.Countries()) {
		r.RollCall = rollcall.New(countries)
	}
}

// NextVersion stamps a snapshot taken under the write lock (must be called
// with lock held)
func (r *Room) NextVersion() uint64 {
	r.version++
	return r.version
}

// Publish runs fn for the snapshot stamped version, one publisher at a
// time. stale is true when a newer snapshot has already gone out, so the
// caller can skip state that would overwrite it. Must be called without
// the room lock held.
func (r *Room) Publish(version uint64, fn func(stale bool)) {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()
	stale := version <= r.published
	if !stale {
		r.published = version
	}
	fn(stale)
}

// GetSSEClients returns a copy of the SSE clients map (must be called with lock held)
func (r *Room) GetSSEClients() map[chan SSEMessage]Viewer {
	clients := make(map[chan SSEMessage]Viewer, len(r.sseClients))
	for k, v := range r.sseClients {
		clients[k] = v
	}
	return clients
}

// AddSSEClient adds a new SSE client to the room
func (r *Room) AddSSEClient(client chan SSEMessage, viewer Viewer) {
	r.sseClients[client] = viewer
}

// RemoveSSEClient removes an SSE client from the room
func (r *Room) RemoveSSEClient(client chan SSEMessage) {
	delete(r.sseClients, client)
}

// SSEClientCount returns the number of connected SSE clients
func (r *Room) SSEClientCount() int {
	return len(r.sseClients)
}

// GetWSClients returns a copy of the websocket subscribers (must be called with lock held)
func (r *Room) GetWSClients() map[chan conference.State]string {
	clients := make(map[chan conference.State]string, len(r.wsClients))
	for k, v := range r.wsClients {
		clients[k] = v
	}
	return clients
}

// AddWSClient subscribes a websocket connection to state updates
func (r *Room) AddWSClient(client chan conference.State, id string) {
	r.wsClients[client] = id
}

// RemoveWSClient unsubscribes a websocket connection
func (r *Room) RemoveWSClient(client chan conference.State) {
	delete(r.wsClients, client)
}

// ClientCount is the number of attached displays of any kind
func (r *Room) ClientCount() int {
	return len(r.sseClients) + len(r.wsClients)
}
