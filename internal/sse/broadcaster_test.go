package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/conference"
	"github.com/aaronzipp/mun-display/internal/store"
)

func newRoom(t *testing.T) *store.Room {
	t.Helper()
	c, err := committee.Default()
	require.NoError(t, err)
	s, err := conference.New(c, "UNSC")
	require.NoError(t, err)
	return store.NewRoom("UNSC", s)
}

func TestBroadcast(t *testing.T) {
	b := NewBroadcaster(10*time.Millisecond, nil)
	room := newRoom(t)
	a := make(chan store.SSEMessage, 1)
	c := make(chan store.SSEMessage, 1)
	b.AddClient(room, a, store.Viewer{ID: "a"})
	b.AddClient(room, c, store.Viewer{ID: "c"})

	dropped := b.Broadcast(room, EventAlert, "<p>hi</p>")

	assert.Equal(t, 0, dropped)
	assert.Equal(t, store.SSEMessage{Event: EventAlert, Data: "<p>hi</p>"}, <-a)
	assert.Equal(t, store.SSEMessage{Event: EventAlert, Data: "<p>hi</p>"}, <-c)
}

func TestBroadcastPersonalizedByMode(t *testing.T) {
	b := NewBroadcaster(10*time.Millisecond, nil)
	room := newRoom(t)
	op := make(chan store.SSEMessage, 1)
	screen := make(chan store.SSEMessage, 1)
	screen2 := make(chan store.SSEMessage, 1)
	b.AddClient(room, op, store.Viewer{ID: "op", Mode: store.ViewOperator})
	b.AddClient(room, screen, store.Viewer{ID: "s1", Mode: store.ViewScreen})
	b.AddClient(room, screen2, store.Viewer{ID: "s2", Mode: store.ViewScreen})

	renders := 0
	b.BroadcastPersonalized(room, func(v store.Viewer) string {
		renders++
		return string(v.Mode)
	}, EventBoard)

	assert.Equal(t, "operator", (<-op).Data)
	assert.Equal(t, "screen", (<-screen).Data)
	assert.Equal(t, "screen", (<-screen2).Data)
	assert.Equal(t, 2, renders, "rendered once per mode")
}

func TestBroadcastSkipsSlowClient(t *testing.T) {
	b := NewBroadcaster(5*time.Millisecond, nil)
	room := newRoom(t)
	full := make(chan store.SSEMessage)
	b.AddClient(room, full, store.Viewer{ID: "slow"})

	assert.Equal(t, 1, b.Broadcast(room, EventBoard, "x"))
}

func TestRemoveClient(t *testing.T) {
	b := NewBroadcaster(5*time.Millisecond, nil)
	room := newRoom(t)
	ch := make(chan store.SSEMessage, 1)
	b.AddClient(room, ch, store.Viewer{ID: "a"})
	b.RemoveClient(room, ch)

	b.Broadcast(room, EventBoard, "x")
	assert.Empty(t, ch)
}

func TestPublishState(t *testing.T) {
	b := NewBroadcaster(5*time.Millisecond, nil)
	room := newRoom(t)
	ch := make(chan conference.State, 1)
	slow := make(chan conference.State)
	room.Lock()
	room.AddWSClient(ch, "a")
	room.AddWSClient(slow, "b")
	st := room.Session.Snapshot()
	room.Unlock()

	assert.Equal(t, 1, b.PublishState(room, st))
	assert.Equal(t, "UNSC", (<-ch).CommitteeCode)
}
