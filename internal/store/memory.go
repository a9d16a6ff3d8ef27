package store

import (
	"slices"
	"sync"
)

// RoomStore manages room storage
type RoomStore struct {
	rooms map[string]*Room
	mu    sync.RWMutex
}

// NewRoomStore creates a new room store
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*Room),
	}
}

// Get retrieves a room by code
func (s *RoomStore) Get(code string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, exists := s.rooms[code]
	return room, exists
}

// GetOrCreate returns the room for code, building it with create on first
// use. The second result reports whether the room was created.
func (s *RoomStore) GetOrCreate(code string, create func() (*Room, error)) (*Room, bool, error) {
	if room, ok := s.Get(code); ok {
		return room, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[code]; ok {
		return room, false, nil
	}
	room, err := create()
	if err != nil {
		return nil, false, err
	}
	s.rooms[code] = room
	return room, true, nil
}

// Delete removes a room
func (s *RoomStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// Codes lists the open rooms in sorted order
func (s *RoomStore) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.rooms))
	for code := range s.rooms {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Len is the number of open rooms
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Close stops every room's tick loop and empties the store
func (s *RoomStore) Close() {
	s.mu.Lock()
	rooms := s.rooms
	s.rooms = make(map[string]*Room)
	s.mu.Unlock()

	for _, room := range rooms {
		room.Ticker.Stop()
	}
}
