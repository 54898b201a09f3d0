package app

import (
	"matchlobby/internal/domain"
)

// SessionRegistry maps a session to the room it currently occupies.
// A session binds at most once; only a full reset unbinds it.
// Not self-locking: the allocator serializes all access.
type SessionRegistry struct {
	rooms map[domain.SessionID]domain.RoomID
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{rooms: make(map[domain.SessionID]domain.RoomID)}
}

func (r *SessionRegistry) RoomOf(sid domain.SessionID) (domain.RoomID, bool) {
	id, ok := r.rooms[sid]
	return id, ok
}

func (r *SessionRegistry) Bind(sid domain.SessionID, room domain.RoomID) {
	r.rooms[sid] = room
}

func (r *SessionRegistry) Len() int {
	return len(r.rooms)
}

func (r *SessionRegistry) Reset() {
	r.rooms = make(map[domain.SessionID]domain.RoomID)
}
