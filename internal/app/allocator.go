package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"matchlobby/internal/domain"
)

// Allocator is the transactional entry point for room assignment. One
// mutex guards the pool and the registry together: a join reads the
// registry, may create a room and may move the open-room pointer, and
// none of that may interleave with another join or a reset.
type Allocator struct {
	mu       sync.Mutex
	capacity int
	pool     *RoomPool
	registry *SessionRegistry
}

func NewAllocator(capacity int) *Allocator {
	if capacity <= 0 {
		capacity = domain.DefaultCapacity
	}
	return &Allocator{
		capacity: capacity,
		pool:     NewRoomPool(),
		registry: NewSessionRegistry(),
	}
}

// Join assigns sid to the open room, creating one if needed. Repeat
// calls from a joined session return OutcomeAlreadyJoined and change
// nothing.
func (a *Allocator) Join(sid domain.SessionID) Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()

	if id, ok := a.registry.RoomOf(sid); ok {
		return Outcome{Kind: OutcomeAlreadyJoined, Room: id}
	}
	room := a.pool.Open()
	if room == nil {
		room = a.pool.Create(a.capacity)
		log.Info().Str("module", "app.allocator").Str("room", string(room.ID)).Msg("created room")
	}
	return a.admit(sid, room)
}

// JoinRoom assigns sid to the room named by id. The membership check
// runs before the room lookup so a joined session gets
// OutcomeAlreadyJoined even for an unknown or mismatched id.
func (a *Allocator) JoinRoom(sid domain.SessionID, id domain.RoomID) (Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cur, ok := a.registry.RoomOf(sid); ok {
		return Outcome{Kind: OutcomeAlreadyJoined, Room: cur}, nil
	}
	room, ok := a.pool.Get(id)
	if !ok {
		return Outcome{}, domain.ErrRoomNotFound
	}
	if room.Status == domain.StatusStarted {
		return Outcome{}, domain.ErrRoomClosed
	}
	return a.admit(sid, room), nil
}

// admit is the single mutation path shared by both join variants.
// Caller holds a.mu and has verified sid is unregistered and room is
// waiting.
func (a *Allocator) admit(sid domain.SessionID, room *domain.Room) Outcome {
	room.Add(sid)
	a.registry.Bind(sid, room.ID)
	if room.Status == domain.StatusStarted {
		a.pool.Closed(room)
		log.Info().Str("module", "app.allocator").Str("room", string(room.ID)).Msg("room full, game starting")
		return Outcome{Kind: OutcomeRoomStarted, Room: room.ID}
	}
	return Outcome{Kind: OutcomeWaiting, Room: room.ID}
}

// Reset wipes all rooms and session bindings. Safe and idempotent at
// any time; session ids issued earlier simply count as fresh players
// on their next join.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pool.Reset()
	a.registry.Reset()
	log.Info().Str("module", "app.allocator").Msg("state reset")
}

// Rooms returns a point-in-time listing of every room.
func (a *Allocator) Rooms() []RoomInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pool.Snapshot()
}
