package app

import (
	"github.com/google/uuid"

	"matchlobby/internal/domain"
)

// RoomPool holds every room keyed by id plus the single room currently
// accepting automatic joins. Like SessionRegistry it carries no lock;
// the allocator owns the critical section because creating a room and
// moving the open pointer span structures.
type RoomPool struct {
	rooms map[domain.RoomID]*domain.Room
	open  *domain.Room // nil when no room accepts automatic joins
}

func NewRoomPool() *RoomPool {
	return &RoomPool{rooms: make(map[domain.RoomID]*domain.Room)}
}

func (p *RoomPool) Get(id domain.RoomID) (*domain.Room, bool) {
	room, ok := p.rooms[id]
	return room, ok
}

// Open returns the room automatic joins land in, or nil.
func (p *RoomPool) Open() *domain.Room {
	return p.open
}

// Create makes a fresh waiting room, registers it and marks it as the
// open room.
func (p *RoomPool) Create(capacity int) *domain.Room {
	room := domain.NewRoom(domain.RoomID(uuid.NewString()), capacity)
	p.rooms[room.ID] = room
	p.open = room
	return room
}

// Closed clears the open pointer if room was it. Called after a room
// starts so the next automatic join gets a fresh room.
func (p *RoomPool) Closed(room *domain.Room) {
	if p.open == room {
		p.open = nil
	}
}

func (p *RoomPool) Len() int {
	return len(p.rooms)
}

func (p *RoomPool) Reset() {
	p.rooms = make(map[domain.RoomID]*domain.Room)
	p.open = nil
}

// RoomInfo is a read-only view for the rooms listing API.
type RoomInfo struct {
	ID      domain.RoomID `json:"id"`
	Players int           `json:"players"`
	Status  string        `json:"status"`
}

func (p *RoomPool) Snapshot() []RoomInfo {
	out := make([]RoomInfo, 0, len(p.rooms))
	for _, r := range p.rooms {
		out = append(out, RoomInfo{ID: r.ID, Players: len(r.Members), Status: r.Status.String()})
	}
	return out
}
