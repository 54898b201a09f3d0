// Package domain contains entity without logic beyond its own invariants
package domain

import "errors"

type (
	RoomID    string
	SessionID string
)

// DefaultCapacity is the number of players a room holds unless
// configured otherwise.
const DefaultCapacity = 4

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomClosed   = errors.New("room already started")
)

// Status is a room's lifecycle state.
type Status int

const (
	// StatusWaiting accepts new members.
	StatusWaiting Status = iota
	// StatusStarted is terminal: the member list is frozen.
	StatusStarted
)

func (s Status) String() string {
	if s == StatusStarted {
		return "started"
	}
	return "waiting"
}

// Room is a capacity-bounded group of sessions. Members keeps join
// order. Rooms carry no lock of their own; the allocator serializes
// every mutation.
type Room struct {
	ID       RoomID
	Members  []SessionID
	Capacity int
	Status   Status
}

func NewRoom(id RoomID, capacity int) *Room {
	return &Room{ID: id, Capacity: capacity}
}

func (r *Room) Full() bool {
	return len(r.Members) >= r.Capacity
}

// Add appends sid and fires the Waiting->Started transition when the
// member count reaches capacity. Adding to a started or full room is a
// contract violation upstream, not a recoverable error.
func (r *Room) Add(sid SessionID) {
	if r.Status == StatusStarted || r.Full() {
		panic("domain: add to a started room")
	}
	r.Members = append(r.Members, sid)
	if len(r.Members) == r.Capacity {
		r.Status = StatusStarted
	}
}
