package app

import "matchlobby/internal/domain"

// OutcomeKind classifies what a join did.
type OutcomeKind int

const (
	// OutcomeWaiting: joined a room that still has free slots.
	OutcomeWaiting OutcomeKind = iota
	// OutcomeRoomStarted: this join filled the room.
	OutcomeRoomStarted
	// OutcomeAlreadyJoined: the session was in a room before the call.
	OutcomeAlreadyJoined
)

// Message is the canonical client-facing reply for the kind.
func (k OutcomeKind) Message() string {
	switch k {
	case OutcomeRoomStarted:
		return "Game room created! The game is starting."
	case OutcomeAlreadyJoined:
		return "You are already in the game."
	default:
		return "Waiting for more players..."
	}
}

// Outcome is a join result: what happened and which room the session
// is in afterwards.
type Outcome struct {
	Kind OutcomeKind
	Room domain.RoomID
}
