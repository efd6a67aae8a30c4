package system

import "github.com/younwookim/fluxrunner/internal/domain/physics"

// Event is something notable that happened during a tick
type Event interface {
	isEvent()
}

// LandedEvent fires on the tick the player touches down
type LandedEvent struct{}

func (LandedEvent) isEvent() {}

// PickedEvent fires when the player picks up an actor
type PickedEvent struct {
	ActorID physics.ActorID
}

func (PickedEvent) isEvent() {}

// DroppedEvent fires when the player lets go of an actor
type DroppedEvent struct {
	ActorID physics.ActorID
}

func (DroppedEvent) isEvent() {}

// DoorEvent fires when a door changes state
type DoorEvent struct {
	DoorID uint32
	Open   bool
}

func (DoorEvent) isEvent() {}

// LevelCompletedEvent fires when the player reaches the goal.
// Next is empty after the last level.
type LevelCompletedEvent struct {
	Level string
	Next  string
}

func (LevelCompletedEvent) isEvent() {}

// RespawnedEvent fires when the player fell out and the level was reloaded
type RespawnedEvent struct {
	Level string
}

func (RespawnedEvent) isEvent() {}
