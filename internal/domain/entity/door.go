package entity

import (
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

// Door is a solid that stops blocking once opened
type Door struct {
	ID    uint32
	Open  bool
	Solid physics.Solid
}

// NewDoor creates a closed door centered at position
func NewDoor(id uint32, position geom.Vector2, width, height float32) Door {
	return Door{ID: id, Solid: physics.NewSolid(position, width, height)}
}

// DoorState is the snapshot form of a door
type DoorState struct {
	ID   uint32 `msgpack:"id"`
	Open bool   `msgpack:"open"`
}
