package entity

import (
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

// HarvesterTuning holds the harvester's body and fall constants
type HarvesterTuning struct {
	Width    float32
	Height   float32
	Gravity  float32
	MaxFall  float32
	Segments int // flux integration segments
}

// DefaultHarvesterTuning returns the stock harvester constants
func DefaultHarvesterTuning() HarvesterTuning {
	return HarvesterTuning{
		Width:    48,
		Height:   16,
		Gravity:  2,
		MaxFall:  25,
		Segments: 10,
	}
}

// HarvesterState is a harvester's mutable state
type HarvesterState struct {
	ActorID   physics.ActorID `msgpack:"actor"`
	Rotation  float32         `msgpack:"rot"`
	VelocityY float32         `msgpack:"vy"`
}

// Harvester is a carryable, rotatable flux collector
type Harvester struct {
	HarvesterState
}

// NewHarvester spawns a harvester body into actors
func NewHarvester(actors *physics.ActorManager, position geom.Vector2, rotation float32, t HarvesterTuning) Harvester {
	id := actors.Spawn(physics.NewActor(position, t.Width, t.Height))
	return Harvester{HarvesterState{ActorID: id, Rotation: rotation}}
}

// Rotate adds delta radians to the harvester's rotation
func (h *Harvester) Rotate(delta float32) {
	h.Rotation += delta
}

// ApplyGravity accelerates a free harvester downward. A carried one has
// no fall speed.
func (h *Harvester) ApplyGravity(actors *physics.ActorManager, t HarvesterTuning) {
	a, ok := actors.Actor(h.ActorID)
	if !ok || a.IsChild {
		h.VelocityY = 0
		return
	}
	h.VelocityY += t.Gravity
	if h.VelocityY > t.MaxFall {
		h.VelocityY = t.MaxFall
	}
}

// ActorMove sweeps the harvester's body by its fall speed
func (h *Harvester) ActorMove(solids []physics.Solid, actors *physics.ActorManager) {
	a, ok := actors.ActorMut(h.ActorID)
	if !ok {
		return
	}
	a.MoveY(solids, h.VelocityY, func(collided bool) {
		if collided {
			h.VelocityY = 0
		}
	})
}

// FluxLine returns the harvester's collecting line in world space
func (h *Harvester) FluxLine(actors *physics.ActorManager) (start, end geom.Vector2, ok bool) {
	a, ok := actors.Actor(h.ActorID)
	if !ok {
		return geom.Zero(), geom.Zero(), false
	}
	start, end = FluxLine(h.Rotation, a.Bound())
	return start, end, true
}

// CalculateFlux returns the scalar flux the harvester collects from cores
func (h *Harvester) CalculateFlux(actors *physics.ActorManager, cores []FluxCore, segments int) float32 {
	start, end, ok := h.FluxLine(actors)
	if !ok {
		return 0
	}
	return FluxThrough(start, end, segments, cores)
}
