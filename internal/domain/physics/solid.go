// Package physics implements the actor/solid movement core: integer-stepped,
// axis-separated movement of dynamic actors against static solids, and the
// ActorManager arena that owns every actor behind an ActorID handle.
//
// Everything here is deterministic. Given the same actor state, solid list and
// amount, a move produces bit-identical results, so callers may replay past
// inputs to reconcile predicted state.
package physics

import "github.com/younwookim/fluxrunner/internal/domain/geom"

// Solid is static collision geometry: a rectangle centered on Position
type Solid struct {
	Position geom.Vector2 `json:"position" msgpack:"p"`
	Width    float32      `json:"width" msgpack:"w"`
	Height   float32      `json:"height" msgpack:"h"`
}

// NewSolid creates a solid centered at position
func NewSolid(position geom.Vector2, width, height float32) Solid {
	return Solid{Position: position, Width: width, Height: height}
}

// Bound returns the solid's bounding box
func (s Solid) Bound() geom.BoundingBox {
	return geom.CenteredBox(s.Position, s.Width, s.Height)
}

// CollideAt reports whether box intersects any solid. First hit wins.
func CollideAt(solids []Solid, box geom.BoundingBox) bool {
	return anyIntersects(solids, box)
}

// CollideWith reports whether box intersects any of the actors.
// Actor-vs-actor contact is never resolved automatically; this is a query only.
func CollideWith(actors []*Actor, box geom.BoundingBox) bool {
	return anyIntersects(actors, box)
}

func anyIntersects[T geom.Bounded](items []T, box geom.BoundingBox) bool {
	for _, it := range items {
		if it.Bound().Intersects(box) {
			return true
		}
	}
	return false
}
