package system

import (
	"github.com/younwookim/fluxrunner/internal/domain/entity"
	"github.com/younwookim/fluxrunner/internal/domain/geom"
)

// Camera eases toward a target while keeping the viewport on the map
type Camera struct {
	Center geom.Vector2
	Width  float32
	Height float32
	Lerp   float32 // fraction of the remaining distance covered per tick
}

// NewCamera creates a camera centered on center
func NewCamera(center geom.Vector2, width, height, lerp float32) *Camera {
	return &Camera{Center: center, Width: width, Height: height, Lerp: lerp}
}

// Follow moves the camera a Lerp step toward target, locked to tiles
func (c *Camera) Follow(target geom.Vector2, tiles entity.TileMap) {
	goal := tiles.LockViewport(target, c.Width, c.Height)
	c.Center = geom.Lerp(c.Center, goal, c.Lerp)
}

// Snap centers the camera on target immediately, locked to tiles
func (c *Camera) Snap(target geom.Vector2, tiles entity.TileMap) {
	c.Center = tiles.LockViewport(target, c.Width, c.Height)
}

// TopLeft returns the world position of the viewport's top-left corner
func (c *Camera) TopLeft() geom.Vector2 {
	return geom.Vec(c.Center.X-c.Width/2, c.Center.Y-c.Height/2)
}
