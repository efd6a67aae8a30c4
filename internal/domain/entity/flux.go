package entity

import (
	"math"

	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

// FluxCore is a static field source that also blocks movement
type FluxCore struct {
	Strength float32
	Solid    physics.Solid
}

// NewFluxCore creates a core centered at position
func NewFluxCore(position geom.Vector2, width, height, strength float32) FluxCore {
	return FluxCore{
		Strength: strength,
		Solid:    physics.NewSolid(position, width, height),
	}
}

// FieldAt returns the core's field at p: r * strength / (2π|r|²).
// The field is undefined at the core's center.
func (c FluxCore) FieldAt(p geom.Vector2) geom.Vector2 {
	r := p.Sub(c.Solid.Position)
	return r.Scale(c.Strength / (2 * math.Pi * r.LengthSquared()))
}

// NetFieldAt sums the field of every core at p
func NetFieldAt(p geom.Vector2, cores []FluxCore) geom.Vector2 {
	sum := geom.Zero()
	for _, c := range cores {
		sum = sum.Add(c.FieldAt(p))
	}
	return sum
}

// LineToSegments splits start..end into n equal segments and returns the
// n+1 boundary points. n < 1 is treated as 1.
func LineToSegments(start, end geom.Vector2, n int) []geom.Vector2 {
	if n < 1 {
		n = 1
	}
	points := make([]geom.Vector2, n+1)
	for i := 0; i <= n; i++ {
		points[i] = geom.Lerp(start, end, float32(i)/float32(n))
	}
	return points
}

// SegmentFlux samples the net field at the segment's midpoint and scales
// it by the segment length.
func SegmentFlux(start, end geom.Vector2, cores []FluxCore) geom.Vector2 {
	mid := geom.Lerp(start, end, 0.5)
	return NetFieldAt(mid, cores).Scale(end.Sub(start).Length())
}

// LineFlux integrates the net field along start..end with n segments
func LineFlux(start, end geom.Vector2, n int, cores []FluxCore) geom.Vector2 {
	points := LineToSegments(start, end, n)
	sum := geom.Zero()
	for i := 1; i < len(points); i++ {
		sum = sum.Add(SegmentFlux(points[i-1], points[i], cores))
	}
	return sum
}

// FluxLine returns the horizontal center line of box rotated by rotation
// radians about the box's center.
func FluxLine(rotation float32, box geom.BoundingBox) (start, end geom.Vector2) {
	c := box.Center()
	half := box.Width() / 2
	start = geom.Vec(c.X-half, c.Y).RotatePoint(c, rotation)
	end = geom.Vec(c.X+half, c.Y).RotatePoint(c, rotation)
	return start, end
}

// FluxThrough returns the scalar flux crossing start..end: the integrated
// field projected onto the line's left-hand normal (up for an unrotated line).
func FluxThrough(start, end geom.Vector2, n int, cores []FluxCore) float32 {
	dir := end.Sub(start)
	if dir.LengthSquared() == 0 {
		return 0
	}
	normal := dir.Normalize().Rotate(-math.Pi / 2)
	return LineFlux(start, end, n, cores).Dot(normal)
}
