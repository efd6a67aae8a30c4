package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

func TestFluxCore_FieldAt(t *testing.T) {
	core := NewFluxCore(geom.Vec(0, 0), 10, 10, 2*math.Pi)

	tests := []struct {
		name  string
		point geom.Vector2
		want  geom.Vector2
	}{
		{"unit distance", geom.Vec(1, 0), geom.Vec(1, 0)},
		{"falls off with distance", geom.Vec(2, 0), geom.Vec(0.5, 0)},
		{"points away from core", geom.Vec(0, -4), geom.Vec(0, -0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.FieldAt(tt.point)
			assert.InDelta(t, tt.want.X, got.X, 1e-5)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-5)
		})
	}
}

func TestNetFieldAt(t *testing.T) {
	cores := []FluxCore{
		NewFluxCore(geom.Vec(-1, 0), 1, 1, 100),
		NewFluxCore(geom.Vec(1, 0), 1, 1, 100),
	}

	mid := NetFieldAt(geom.Vec(0, 0), cores)
	assert.InDelta(t, 0, mid.X, 1e-5, "symmetric cores cancel")
	assert.InDelta(t, 0, mid.Y, 1e-5)

	assert.Equal(t, geom.Zero(), NetFieldAt(geom.Vec(3, 3), nil))
}

func TestLineToSegments(t *testing.T) {
	points := LineToSegments(geom.Vec(0, 0), geom.Vec(10, 0), 5)
	require.Len(t, points, 6)
	for i, p := range points {
		assert.InDelta(t, float32(2*i), p.X, 1e-5)
		assert.Equal(t, float32(0), p.Y)
	}

	assert.Len(t, LineToSegments(geom.Vec(0, 0), geom.Vec(1, 1), 0), 2, "n < 1 is one segment")
}

func TestFluxLine(t *testing.T) {
	box := geom.CenteredBox(geom.Vec(0, 0), 48, 16)

	start, end := FluxLine(0, box)
	assert.Equal(t, geom.Vec(-24, 0), start)
	assert.Equal(t, geom.Vec(24, 0), end)

	start, end = FluxLine(math.Pi/2, box)
	assert.InDelta(t, 0, start.X, 1e-4)
	assert.InDelta(t, -24, start.Y, 1e-4)
	assert.InDelta(t, 0, end.X, 1e-4)
	assert.InDelta(t, 24, end.Y, 1e-4)
}

func TestFluxThrough(t *testing.T) {
	const strength = 6000
	cores := []FluxCore{NewFluxCore(geom.Vec(0, 100), 20, 20, strength)}
	start, end := geom.Vec(-24, 0), geom.Vec(24, 0)

	got := FluxThrough(start, end, 10, cores)

	// A line source's flux through a segment is strength * angle / 2π
	angle := 2 * math.Atan(24.0/100.0)
	want := strength * angle / (2 * math.Pi)
	assert.InDelta(t, want, got, 1.0)
	assert.Greater(t, got, float32(0), "unrotated line above a core collects positive flux")

	reversed := FluxThrough(end, start, 10, cores)
	assert.InDelta(t, -got, reversed, 1e-3, "flipping the line flips the sign")

	assert.Equal(t, float32(0), FluxThrough(start, end, 10, nil))
	assert.Equal(t, float32(0), FluxThrough(start, start, 10, cores), "degenerate line")
}

func TestHarvester_Gravity(t *testing.T) {
	tuning := DefaultHarvesterTuning()
	actors := physics.NewActorManager()
	h := NewHarvester(actors, geom.Vec(0, 0), 0, tuning)

	for i := 0; i < 3; i++ {
		h.ApplyGravity(actors, tuning)
	}
	assert.Equal(t, float32(6), h.VelocityY)

	for i := 0; i < 20; i++ {
		h.ApplyGravity(actors, tuning)
	}
	assert.Equal(t, tuning.MaxFall, h.VelocityY, "capped")

	body, _ := actors.ActorMut(h.ActorID)
	body.IsChild = true
	h.ApplyGravity(actors, tuning)
	assert.Equal(t, float32(0), h.VelocityY, "carried harvesters do not fall")
}

func TestHarvester_ActorMoveLands(t *testing.T) {
	tuning := DefaultHarvesterTuning()
	actors := physics.NewActorManager()
	h := NewHarvester(actors, geom.Vec(0, 0), 0, tuning) // bottom edge at 8
	floor := []physics.Solid{physics.NewSolid(geom.Vec(0, 20), 100, 10)} // top edge at 15
	h.VelocityY = 20

	h.ActorMove(floor, actors)

	body, _ := actors.Actor(h.ActorID)
	assert.Equal(t, float32(7), body.Position.Y)
	assert.Equal(t, float32(0), h.VelocityY)
}

func TestHarvester_CalculateFlux(t *testing.T) {
	tuning := DefaultHarvesterTuning()
	actors := physics.NewActorManager()
	cores := []FluxCore{NewFluxCore(geom.Vec(0, 100), 20, 20, 6000)}
	h := NewHarvester(actors, geom.Vec(0, 0), 0, tuning)

	upright := h.CalculateFlux(actors, cores, tuning.Segments)
	assert.Greater(t, upright, float32(400))

	h.Rotate(math.Pi)
	flipped := h.CalculateFlux(actors, cores, tuning.Segments)
	assert.InDelta(t, -upright, flipped, 1e-2)

	h.Rotate(-math.Pi / 2)
	edgeOn := h.CalculateFlux(actors, cores, tuning.Segments)
	assert.InDelta(t, 0, edgeOn, 1e-2, "a line pointing at the core collects nothing")

	gone := Harvester{HarvesterState{ActorID: 42}}
	assert.Equal(t, float32(0), gone.CalculateFlux(actors, cores, tuning.Segments))
}
