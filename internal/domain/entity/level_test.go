package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

func TestNewTileMap(t *testing.T) {
	m := NewTileMap([][]bool{
		{false, true},
		{true, true, true},
	}, 10, 20)

	require.Len(t, m.Tiles, 4)
	assert.Equal(t, 3, m.Columns)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, float32(30), m.Width())
	assert.Equal(t, float32(40), m.Height())

	first := m.Tiles[0]
	assert.Equal(t, 1, first.GridX)
	assert.Equal(t, 0, first.GridY)
	assert.Equal(t, geom.BoundingBox{Top: 0, Right: 20, Bottom: 20, Left: 10}, first.Solid.Bound())
}

func TestTileMap_LockViewport(t *testing.T) {
	grid := make([][]bool, 5)
	for i := range grid {
		grid[i] = make([]bool, 10)
	}
	m := NewTileMap(grid, 10, 10) // 100 x 50

	tests := []struct {
		name     string
		center   geom.Vector2
		viewW    float32
		viewH    float32
		expected geom.Vector2
	}{
		{"inside", geom.Vec(50, 20), 40, 30, geom.Vec(50, 20)},
		{"left edge", geom.Vec(0, 0), 40, 30, geom.Vec(20, 0)},
		{"right and bottom edges", geom.Vec(95, 60), 40, 30, geom.Vec(80, 35)},
		{"above the map is allowed", geom.Vec(50, -300), 40, 30, geom.Vec(50, -300)},
		{"viewport wider than map", geom.Vec(10, 0), 200, 30, geom.Vec(50, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.LockViewport(tt.center, tt.viewW, tt.viewH))
		})
	}
}

func newTestLevel() *Level {
	l := NewLevel("test", NewTileMap([][]bool{{true, true}}, 10, 10))
	l.FluxCores = []FluxCore{NewFluxCore(geom.Vec(100, 0), 10, 10, 1000)}
	l.Doors = []Door{
		NewDoor(0, geom.Vec(200, 0), 10, 40),
		NewDoor(1, geom.Vec(300, 0), 10, 40),
	}
	return l
}

func TestLevel_Solids(t *testing.T) {
	l := newTestLevel()

	solids := l.Solids()
	require.Len(t, solids, 5)
	assert.Equal(t, l.TileMap.Tiles[0].Solid, solids[0], "tiles first")
	assert.Equal(t, l.FluxCores[0].Solid, solids[2], "then cores")
	assert.Equal(t, l.Doors[0].Solid, solids[3], "then doors")

	l.Doors[0].Open = true
	solids = l.Solids()
	require.Len(t, solids, 4, "open doors do not block")
	assert.Equal(t, l.Doors[1].Solid, solids[3])
}

func TestLevel_Harvesters(t *testing.T) {
	l := newTestLevel()
	tuning := DefaultHarvesterTuning()

	a := l.SpawnHarvester(geom.Vec(0, -50), 0, tuning)
	b := l.SpawnHarvester(geom.Vec(50, -50), 1, tuning)
	assert.Equal(t, []physics.ActorID{a.ActorID, b.ActorID}, l.HarvesterIDs())
	assert.Equal(t, 2, l.Actors.Len())

	got, ok := l.HarvesterByActor(b.ActorID)
	require.True(t, ok)
	got.Rotate(0.5)
	assert.Equal(t, float32(1.5), l.Harvesters[1].Rotation, "returned pointer aliases the level")

	_, ok = l.HarvesterByActor(99)
	assert.False(t, ok)

	states := l.HarvesterStates()
	l.Harvesters[0].Rotation = 3
	l.RestoreHarvesters(states)
	assert.Equal(t, float32(0), l.Harvesters[0].Rotation)
}

func TestLevel_DoorStates(t *testing.T) {
	l := newTestLevel()
	l.Doors[1].Open = true

	states := l.DoorStates()
	assert.Equal(t, []DoorState{{ID: 0}, {ID: 1, Open: true}}, states)

	l.Doors[1].Open = false
	l.RestoreDoors(append(states, DoorState{ID: 9, Open: true}))
	assert.True(t, l.Doors[1].Open)

	_, ok := l.Door(9)
	assert.False(t, ok)
}

func TestLevel_GoalAndKillPlane(t *testing.T) {
	l := newTestLevel()
	l.KillMargin = 100
	assert.Equal(t, float32(110), l.KillY())

	box := geom.CenteredBox(geom.Vec(500, 0), 10, 10)
	assert.False(t, l.ReachedGoal(box), "no goal set")

	l.Goal = geom.CenteredBox(geom.Vec(505, 0), 10, 10)
	assert.True(t, l.ReachedGoal(box))
	assert.False(t, l.ReachedGoal(geom.CenteredBox(geom.Vec(0, 0), 10, 10)))
}
