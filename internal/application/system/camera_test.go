package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/fluxrunner/internal/domain/entity"
	"github.com/younwookim/fluxrunner/internal/domain/geom"
)

func TestCamera_Follow(t *testing.T) {
	grid := make([][]bool, 5)
	for i := range grid {
		grid[i] = make([]bool, 10)
	}
	tiles := entity.NewTileMap(grid, 32, 32) // 320 x 160

	cam := NewCamera(geom.Vec(50, 25), 100, 50, 0.1)

	cam.Follow(geom.Vec(200, 25), tiles)
	assert.InDelta(t, 65, cam.Center.X, 1e-4, "covers a tenth of the distance")
	assert.InDelta(t, 25, cam.Center.Y, 1e-4)

	for i := 0; i < 300; i++ {
		cam.Follow(geom.Vec(1000, 1000), tiles)
	}
	assert.InDelta(t, 270, cam.Center.X, 1e-2, "settles at the right edge")
	assert.InDelta(t, 135, cam.Center.Y, 1e-2, "settles at the bottom edge")

	cam.Snap(geom.Vec(0, 0), tiles)
	assert.Equal(t, geom.Vec(50, 0), cam.Center)
	assert.Equal(t, geom.Vec(0, -25), cam.TopLeft())
}
