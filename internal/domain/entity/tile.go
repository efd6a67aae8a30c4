package entity

import (
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

// Tile is a single solid cell of a TileMap
type Tile struct {
	GridX int
	GridY int
	Solid physics.Solid
}

// TileMap is a grid of solid tiles. The world origin is the map's top-left.
type TileMap struct {
	Tiles      []Tile
	TileWidth  float32
	TileHeight float32
	Columns    int
	Rows       int
}

// NewTileMap builds a map from a row-major occupancy grid.
// Rows may have different lengths; the widest row sets Columns.
func NewTileMap(grid [][]bool, tileWidth, tileHeight float32) TileMap {
	m := TileMap{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Rows:       len(grid),
	}
	for y, row := range grid {
		if len(row) > m.Columns {
			m.Columns = len(row)
		}
		for x, solid := range row {
			if !solid {
				continue
			}
			center := geom.Vec(
				float32(x)*tileWidth+tileWidth/2,
				float32(y)*tileHeight+tileHeight/2,
			)
			m.Tiles = append(m.Tiles, Tile{
				GridX: x,
				GridY: y,
				Solid: physics.NewSolid(center, tileWidth, tileHeight),
			})
		}
	}
	return m
}

// Width returns the map width in world units
func (m TileMap) Width() float32 {
	return float32(m.Columns) * m.TileWidth
}

// Height returns the map height in world units
func (m TileMap) Height() float32 {
	return float32(m.Rows) * m.TileHeight
}

// LockViewport clamps a camera center so a viewport of the given size stays
// inside the map horizontally and never shows below its bottom edge.
// A map narrower than the viewport centers the camera on the map.
func (m TileMap) LockViewport(center geom.Vector2, viewportWidth, viewportHeight float32) geom.Vector2 {
	w, h := m.Width(), m.Height()
	halfW, halfH := viewportWidth/2, viewportHeight/2

	if w <= viewportWidth {
		center.X = w / 2
	} else {
		center.X = clampf(center.X, halfW, w-halfW)
	}
	if center.Y > h-halfH {
		center.Y = h - halfH
	}
	return center
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
