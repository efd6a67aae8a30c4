package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/younwookim/fluxrunner/internal/domain/entity"
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
)

// ErrInvalidLevel is returned for level configs that cannot be built
var ErrInvalidLevel = errors.New("invalid level")

const defaultSolidTiles = "#"

// BuildLevel converts a LevelConfig into a Level entity with its harvesters
// spawned. Every spawned actor gets the tuning's Y stop policy.
func BuildLevel(cfg *config.LevelConfig, t Tuning) (*entity.Level, error) {
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("level %s has no rows: %w", cfg.Name, ErrInvalidLevel)
	}
	if cfg.Tile.Width <= 0 || cfg.Tile.Height <= 0 {
		return nil, fmt.Errorf("level %s has tile size %gx%g: %w", cfg.Name, cfg.Tile.Width, cfg.Tile.Height, ErrInvalidLevel)
	}

	solidChars := cfg.Tile.Solid
	if solidChars == "" {
		solidChars = defaultSolidTiles
	}
	grid := make([][]bool, len(cfg.Rows))
	for y, row := range cfg.Rows {
		grid[y] = make([]bool, 0, len(row))
		for _, ch := range row {
			grid[y] = append(grid[y], strings.ContainsRune(solidChars, ch))
		}
	}

	lvl := entity.NewLevel(cfg.Name, entity.NewTileMap(grid, cfg.Tile.Width, cfg.Tile.Height))
	lvl.Next = cfg.Next
	lvl.PlayerStart = geom.Vec(cfg.PlayerStart.X, cfg.PlayerStart.Y)
	lvl.RequiredFlux = cfg.RequiredFlux
	lvl.KillMargin = t.KillMargin
	if cfg.KillMargin > 0 {
		lvl.KillMargin = cfg.KillMargin
	}
	if cfg.Goal != nil {
		lvl.Goal = rectBox(*cfg.Goal)
	}

	for _, c := range cfg.FluxCores {
		lvl.FluxCores = append(lvl.FluxCores, entity.NewFluxCore(geom.Vec(c.X, c.Y), c.W, c.H, c.Strength))
	}

	seen := make(map[uint32]bool, len(cfg.Doors))
	for _, d := range cfg.Doors {
		if seen[d.ID] {
			return nil, fmt.Errorf("level %s has duplicate door %d: %w", cfg.Name, d.ID, ErrInvalidLevel)
		}
		seen[d.ID] = true
		lvl.Doors = append(lvl.Doors, entity.NewDoor(d.ID, geom.Vec(d.X, d.Y), d.W, d.H))
	}

	for _, h := range cfg.Harvesters {
		lvl.SpawnHarvester(geom.Vec(h.X, h.Y), h.Rotation, t.Harvester)
	}
	for _, id := range lvl.Actors.IDs() {
		if a, ok := lvl.Actors.ActorMut(id); ok {
			a.YStop = t.YStop
		}
	}

	return lvl, nil
}

func rectBox(r config.RectConfig) geom.BoundingBox {
	return geom.CenteredBox(geom.Vec(r.X, r.Y), r.W, r.H)
}
