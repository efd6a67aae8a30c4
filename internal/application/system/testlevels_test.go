package system

import "github.com/younwookim/fluxrunner/internal/infrastructure/config"

// flatLevel is a 10x5 room of 32px tiles; the floor's top edge is at y=128
func flatLevel(name, next string) *config.LevelConfig {
	return &config.LevelConfig{
		Name: name,
		Next: next,
		Tile: config.TileConfig{Width: 32, Height: 32},
		Rows: []string{
			"##########",
			"#........#",
			"#........#",
			"#........#",
			"##########",
		},
		PlayerStart: config.PointConfig{X: 100, Y: 90},
		Goal:        &config.RectConfig{X: 250, Y: 96, W: 20, H: 60},
	}
}

// pitLevel has walls but no floor
func pitLevel(name string) *config.LevelConfig {
	return &config.LevelConfig{
		Name: name,
		Tile: config.TileConfig{Width: 32, Height: 32},
		Rows: []string{
			"#........#",
			"#........#",
			"#........#",
		},
		PlayerStart: config.PointConfig{X: 100, Y: 50},
		KillMargin:  50,
	}
}

func testLevels() StaticLevels {
	return StaticLevels{
		"first":  flatLevel("first", "second"),
		"second": flatLevel("second", ""),
		"pit":    pitLevel("pit"),
	}
}

func newTestSession(start string) (*Session, error) {
	return NewSession(NewLevelManager(testLevels()), DefaultTuning(), start)
}
