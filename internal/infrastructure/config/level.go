package config

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	Name         string                 `yaml:"name"`
	Next         string                 `yaml:"next"`
	Tile         TileConfig             `yaml:"tile"`
	Rows         []string               `yaml:"rows"`
	PlayerStart  PointConfig            `yaml:"playerStart"`
	Goal         *RectConfig            `yaml:"goal"`
	KillMargin   float32                `yaml:"killMargin"`
	RequiredFlux float32                `yaml:"requiredFlux"`
	FluxCores    []FluxCoreConfig       `yaml:"fluxCores"`
	Doors        []DoorConfig           `yaml:"doors"`
	Harvesters   []HarvesterSpawnConfig `yaml:"harvesters"`
}

// TileConfig sets the tile size and which row characters are solid
type TileConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Solid  string  `yaml:"solid"`
}

type PointConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// RectConfig is centered on X, Y
type RectConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	W float32 `yaml:"w"`
	H float32 `yaml:"h"`
}

type FluxCoreConfig struct {
	RectConfig `yaml:",inline"`
	Strength   float32 `yaml:"strength"`
}

type DoorConfig struct {
	RectConfig `yaml:",inline"`
	ID         uint32 `yaml:"id"`
}

type HarvesterSpawnConfig struct {
	X        float32 `yaml:"x"`
	Y        float32 `yaml:"y"`
	Rotation float32 `yaml:"rotation"`
}
