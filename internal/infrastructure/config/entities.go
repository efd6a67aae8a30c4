package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player    PlayerConfig    `json:"player"`
	Harvester HarvesterConfig `json:"harvester"`
}

// PlayerConfig is in world units per tick; timers are ticks
type PlayerConfig struct {
	Size     SizeConfig     `json:"size"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Carry    CarryConfig    `json:"carry"`
}

type SizeConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type MovementConfig struct {
	Acceleration float32 `json:"acceleration"`
	Deceleration float32 `json:"deceleration"`
	MaxSpeed     float32 `json:"maxSpeed"`
	GroundProbe  float32 `json:"groundProbe"`
}

type JumpConfig struct {
	Force       float32 `json:"force"`
	Gravity     float32 `json:"gravity"`
	MaxFall     float32 `json:"maxFall"`
	CoyoteTicks int32   `json:"coyoteTicks"`
	BufferTicks int32   `json:"bufferTicks"`
}

type CarryConfig struct {
	PickReach   float32 `json:"pickReach"`
	Gap         float32 `json:"gap"`
	RotateSpeed float32 `json:"rotateSpeed"` // radians per tick
}

type HarvesterConfig struct {
	Size     SizeConfig `json:"size"`
	Gravity  float32    `json:"gravity"`
	MaxFall  float32    `json:"maxFall"`
	Segments int        `json:"segments"`
}
