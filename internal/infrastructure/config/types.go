package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	Flux    FluxConfig    `json:"flux"`
	Camera  CameraConfig  `json:"camera"`
	World   WorldConfig   `json:"world"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// FluxConfig controls when flux opens the gate door
type FluxConfig struct {
	Threshold float32 `json:"threshold"`
	GateDoor  uint32  `json:"gateDoor"`
	PerUnit   float32 `json:"perUnit"` // HUD bar granularity
}

type CameraConfig struct {
	Lerp float32 `json:"lerp"`
}

type WorldConfig struct {
	YStop      string  `json:"yStop"`      // "break" or "return"
	KillMargin float32 `json:"killMargin"` // default for levels that omit it
	StartLevel string  `json:"startLevel"`
}
