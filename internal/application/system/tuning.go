package system

import (
	"github.com/younwookim/fluxrunner/internal/domain/entity"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
	"github.com/younwookim/fluxrunner/internal/infrastructure/config"
)

// Tuning is every constant SimulateFrame and level construction read
type Tuning struct {
	Player        entity.PlayerTuning
	Harvester     entity.HarvesterTuning
	FluxThreshold float32
	GateDoor      uint32
	YStop         physics.YStopPolicy
	KillMargin    float32
}

// DefaultTuning returns the stock constants
func DefaultTuning() Tuning {
	return Tuning{
		Player:        entity.DefaultPlayerTuning(),
		Harvester:     entity.DefaultHarvesterTuning(),
		FluxThreshold: 400,
		GateDoor:      0,
		YStop:         physics.YStopBreak,
		KillMargin:    200,
	}
}

// TuningFromConfig converts loaded config into Tuning.
// Zero values in the config keep the defaults.
func TuningFromConfig(cfg *config.GameConfig) Tuning {
	t := DefaultTuning()
	if cfg == nil {
		return t
	}

	if ph := cfg.Physics; ph != nil {
		setIfNonZero(&t.FluxThreshold, ph.Flux.Threshold)
		t.GateDoor = ph.Flux.GateDoor
		setIfNonZero(&t.KillMargin, ph.World.KillMargin)
		if ph.World.YStop == physics.YStopReturn.String() {
			t.YStop = physics.YStopReturn
		}
	}

	if en := cfg.Entities; en != nil {
		p := en.Player
		setIfNonZero(&t.Player.Width, p.Size.Width)
		setIfNonZero(&t.Player.Height, p.Size.Height)
		setIfNonZero(&t.Player.Acceleration, p.Movement.Acceleration)
		setIfNonZero(&t.Player.Deceleration, p.Movement.Deceleration)
		setIfNonZero(&t.Player.MoveSpeedMax, p.Movement.MaxSpeed)
		setIfNonZero(&t.Player.GroundProbe, p.Movement.GroundProbe)
		setIfNonZero(&t.Player.JumpForce, p.Jump.Force)
		setIfNonZero(&t.Player.Gravity, p.Jump.Gravity)
		setIfNonZero(&t.Player.MaxGravity, p.Jump.MaxFall)
		setIfNonZero(&t.Player.CoyoteTicks, p.Jump.CoyoteTicks)
		setIfNonZero(&t.Player.JumpBufferTicks, p.Jump.BufferTicks)
		setIfNonZero(&t.Player.PickReach, p.Carry.PickReach)
		setIfNonZero(&t.Player.CarryGap, p.Carry.Gap)
		setIfNonZero(&t.Player.RotateSpeed, p.Carry.RotateSpeed)

		h := en.Harvester
		setIfNonZero(&t.Harvester.Width, h.Size.Width)
		setIfNonZero(&t.Harvester.Height, h.Size.Height)
		setIfNonZero(&t.Harvester.Gravity, h.Gravity)
		setIfNonZero(&t.Harvester.MaxFall, h.MaxFall)
		setIfNonZero(&t.Harvester.Segments, h.Segments)
	}

	return t
}

func setIfNonZero[T float32 | int32 | int](dst *T, v T) {
	if v != 0 {
		*dst = v
	}
}
