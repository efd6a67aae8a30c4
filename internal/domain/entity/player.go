package entity

import (
	"github.com/younwookim/fluxrunner/internal/domain/geom"
	"github.com/younwookim/fluxrunner/internal/domain/physics"
)

// MovementStatus is the player's vertical movement state
type MovementStatus uint8

const (
	StatusFalling MovementStatus = iota
	StatusLanded
	StatusInJump
)

// String implements fmt.Stringer
func (s MovementStatus) String() string {
	switch s {
	case StatusFalling:
		return "Falling"
	case StatusLanded:
		return "Landed"
	case StatusInJump:
		return "InJump"
	default:
		return "Unknown"
	}
}

// Controls is the per-tick control snapshot the player reacts to
type Controls struct {
	Left        bool `json:"l,omitempty" msgpack:"l,omitempty"`
	Right       bool `json:"r,omitempty" msgpack:"r,omitempty"`
	Jump        bool `json:"j,omitempty" msgpack:"j,omitempty"`   // held
	JumpPressed bool `json:"jp,omitempty" msgpack:"jp,omitempty"` // pressed this tick
	Pick        bool `json:"p,omitempty" msgpack:"p,omitempty"`   // pressed this tick
	RotateCW    bool `json:"cw,omitempty" msgpack:"cw,omitempty"`
	RotateCCW   bool `json:"ccw,omitempty" msgpack:"ccw,omitempty"`
}

// PlayerTuning holds the player's movement constants.
// Velocities are world units per tick, timers are ticks.
type PlayerTuning struct {
	Width           float32
	Height          float32
	MoveSpeedMax    float32
	Acceleration    float32
	Deceleration    float32
	Gravity         float32
	MaxGravity      float32
	JumpForce       float32
	CoyoteTicks     int32
	JumpBufferTicks int32
	GroundProbe     float32 // downward probe while landed, detects walking off ledges
	PickReach       float32
	CarryGap        float32
	RotateSpeed     float32 // radians per tick
}

// DefaultPlayerTuning returns the stock movement constants
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Width:           45,
		Height:          62,
		MoveSpeedMax:    12,
		Acceleration:    6,
		Deceleration:    2,
		Gravity:         6,
		MaxGravity:      25,
		JumpForce:       30,
		CoyoteTicks:     3,
		JumpBufferTicks: 8,
		GroundProbe:     1,
		PickReach:       8,
		CarryGap:        2,
		RotateSpeed:     0.05,
	}
}

// PlayerState is the player's mutable, snapshot-able state
type PlayerState struct {
	ActorID         physics.ActorID `msgpack:"actor"`
	Velocity        geom.Vector2    `msgpack:"vel"`
	FacingLeft      bool            `msgpack:"left"`
	CoyoteTimer     int32           `msgpack:"coyote"`
	JumpBufferTimer int32           `msgpack:"buffer"`
	Status          MovementStatus  `msgpack:"status"`
	TryPick         bool            `msgpack:"pick"`
	Carrying        bool            `msgpack:"carrying"`
	Carried         physics.ActorID `msgpack:"carried"`
}

// Player is the controllable entity. Its body lives in an ActorManager.
type Player struct {
	PlayerState
	Tuning PlayerTuning
}

// NewPlayer spawns the player's body into actors at position
func NewPlayer(actors *physics.ActorManager, position geom.Vector2, tuning PlayerTuning) *Player {
	id := actors.Spawn(physics.NewActor(position, tuning.Width, tuning.Height))
	return &Player{
		PlayerState: PlayerState{
			ActorID:    id,
			FacingLeft: true,
			Status:     StatusFalling,
		},
		Tuning: tuning,
	}
}

// Position returns the player's body position; zero if the body is gone
func (p *Player) Position(actors *physics.ActorManager) geom.Vector2 {
	a, ok := actors.Actor(p.ActorID)
	if !ok {
		return geom.Zero()
	}
	return a.Position
}

// HandleInput turns controls into velocity and drives the jump state machine
func (p *Player) HandleInput(c Controls) {
	t := p.Tuning

	switch p.Status {
	case StatusLanded:
		if c.JumpPressed || p.JumpBufferTimer > 0 {
			p.jump()
		}
	case StatusInJump:
		if p.Velocity.Y > 0 {
			p.Status = StatusFalling
		}
	case StatusFalling:
		if p.CoyoteTimer > 0 && c.JumpPressed {
			p.jump()
		} else if c.JumpPressed {
			p.JumpBufferTimer = t.JumpBufferTicks
		}
	}

	if c.Pick && (p.Status == StatusLanded || p.Carrying) {
		p.TryPick = true
	}

	switch {
	case c.Left:
		p.Velocity.X -= t.Acceleration
		p.FacingLeft = true
	case c.Right:
		p.Velocity.X += t.Acceleration
		p.FacingLeft = false
	case p.Velocity.X > 0:
		p.Velocity.X -= t.Deceleration
		if p.Velocity.X < 0 {
			p.Velocity.X = 0
		}
	case p.Velocity.X < 0:
		p.Velocity.X += t.Deceleration
		if p.Velocity.X > 0 {
			p.Velocity.X = 0
		}
	}
	p.Velocity.ClampX(-t.MoveSpeedMax, t.MoveSpeedMax)

	if p.Status != StatusLanded {
		var g float32
		switch {
		case p.Status == StatusFalling && !c.Jump:
			g = t.Gravity * 6
		case p.Velocity.Y < t.MaxGravity:
			g = t.Gravity / 3
		default:
			g = t.Gravity
		}
		p.Velocity.Y += g
		p.Velocity.ClampY(-t.JumpForce, t.MaxGravity)
	}

	if p.CoyoteTimer > 0 {
		p.CoyoteTimer--
	}
	if p.JumpBufferTimer > 0 {
		p.JumpBufferTimer--
	}
}

func (p *Player) jump() {
	p.Velocity.Y = -p.Tuning.JumpForce
	p.Status = StatusInJump
	p.JumpBufferTimer = 0
	p.CoyoteTimer = 0
}

// RotateDelta returns the rotation the controls apply to a carried item
func (p *Player) RotateDelta(c Controls) float32 {
	if !p.Carrying {
		return 0
	}
	var d float32
	if c.RotateCW {
		d += p.Tuning.RotateSpeed
	}
	if c.RotateCCW {
		d -= p.Tuning.RotateSpeed
	}
	return d
}

// PickItem consumes a pending pick request. A carried item is dropped in
// place; otherwise the first free candidate within reach is picked up.
func (p *Player) PickItem(actors *physics.ActorManager, candidates []physics.ActorID) {
	if !p.TryPick {
		return
	}
	p.TryPick = false

	if p.Carrying {
		if item, ok := actors.ActorMut(p.Carried); ok {
			item.IsChild = false
			item.Remainder = geom.Zero()
		}
		p.Carrying = false
		return
	}

	self, ok := actors.Actor(p.ActorID)
	if !ok {
		return
	}
	reach := self.Bound().Expand(p.Tuning.PickReach)
	for _, id := range candidates {
		item, ok := actors.ActorMut(id)
		if !ok || item.IsChild || id == p.ActorID {
			continue
		}
		if item.Bound().Intersects(reach) {
			item.IsChild = true
			item.Remainder = geom.Zero()
			p.Carried = id
			p.Carrying = true
			return
		}
	}
}

// ActorMove sweeps the player's body by its velocity and keeps any carried
// item above its head.
func (p *Player) ActorMove(solids []physics.Solid, actors *physics.ActorManager) {
	self, ok := actors.ActorMut(p.ActorID)
	if !ok {
		return
	}

	self.MoveX(solids, p.Velocity.X, func() {
		p.Velocity.X = 0
	})

	onY := func(collided bool) {
		if collided {
			if p.Velocity.Y > 0 {
				p.Status = StatusLanded
			}
			p.Velocity.Y = 0
			return
		}
		if p.Status == StatusLanded {
			p.Status = StatusFalling
			p.CoyoteTimer = p.Tuning.CoyoteTicks
		}
	}
	if p.Status == StatusLanded && p.Velocity.Y == 0 {
		// the probe steps from a clean remainder and leaves it untouched
		rem := self.Remainder.Y
		self.Remainder.Y = 0
		self.MoveY(solids, p.Tuning.GroundProbe, onY)
		self.Remainder.Y = rem
	} else {
		self.MoveY(solids, p.Velocity.Y, onY)
	}

	if !p.Carrying {
		return
	}
	item, ok := actors.ActorMut(p.Carried)
	if !ok {
		p.Carrying = false
		return
	}
	item.Position = geom.Vec(
		self.Position.X,
		self.Bound().Top-p.Tuning.CarryGap-item.Height/2,
	)
}
