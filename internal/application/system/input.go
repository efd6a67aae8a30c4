package system

import "github.com/younwookim/fluxrunner/internal/domain/entity"

// InputState is one tick of player input, already edge-detected.
// It is plain data so it can be recorded, replayed and sent over the wire.
type InputState struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
	Pick        bool
	RotateCW    bool
	RotateCCW   bool
	Pause       bool
	SaveReplay  bool
}

// Controls returns the subset of the input the player entity reacts to
func (in InputState) Controls() entity.Controls {
	return entity.Controls{
		Left:        in.Left,
		Right:       in.Right,
		Jump:        in.Jump,
		JumpPressed: in.JumpPressed,
		Pick:        in.Pick,
		RotateCW:    in.RotateCW,
		RotateCCW:   in.RotateCCW,
	}
}
