package netcode

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/fluxrunner/internal/application/system"
)

// ErrMalformed is returned for envelopes whose payload does not match their kind
var ErrMalformed = errors.New("malformed message")

// Button bits of a packed input
const (
	ButtonLeft uint16 = 1 << iota
	ButtonRight
	ButtonJump
	ButtonJumpPressed
	ButtonPick
	ButtonRotateCW
	ButtonRotateCCW
)

// PackInput packs the simulated part of an input into a bitmask.
// Pause and SaveReplay never leave the client.
func PackInput(in system.InputState) uint16 {
	var b uint16
	set := func(on bool, bit uint16) {
		if on {
			b |= bit
		}
	}
	set(in.Left, ButtonLeft)
	set(in.Right, ButtonRight)
	set(in.Jump, ButtonJump)
	set(in.JumpPressed, ButtonJumpPressed)
	set(in.Pick, ButtonPick)
	set(in.RotateCW, ButtonRotateCW)
	set(in.RotateCCW, ButtonRotateCCW)
	return b
}

// UnpackInput reverses PackInput
func UnpackInput(b uint16) system.InputState {
	return system.InputState{
		Left:        b&ButtonLeft != 0,
		Right:       b&ButtonRight != 0,
		Jump:        b&ButtonJump != 0,
		JumpPressed: b&ButtonJumpPressed != 0,
		Pick:        b&ButtonPick != 0,
		RotateCW:    b&ButtonRotateCW != 0,
		RotateCCW:   b&ButtonRotateCCW != 0,
	}
}

// Kind tags an Envelope's payload
type Kind uint8

const (
	KindHello Kind = iota + 1
	KindInput
	KindState
)

func (k Kind) String() string {
	switch k {
	case KindHello:
		return "hello"
	case KindInput:
		return "input"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// HelloMessage is the first message a server sends on a new connection
type HelloMessage struct {
	SessionID string   `msgpack:"sid"`
	Snapshot  Snapshot `msgpack:"snap"`
}

// InputMessage carries the input the client simulated for Tick
type InputMessage struct {
	Tick    uint64 `msgpack:"t"`
	Buttons uint16 `msgpack:"b"`
}

// StateMessage is the server's authoritative state after AckTick
type StateMessage struct {
	AckTick  uint64   `msgpack:"ack"`
	Snapshot Snapshot `msgpack:"snap"`
}

// Envelope is the wire frame. Exactly one payload matches Kind.
type Envelope struct {
	Kind  Kind          `msgpack:"k"`
	Hello *HelloMessage `msgpack:"h,omitempty"`
	Input *InputMessage `msgpack:"i,omitempty"`
	State *StateMessage `msgpack:"s,omitempty"`
}

// Encode serializes the envelope with msgpack
func (e Envelope) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.Kind, err)
	}
	return data, nil
}

// DecodeEnvelope parses and validates a wire frame
func DecodeEnvelope(data []byte) (Envelope, error) {
	var e Envelope
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}

	var ok bool
	switch e.Kind {
	case KindHello:
		ok = e.Hello != nil
	case KindInput:
		ok = e.Input != nil
	case KindState:
		ok = e.State != nil
	}
	if !ok {
		return Envelope{}, fmt.Errorf("%w: kind %s", ErrMalformed, e.Kind)
	}
	return e, nil
}

// NewHello wraps a hello message
func NewHello(sessionID string, snap Snapshot) Envelope {
	return Envelope{Kind: KindHello, Hello: &HelloMessage{SessionID: sessionID, Snapshot: snap}}
}

// NewInput wraps an input message
func NewInput(msg InputMessage) Envelope {
	return Envelope{Kind: KindInput, Input: &msg}
}

// NewState wraps a state message
func NewState(msg StateMessage) Envelope {
	return Envelope{Kind: KindState, State: &msg}
}
