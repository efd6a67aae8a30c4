package ebitenio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/fluxrunner/internal/application/system"
)

// Keys reports key state for the current tick
type Keys interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type liveKeys struct{}

func (liveKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (liveKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Binding maps actions to keys; any key of an action triggers it
type Binding struct {
	Left       []ebiten.Key
	Right      []ebiten.Key
	Jump       []ebiten.Key
	Pick       []ebiten.Key
	RotateCW   []ebiten.Key
	RotateCCW  []ebiten.Key
	Pause      []ebiten.Key
	SaveReplay []ebiten.Key
}

// DefaultBinding is WASD plus arrows
func DefaultBinding() Binding {
	return Binding{
		Left:       []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:      []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:       []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
		Pick:       []ebiten.Key{ebiten.KeyE},
		RotateCW:   []ebiten.Key{ebiten.KeyR},
		RotateCCW:  []ebiten.Key{ebiten.KeyQ},
		Pause:      []ebiten.Key{ebiten.KeyEscape},
		SaveReplay: []ebiten.Key{ebiten.KeyF5},
	}
}

// Keyboard polls keys into an InputState once per tick
type Keyboard struct {
	keys    Keys
	binding Binding
}

// NewKeyboard reads the real keyboard
func NewKeyboard(b Binding) *Keyboard {
	return &Keyboard{keys: liveKeys{}, binding: b}
}

// NewKeyboardFrom reads an arbitrary key source
func NewKeyboardFrom(keys Keys, b Binding) *Keyboard {
	return &Keyboard{keys: keys, binding: b}
}

// Poll implements frameio.Source
func (k *Keyboard) Poll() system.InputState {
	b := k.binding
	return system.InputState{
		Left:        k.any(b.Left, k.keys.Pressed),
		Right:       k.any(b.Right, k.keys.Pressed),
		Jump:        k.any(b.Jump, k.keys.Pressed),
		JumpPressed: k.any(b.Jump, k.keys.JustPressed),
		Pick:        k.any(b.Pick, k.keys.JustPressed),
		RotateCW:    k.any(b.RotateCW, k.keys.Pressed),
		RotateCCW:   k.any(b.RotateCCW, k.keys.Pressed),
		Pause:       k.any(b.Pause, k.keys.JustPressed),
		SaveReplay:  k.any(b.SaveReplay, k.keys.JustPressed),
	}
}

func (k *Keyboard) any(keys []ebiten.Key, test func(ebiten.Key) bool) bool {
	for _, key := range keys {
		if test(key) {
			return true
		}
	}
	return false
}
