// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/younwookim/fluxrunner/internal/application/frameio"
	"github.com/younwookim/fluxrunner/internal/application/scene"
	"github.com/younwookim/fluxrunner/internal/application/system"
)

// Game owns the current Scene and switches scenes on request.
// It is driven by a frame I/O adapter once per tick.
type Game struct {
	current scene.Scene
	ticks   uint64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene) *Game {
	g := &Game{current: initialScene}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
func (g *Game) Update(in system.InputState) error {
	g.ticks++
	next, err := g.current.Update(in)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw lets the current scene describe the frame.
func (g *Game) Draw(f *frameio.Frame) {
	g.current.Draw(f)
}

// Close calls OnExit on the current scene
func (g *Game) Close() {
	g.current.OnExit()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Ticks returns how many times Update has been called
func (g *Game) Ticks() uint64 {
	return g.ticks
}
