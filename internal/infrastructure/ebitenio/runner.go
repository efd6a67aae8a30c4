// Package ebitenio runs a game.Game inside ebiten: it polls the keyboard
// into InputStates and rasterizes frameio draw lists.
package ebitenio

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/fluxrunner/internal/application/frameio"
	"github.com/younwookim/fluxrunner/internal/application/game"
	"github.com/younwookim/fluxrunner/internal/application/scene"
)

// Runner implements ebiten.Game
type Runner struct {
	game   *game.Game
	source frameio.Source
	frame  *frameio.Frame
}

var _ ebiten.Game = (*Runner)(nil)

// NewRunner drives g at a fixed logical screen size with input from source
func NewRunner(g *game.Game, source frameio.Source, width, height int) *Runner {
	return &Runner{
		game:   g,
		source: source,
		frame:  frameio.NewFrame(width, height),
	}
}

// Update proceeds the game state
func (r *Runner) Update() error {
	err := r.game.Update(r.source.Poll())
	if errors.Is(err, scene.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw renders the current scene
func (r *Runner) Draw(screen *ebiten.Image) {
	r.frame.Reset()
	r.game.Draw(r.frame)
	Render(screen, r.frame)
}

// Layout returns the game's screen dimensions
func (r *Runner) Layout(_, _ int) (int, int) {
	return r.frame.Width, r.frame.Height
}
