// Package scene defines the Scene interface for game screens.
//
// Each game screen (title, playing, etc.) implements the Scene interface
// to handle its own update logic and to describe what it draws. Scenes
// never touch a rendering framework: input arrives as a system.InputState
// and output is a frameio.Frame draw list.
package scene

import (
	"errors"

	"github.com/younwookim/fluxrunner/internal/application/frameio"
	"github.com/younwookim/fluxrunner/internal/application/system"
)

// ErrQuit is returned from Update when the player asks to leave the game
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen (title, playing, etc.)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(in system.InputState) (next Scene, err error)

	// Draw appends the scene's draw commands to f.
	Draw(f *frameio.Frame)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup or saving state.
	OnExit()
}
