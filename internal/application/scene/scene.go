// Package scene defines the Scene interface for game screens.
//
// The level-select menu and the playing screen each implement Scene and
// hand control to one another by returning the next Scene from Update.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to close the game
var ErrQuit = errors.New("quit")

// Scene represents a game screen
type Scene interface {
	// Update advances the scene by one fixed frame.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to close the window, any other error terminates with that error.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for flushing recordings or other cleanup.
	OnExit()
}
