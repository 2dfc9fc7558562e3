// Package scene defines the Scene interface for the windowed host.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit ends the game loop cleanly when returned from Update
var ErrQuit = errors.New("quit requested")

// Scene is one screen of the windowed host. The game loop delegates Update
// and Draw to the current scene; returning a non-nil Scene from Update
// switches to it.
type Scene interface {
	// Update advances the scene by dt seconds.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Named is implemented by scenes that report a name for logging
type Named interface {
	Name() string
}

// NameOf returns a scene's name, or "scene" when it has none
func NameOf(s Scene) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return "scene"
}
