// Package scene defines the Scene interface driven by the game loop.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
//
// The game loop delegates Update and Draw to the current scene. A scene
// asks for a transition by returning the next scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds. dt is either the fixed step
	// or the measured wall time since the previous update.
	// A non-nil next scene replaces this one; an error stops the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
