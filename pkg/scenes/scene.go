package scenes

import (
	"github.com/decker502/buttontransitions/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

const (
	// WindowWidth is the logical width of the window in pixels.
	WindowWidth = 800
	// WindowHeight is the logical height of the window in pixels.
	WindowHeight = 600
)
