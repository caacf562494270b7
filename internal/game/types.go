package game

import (
	"chosenoffset.com/angryball/internal/audio"
	"chosenoffset.com/angryball/internal/render"
)

// Options configures a new Game.
type Options struct {
	ScreenWidth    int
	ScreenHeight   int
	TicksPerSecond int

	// Where the ball starts
	SpawnX, SpawnY float64

	Renderer render.Renderer
	InputMgr render.InputManager

	// Sound may be nil for a silent game
	Sound audio.Player
}
