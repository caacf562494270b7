package game

import (
	"log"

	"chosenoffset.com/angryball/internal/audio"
	"chosenoffset.com/angryball/internal/core/ball"
	"chosenoffset.com/angryball/internal/render"
	"chosenoffset.com/angryball/internal/ui/hud"
)

// Game holds all game state and logic.
type Game struct {
	ScreenWidth    int
	ScreenHeight   int
	TicksPerSecond int

	Ball     *ball.Ball
	Renderer render.Renderer
	InputMgr render.InputManager
	Sound    audio.Player
	HUD      *hud.HUD

	// Number of Update calls so far
	Tick int
}

// New creates a game with a single ball at the spawn point.
func New(opts Options) *Game {
	tps := opts.TicksPerSecond
	if tps <= 0 {
		tps = 30
	}

	sound := opts.Sound
	if sound == nil {
		sound = audio.Nop{}
	}

	return &Game{
		ScreenWidth:    opts.ScreenWidth,
		ScreenHeight:   opts.ScreenHeight,
		TicksPerSecond: tps,
		Ball:           ball.New(opts.SpawnX, opts.SpawnY, opts.ScreenWidth, opts.ScreenHeight),
		Renderer:       opts.Renderer,
		InputMgr:       opts.InputMgr,
		Sound:          sound,
		HUD:            hud.New(opts.ScreenWidth, tps),
	}
}

// Update handles input and advances the simulation by one tick.
// It returns render.ErrQuit when the player presses Escape.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Println("escape key was pressed, quitting")
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		log.Println("space key was pressed")
		g.Ball.NudgeUp()
		g.Sound.PlayNudge()
	}
	if g.InputMgr.IsKeyJustReleased(render.KeySpace) {
		log.Println("space key was released")
	}

	g.Tick++
	if g.Tick%g.TicksPerSecond == 0 {
		log.Printf("%d second...", g.Tick/g.TicksPerSecond)
	}

	hitsBefore := g.Ball.HitCount()
	g.Ball.AdvanceByGravity()
	if hits := g.Ball.HitCount(); hits > hitsBefore {
		_, y := g.Ball.Position()
		log.Printf("ball landed at y=%.0f (hits: %d)", y, hits)
		g.Sound.PlayHit()
	}

	g.HUD.Update(g.Tick, g.Ball.HitCount())
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
