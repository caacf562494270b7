package game

import (
	"image/color"

	"chosenoffset.com/angryball/internal/render"
	"chosenoffset.com/angryball/internal/render/face"
)

// BackgroundColor is drawn behind everything each frame.
var BackgroundColor = color.RGBA{255, 255, 255, 255}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(BackgroundColor)

	g.HUD.Draw(g.Renderer, screen)
	face.DrawBall(g.Renderer, screen, g.Ball)
}
