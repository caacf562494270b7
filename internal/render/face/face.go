// Package face draws the ball as a face whose expression follows its mood.
package face

import (
	"image/color"

	"chosenoffset.com/angryball/internal/core/ball"
	"chosenoffset.com/angryball/internal/render"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// Geometry relative to the ball center.
const (
	eyeRadius   = 10
	pupilRadius = 4
	leftEyeX    = -10
	rightEyeX   = 20
	eyeY        = -10

	browWidth  = 6
	mouthRound = 3

	normalMouthX      = 5
	normalMouthY      = 25
	normalMouthRadius = 12
)

// Draw renders the face for a ball centered at (x, y).
func Draw(r render.Renderer, dst render.Image, x, y float64, mood ball.Mood) {
	cx, cy := float32(x), float32(y)

	// Body
	r.FillCircle(dst, cx, cy, ball.Radius, ball.BodyColor)

	// Eyes
	for _, ex := range []float32{leftEyeX, rightEyeX} {
		r.FillCircle(dst, cx+ex, cy+eyeY, eyeRadius, white)
		r.FillCircle(dst, cx+ex, cy+eyeY, pupilRadius, black)
	}

	if mood == ball.Angry {
		r.StrokeLine(dst, cx-15, cy-20, cx+5, cy-10, browWidth, black)
		r.StrokeLine(dst, cx+25, cy-20, cx+10, cy-10, browWidth, black)
		r.FillRoundedRect(dst, cx-15, cy+15, cx+23, cy+25, mouthRound, white)
		return
	}

	r.FillCircle(dst, cx+normalMouthX, cy+normalMouthY, normalMouthRadius, white)
}

// DrawBall renders b at its current position and mood.
func DrawBall(r render.Renderer, dst render.Image, b *ball.Ball) {
	x, y := b.Position()
	Draw(r, dst, x, y, b.Mood())
}
