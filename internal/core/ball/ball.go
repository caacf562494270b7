// Package ball implements the falling face's motion and mood.
// It has no rendering or input dependencies so the state machine can be
// driven and inspected directly by the host loop and by tests.
package ball

import "image/color"

// Fixed physics and appearance constants. These are not user configurable.
const (
	Radius      = 50.0 // Radius of the body in pixels
	GravityStep = 10.0 // Downward movement per tick while above the floor
	NudgeOffset = 100.0
)

// BodyColor is the fill color of the body.
var BodyColor = color.RGBA{10, 200, 20, 255}

// Mood is whether the ball is resting on the floor.
type Mood int

const (
	Normal Mood = iota
	Angry
)

// String returns a readable name for the mood.
func (m Mood) String() string {
	switch m {
	case Normal:
		return "normal"
	case Angry:
		return "angry"
	default:
		return "unknown"
	}
}

// Ball holds the position, mood and landing count of the falling face.
type Ball struct {
	x, y float64

	screenWidth  int
	screenHeight int
	radius       float64

	mood     Mood
	hitCount int
}

// New creates a ball at (x, y) inside a screen of the given size.
// Any screen size is accepted, including zero or negative ones.
func New(x, y float64, screenWidth, screenHeight int) *Ball {
	return &Ball{
		x:            x,
		y:            y,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		radius:       Radius,
		mood:         Normal,
	}
}

// NudgeUp moves the ball up by NudgeOffset. Y is not clamped and may go negative.
func (b *Ball) NudgeUp() {
	b.y -= NudgeOffset
}

// AdvanceByGravity runs one simulation step. It returns true while the ball
// is still falling and false once it has reached the floor.
func (b *Ball) AdvanceByGravity() bool {
	if b.y < b.Floor() {
		b.y += GravityStep
		b.mood = Normal
		return true
	}

	// Only the Normal -> Angry edge counts as a hit
	if b.mood == Normal {
		b.hitCount++
	}
	b.mood = Angry
	return false
}

// HitCount returns how many times the ball has landed.
func (b *Ball) HitCount() int {
	return b.hitCount
}

// Position returns the center of the ball.
func (b *Ball) Position() (x, y float64) {
	return b.x, b.y
}

// Mood returns the current mood.
func (b *Ball) Mood() Mood {
	return b.mood
}

// Radius returns the body radius.
func (b *Ball) Radius() float64 {
	return b.radius
}

// Floor returns the y coordinate at which the ball is considered landed.
func (b *Ball) Floor() float64 {
	return float64(b.screenHeight) - b.radius
}

// ScreenSize returns the bounds the ball was created with.
func (b *Ball) ScreenSize() (width, height int) {
	return b.screenWidth, b.screenHeight
}
