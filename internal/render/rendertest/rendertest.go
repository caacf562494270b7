// Package rendertest provides recording fakes of the render interfaces for tests.
package rendertest

import (
	"image/color"

	"chosenoffset.com/angryball/internal/render"
)

// Op names recorded by Renderer.
const (
	OpFillCircle      = "fill_circle"
	OpStrokeLine      = "stroke_line"
	OpFillRoundedRect = "fill_rounded_rect"
	OpTextCentered    = "text_centered"
)

var (
	_ render.Renderer     = (*Renderer)(nil)
	_ render.Image        = (*Image)(nil)
	_ render.InputManager = (*Input)(nil)
)

// Call is one recorded draw call. Args holds the numeric arguments in the
// order they were passed.
type Call struct {
	Op    string
	Args  []float32
	Text  string
	Color color.Color
	Scale float64
}

// Renderer records every draw call instead of drawing.
type Renderer struct {
	Calls []Call
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, Args: []float32{x, y, radius}, Color: clr})
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeLine, Args: []float32{x0, y0, x1, y1, strokeWidth}, Color: clr})
}

func (r *Renderer) FillRoundedRect(dst render.Image, x0, y0, x1, y1 float32, radius float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRoundedRect, Args: []float32{x0, y0, x1, y1, radius}, Color: clr})
}

func (r *Renderer) DrawTextCentered(dst render.Image, text string, cx, y int, clr color.Color, scale float64) {
	r.Calls = append(r.Calls, Call{Op: OpTextCentered, Args: []float32{float32(cx), float32(y)}, Text: text, Color: clr, Scale: scale})
}

// MeasureText assumes 10x20 pixel glyphs.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)) * 10 * scale), int(20 * scale)
}

// Count returns how many calls of the given op were recorded.
func (r *Renderer) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Find returns the first call of the given op.
func (r *Renderer) Find(op string) (Call, bool) {
	for _, c := range r.Calls {
		if c.Op == op {
			return c, true
		}
	}
	return Call{}, false
}

// Reset drops all recorded calls.
func (r *Renderer) Reset() {
	r.Calls = nil
}

// Image is an in-memory render.Image that remembers its last fill color.
type Image struct {
	Width, Height int
	Filled        color.Color
}

// NewImage creates a fake image of the given size.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height}
}

func (i *Image) Size() (width, height int) { return i.Width, i.Height }
func (i *Image) Fill(clr color.Color)      { i.Filled = clr }

// Input is a scripted render.InputManager. Keys listed in JustPressed and
// JustReleased report true until Next is called.
type Input struct {
	Pressed      map[render.Key]bool
	JustPressed  map[render.Key]bool
	JustReleased map[render.Key]bool
}

// NewInput creates an Input with no keys down.
func NewInput() *Input {
	return &Input{
		Pressed:      make(map[render.Key]bool),
		JustPressed:  make(map[render.Key]bool),
		JustReleased: make(map[render.Key]bool),
	}
}

// Press marks key as pressed during the current tick.
func (in *Input) Press(key render.Key) {
	in.Pressed[key] = true
	in.JustPressed[key] = true
}

// Release marks key as released during the current tick.
func (in *Input) Release(key render.Key) {
	delete(in.Pressed, key)
	in.JustReleased[key] = true
}

// Next clears the edge states, as happens between ticks.
func (in *Input) Next() {
	clear(in.JustPressed)
	clear(in.JustReleased)
}

func (in *Input) IsKeyPressed(key render.Key) bool      { return in.Pressed[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool  { return in.JustPressed[key] }
func (in *Input) IsKeyJustReleased(key render.Key) bool { return in.JustReleased[key] }
