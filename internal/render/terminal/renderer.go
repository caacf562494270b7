package terminal

import (
	"image/color"
	"math"

	"chosenoffset.com/angryball/internal/render"
)

// TerminalRenderer implements render.Renderer by rasterising shapes onto a Canvas.
// A cell is painted when its center lies inside the shape; shapes smaller than a
// cell still paint the cell containing their center.
type TerminalRenderer struct{}

// NewRenderer creates a new terminal renderer.
func NewRenderer() render.Renderer {
	return &TerminalRenderer{}
}

// FillCircle paints every cell whose center lies inside the circle.
func (r *TerminalRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	canvas := dst.(*Canvas)
	c := toTcellColor(clr)

	minCol, minRow := cellAt(x-radius, y-radius)
	maxCol, maxRow := cellAt(x+radius, y+radius)
	r2 := radius * radius
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cx, cy := cellCenter(col, row)
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy <= r2 {
				canvas.paint(col, row, c)
			}
		}
	}

	col, row := cellAt(x, y)
	canvas.paint(col, row, c)
}

// StrokeLine paints the cells the line passes through. Stroke width is ignored.
func (r *TerminalRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	canvas := dst.(*Canvas)
	c := toTcellColor(clr)

	length := math.Hypot(float64(x1-x0), float64(y1-y0))
	steps := int(math.Ceil(length/(CellWidth/2))) + 1
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		col, row := cellAt(x0+(x1-x0)*t, y0+(y1-y0)*t)
		canvas.paint(col, row, c)
	}
}

// FillRoundedRect paints the cells whose centers lie in the rectangle.
// Corners are too small to show at cell resolution.
func (r *TerminalRenderer) FillRoundedRect(dst render.Image, x0, y0, x1, y1 float32, radius float32, clr color.Color) {
	canvas := dst.(*Canvas)
	c := toTcellColor(clr)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	minCol, minRow := cellAt(x0, y0)
	maxCol, maxRow := cellAt(x1, y1)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cx, cy := cellCenter(col, row)
			if cx >= x0 && cx <= x1 && cy >= y0 && cy <= y1 {
				canvas.paint(col, row, c)
			}
		}
	}

	col, row := cellAt((x0+x1)/2, (y0+y1)/2)
	canvas.paint(col, row, c)
}

// DrawTextCentered writes text centered on the cell column containing cx. Scale is ignored.
func (r *TerminalRenderer) DrawTextCentered(dst render.Image, text string, cx, y int, clr color.Color, scale float64) {
	canvas := dst.(*Canvas)
	runes := []rune(text)
	col, row := cellAt(float32(cx), float32(y))
	r.writeRunes(canvas, runes, col-len(runes)/2, row, clr)
}

func (r *TerminalRenderer) writeRunes(canvas *Canvas, runes []rune, col, row int, clr color.Color) {
	fg := toTcellColor(clr)
	for i, ch := range runes {
		bg := canvas.Cell(col+i, row).Bg
		canvas.set(col+i, row, Cell{Rune: ch, Fg: fg, Bg: bg})
	}
}

// MeasureText returns the size of text in logical pixels.
func (r *TerminalRenderer) MeasureText(text string, scale float64) (width, height int) {
	return len([]rune(text)) * CellWidth, CellHeight
}
