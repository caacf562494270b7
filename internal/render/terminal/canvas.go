// Package terminal implements the render interfaces on a character-cell
// terminal using tcell. Logical pixel coordinates are mapped onto cells so the
// same drawing code runs unchanged in a window or in a terminal.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Size of one cell in logical pixels. Terminal cells are roughly twice as tall as wide.
const (
	CellWidth  = 10
	CellHeight = 20
)

// Cell is one character position in the canvas.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Canvas is a grid of cells covering a logical pixel area. It implements render.Image.
type Canvas struct {
	width, height int // logical pixels
	cols, rows    int
	cells         []Cell
	bg            tcell.Color
}

// NewCanvas creates a canvas covering width x height logical pixels.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{bg: tcell.ColorBlack}
	c.Resize(width, height)
	return c
}

// Resize changes the logical size, discarding the current contents.
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.cols = (c.width + CellWidth - 1) / CellWidth
	c.rows = (c.height + CellHeight - 1) / CellHeight
	c.cells = make([]Cell, c.cols*c.rows)
	c.Fill(color.Black)
}

// Size returns the logical width and height.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Grid returns the number of columns and rows.
func (c *Canvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

// Fill sets every cell to a blank of the given color.
func (c *Canvas) Fill(clr color.Color) {
	c.bg = toTcellColor(clr)
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Fg: c.bg, Bg: c.bg}
	}
}

// Cell returns the cell at (col, row). Out of range positions return a zero Cell.
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) set(col, row int, cell Cell) {
	if !c.inside(col, row) {
		return
	}
	c.cells[row*c.cols+col] = cell
}

// paint fills a cell with a solid color.
func (c *Canvas) paint(col, row int, clr tcell.Color) {
	c.set(col, row, Cell{Rune: ' ', Fg: clr, Bg: clr})
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

// cellAt maps a logical pixel to the cell containing it.
func cellAt(x, y float32) (col, row int) {
	return floorDiv(x, CellWidth), floorDiv(y, CellHeight)
}

// cellCenter returns the logical pixel at the center of a cell.
func cellCenter(col, row int) (x, y float32) {
	return (float32(col) + 0.5) * CellWidth, (float32(row) + 0.5) * CellHeight
}

func floorDiv(v float32, size int) int {
	q := v / float32(size)
	i := int(q)
	if q < 0 && float32(i) != q {
		i--
	}
	return i
}

// Present copies the canvas to the screen and shows it. Cells beyond the
// screen size are dropped.
func (c *Canvas) Present(screen tcell.Screen) {
	sw, sh := screen.Size()
	for row := 0; row < c.rows && row < sh; row++ {
		for col := 0; col < c.cols && col < sw; col++ {
			cell := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Foreground(cell.Fg).Background(cell.Bg)
			screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
	screen.Show()
}

func toTcellColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
