package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/angryball/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	fontSource *text.GoTextFaceSource
	fontSize   float64
	whiteImg   *ebiten.Image
}

// NewRenderer creates a new Ebiten-based renderer. Text is drawn with the TTF
// font at fontPath, or with the built-in Go Regular font when fontPath is empty.
func NewRenderer(fontPath string, fontSize float64) (render.Renderer, error) {
	data := goregular.TTF
	if fontPath != "" {
		var err error
		data, err = os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", fontPath, err)
		}
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &EbitenRenderer{fontSource: src, fontSize: fontSize}, nil
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeLine draws a line segment of the given width.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeLine(ebitenImg, x0, y0, x1, y1, strokeWidth, clr, true)
}

// FillRoundedRect draws a filled rectangle from (x0, y0) to (x1, y1) with rounded corners.
func (r *EbitenRenderer) FillRoundedRect(dst render.Image, x0, y0, x1, y1 float32, radius float32, clr color.Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	// Corners cannot overlap
	if maxR := min(x1-x0, y1-y0) / 2; radius > maxR {
		radius = maxR
	}

	path := vector.Path{}
	path.MoveTo(x0+radius, y0)
	path.LineTo(x1-radius, y0)
	path.ArcTo(x1, y0, x1, y0+radius, radius)
	path.LineTo(x1, y1-radius)
	path.ArcTo(x1, y1, x1-radius, y1, radius)
	path.LineTo(x0+radius, y1)
	path.ArcTo(x0, y1, x0, y1-radius, radius)
	path.LineTo(x0, y0+radius)
	path.ArcTo(x0, y0, x0+radius, y0, radius)
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	if r.whiteImg == nil {
		r.whiteImg = ebiten.NewImage(1, 1)
		r.whiteImg.Fill(color.White)
	}

	// Apply color to every vertex; the source is a single white pixel
	cr, cg, cb, ca := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(cr) / 0xffff
		vertices[i].ColorG = float32(cg) / 0xffff
		vertices[i].ColorB = float32(cb) / 0xffff
		vertices[i].ColorA = float32(ca) / 0xffff
	}

	ebitenImg := dst.(*EbitenImage).img
	ebitenImg.DrawTriangles(vertices, indices, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawTextCentered draws text horizontally centered on cx with its top at y.
func (r *EbitenRenderer) DrawTextCentered(dst render.Image, str string, cx, y int, clr color.Color, scale float64) {
	ebitenImg := dst.(*EbitenImage).img

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(cx), float64(y))
	opts.ColorScale.ScaleWithColor(clr)
	opts.PrimaryAlign = text.AlignCenter

	text.Draw(ebitenImg, str, r.face(scale), opts)
}

// MeasureText measures the width and height of text with the given scale.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	face := r.face(scale)
	w, h := text.Measure(str, face, face.Size)
	return int(w), int(h)
}

func (r *EbitenRenderer) face(scale float64) *text.GoTextFace {
	if scale <= 0 {
		scale = 1
	}
	return &text.GoTextFace{Source: r.fontSource, Size: r.fontSize * scale}
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was just pressed this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// IsKeyJustReleased returns whether the specified key was just released this tick.
func (m *EbitenInputManager) IsKeyJustReleased(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustReleased(k)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key. ok is false for keys
// ebiten has no mapping for.
func keyToEbitenKey(key render.Key) (k ebiten.Key, ok bool) {
	switch key {
	case render.KeySpace:
		return ebiten.KeySpace, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetTPS sets the number of Update calls per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game. It returns nil when the
// window is closed or the game returns render.ErrQuit.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return translateError(a.game.Update())
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

// translateError maps render.ErrQuit onto ebiten's clean shutdown sentinel.
func translateError(err error) error {
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}
