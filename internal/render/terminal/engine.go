package terminal

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/angryball/internal/render"
)

const defaultTPS = 60

// TerminalEngine implements render.Engine on a tcell screen. It owns the
// screen, the canvas the game draws to, and the input manager fed from
// screen events.
type TerminalEngine struct {
	screen   tcell.Screen
	canvas   *Canvas
	renderer render.Renderer
	input    *TerminalInput
	tps      int
	title    string
}

// NewEngine creates an engine on an initialised screen. The screen is
// finalised when RunGame returns.
func NewEngine(screen tcell.Screen) *TerminalEngine {
	w, h := screen.Size()
	return &TerminalEngine{
		screen:   screen,
		canvas:   NewCanvas(w*CellWidth, h*CellHeight),
		renderer: NewRenderer(),
		input:    NewInput(),
		tps:      defaultTPS,
	}
}

// Renderer returns the renderer that draws onto this engine's canvas.
func (e *TerminalEngine) Renderer() render.Renderer {
	return e.renderer
}

// Input returns the input manager fed by this engine.
func (e *TerminalEngine) Input() render.InputManager {
	return e.input
}

// Canvas returns the canvas passed to Game.Draw.
func (e *TerminalEngine) Canvas() *Canvas {
	return e.canvas
}

// SetWindowSize sets the logical size of the canvas in pixels.
func (e *TerminalEngine) SetWindowSize(width, height int) {
	e.canvas.Resize(width, height)
}

// SetWindowTitle stores the title. It is shown when the terminal is too small
// to fit the canvas.
func (e *TerminalEngine) SetWindowTitle(title string) {
	e.title = title
}

// SetTPS sets the number of Update calls per second.
func (e *TerminalEngine) SetTPS(tps int) {
	if tps <= 0 {
		tps = defaultTPS
	}
	e.tps = tps
}

// RunGame runs the game until it returns render.ErrQuit, the user presses
// Ctrl-C, or Update fails.
func (e *TerminalEngine) RunGame(game render.Game) error {
	defer e.screen.Fini()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go e.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !e.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			done, err := e.Step(game)
			if done || err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done is closed.
func (e *TerminalEngine) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Step runs a single tick: advance input, update, lay out, draw and present.
// done is true when the game asked to quit.
func (e *TerminalEngine) Step(game render.Game) (done bool, err error) {
	e.input.Advance()

	if err := game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return true, nil
		}
		return true, err
	}

	cw, ch := e.canvas.Size()
	w, h := game.Layout(cw, ch)
	if w != cw || h != ch {
		e.canvas.Resize(w, h)
	}

	game.Draw(e.canvas)
	e.present()
	return false, nil
}

// handleEvent returns false when the run loop should stop.
func (e *TerminalEngine) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		e.input.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		e.screen.Sync()
	}
	return true
}

func (e *TerminalEngine) present() {
	e.screen.Clear()
	e.canvas.Present(e.screen)

	// Show the title on the last row when the canvas does not fit
	sw, sh := e.screen.Size()
	cols, rows := e.canvas.Grid()
	if (sw < cols || sh < rows) && sh > 0 {
		style := tcell.StyleDefault.Reverse(true)
		for i, r := range []rune(e.title + " (terminal too small)") {
			if i >= sw {
				break
			}
			e.screen.SetContent(i, sh-1, r, nil, style)
		}
		e.screen.Show()
	}
}
