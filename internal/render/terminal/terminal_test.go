package terminal

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/angryball/internal/render"
)

var (
	_ render.Renderer     = (*TerminalRenderer)(nil)
	_ render.Image        = (*Canvas)(nil)
	_ render.InputManager = (*TerminalInput)(nil)
	_ render.Engine       = (*TerminalEngine)(nil)
)

var (
	green = color.RGBA{10, 200, 20, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestCanvasGrid(t *testing.T) {
	c := NewCanvas(800, 600)

	cols, rows := c.Grid()
	if cols != 80 || rows != 30 {
		t.Errorf("Expected 80x30 cells, got %dx%d", cols, rows)
	}

	c.Resize(805, 601)
	cols, rows = c.Grid()
	if cols != 81 || rows != 31 {
		t.Errorf("Expected partial cells to round up to 81x31, got %dx%d", cols, rows)
	}

	c.Resize(-5, 0)
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("Expected negative sizes to clamp to 0, got %dx%d", w, h)
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Fill(white)

	want := toTcellColor(white)
	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if got := c.Cell(col, row).Bg; got != want {
				t.Fatalf("Cell (%d, %d) background %v, want %v", col, row, got, want)
			}
		}
	}

	if (c.Cell(-1, 0) != Cell{}) || (c.Cell(10, 0) != Cell{}) {
		t.Error("Expected zero cell outside the canvas")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		v    float32
		size int
		want int
	}{
		{0, 10, 0},
		{9.9, 10, 0},
		{10, 10, 1},
		{-0.5, 10, -1},
		{-10, 10, -1},
		{-10.5, 10, -2},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.v, tt.size); got != tt.want {
			t.Errorf("floorDiv(%v, %d) = %d, want %d", tt.v, tt.size, got, tt.want)
		}
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Fill(white)
	r := NewRenderer()

	r.FillCircle(c, 100, 300, 50, green)

	want := toTcellColor(green)
	// Center cell (10, 15) and a cell fully inside
	if c.Cell(10, 15).Bg != want {
		t.Error("Expected center cell painted")
	}
	if c.Cell(12, 14).Bg != want {
		t.Error("Expected cell inside the circle painted")
	}
	// Cell whose center is outside the radius
	if c.Cell(16, 15).Bg == want {
		t.Error("Expected cell outside the circle left alone")
	}
	if c.Cell(10, 18).Bg == want {
		t.Error("Expected cell below the circle left alone")
	}
}

func TestFillCircleSmallerThanCell(t *testing.T) {
	c := NewCanvas(800, 600)
	r := NewRenderer()

	r.FillCircle(c, 91, 305, 4, green)

	if c.Cell(9, 15).Bg != toTcellColor(green) {
		t.Error("Expected the cell containing a tiny circle to be painted")
	}
}

func TestStrokeLine(t *testing.T) {
	c := NewCanvas(800, 600)
	r := NewRenderer()
	black := color.RGBA{0, 0, 0, 255}
	c.Fill(white)

	r.StrokeLine(c, 5, 10, 95, 10, 6, black)

	for col := 0; col < 10; col++ {
		if c.Cell(col, 0).Bg != toTcellColor(black) {
			t.Errorf("Expected cell (%d, 0) on the line painted", col)
		}
	}
	if c.Cell(10, 0).Bg == toTcellColor(black) {
		t.Error("Expected cell past the end of the line left alone")
	}
}

func TestFillRoundedRect(t *testing.T) {
	c := NewCanvas(800, 600)
	r := NewRenderer()

	r.FillRoundedRect(c, 23, 15, 85, 45, 3, white)

	want := toTcellColor(white)
	for col := 3; col <= 7; col++ {
		if c.Cell(col, 1).Bg != want {
			t.Errorf("Expected cell (%d, 1) inside the rect painted", col)
		}
	}
	if c.Cell(1, 1).Bg == want || c.Cell(9, 1).Bg == want {
		t.Error("Expected cells outside the rect left alone")
	}
}

func TestDrawTextCentered(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Fill(white)
	r := NewRenderer()

	r.DrawTextCentered(c, "3 hits", 720, 50, color.RGBA{255, 0, 255, 255}, 1)

	// "3 hits" has 6 runes centered on column 72 of row 2
	got := ""
	for col := 69; col < 75; col++ {
		got += string(c.Cell(col, 2).Rune)
	}
	if got != "3 hits" {
		t.Errorf("Expected '3 hits' at columns 69-74, got '%s'", got)
	}
	if c.Cell(69, 2).Bg != toTcellColor(white) {
		t.Error("Expected text to keep the background color")
	}
}

func TestMeasureText(t *testing.T) {
	r := NewRenderer()
	w, h := r.MeasureText("hits", 2)
	if w != 40 || h != 20 {
		t.Errorf("Expected 40x20, got %dx%d", w, h)
	}
}

func TestInputEdges(t *testing.T) {
	in := NewInput()

	if !in.HandleKey(tcell.KeyRune, ' ') {
		t.Fatal("Expected space to be handled")
	}
	if in.HandleKey(tcell.KeyRune, 'x') {
		t.Error("Expected 'x' to be ignored")
	}

	in.Advance()
	if !in.IsKeyJustPressed(render.KeySpace) || !in.IsKeyPressed(render.KeySpace) {
		t.Error("Expected space just pressed after the first tick")
	}

	in.Advance()
	if in.IsKeyJustPressed(render.KeySpace) {
		t.Error("Expected just pressed to last one tick")
	}
	if !in.IsKeyJustReleased(render.KeySpace) {
		t.Error("Expected space released on the following tick")
	}
	if in.IsKeyPressed(render.KeySpace) {
		t.Error("Expected space no longer pressed")
	}

	in.Advance()
	if in.IsKeyJustReleased(render.KeySpace) {
		t.Error("Expected just released to last one tick")
	}
}

func TestInputHeldKey(t *testing.T) {
	in := NewInput()

	in.HandleKey(tcell.KeyRune, ' ')
	in.Advance()
	// Key repeat keeps the key down without a new press
	in.HandleKey(tcell.KeyRune, ' ')
	in.Advance()

	if in.IsKeyJustPressed(render.KeySpace) {
		t.Error("Expected repeated key not to count as a new press")
	}
	if !in.IsKeyPressed(render.KeySpace) {
		t.Error("Expected key to stay pressed")
	}
}

func TestInputEscape(t *testing.T) {
	in := NewInput()
	in.HandleKey(tcell.KeyEscape, 0)
	in.Advance()

	if !in.IsKeyJustPressed(render.KeyEscape) {
		t.Error("Expected escape just pressed")
	}
}

type stubGame struct {
	updates int
	draws   int
	err     error
}

func (g *stubGame) Update() error {
	g.updates++
	return g.err
}

func (g *stubGame) Draw(screen render.Image) {
	g.draws++
	screen.Fill(white)
}

func (g *stubGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 400, 200
}

func newSimulationEngine(t *testing.T) *TerminalEngine {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return NewEngine(screen)
}

func TestEngineStep(t *testing.T) {
	e := newSimulationEngine(t)
	g := &stubGame{}

	done, err := e.Step(g)
	if done || err != nil {
		t.Fatalf("Expected step to continue, got done=%v err=%v", done, err)
	}
	if g.updates != 1 || g.draws != 1 {
		t.Errorf("Expected 1 update and 1 draw, got %d and %d", g.updates, g.draws)
	}
	if w, h := e.Canvas().Size(); w != 400 || h != 200 {
		t.Errorf("Expected canvas resized to layout 400x200, got %dx%d", w, h)
	}
	if e.Canvas().Cell(0, 0).Bg != toTcellColor(white) {
		t.Error("Expected the game's drawing on the canvas")
	}
}

func TestEngineStepQuit(t *testing.T) {
	e := newSimulationEngine(t)
	g := &stubGame{err: render.ErrQuit}

	done, err := e.Step(g)
	if !done || err != nil {
		t.Errorf("Expected clean quit, got done=%v err=%v", done, err)
	}
	if g.draws != 0 {
		t.Error("Expected no draw after quit")
	}
}

func TestEngineStepError(t *testing.T) {
	e := newSimulationEngine(t)
	boom := errors.New("boom")

	done, err := e.Step(&stubGame{err: boom})
	if !done || !errors.Is(err, boom) {
		t.Errorf("Expected done with boom, got done=%v err=%v", done, err)
	}
}

func TestEngineSetTPS(t *testing.T) {
	e := newSimulationEngine(t)
	e.SetTPS(0)
	if e.tps != defaultTPS {
		t.Errorf("Expected default TPS for 0, got %d", e.tps)
	}
	e.SetTPS(30)
	if e.tps != 30 {
		t.Errorf("Expected TPS 30, got %d", e.tps)
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	e := newSimulationEngine(t)
	screen := e.screen.(tcell.SimulationScreen)

	// Nobody reads events, so a forwarded event can only be dropped via done
	events := make(chan tcell.Event)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		e.pollEvents(events, done)
		close(stopped)
	}()

	close(done)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected event pump to stop once done is closed")
	}
}

func TestPollEventsForwards(t *testing.T) {
	e := newSimulationEngine(t)
	screen := e.screen.(tcell.SimulationScreen)

	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)
	go e.pollEvents(events, done)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			// Skip anything the screen queued on its own, e.g. resizes
			if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyEscape {
				return
			}
		case <-timeout:
			t.Fatal("Expected the injected key to be forwarded")
		}
	}
}
