package terminal

import (
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/angryball/internal/render"
)

// TerminalInput implements render.InputManager from tcell key events.
// Terminals report key presses only, so a key counts as released on the tick
// after it was pressed.
type TerminalInput struct {
	pending      map[render.Key]bool
	pressed      map[render.Key]bool
	justPressed  map[render.Key]bool
	justReleased map[render.Key]bool
}

// NewInput creates an input manager with no keys down.
func NewInput() *TerminalInput {
	return &TerminalInput{
		pending:      make(map[render.Key]bool),
		pressed:      make(map[render.Key]bool),
		justPressed:  make(map[render.Key]bool),
		justReleased: make(map[render.Key]bool),
	}
}

// HandleKey records a key press. It returns false for keys the game ignores.
func (in *TerminalInput) HandleKey(key tcell.Key, ch rune) bool {
	k, ok := translateKey(key, ch)
	if !ok {
		return false
	}
	in.pending[k] = true
	return true
}

// Advance moves to the next tick: keys pressed last tick are released and
// pending presses become just pressed.
func (in *TerminalInput) Advance() {
	clear(in.justPressed)
	clear(in.justReleased)

	for k := range in.pressed {
		if !in.pending[k] {
			in.justReleased[k] = true
			delete(in.pressed, k)
		}
	}
	for k := range in.pending {
		if !in.pressed[k] {
			in.justPressed[k] = true
		}
		in.pressed[k] = true
	}
	clear(in.pending)
}

// IsKeyPressed returns whether the key was pressed during the last tick.
func (in *TerminalInput) IsKeyPressed(key render.Key) bool {
	return in.pressed[key]
}

// IsKeyJustPressed returns whether the key went down this tick.
func (in *TerminalInput) IsKeyJustPressed(key render.Key) bool {
	return in.justPressed[key]
}

// IsKeyJustReleased returns whether the key went up this tick.
func (in *TerminalInput) IsKeyJustReleased(key render.Key) bool {
	return in.justReleased[key]
}

func translateKey(key tcell.Key, ch rune) (render.Key, bool) {
	switch {
	case key == tcell.KeyEscape:
		return render.KeyEscape, true
	case key == tcell.KeyRune && ch == ' ':
		return render.KeySpace, true
	default:
		return 0, false
	}
}
