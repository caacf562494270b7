// Package hud draws the elapsed time and landing count in the top-right corner.
package hud

import (
	"fmt"
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"chosenoffset.com/angryball/internal/render"
)

// Layout and animation settings
const (
	rightInset = 80 // Text is centered this far from the right edge
	secondsY   = 20
	hitsY      = 50

	popScale    = 1.6
	popDuration = 0.3 // seconds
)

// TextColor is the color of all HUD text.
var TextColor = color.RGBA{255, 0, 255, 255}

// HUD tracks the values shown on screen
type HUD struct {
	screenWidth    int
	ticksPerSecond int

	seconds  int
	hits     int
	hitScale float64
	pop      *gween.Tween
}

// New creates a HUD for a screen of the given width updated ticksPerSecond times a second.
func New(screenWidth, ticksPerSecond int) *HUD {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	return &HUD{
		screenWidth:    screenWidth,
		ticksPerSecond: ticksPerSecond,
		hitScale:       1,
	}
}

// Update refreshes the HUD for the given tick count and hit count.
// A rise in hits starts the counter's pop animation.
func (h *HUD) Update(tick, hits int) {
	h.seconds = tick / h.ticksPerSecond

	if hits > h.hits {
		h.pop = gween.New(popScale, 1, popDuration, ease.OutQuad)
	}
	h.hits = hits

	if h.pop != nil {
		val, finished := h.pop.Update(1 / float32(h.ticksPerSecond))
		h.hitScale = float64(val)
		if finished {
			h.pop = nil
			h.hitScale = 1
		}
	}
}

// Seconds returns the elapsed whole seconds last shown.
func (h *HUD) Seconds() int {
	return h.seconds
}

// HitScale returns the current text scale of the hit counter.
func (h *HUD) HitScale() float64 {
	return h.hitScale
}

// Animating reports whether the hit counter pop is in progress.
func (h *HUD) Animating() bool {
	return h.pop != nil
}

// Draw renders the HUD text.
func (h *HUD) Draw(r render.Renderer, dst render.Image) {
	cx := h.screenWidth - rightInset
	r.DrawTextCentered(dst, fmt.Sprintf("%d seconds", h.seconds), cx, secondsY, TextColor, 1)
	r.DrawTextCentered(dst, fmt.Sprintf("%d hits", h.hits), cx, hitsY, TextColor, h.hitScale)
}
