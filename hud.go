package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	core "github.com/rishiskhare/gorillavs100men/component"
	"github.com/rishiskhare/gorillavs100men/ecs/system"
)

const (
	hudBarX      = 10
	hudBarY      = 30
	hudBarWidth  = 240
	hudBarHeight = 14
)

// hud shows what the arena pushes to it. It never reads the world.
type hud struct {
	health  float64
	max     float64
	count   int
	outcome system.Outcome
}

func (h *hud) PlayerHealth(current, max float64) {
	h.health = current
	h.max = max
}

func (h *hud) AdversaryCount(n int) { h.count = n }

func (h *hud) MatchOver(o system.Outcome) { h.outcome = o }

func (h *hud) fraction() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.health / h.max
}

func (h *hud) Draw(screen *ebiten.Image) {
	f := h.fraction()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Gorilla %.0f / %.0f", h.health, h.max), hudBarX, 10)
	vector.FillRect(screen, hudBarX, hudBarY, hudBarWidth, hudBarHeight, color.NRGBA{A: 160}, false)
	vector.FillRect(screen, hudBarX, hudBarY, float32(hudBarWidth*f), hudBarHeight, core.TierFor(f).Color(), false)
	vector.StrokeRect(screen, hudBarX, hudBarY, hudBarWidth, hudBarHeight, 1, color.White, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Humans remaining: %d", h.count), hudBarX, hudBarY+hudBarHeight+6)
	if h.outcome != system.OutcomeNone {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Match over: %s", h.outcome), hudBarX, hudBarY+hudBarHeight+22)
	}
}
