package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleControls processes runtime hotkeys. Space reseeds the grid; the
// +/- keys retune the simulation cadence when the debug overlay is active.
func (g *Game) handleControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.reseed()
	}
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustTickInterval(tickIntervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustTickInterval(-tickIntervalStep)
	}
}

// adjustTickInterval clamps the simulation interval delta within bounds.
func (g *Game) adjustTickInterval(delta time.Duration) {
	g.tickInterval += delta
	if g.tickInterval < minTickInterval {
		g.tickInterval = minTickInterval
	} else if g.tickInterval > maxTickInterval {
		g.tickInterval = maxTickInterval
	}
}
