package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handlePointer feeds mouse state into the disturbance injector. A fresh
// press disturbs immediately; motion while held turns into drag disturbances.
func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.injector.PointerPressed(x, y)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.injector.PointerDragged(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.injector.PointerReleased()
	}
}

// handleKeys processes the runtime toggle hotkeys.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.normalShading = !g.normalShading
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.audioEnabled = !g.audioEnabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustIntensity(intensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustIntensity(-intensityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.saveFrame()
	}
}

// adjustIntensity clamps the disturbance scale within its working range.
func (g *Game) adjustIntensity(delta float64) {
	g.intensity += delta
	if g.intensity < minIntensity {
		g.intensity = minIntensity
	} else if g.intensity > maxIntensity {
		g.intensity = maxIntensity
	}
}
