package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the water surface, splash particles, and HUD for the current
// tick. The frame buffer is fully recomputed; there are no delta updates.
func (g *Game) Draw(screen *ebiten.Image) {
	t := g.clock.blendFactor()
	screen.Fill(g.shading.Background(t))
	g.frame = g.shading.Render(g.field, t, g.intensity, g.normalShading)
	screen.WritePixels(g.frame)
	g.splashes.Draw(screen)
	g.drawHUD(screen)
}

// Layout reports the logical screen size used by ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.field.width, g.field.height
}

// drawHUD prints the toggle states and, with -debug, frame timing.
func (g *Game) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "Normal shading (M): %s\n", onOff(g.normalShading))
	fmt.Fprintf(&b, "Audio (A): %s  Level: %.3f\n", onOff(g.audioEnabled), g.lastLoudness)
	fmt.Fprintf(&b, "Intensity (+/-): %.2f\n", g.intensity)
	b.WriteString("Pause (P), Save (O)")
	if g.paused {
		b.WriteString("  [PAUSED]")
	}
	if *debugFlag {
		fmt.Fprintf(&b, "\nFPS: %.1f  TPS: %.1f  Sim: %.2f ms  Bursts: %d  Particles: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.lastSimDuration.Seconds()*1000, g.lastBursts, g.splashes.Count())
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
