package main

import (
	"math"
	"math/rand"
	"time"
)

// disturbanceInjector translates pointer and loudness input into field
// disturbances.
type disturbanceInjector struct {
	field       *waveField
	rng         *rand.Rand
	spawnSplash func(x, y int)

	lastX, lastY int
	hasLast      bool
}

func newDisturbanceInjector(field *waveField, spawnSplash func(x, y int)) *disturbanceInjector {
	return &disturbanceInjector{
		field:       field,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		spawnSplash: spawnSplash,
	}
}

// PointerPressed applies the fixed press disturbance and requests splash
// particles at the press location.
func (d *disturbanceInjector) PointerPressed(x, y int) {
	d.field.Disturb(x, y, pressMagnitude)
	if d.spawnSplash != nil {
		d.spawnSplash(x, y)
	}
}

// PointerDragged applies a displacement-scaled disturbance while the primary
// button is held. The first motion sample after a press only seeds the
// previous position; magnitude is always measured against the immediately
// preceding sample.
func (d *disturbanceInjector) PointerDragged(x, y int) {
	if d.hasLast {
		dx := float64(x - d.lastX)
		dy := float64(y - d.lastY)
		mag := math.Min(dragMagnitudeCap, math.Hypot(dx, dy))
		d.field.Disturb(x, y, float32(mag*dragMagnitudeScale))
	}
	d.lastX, d.lastY = x, y
	d.hasLast = true
}

// PointerReleased forgets the previous drag sample so a new press never
// measures against a stale position.
func (d *disturbanceInjector) PointerReleased() {
	d.hasLast = false
}

// AudioBurst injects random disturbances proportional to this tick's loudness
// level. The count is capped so loud input cannot flood a single tick; the
// magnitude is not. Returns the number of disturbances injected.
func (d *disturbanceInjector) AudioBurst(level, intensity float64) int {
	if level <= audioLevelThreshold {
		return 0
	}
	count := int(math.Min(audioBurstMax, level*audioBurstScale))
	magnitude := float32(level * audioBurstScale * intensity)
	for i := 0; i < count; i++ {
		d.field.Disturb(d.rng.Intn(d.field.width), d.rng.Intn(d.field.height), magnitude)
	}
	return count
}
