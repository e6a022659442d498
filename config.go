package main

import "time"

// Simulation and rendering constants. These define the wave physics, the
// disturbance policy, and the shading coefficients for the ripple field.
const (
	damping   = 0.995
	waveSpeed = 0.5
	damping32 = float32(damping)
	speed32   = float32(waveSpeed)

	defaultTPS = 60

	pressMagnitude     = 50.0
	dragMagnitudeCap   = 100.0
	dragMagnitudeScale = 0.5

	audioLevelThreshold = 0.01
	audioBurstScale     = 200.0
	audioBurstMax       = 10
	loudnessQueueDepth  = 64

	dayPhaseStep = 0.005

	minIntensity  = 0.1
	maxIntensity  = 5.0
	intensityStep = 0.1

	surfaceNormalZ  = 0.5
	flatLight       = 0.7
	lightBrightness = 80.0
	heightNormScale = 10.0
	normalEpsilon   = 1e-8

	pressParticleCount = 8
	particleLifeTicks  = 60
	particleGravity    = 0.2

	pgoRecordDuration = 15 * time.Second
)

// Palette endpoints blended by the day/night factor. Day values apply at
// blend factor 0, night values at 1.
var (
	dayBackground   = [3]float32{130, 180, 90}
	nightBackground = [3]float32{30, 60, 255}

	dayBase   = [3]float32{200, 230, 255}
	nightBase = [3]float32{20, 30, 60}

	// tintCoeff shifts raised water toward warm hues and troughs toward blue.
	tintCoeff = [3]float32{60, 80, -120}
)
