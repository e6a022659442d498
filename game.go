package main

import (
	"log"
	"runtime"
	"time"
)

// Game wires the simulation core, input, audio, and rendering into the
// ebiten tick loop. Every component runs synchronously within one tick; the
// only cross-goroutine boundary is the loudness queue.
type Game struct {
	settings *Settings

	field    *waveField
	stepper  *fieldStepper
	injector *disturbanceInjector
	clock    *dayNightClock
	shading  *shadingPipeline
	splashes *splashSystem
	loudness *loudnessQueue

	gpuSolver *openCLWaveSolver
	metrics   *metricsRecorder

	// Runtime toggles, mutated by key bindings.
	normalShading bool
	audioEnabled  bool
	intensity     float64
	paused        bool

	lastLoudness    float64
	lastBursts      int
	lastSimDuration time.Duration
	frame           []byte
}

// newGame constructs a fully initialized Game from the loaded settings.
func newGame(settings *Settings) (*Game, error) {
	field, err := newWaveField(settings.Screen.Width, settings.Screen.Height)
	if err != nil {
		return nil, err
	}
	splashes := newSplashSystem()
	g := &Game{
		settings:      settings,
		field:         field,
		clock:         &dayNightClock{},
		shading:       newShadingPipeline(field.width, field.height),
		splashes:      splashes,
		loudness:      newLoudnessQueue(loudnessQueueDepth),
		normalShading: settings.Render.NormalShading,
		audioEnabled:  settings.Audio.Enabled,
		intensity:     settings.Render.Intensity,
	}
	g.injector = newDisturbanceInjector(field, func(x, y int) {
		splashes.Spawn(x, y, pressParticleCount)
	})

	if *gpuFlag {
		solver, err := newOpenCLWaveSolver(field.width, field.height)
		if err != nil {
			log.Fatalf("OpenCL initialization failed: %v", err)
		}
		log.Printf("OpenCL solver enabled (device: %s)", solver.DeviceName())
		g.gpuSolver = solver
	} else {
		g.stepper = newFieldStepper(field, runtime.NumCPU())
		g.stepper.start()
	}

	metrics, err := newMetricsRecorder(*metricsFlag, settings.Telemetry.WindowTicks)
	if err != nil {
		return nil, err
	}
	g.metrics = metrics
	return g, nil
}

// Update runs one tick: input, disturbance injection, wave stepping, clock
// advance, and particle motion. Pausing freezes the simulation but keeps
// input and rendering responsive.
func (g *Game) Update() error {
	g.handleKeys()
	g.handlePointer()

	level := g.loudness.DrainMax()
	g.lastLoudness = level
	if g.paused {
		return nil
	}

	bursts := 0
	if g.audioEnabled {
		bursts = g.injector.AudioBurst(level, g.intensity)
	}
	g.lastBursts = bursts

	simStart := time.Now()
	if g.gpuSolver != nil {
		if err := g.gpuSolver.Step(g.field, 1); err != nil {
			return err
		}
	} else {
		g.stepper.Step()
	}
	g.lastSimDuration = time.Since(simStart)

	g.clock.advance()
	g.splashes.Update()

	return g.metrics.Record(level, bursts, g.field.Energy(), g.lastSimDuration.Seconds()*1000)
}

// Close releases the GPU solver and metrics file.
func (g *Game) Close() {
	if g.gpuSolver != nil {
		g.gpuSolver.Close()
	}
	if err := g.metrics.Close(); err != nil {
		log.Printf("closing metrics: %v", err)
	}
}
