package main

import "flag"

// Command-line flags that control optional rendering, simulation, and runtime
// behavior. Persistent tuning lives in the YAML settings file; flags cover
// per-run choices.
var (
	// configFlag selects a YAML settings file merged over the embedded defaults.
	configFlag = flag.String("config", "", "path to a YAML settings file")

	// gpuFlag moves the wave solver onto OpenCL when built with -tags opencl.
	gpuFlag = flag.Bool("gpu", false, "solve the wave field with OpenCL (requires a -tags opencl build)")

	// loopFlag plays a WAV file on repeat and uses its loudness as the reactive input.
	loopFlag = flag.String("loop", "", "WAV file looped as the loudness source")

	// muteFlag keeps the loop's loudness measurements while silencing playback.
	muteFlag = flag.Bool("mute", false, "measure loop loudness without audible playback")

	// metricsFlag enables per-tick CSV metrics in the given directory.
	metricsFlag = flag.String("metrics", "", "directory for per-tick metrics output")

	// debugFlag appends FPS and simulation timing to the HUD overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation timing in the HUD")

	// recordDefaultPGO captures a CPU profile into default.pgo after startup.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "capture default.pgo for 15s after startup")
)
