package main

import "flag"

// Command-line flags that control optional simulation and runtime behavior.
// Grid geometry and the opacity mapping are compile-time constants; only
// per-run tunables are exposed here.
var (
	// debugFlag enables the FPS, generation, and population overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, generation, and population overlay")

	// seedFlag fixes the random source for reproducible runs (0 uses the clock).
	seedFlag = flag.Int64("seed", 0, "random seed for the initial population and birth colors (0 = time-based)")

	// aliveProbFlag sets the chance that each cell starts alive.
	aliveProbFlag = flag.Float64("alive-prob", defaultAliveProbability, "per-cell probability of starting alive (0-1)")

	// perlinSeedFlag modulates the initial population with Perlin noise so the
	// starting colonies cluster instead of being uniform static.
	perlinSeedFlag = flag.Bool("perlin-seed", false, "modulate initial seeding with Perlin noise")

	// tickMSFlag sets the wall-clock interval between automaton generations.
	tickMSFlag = flag.Int("tick-ms", int(defaultTickInterval.Milliseconds()), "milliseconds between automaton generations")

	// gpuFlag steps the automaton with the OpenCL solver (requires -tags opencl).
	gpuFlag = flag.Bool("gpu", false, "step the automaton on an OpenCL device (build with -tags opencl)")

	// recordDefaultPGO captures a CPU profile into default.pgo for 15s.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "run for 15s while capturing default.pgo")
)
