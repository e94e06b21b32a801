package main

import "time"

// Simulation and rendering configuration constants. These values define the
// automaton grid size, texture scale, timing, mesh sampling resolution, and
// the depth-to-opacity mapping used when painting cells onto the surface.
const (
	gridW, gridH = 400, 200
	cellSize     = 3
	texW         = gridW * cellSize
	texH         = gridH * cellSize

	windowW = 1280
	windowH = 800

	defaultAliveProbability = 0.12
	defaultTickInterval     = 100 * time.Millisecond
	minTickInterval         = 20 * time.Millisecond
	maxTickInterval         = 2 * time.Second
	tickIntervalStep        = 20 * time.Millisecond

	meshSlices = 240
	meshStacks = 64

	// The depth axis of the surface is z = -2*(1-cos(u)/2)*sin(v), whose
	// range is exactly [-3, 3]. The fixed viewpoint sits on that axis.
	surfaceZMin = -3.0
	surfaceZMax = 3.0
	viewpointZ  = 5.0
	minOpacity  = 0.2
	maxOpacity  = 1.0

	cameraDistance = 30.0
	cameraTilt     = 0.45
	yawPerTick     = 0.004

	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
	perlinScale   = 0.035

	pgoRecordDuration = 15 * time.Second
)

// Opaque background color the simulation texture is cleared to before each
// paint pass.
const (
	backgroundR = 8
	backgroundG = 10
	backgroundB = 24
)
