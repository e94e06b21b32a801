package main

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game ties the automaton, the compositor, and the surface mesh together
// under ebiten's loop. Two cadences coexist on the one game goroutine: the
// automaton advances on a wall-clock interval checked in Update, while Draw
// re-renders the rotating mesh with whatever texture state currently exists.
type Game struct {
	grid    *lifeGrid
	comp    *compositor
	mesh    *surfaceMesh
	palette []color.RGBA
	texture *ebiten.Image

	tickInterval time.Duration
	lastStep     time.Time
	lastStepCost time.Duration
	yaw          float64
	focal        float64

	gpuSolver *openCLLifeSolver
	seedRand  *rand.Rand

	stopProfile     func()
	profileDeadline time.Time

	// Per-frame render scratch, reused to avoid reallocating buffers.
	frameVerts  []ebiten.Vertex
	vertexDepth []float32
	triDepth    []float32
	triOrder    []int
	drawOrder   []uint16
}

// newGame constructs a fully initialized Game. Any misconfiguration is a
// startup failure, not something to tolerate mid-simulation.
func newGame() *Game {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if err := validatePalette(defaultPalette); err != nil {
		log.Fatalf("Palette rejected: %v", err)
	}
	grid, err := newLifeGrid(gridW, gridH, len(defaultPalette), rng)
	if err != nil {
		log.Fatalf("Grid construction failed: %v", err)
	}
	if *perlinSeedFlag {
		err = grid.seedPerlin(*aliveProbFlag, seed)
	} else {
		err = grid.seedUniform(*aliveProbFlag)
	}
	if err != nil {
		log.Fatalf("Initial seeding failed: %v", err)
	}

	mesh, err := buildSurfaceMesh(meshSlices, meshStacks)
	if err != nil {
		log.Fatalf("Mesh construction failed: %v", err)
	}
	comp, err := newCompositor(gridW, gridH, cellSize)
	if err != nil {
		log.Fatalf("Compositor construction failed: %v", err)
	}

	tick := time.Duration(*tickMSFlag) * time.Millisecond
	if tick < minTickInterval || tick > maxTickInterval {
		log.Fatalf("Tick interval %v outside [%v, %v]", tick, minTickInterval, maxTickInterval)
	}

	g := &Game{
		grid:         grid,
		comp:         comp,
		mesh:         mesh,
		palette:      defaultPalette,
		texture:      ebiten.NewImage(texW, texH),
		tickInterval: tick,
		seedRand:     rng,
		frameVerts:   make([]ebiten.Vertex, len(mesh.vertices)),
		vertexDepth:  make([]float32, len(mesh.vertices)),
		triDepth:     make([]float32, mesh.triangleCount()),
		triOrder:     make([]int, mesh.triangleCount()),
		drawOrder:    make([]uint16, 0, len(mesh.indices)),
	}
	for t := range g.triOrder {
		g.triOrder[t] = t
	}
	// Frame the bounding sphere at roughly 40% of the shorter window edge.
	minDim := float64(windowH)
	if windowW < windowH {
		minDim = float64(windowW)
	}
	g.focal = 0.42 * minDim * cameraDistance / mesh.radius

	if *gpuFlag {
		solver, err := newOpenCLLifeSolver(gridW, gridH, len(defaultPalette))
		if err != nil {
			log.Fatalf("OpenCL initialization failed: %v", err)
		}
		log.Printf("OpenCL life stepper enabled (device: %s)", solver.DeviceName())
		g.gpuSolver = solver
	}

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording("default.pgo")
		if err != nil {
			log.Printf("PGO recording failed to start: %v", err)
		} else {
			log.Printf("Recording default.pgo for %v", pgoRecordDuration)
			g.stopProfile = stop
			g.profileDeadline = time.Now().Add(pgoRecordDuration)
		}
	}

	g.repaint()
	return g
}

// Update advances the rotation every frame and the automaton whenever the
// wall-clock tick interval has elapsed. A slow tick simply delays the next
// one.
func (g *Game) Update() error {
	g.handleControls()
	g.yaw += yawPerTick

	if g.stopProfile != nil && time.Now().After(g.profileDeadline) {
		g.stopProfile()
		g.stopProfile = nil
		log.Printf("default.pgo captured")
	}

	now := time.Now()
	if g.lastStep.IsZero() {
		g.lastStep = now
		return nil
	}
	if now.Sub(g.lastStep) < g.tickInterval {
		return nil
	}
	start := time.Now()
	if g.gpuSolver != nil {
		if err := g.gpuSolver.Step(g.grid, 1, uint32(g.seedRand.Int63())); err != nil {
			return err
		}
	} else {
		g.grid.step()
	}
	g.repaint()
	g.lastStepCost = time.Since(start)
	g.lastStep = now
	return nil
}

// repaint runs the depth compositor over the current generation and uploads
// the result as the surface texture.
func (g *Game) repaint() {
	g.comp.paint(g.grid, g.palette)
	g.texture.WritePixels(g.comp.pixels)
}

// reseed repopulates the grid with the configured seeding mode and repaints
// immediately so the next frame shows the fresh population.
func (g *Game) reseed() {
	var err error
	if *perlinSeedFlag {
		err = g.grid.seedPerlin(*aliveProbFlag, g.seedRand.Int63())
	} else {
		err = g.grid.seedUniform(*aliveProbFlag)
	}
	if err != nil {
		log.Printf("Reseed failed: %v", err)
		return
	}
	g.repaint()
}

// Layout reports the logical screen size used by ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return windowW, windowH }
