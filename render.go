package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw perspective-projects the rotated mesh, depth-sorts its triangles, and
// renders them with the simulation texture. The surface self-intersects and
// is non-orientable, so triangles are painted far to near with no backface
// culling.
func (g *Game) Draw(screen *ebiten.Image) {
	g.transformVertices()
	g.sortTriangles()

	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(g.frameVerts, g.drawOrder, g.texture, op)

	if *debugFlag {
		g.drawOverlay(screen)
	}
}

// transformVertices rotates the mesh about its center, projects every vertex
// to screen space, and records its view depth for sorting.
func (g *Game) transformVertices() {
	sinYaw, cosYaw := math.Sincos(g.yaw)
	sinTilt, cosTilt := math.Sincos(cameraTilt)
	halfW := float64(windowW) / 2
	halfH := float64(windowH) / 2
	for i, mv := range g.mesh.vertices {
		x := float64(mv.x) - g.mesh.centerX
		y := float64(mv.y) - g.mesh.centerY
		z := float64(mv.z) - g.mesh.centerZ

		rx := x*cosYaw + z*sinYaw
		rz := z*cosYaw - x*sinYaw
		ry := y*cosTilt - rz*sinTilt
		rz = y*sinTilt + rz*cosTilt

		viewZ := cameraDistance - rz
		s := g.focal / viewZ
		g.frameVerts[i] = ebiten.Vertex{
			DstX:   float32(halfW + rx*s),
			DstY:   float32(halfH - ry*s),
			SrcX:   mv.u * texW,
			SrcY:   mv.v * texH,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
		g.vertexDepth[i] = float32(viewZ)
	}
}

// sortTriangles orders the index buffer far to near (painter's algorithm)
// using the summed view depth of each triangle's vertices.
func (g *Game) sortTriangles() {
	idx := g.mesh.indices
	for t := range g.triDepth {
		base := t * 3
		g.triDepth[t] = g.vertexDepth[idx[base]] + g.vertexDepth[idx[base+1]] + g.vertexDepth[idx[base+2]]
	}
	sort.Slice(g.triOrder, func(a, b int) bool {
		return g.triDepth[g.triOrder[a]] > g.triDepth[g.triOrder[b]]
	})
	g.drawOrder = g.drawOrder[:0]
	for _, t := range g.triOrder {
		base := t * 3
		g.drawOrder = append(g.drawOrder, idx[base], idx[base+1], idx[base+2])
	}
}

// drawOverlay prints frame and simulation statistics in the corner.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	stepper := "cpu"
	if g.gpuSolver != nil {
		stepper = "opencl"
	}
	msg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nGeneration: %d\nPopulation: %d\nTick: %v (%s, %.2f ms, +/-)",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.grid.generation, g.grid.population(),
		g.tickInterval, stepper, g.lastStepCost.Seconds()*1000)
	ebitenutil.DebugPrint(screen, msg)
}
