package main

import (
	"fmt"
	"math"
)

// meshVertex is one sample of the parametric surface: its 3D position and the
// (u, v) it was sampled at, reused as texture coordinates.
type meshVertex struct {
	x, y, z float32
	u, v    float32
}

// surfaceMesh is the static triangulation of the surface, built once at
// startup and immutable afterwards. Only the texture mapped onto it changes.
// center and radius describe the bounding box, for camera framing.
type surfaceMesh struct {
	slices, stacks int
	vertices       []meshVertex
	indices        []uint16

	centerX, centerY, centerZ float64
	radius                    float64
}

// buildSurfaceMesh samples kleinPoint on an inclusive (slices+1)x(stacks+1)
// grid of (u, v) pairs and triangulates each quad with a fixed winding:
// corners a,b,c,d split along the a-d diagonal into (a,b,d) and (b,c,d).
// No seam welding is performed beyond what the formula's own parameter
// wraparound produces.
func buildSurfaceMesh(slices, stacks int) (*surfaceMesh, error) {
	if slices <= 0 || stacks <= 0 {
		return nil, fmt.Errorf("mesh resolution must be positive, got %dx%d", slices, stacks)
	}
	vertCount := (slices + 1) * (stacks + 1)
	if vertCount > math.MaxUint16+1 {
		return nil, fmt.Errorf("mesh resolution %dx%d needs %d vertices, beyond 16-bit indexing", slices, stacks, vertCount)
	}

	m := &surfaceMesh{
		slices:   slices,
		stacks:   stacks,
		vertices: make([]meshVertex, 0, vertCount),
		indices:  make([]uint16, 0, slices*stacks*6),
	}

	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for i := 0; i <= slices; i++ {
		u := float64(i) / float64(slices)
		for j := 0; j <= stacks; j++ {
			v := float64(j) / float64(stacks)
			x, y, z := kleinPoint(u, v)
			m.vertices = append(m.vertices, meshVertex{
				x: float32(x), y: float32(y), z: float32(z),
				u: float32(u), v: float32(v),
			})
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			minZ = math.Min(minZ, z)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
			maxZ = math.Max(maxZ, z)
		}
	}

	cols := stacks + 1
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			a := uint16(i*cols + j)
			b := uint16((i+1)*cols + j)
			c := uint16((i+1)*cols + j + 1)
			d := uint16(i*cols + j + 1)
			m.indices = append(m.indices, a, b, d, b, c, d)
		}
	}

	m.centerX = (minX + maxX) / 2
	m.centerY = (minY + maxY) / 2
	m.centerZ = (minZ + maxZ) / 2
	dx := maxX - minX
	dy := maxY - minY
	dz := maxZ - minZ
	m.radius = math.Sqrt(dx*dx+dy*dy+dz*dz) / 2
	return m, nil
}

// triangleCount returns the number of triangles in the index buffer.
func (m *surfaceMesh) triangleCount() int {
	return len(m.indices) / 3
}
