package main

import (
	"fmt"
	"math/rand"
)

// lifeGrid owns the two generation buffers of the cellular automaton. Cell
// state is a single byte: 0 is dead, any value k > 0 is alive with palette
// index k-1. The grid is toroidal, so neighbor lookups wrap at every edge.
//
// Only curr is ever observable from outside; next is scratch space that step
// fully overwrites before the two swap roles.
type lifeGrid struct {
	width, height int
	paletteSize   int
	curr, next    []uint8
	rng           *rand.Rand
	generation    int
}

// newLifeGrid allocates an all-dead grid. Dimensions and palette size are
// fixed for the lifetime of the grid; invalid values fail construction.
func newLifeGrid(width, height, paletteSize int, rng *rand.Rand) (*lifeGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if paletteSize <= 0 || paletteSize > 255 {
		return nil, fmt.Errorf("palette size must be in 1..255, got %d", paletteSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("grid requires a random source")
	}
	return &lifeGrid{
		width:       width,
		height:      height,
		paletteSize: paletteSize,
		curr:        make([]uint8, width*height),
		next:        make([]uint8, width*height),
		rng:         rng,
	}, nil
}

// step advances the automaton exactly one generation under Conway's rule with
// toroidal 8-neighbor adjacency. Every cell of the scratch buffer is computed
// from the pre-step snapshot, then the buffers swap roles.
func (g *lifeGrid) step() {
	w, h := g.width, g.height
	for y := 0; y < h; y++ {
		row := y * w
		up := ((y + h - 1) % h) * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x + w - 1) % w
			right := (x + 1) % w
			n := 0
			if g.curr[up+left] != 0 {
				n++
			}
			if g.curr[up+x] != 0 {
				n++
			}
			if g.curr[up+right] != 0 {
				n++
			}
			if g.curr[row+left] != 0 {
				n++
			}
			if g.curr[row+right] != 0 {
				n++
			}
			if g.curr[down+left] != 0 {
				n++
			}
			if g.curr[down+x] != 0 {
				n++
			}
			if g.curr[down+right] != 0 {
				n++
			}
			cell := g.curr[row+x]
			switch {
			case cell != 0 && (n == 2 || n == 3):
				// Survivors keep the color they were born with.
				g.next[row+x] = cell
			case cell == 0 && n == 3:
				g.next[row+x] = g.randomCellValue()
			default:
				g.next[row+x] = 0
			}
		}
	}
	g.curr, g.next = g.next, g.curr
	g.generation++
}

// randomCellValue returns the encoded state of a newborn cell: a uniformly
// random palette index, offset by one so zero stays reserved for dead.
func (g *lifeGrid) randomCellValue() uint8 {
	return uint8(1 + g.rng.Intn(g.paletteSize))
}

// alive reports whether the cell at (x, y) is alive.
func (g *lifeGrid) alive(x, y int) bool {
	return g.curr[y*g.width+x] != 0
}

// colorIndex returns the palette index of the cell at (x, y). The cell must
// be alive.
func (g *lifeGrid) colorIndex(x, y int) int {
	return int(g.curr[y*g.width+x]) - 1
}

// setCell overwrites the cell at (x, y) in the current generation. Used by
// seeding and tests; colorIdx is ignored when alive is false.
func (g *lifeGrid) setCell(x, y int, alive bool, colorIdx int) {
	if !alive {
		g.curr[y*g.width+x] = 0
		return
	}
	g.curr[y*g.width+x] = uint8(1 + colorIdx)
}

// population counts the currently live cells.
func (g *lifeGrid) population() int {
	n := 0
	for _, cell := range g.curr {
		if cell != 0 {
			n++
		}
	}
	return n
}
