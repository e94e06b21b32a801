package main

import (
	"math/rand"
	"testing"
)

func newTestGrid(t *testing.T, w, h int) *lifeGrid {
	t.Helper()
	g, err := newLifeGrid(w, h, len(defaultPalette), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("newLifeGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewLifeGridRejectsBadConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name        string
		w, h        int
		paletteSize int
	}{
		{"zero width", 0, 10, 6},
		{"zero height", 10, 0, 6},
		{"negative width", -1, 10, 6},
		{"empty palette", 10, 10, 0},
		{"oversized palette", 10, 10, 256},
	}
	for _, tc := range cases {
		if _, err := newLifeGrid(tc.w, tc.h, tc.paletteSize, rng); err == nil {
			t.Errorf("%s: expected construction error", tc.name)
		}
	}
	if _, err := newLifeGrid(10, 10, 6, nil); err == nil {
		t.Errorf("nil rng: expected construction error")
	}
}

func TestLoneCellDies(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	g.setCell(1, 1, true, 2)
	g.step()
	if p := g.population(); p != 0 {
		t.Fatalf("lone cell grid has population %d after one step, want 0", p)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g := newTestGrid(t, 6, 5)
	// A 2x2 block with distinct colors; every member has exactly 3 live
	// neighbors and no dead cell reaches 3.
	colors := [2][2]int{{0, 1}, {2, 3}}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			g.setCell(2+dx, 2+dy, true, colors[dy][dx])
		}
	}
	for i := 0; i < 3; i++ {
		g.step()
	}
	if p := g.population(); p != 4 {
		t.Fatalf("block population = %d after 3 steps, want 4", p)
	}
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if !g.alive(2+dx, 2+dy) {
				t.Fatalf("block cell (%d,%d) died", 2+dx, 2+dy)
			}
			if got := g.colorIndex(2+dx, 2+dy); got != colors[dy][dx] {
				t.Errorf("block cell (%d,%d) color = %d, want %d (survivors keep their birth color)", 2+dx, 2+dy, got, colors[dy][dx])
			}
		}
	}
}

func TestSurvivalByNeighborCount(t *testing.T) {
	// The eight neighbor offsets around the center of a 5x5 grid.
	offsets := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	for n := 0; n <= 8; n++ {
		g := newTestGrid(t, 5, 5)
		g.setCell(2, 2, true, 4)
		for i := 0; i < n; i++ {
			g.setCell(2+offsets[i][0], 2+offsets[i][1], true, 0)
		}
		g.step()
		wantAlive := n == 2 || n == 3
		if got := g.alive(2, 2); got != wantAlive {
			t.Errorf("center with %d neighbors: alive = %v, want %v", n, got, wantAlive)
		}
		if wantAlive {
			if got := g.colorIndex(2, 2); got != 4 {
				t.Errorf("center with %d neighbors: color = %d, want 4", n, got)
			}
		}
	}
}

func TestBirthRequiresExactlyThreeNeighbors(t *testing.T) {
	offsets := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	for n := 0; n <= 8; n++ {
		g := newTestGrid(t, 5, 5)
		for i := 0; i < n; i++ {
			g.setCell(2+offsets[i][0], 2+offsets[i][1], true, 0)
		}
		g.step()
		wantAlive := n == 3
		if got := g.alive(2, 2); got != wantAlive {
			t.Errorf("dead center with %d neighbors: alive = %v, want %v", n, got, wantAlive)
		}
		if wantAlive {
			if idx := g.colorIndex(2, 2); idx < 0 || idx >= len(defaultPalette) {
				t.Errorf("newborn color index %d outside palette", idx)
			}
		}
	}
}

func TestToroidalCornerAdjacency(t *testing.T) {
	// Three corner cells of a 5x5 torus are mutually adjacent through the
	// wrapped edges, so each survives with 2 neighbors and together they
	// birth the fourth corner.
	g := newTestGrid(t, 5, 5)
	g.setCell(0, 0, true, 0)
	g.setCell(4, 0, true, 1)
	g.setCell(0, 4, true, 2)
	g.step()
	for _, c := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		if !g.alive(c[0], c[1]) {
			t.Errorf("corner (%d,%d) dead after step, want alive via wraparound adjacency", c[0], c[1])
		}
	}
	if p := g.population(); p != 4 {
		t.Errorf("population = %d, want exactly the four corners", p)
	}
	if got := g.colorIndex(0, 0); got != 0 {
		t.Errorf("surviving corner color = %d, want 0", got)
	}
}

func TestScratchBufferFullyOverwritten(t *testing.T) {
	g := newTestGrid(t, 8, 8)
	for i := range g.next {
		g.next[i] = 9 // stale garbage that must never leak into a generation
	}
	g.step()
	if p := g.population(); p != 0 {
		t.Fatalf("empty grid has population %d after step, want 0", p)
	}
}

func TestStepDeterministicForFixedSeed(t *testing.T) {
	run := func() *lifeGrid {
		g, err := newLifeGrid(32, 16, len(defaultPalette), rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("newLifeGrid: %v", err)
		}
		if err := g.seedUniform(0.3); err != nil {
			t.Fatalf("seedUniform: %v", err)
		}
		for i := 0; i < 10; i++ {
			g.step()
		}
		return g
	}
	a, b := run(), run()
	for i := range a.curr {
		if a.curr[i] != b.curr[i] {
			t.Fatalf("grids diverge at cell %d: %d vs %d", i, a.curr[i], b.curr[i])
		}
	}
	if a.generation != 10 {
		t.Errorf("generation = %d, want 10", a.generation)
	}
}
