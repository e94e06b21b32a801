package main

import (
	"math/rand"
	"testing"
)

func TestSeedUniformExtremes(t *testing.T) {
	g := newTestGrid(t, 20, 10)
	if err := g.seedUniform(0); err != nil {
		t.Fatalf("seedUniform(0): %v", err)
	}
	if p := g.population(); p != 0 {
		t.Errorf("probability 0 population = %d, want 0", p)
	}
	if err := g.seedUniform(1); err != nil {
		t.Fatalf("seedUniform(1): %v", err)
	}
	if p := g.population(); p != 200 {
		t.Errorf("probability 1 population = %d, want 200", p)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if idx := g.colorIndex(x, y); idx < 0 || idx >= len(defaultPalette) {
				t.Fatalf("cell (%d,%d) color index %d outside palette", x, y, idx)
			}
		}
	}
}

func TestSeedRejectsBadProbability(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	for _, p := range []float64{-0.1, 1.1} {
		if err := g.seedUniform(p); err == nil {
			t.Errorf("seedUniform(%g): expected error", p)
		}
		if err := g.seedPerlin(p, 7); err == nil {
			t.Errorf("seedPerlin(%g): expected error", p)
		}
	}
}

func TestSeedPerlinDeterministic(t *testing.T) {
	run := func() *lifeGrid {
		g, err := newLifeGrid(50, 30, len(defaultPalette), rand.New(rand.NewSource(9)))
		if err != nil {
			t.Fatalf("newLifeGrid: %v", err)
		}
		if err := g.seedPerlin(0.4, 1234); err != nil {
			t.Fatalf("seedPerlin: %v", err)
		}
		return g
	}
	a, b := run(), run()
	for i := range a.curr {
		if a.curr[i] != b.curr[i] {
			t.Fatalf("perlin seeding diverges at cell %d", i)
		}
	}
	if a.generation != 0 {
		t.Errorf("seeding must reset the generation counter, got %d", a.generation)
	}
}

func TestSeedPerlinProducesPartialPopulation(t *testing.T) {
	g := newTestGrid(t, 100, 60)
	if err := g.seedPerlin(0.4, 99); err != nil {
		t.Fatalf("seedPerlin: %v", err)
	}
	p := g.population()
	if p == 0 || p == 100*60 {
		t.Errorf("perlin-seeded population = %d, want a nontrivial fraction of %d", p, 100*60)
	}
}
