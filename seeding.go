package main

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// seedUniform repopulates the current generation: each cell becomes alive
// with probability aliveProbability, drawing a uniformly random palette
// color, otherwise dead. The generation counter restarts.
func (g *lifeGrid) seedUniform(aliveProbability float64) error {
	if aliveProbability < 0 || aliveProbability > 1 {
		return fmt.Errorf("alive probability must be in [0,1], got %g", aliveProbability)
	}
	for i := range g.curr {
		if g.rng.Float64() < aliveProbability {
			g.curr[i] = g.randomCellValue()
		} else {
			g.curr[i] = 0
		}
	}
	g.generation = 0
	return nil
}

// seedPerlin repopulates the grid like seedUniform but scales the per-cell
// probability by a Perlin noise field, so the starting population forms
// clustered colonies instead of uniform static. noiseSeed fixes the field.
func (g *lifeGrid) seedPerlin(aliveProbability float64, noiseSeed int64) error {
	if aliveProbability < 0 || aliveProbability > 1 {
		return fmt.Errorf("alive probability must be in [0,1], got %g", aliveProbability)
	}
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, noiseSeed)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			// Noise2D returns roughly [-1, 1]; fold it into a density
			// multiplier that empties the troughs and crowds the peaks.
			n := noise.Noise2D(float64(x)*perlinScale, float64(y)*perlinScale)
			weight := (n + 1) / 2
			local := aliveProbability * 2 * weight * weight
			if local > 1 {
				local = 1
			}
			idx := y*g.width + x
			if g.rng.Float64() < local {
				g.curr[idx] = g.randomCellValue()
			} else {
				g.curr[idx] = 0
			}
		}
	}
	g.generation = 0
	return nil
}
