package main

import (
	"fmt"
	"image/color"
	"runtime"
	"sync"
)

// compositor owns the RGBA pixel buffer the automaton is painted into. Each
// paint clears the buffer to the opaque background and writes one
// cellSize x cellSize block per live cell, with the block's color faded
// toward the background by the cell's distance from the viewpoint.
type compositor struct {
	gridW, gridH int
	cellSize     int
	width        int // pixels
	height       int // pixels
	pixels       []byte
	bgRow        []byte
	workers      int
}

// newCompositor allocates the pixel buffer for a gridW x gridH automaton at
// cellSize pixels per cell. Invalid dimensions fail construction.
func newCompositor(gridW, gridH, cellSize int) (*compositor, error) {
	if gridW <= 0 || gridH <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("compositor dimensions must be positive, got %dx%d cells at %d px", gridW, gridH, cellSize)
	}
	c := &compositor{
		gridW:    gridW,
		gridH:    gridH,
		cellSize: cellSize,
		width:    gridW * cellSize,
		height:   gridH * cellSize,
		workers:  runtime.NumCPU(),
	}
	c.pixels = make([]byte, c.width*c.height*4)
	c.bgRow = make([]byte, c.width*4)
	for x := 0; x < c.width; x++ {
		c.bgRow[x*4] = backgroundR
		c.bgRow[x*4+1] = backgroundG
		c.bgRow[x*4+2] = backgroundB
		c.bgRow[x*4+3] = 0xff
	}
	return c, nil
}

// depthOpacity maps a surface z coordinate to display opacity: the point
// nearest the viewpoint is fully opaque, the farthest fades to minOpacity,
// linearly in between. The result is clamped so z values outside the
// documented surface range cannot push opacity outside [minOpacity,
// maxOpacity].
func depthOpacity(z float64) float64 {
	const minDepth = viewpointZ - surfaceZMax
	const maxDepth = viewpointZ - surfaceZMin
	depth := viewpointZ - z
	t := (depth - minDepth) / (maxDepth - minDepth)
	opacity := maxOpacity + t*(minOpacity-maxOpacity)
	if opacity < minOpacity {
		return minOpacity
	}
	if opacity > maxOpacity {
		return maxOpacity
	}
	return opacity
}

// paint repaints the whole buffer from the grid's current generation. Cell
// rows are split into bands across worker goroutines; each band touches only
// its own pixel rows, so no synchronization beyond the join is needed.
func (c *compositor) paint(grid *lifeGrid, pal []color.RGBA) {
	rowsPer := (c.gridH + c.workers - 1) / c.workers
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		y0 := i * rowsPer
		if y0 >= c.gridH {
			break
		}
		y1 := y0 + rowsPer
		if y1 > c.gridH {
			y1 = c.gridH
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			c.paintRows(grid, pal, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// paintRows clears and repaints the pixel rows backing grid rows [y0, y1).
func (c *compositor) paintRows(grid *lifeGrid, pal []color.RGBA, y0, y1 int) {
	rowBytes := c.width * 4
	for py := y0 * c.cellSize; py < y1*c.cellSize; py++ {
		copy(c.pixels[py*rowBytes:(py+1)*rowBytes], c.bgRow)
	}
	for y := y0; y < y1; y++ {
		for x := 0; x < c.gridW; x++ {
			if !grid.alive(x, y) {
				continue
			}
			u := (float64(x) + 0.5) / float64(c.gridW)
			v := (float64(y) + 0.5) / float64(c.gridH)
			_, _, z := kleinPoint(u, v)
			opacity := depthOpacity(z)
			clr := pal[grid.colorIndex(x, y)]
			// The buffer was just cleared, so compositing the cell over the
			// background reduces to one blend per channel written opaque.
			r := blendChannel(backgroundR, clr.R, opacity)
			g := blendChannel(backgroundG, clr.G, opacity)
			b := blendChannel(backgroundB, clr.B, opacity)
			c.fillBlock(x*c.cellSize, y*c.cellSize, r, g, b)
		}
	}
}

// blendChannel interpolates one color channel from the background toward the
// cell color by opacity.
func blendChannel(bg, c byte, opacity float64) byte {
	return byte(int(bg) + int(opacity*float64(int(c)-int(bg))))
}

// fillBlock writes one opaque cellSize x cellSize block at pixel (px, py).
func (c *compositor) fillBlock(px, py int, r, g, b byte) {
	for dy := 0; dy < c.cellSize; dy++ {
		base := ((py+dy)*c.width + px) * 4
		for dx := 0; dx < c.cellSize; dx++ {
			c.pixels[base] = r
			c.pixels[base+1] = g
			c.pixels[base+2] = b
			c.pixels[base+3] = 0xff
			base += 4
		}
	}
}
