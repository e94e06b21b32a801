package main

import (
	"errors"
	"image/color"
)

// defaultPalette is the fixed ordered set of display colors cells are born
// with. Cells reference it by index; the index is assigned at birth and never
// changes while the cell survives.
var defaultPalette = []color.RGBA{
	{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
	{R: 0xff, G: 0xb3, B: 0x4d, A: 0xff},
	{R: 0xff, G: 0xe6, B: 0x6d, A: 0xff},
	{R: 0x6b, G: 0xe6, B: 0x8a, A: 0xff},
	{R: 0x5c, G: 0xc8, B: 0xff, A: 0xff},
	{R: 0xc8, G: 0x8c, B: 0xff, A: 0xff},
}

// validatePalette rejects palettes the cell encoding cannot address. Cell
// state is a byte holding index+1, so at most 255 colors are representable.
func validatePalette(pal []color.RGBA) error {
	if len(pal) == 0 {
		return errors.New("palette must contain at least one color")
	}
	if len(pal) > 255 {
		return errors.New("palette must contain at most 255 colors")
	}
	return nil
}
