package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	g := newGame()
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("Conway's Life on a Klein Bottle")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
