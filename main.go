package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/config"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--view-sheet" {
		// Run the spritesheet viewer for authoring catalog entries
		viewer, err := NewSheetViewer(config.SpriteSheetPath, config.CatalogPath)
		if err != nil {
			log.Fatal(err)
		}
		ebiten.SetWindowSize(config.GetWindowSize())
		ebiten.SetWindowTitle("Dungeon Editor - Sheet Viewer")
		if err := ebiten.RunGame(viewer); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GetWindowSize())
	ebiten.SetWindowTitle("Dungeon Editor")
	ebiten.SetVsyncEnabled(true)
	// Close requests set the done flag so the loop winds down itself
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
