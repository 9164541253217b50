package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/systems"
)

// SheetViewer implements ebiten.Game: a scrollable view of the texture
// atlas with every catalog source rectangle outlined, for authoring new
// tile list entries.
type SheetViewer struct {
	sheet   *systems.SpriteSheet
	catalog *data.Catalog

	offsetX int // scrolling offset in source pixels
	offsetY int
}

// NewSheetViewer loads the atlas and catalog for inspection
func NewSheetViewer(sheetPath, catalogPath string) (*SheetViewer, error) {
	sheet, err := systems.NewSpriteSheet(sheetPath)
	if err != nil {
		return nil, err
	}
	catalog, err := data.LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	return &SheetViewer{sheet: sheet, catalog: catalog}, nil
}

// Update handles scrolling
func (v *SheetViewer) Update() error {
	step := config.TileSize
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step *= 4
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.offsetX += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) && v.offsetX > 0 {
		v.offsetX -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.offsetY += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) && v.offsetY > 0 {
		v.offsetY -= step
	}
	if v.offsetX < 0 {
		v.offsetX = 0
	}
	if v.offsetY < 0 {
		v.offsetY = 0
	}
	return nil
}

// Draw shows the atlas with catalog rectangles outlined
func (v *SheetViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.WorldScale, config.WorldScale)
	op.GeoM.Translate(float64(-v.offsetX*config.WorldScale), float64(-v.offsetY*config.WorldScale))
	screen.DrawImage(v.sheet.Image, op)

	for _, tile := range v.catalog.Tiles {
		clr := color.RGBA{120, 180, 255, 255}
		if tile.Animated {
			clr = color.RGBA{120, 255, 180, 255}
		}
		v.outline(screen, tile.Src.Min.X, tile.Src.Min.Y, tile.Src.Dx(), tile.Src.Dy(), clr)
	}
	for _, def := range v.catalog.Characters {
		v.outline(screen, def.Src.Min.X, def.Src.Min.Y, def.Src.Dx(), def.Src.Dy(),
			color.RGBA{255, 220, 120, 255})
	}
	for _, def := range v.catalog.Enemies {
		v.outline(screen, def.Src.Min.X, def.Src.Min.Y, def.Src.Dx(), def.Src.Dy(),
			color.RGBA{255, 120, 120, 255})
	}

	bounds := v.sheet.Image.Bounds()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"sheet %dx%d  tiles %d  characters %d  enemies %d  offset %d,%d  (arrows scroll, shift is faster)",
		bounds.Dx(), bounds.Dy(),
		len(v.catalog.Tiles), len(v.catalog.Characters), len(v.catalog.Enemies),
		v.offsetX, v.offsetY))
}

// outline strokes one source rectangle in screen space
func (v *SheetViewer) outline(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	sx := float32((x - v.offsetX) * config.WorldScale)
	sy := float32((y - v.offsetY) * config.WorldScale)
	vector.StrokeRect(screen, sx, sy,
		float32(w*config.WorldScale), float32(h*config.WorldScale), 1, clr, false)
}

// Layout implements ebiten.Game's Layout
func (v *SheetViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
