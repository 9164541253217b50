package systems

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/config"
)

// SpriteSheet wraps the texture atlas every tile and actor is drawn from
type SpriteSheet struct {
	Image *ebiten.Image
}

// NewSpriteSheet loads the atlas PNG into a renderer-backed image. Ebiten
// scales with nearest neighbor filtering, which keeps the pixel art crisp
// at WorldScale.
func NewSpriteSheet(path string) (*SpriteSheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spritesheet: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode spritesheet %s: %w", path, err)
	}
	return &SpriteSheet{Image: ebiten.NewImageFromImage(img)}, nil
}

// DrawTile draws a source rectangle at a world position, scaled to screen
func (s *SpriteSheet) DrawTile(target *ebiten.Image, src image.Rectangle, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.WorldScale, config.WorldScale)
	op.GeoM.Translate(x*config.WorldScale, y*config.WorldScale)
	target.DrawImage(s.Image.SubImage(src).(*ebiten.Image), op)
}

// DrawSprite draws an actor frame at a screen anchor, scaled to screen and
// optionally mirrored about the sprite's own center line
func (s *SpriteSheet) DrawSprite(target *ebiten.Image, src image.Rectangle, dx, dy float64, mirrored bool) {
	op := &ebiten.DrawImageOptions{}
	if mirrored {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Dx()), 0)
	}
	op.GeoM.Scale(config.WorldScale, config.WorldScale)
	op.GeoM.Translate(dx, dy)
	target.DrawImage(s.Image.SubImage(src).(*ebiten.Image), op)
}
