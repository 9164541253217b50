package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
)

// RenderSystem composes one frame with the painter's algorithm: floor tiles
// first, then wall tiles and the player interleaved by vertical position,
// then the free-standing actors, then editor chrome. Only the player
// participates in wall occlusion; mutual occlusion between actors is not
// modeled.
type RenderSystem struct {
	sheet *SpriteSheet
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(sheet *SpriteSheet) *RenderSystem {
	return &RenderSystem{sheet: sheet}
}

// playerDrawIndex returns how many sorted wall tiles are drawn behind the
// player: the index of the first wall whose y exceeds the player's. If none
// does, the player draws after every wall.
func playerDrawIndex(walls []components.Tile, playerY float64) int {
	for i, tile := range walls {
		if tile.Y > playerY {
			return i
		}
	}
	return len(walls)
}

// Draw renders the whole scene for one frame
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image, frameCount uint64, sel *Selection, pointerCaptured bool) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	sceneMap := SceneMap(world)
	if sceneMap == nil {
		return
	}

	for _, tile := range sceneMap.Tiles(components.LayerFloor) {
		s.drawTile(screen, tile, frameCount)
	}

	playerPos, playerSprite := s.playerParts(world)

	walls := sceneMap.WallsByDepth()
	playerDrawn := playerPos == nil
	insertAt := len(walls)
	if playerPos != nil {
		insertAt = playerDrawIndex(walls, playerPos.Y)
	}
	for i, tile := range walls {
		if i == insertAt && !playerDrawn {
			s.drawActor(screen, playerPos, playerSprite)
			playerDrawn = true
		}
		s.drawTile(screen, tile, frameCount)
	}
	if !playerDrawn {
		s.drawActor(screen, playerPos, playerSprite)
	}

	s.drawFreeActors(world, screen)

	if sel.Editing && !pointerCaptured {
		s.drawHoverCursor(screen)
	}
}

// drawTile paints one placed tile; animated terrain cycles its frame column
// at half the tick rate, in step with the sprites
func (s *RenderSystem) drawTile(screen *ebiten.Image, tile components.Tile, frameCount uint64) {
	src := tile.Src
	if tile.Animated {
		column := int(frameCount / 2 % config.FramesPerRow)
		src = src.Add(image.Pt(column*src.Dx(), 0))
	}
	s.sheet.DrawTile(screen, src, tile.X, tile.Y)
}

func (s *RenderSystem) drawActor(screen *ebiten.Image, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	if pos == nil || sprite == nil {
		return
	}
	src := sprite.FrameRect()
	dx, dy, _, _ := sprite.DestRect(pos.X, pos.Y, config.WindowHeight)
	s.sheet.DrawSprite(screen, src, dx, dy, sprite.FacingLeft())
}

// drawFreeActors paints every sprite entity except the player, outside the
// occlusion pass
func (s *RenderSystem) drawFreeActors(world *ecs.World, screen *ebiten.Image) {
	for _, entity := range world.EntitiesWithComponent(components.Sprite) {
		if entity.HasTag("player") {
			continue
		}
		posComp, hasPos := world.GetComponent(entity.ID, components.Position)
		sprComp, hasSpr := world.GetComponent(entity.ID, components.Sprite)
		if !hasPos || !hasSpr {
			continue
		}
		s.drawActor(screen, posComp.(*components.PositionComponent), sprComp.(*components.SpriteComponent))
	}
}

func (s *RenderSystem) playerParts(world *ecs.World) (*components.PositionComponent, *components.SpriteComponent) {
	players := world.EntitiesWithTag("player")
	if len(players) == 0 {
		return nil, nil
	}
	posComp, hasPos := world.GetComponent(players[0].ID, components.Position)
	sprComp, hasSpr := world.GetComponent(players[0].ID, components.Sprite)
	if !hasPos || !hasSpr {
		return nil, nil
	}
	return posComp.(*components.PositionComponent), sprComp.(*components.SpriteComponent)
}

// drawHoverCursor outlines the grid cell under the pointer
func (s *RenderSystem) drawHoverCursor(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= config.PanelX || my >= config.WindowHeight {
		return
	}
	cellPx := config.GridSize * config.WorldScale
	cx := mx - mx%cellPx
	cy := my - my%cellPx
	vector.StrokeRect(screen, float32(cx), float32(cy),
		float32(cellPx), float32(cellPx), 1, color.RGBA{150, 150, 150, 255}, false)
}
