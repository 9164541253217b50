package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/ecs"
)

// Selection is the editor's explicit pick state. It is passed into the
// systems that need it rather than living in package globals, so the
// compositor and sprites stay free of editor coupling.
type Selection struct {
	Character int
	Enemy     int
	Tile      int

	// Wall routes placements into the wall layer instead of the floor
	Wall bool
	// Level is a wall attribute carried onto new wall placements
	Level bool
	// EnemyRun keeps the shown enemy in its running animation
	EnemyRun bool
	// Editing enables world clicks and the hover cursor
	Editing bool
}

// Layer returns the placement layer the selection points at
func (sel *Selection) Layer() components.Layer {
	if sel.Wall {
		return components.LayerWall
	}
	return components.LayerFloor
}

// EditorSystem turns pointer input into scene map mutations: left click
// places the selected tile at the clicked cell, right click erases it.
// Input is ignored while the pointer is captured by the panel.
type EditorSystem struct {
	catalog *data.Catalog
}

// NewEditorSystem creates an editor bound to a catalog
func NewEditorSystem(catalog *data.Catalog) *EditorSystem {
	return &EditorSystem{catalog: catalog}
}

// Update applies one tick of editor input to the scene map
func (s *EditorSystem) Update(world *ecs.World, sel *Selection) {
	if !sel.Editing {
		return
	}

	sceneMap := SceneMap(world)
	if sceneMap == nil {
		return
	}

	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= config.PanelX {
		return
	}
	cell := components.CellFromWorld(
		float64(mx)/config.WorldScale,
		float64(my)/config.WorldScale,
	)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		sel.Tile = s.catalog.ClampTile(sel.Tile)
		if len(s.catalog.Tiles) == 0 {
			return
		}
		tile := s.catalog.Tiles[sel.Tile]
		if sel.Wall {
			tile.Level = sel.Level
		}
		sceneMap.Place(sel.Layer(), cell, tile)
		world.EmitEvent(TilePlacedEvent{Name: tile.Name, Cell: cell, Layer: sel.Layer()})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		sceneMap.Erase(sel.Layer(), cell)
		world.EmitEvent(TileErasedEvent{Cell: cell, Layer: sel.Layer()})
	}
}

// SceneMap returns the scene map component from the tagged scene entity
func SceneMap(world *ecs.World) *components.SceneMapComponent {
	entities := world.EntitiesWithTag("scene")
	if len(entities) == 0 {
		return nil
	}
	comp, ok := world.GetComponent(entities[0].ID, components.SceneMapID)
	if !ok {
		return nil
	}
	return comp.(*components.SceneMapComponent)
}
