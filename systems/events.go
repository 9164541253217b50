package systems

import (
	"fmt"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// Event type constants
const (
	EventTilePlaced ecs.EventType = "tile_placed"
	EventTileErased ecs.EventType = "tile_erased"
)

// TilePlacedEvent is emitted after the editor writes a tile into a layer
type TilePlacedEvent struct {
	Name  string
	Cell  components.Cell
	Layer components.Layer
}

// Type returns the event type
func (e TilePlacedEvent) Type() ecs.EventType { return EventTilePlaced }

// TileErasedEvent is emitted after the editor clears a cell
type TileErasedEvent struct {
	Cell  components.Cell
	Layer components.Layer
}

// Type returns the event type
func (e TileErasedEvent) Type() ecs.EventType { return EventTileErased }

func layerName(layer components.Layer) string {
	if layer == components.LayerWall {
		return "wall"
	}
	return "floor"
}

// WireEditorLog subscribes the message log to editor mutation events
func WireEditorLog(world *ecs.World) {
	world.Events().Subscribe(EventTilePlaced, func(ev ecs.Event) {
		e := ev.(TilePlacedEvent)
		GetMessageLog().Add(fmt.Sprintf("placed %s on %s at %d,%d",
			e.Name, layerName(e.Layer), e.Cell.X, e.Cell.Y))
	})
	world.Events().Subscribe(EventTileErased, func(ev ecs.Event) {
		e := ev.(TileErasedEvent)
		GetMessageLog().Add(fmt.Sprintf("erased %s at %d,%d",
			layerName(e.Layer), e.Cell.X, e.Cell.Y))
	})
}
