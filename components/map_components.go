package components

import (
	"image"
	"sort"

	"ebiten-dungeon/config"
)

// Layer selects one of the two independent placement surfaces
type Layer int

const (
	LayerFloor Layer = iota
	LayerWall

	layerCount
)

// Cell is a discrete grid coordinate
type Cell struct {
	X, Y int
}

// CellFromWorld truncates world coordinates onto the placement grid
func CellFromWorld(x, y float64) Cell {
	return Cell{X: int(x) / config.GridSize, Y: int(y) / config.GridSize}
}

// Tile is one placed catalog entry. Value type: placing copies it into the
// layer, so edits to the catalog never reach the scene.
type Tile struct {
	Name     string
	Animated bool
	Src      image.Rectangle
	// World position, derived from the cell on placement
	X, Y float64
	// Level is a wall attribute carried through from the editor toggle
	Level bool

	// placement sequence, breaks depth-sort ties in insertion order
	seq uint64
}

// SceneMapComponent is the editable scene: a floor layer and a wall layer,
// each a sparse mapping from cell to at most one tile. It grows and shrinks
// only through editor mutations.
type SceneMapComponent struct {
	layers  [layerCount]map[Cell]Tile
	nextSeq uint64
}

// NewSceneMapComponent creates an empty scene map
func NewSceneMapComponent() *SceneMapComponent {
	m := &SceneMapComponent{}
	for i := range m.layers {
		m.layers[i] = make(map[Cell]Tile)
	}
	return m
}

// Place writes tile into the cell of the given layer, replacing any prior
// occupant. The tile's world position is derived from the cell; the removal
// before insert keeps replace semantics explicit rather than overwriting in
// place.
func (m *SceneMapComponent) Place(layer Layer, cell Cell, tile Tile) {
	grid := m.layers[layer]
	delete(grid, cell)

	tile.X = float64(cell.X * config.GridSize)
	tile.Y = float64(cell.Y * config.GridSize)
	tile.seq = m.nextSeq
	m.nextSeq++
	grid[cell] = tile
}

// Erase removes the tile at the cell if present; erasing an empty cell is a
// no-op
func (m *SceneMapComponent) Erase(layer Layer, cell Cell) {
	delete(m.layers[layer], cell)
}

// TileAt looks up the tile occupying a cell
func (m *SceneMapComponent) TileAt(layer Layer, cell Cell) (Tile, bool) {
	tile, ok := m.layers[layer][cell]
	return tile, ok
}

// Len returns how many tiles a layer holds
func (m *SceneMapComponent) Len(layer Layer) int {
	return len(m.layers[layer])
}

// Tiles returns every tile in the layer. Iteration order carries no meaning;
// draw order is decided by the compositor.
func (m *SceneMapComponent) Tiles(layer Layer) []Tile {
	grid := m.layers[layer]
	tiles := make([]Tile, 0, len(grid))
	for _, tile := range grid {
		tiles = append(tiles, tile)
	}
	return tiles
}

// WallsByDepth returns the wall layer ordered back to front for the
// painter's pass: ascending y, placement order on equal y.
func (m *SceneMapComponent) WallsByDepth() []Tile {
	walls := m.Tiles(LayerWall)
	sort.Slice(walls, func(i, j int) bool {
		if walls[i].Y != walls[j].Y {
			return walls[i].Y < walls[j].Y
		}
		return walls[i].seq < walls[j].seq
	})
	return walls
}
