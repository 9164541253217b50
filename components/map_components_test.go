package components

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-dungeon/config"
)

func floorTile(name string) Tile {
	return Tile{Name: name, Src: image.Rect(16, 64, 32, 80)}
}

func TestCellFromWorld(t *testing.T) {
	for _, tc := range []struct {
		x, y float64
		want Cell
	}{
		{0, 0, Cell{0, 0}},
		{15.9, 15.9, Cell{0, 0}},
		{16, 16, Cell{1, 1}},
		{33, 47, Cell{2, 2}},
		{640, 360, Cell{40, 22}},
	} {
		assert.Equal(t, tc.want, CellFromWorld(tc.x, tc.y), "world (%v,%v)", tc.x, tc.y)
	}
}

func TestPlaceReplacesOccupant(t *testing.T) {
	m := NewSceneMapComponent()
	cell := Cell{2, 3}

	m.Place(LayerFloor, cell, floorTile("floor_1"))
	m.Place(LayerFloor, cell, floorTile("floor_2"))

	assert.Equal(t, 1, m.Len(LayerFloor), "a cell holds at most one tile")
	tile, ok := m.TileAt(LayerFloor, cell)
	assert.True(t, ok)
	assert.Equal(t, "floor_2", tile.Name, "last write wins")
}

func TestPlaceDerivesWorldPosition(t *testing.T) {
	m := NewSceneMapComponent()
	m.Place(LayerWall, Cell{4, 7}, floorTile("wall_mid"))

	tile, ok := m.TileAt(LayerWall, Cell{4, 7})
	assert.True(t, ok)
	assert.Equal(t, float64(4*config.GridSize), tile.X)
	assert.Equal(t, float64(7*config.GridSize), tile.Y)
}

func TestEraseEmptyCellIsNoOp(t *testing.T) {
	m := NewSceneMapComponent()
	m.Place(LayerFloor, Cell{1, 1}, floorTile("floor_1"))

	m.Erase(LayerFloor, Cell{9, 9})
	assert.Equal(t, 1, m.Len(LayerFloor))
}

func TestPlaceEraseRoundTrip(t *testing.T) {
	m := NewSceneMapComponent()
	cell := Cell{5, 5}

	m.Place(LayerFloor, cell, floorTile("floor_1"))
	m.Erase(LayerFloor, cell)

	assert.Equal(t, 0, m.Len(LayerFloor))
	_, ok := m.TileAt(LayerFloor, cell)
	assert.False(t, ok)
}

func TestLayersAreIndependent(t *testing.T) {
	m := NewSceneMapComponent()
	cell := Cell{3, 3}

	m.Place(LayerFloor, cell, floorTile("floor_1"))
	m.Place(LayerWall, cell, floorTile("wall_mid"))
	assert.Equal(t, 1, m.Len(LayerFloor))
	assert.Equal(t, 1, m.Len(LayerWall))

	m.Erase(LayerWall, cell)
	assert.Equal(t, 0, m.Len(LayerWall))
	assert.Equal(t, 1, m.Len(LayerFloor), "wall edits leave the floor alone")
}

func TestWallsByDepth(t *testing.T) {
	m := NewSceneMapComponent()
	m.Place(LayerWall, Cell{0, 5}, floorTile("far"))
	m.Place(LayerWall, Cell{2, 1}, floorTile("near_a"))
	m.Place(LayerWall, Cell{7, 1}, floorTile("near_b"))
	m.Place(LayerWall, Cell{4, 3}, floorTile("mid"))

	var names []string
	for _, tile := range m.WallsByDepth() {
		names = append(names, tile.Name)
	}
	assert.Equal(t, []string{"near_a", "near_b", "mid", "far"}, names,
		"ascending y, placement order on ties")
}
