package data

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleList = `terrain floor_1 16 64 16 16
terrainA spikes 16 176 16 16
character knight 128 68 28 16
enemy imp 368 36 16 16
enemyw slug 27 322 14 14
decoration column 80 80 16 32
garbage line
`

func TestParseCatalog(t *testing.T) {
	catalog, err := parseCatalog(strings.NewReader(sampleList))
	assert.NoError(t, err)

	if assert.Len(t, catalog.Tiles, 2, "unknown kinds are skipped") {
		floor := catalog.Tiles[0]
		assert.Equal(t, "floor_1", floor.Name)
		assert.False(t, floor.Animated)
		assert.Equal(t, image.Rect(16, 64, 32, 80), floor.Src)

		assert.True(t, catalog.Tiles[1].Animated, "terrainA is animated")
	}

	if assert.Len(t, catalog.Characters, 1) {
		knight := catalog.Characters[0]
		assert.Equal(t, "knight", knight.Name)
		assert.Equal(t, image.Rect(128, 68, 156, 84), knight.Src)
		assert.True(t, knight.CanRun)
		assert.True(t, knight.CanHit)
	}

	if assert.Len(t, catalog.Enemies, 2) {
		assert.True(t, catalog.Enemies[0].CanRun)
		assert.False(t, catalog.Enemies[0].CanHit, "enemies have no hit row")
		assert.False(t, catalog.Enemies[1].CanRun, "enemyw does not run")
	}
}

func TestParseCatalogEmptyAndBlank(t *testing.T) {
	catalog, err := parseCatalog(strings.NewReader("\n   \n"))
	assert.NoError(t, err)
	assert.Empty(t, catalog.Tiles)
	assert.Empty(t, catalog.Characters)
	assert.Empty(t, catalog.Enemies)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog("does/not/exist.txt")
	assert.Error(t, err)
}

func TestClampSelectionIndexes(t *testing.T) {
	catalog, err := parseCatalog(strings.NewReader(sampleList))
	assert.NoError(t, err)

	assert.Equal(t, 0, catalog.ClampTile(-3))
	assert.Equal(t, 1, catalog.ClampTile(1))
	assert.Equal(t, 1, catalog.ClampTile(99), "out of range clamps to the last entry")
	assert.Equal(t, 0, catalog.ClampCharacter(5))
	assert.Equal(t, 1, catalog.ClampEnemy(7))

	empty := &Catalog{}
	assert.Equal(t, 0, empty.ClampTile(4), "empty catalog clamps to zero")
}
