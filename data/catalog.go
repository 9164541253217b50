package data

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"ebiten-dungeon/components"
)

// Catalog is the immutable set of placeable tiles and spawnable sprite
// definitions parsed from the tile list asset. Loaded once at startup; the
// editor picks entries by index.
type Catalog struct {
	Tiles      []components.Tile
	Characters []components.SpriteDef
	Enemies    []components.SpriteDef
}

// LoadCatalog reads a line-oriented tile list, one record per line:
//
//	<kind> <name> <x> <y> <w> <h>
//
// with kind one of terrain, terrainA (animated terrain), character, enemy,
// or enemyw (non-running enemy). Lines with an unknown kind or malformed
// fields are skipped; a missing file is a startup failure.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tile list: %w", err)
	}
	defer file.Close()

	catalog, err := parseCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile list %s: %w", path, err)
	}
	return catalog, nil
}

func parseCatalog(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var kind, name string
		var x, y, w, h int
		if _, err := fmt.Sscan(line, &kind, &name, &x, &y, &w, &h); err != nil {
			continue
		}
		src := image.Rect(x, y, x+w, y+h)

		switch kind {
		case "terrain":
			catalog.Tiles = append(catalog.Tiles, components.Tile{Name: name, Src: src})
		case "terrainA":
			catalog.Tiles = append(catalog.Tiles, components.Tile{Name: name, Animated: true, Src: src})
		case "character":
			catalog.Characters = append(catalog.Characters, components.SpriteDef{
				Name: name, Src: src, CanRun: true, CanHit: true,
			})
		case "enemy":
			catalog.Enemies = append(catalog.Enemies, components.SpriteDef{
				Name: name, Src: src, CanRun: true,
			})
		case "enemyw":
			catalog.Enemies = append(catalog.Enemies, components.SpriteDef{
				Name: name, Src: src,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ClampTile bounds a tile selection index to the catalog
func (c *Catalog) ClampTile(i int) int {
	return clampIndex(i, len(c.Tiles))
}

// ClampCharacter bounds a character selection index to the catalog
func (c *Catalog) ClampCharacter(i int) int {
	return clampIndex(i, len(c.Characters))
}

// ClampEnemy bounds an enemy selection index to the catalog
func (c *Catalog) ClampEnemy(i int) int {
	return clampIndex(i, len(c.Enemies))
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
