package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-dungeon/components"
)

func wallsAt(ys ...float64) []components.Tile {
	walls := make([]components.Tile, len(ys))
	for i, y := range ys {
		walls[i].Y = y
	}
	return walls
}

func TestPlayerDrawIndex(t *testing.T) {
	for _, tc := range []struct {
		name    string
		walls   []components.Tile
		playerY float64
		want    int
	}{
		{
			name:    "between walls",
			walls:   wallsAt(10, 40, 60, 90),
			playerY: 50,
			want:    2, // drawn right before the wall at y=60
		},
		{
			name:    "behind everything",
			walls:   wallsAt(10, 40, 60, 90),
			playerY: 5,
			want:    0,
		},
		{
			name:    "in front of everything",
			walls:   wallsAt(10, 40, 60, 90),
			playerY: 100,
			want:    4,
		},
		{
			name:    "equal y is not in front",
			walls:   wallsAt(10, 50, 90),
			playerY: 50,
			want:    2,
		},
		{
			name:    "no walls",
			walls:   nil,
			playerY: 50,
			want:    0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, playerDrawIndex(tc.walls, tc.playerY))
		})
	}
}

func TestCycleIndex(t *testing.T) {
	assert.Equal(t, 1, cycleIndex(0, 3, true))
	assert.Equal(t, 0, cycleIndex(2, 3, true), "wraps forward")
	assert.Equal(t, 2, cycleIndex(0, 3, false), "wraps backward")
	assert.Equal(t, 0, cycleIndex(5, 0, true), "empty list pins to zero")
}

func TestSelectionLayer(t *testing.T) {
	sel := &Selection{}
	assert.Equal(t, components.LayerFloor, sel.Layer())

	sel.Wall = true
	assert.Equal(t, components.LayerWall, sel.Layer())
}
