package config

// Screen and world layout configuration
const (
	// TileSize is the edge of one source tile in the spritesheet, in pixels
	TileSize = 16

	// WorldScale is the uniform world-to-screen magnification. All world
	// coordinates (actors and placed tiles) are in source pixels; the
	// renderer multiplies by this factor exactly once.
	WorldScale = 2

	// GridSize is the placement cell edge in world units
	GridSize = TileSize

	// Window dimensions in pixels
	WindowWidth  = 1280
	WindowHeight = 720

	// Editor panel layout (right sidebar)
	PanelWidth = 280
	PanelX     = WindowWidth - PanelWidth
)

// Animation layout of the spritesheet: each sprite has up to three rows of
// four frames laid out horizontally after its base rectangle.
const (
	FramesPerRow = 4
	RunRowOffset = 4
	HitRowOffset = 8
)

// Simulation cadence
const (
	// TickRate is the target simulation frequency in Hz
	TickRate = 30

	// MinFrameMillis is the minimum time between simulation ticks
	MinFrameMillis = 1000 / TickRate

	// MinimizedDelayMillis is how long to sleep when the window is minimized
	MinimizedDelayMillis = 10
)

// Gameplay constants
const (
	// PlayerSpeed is the player's walking speed in world units per millisecond
	PlayerSpeed = 0.06

	PlayerStartX = 100
	PlayerStartY = 100

	// The shown enemy is pinned to a fixed spot next to the stage
	EnemyPosX = 300
	EnemyPosY = 100
)

// Asset paths
const (
	SpriteSheetPath = "0x72_DungeonTilesetII_v1.7.png"
	CatalogPath     = "tile_list_v1.7.txt"
)

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
