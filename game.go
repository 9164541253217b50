package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/systems"
)

// Game implements ebiten.Game: a live tile scene with its editor riding on
// top. Everything runs single threaded from the frame loop; simulation
// ticks are gated to the configured cadence while drawing follows the
// display sync.
type Game struct {
	world        *ecs.World
	catalog      *data.Catalog
	renderSystem *systems.RenderSystem
	editorSystem *systems.EditorSystem
	panel        *systems.EditorPanel

	selection       systems.Selection
	pointerCaptured bool

	playerID ecs.EntityID
	enemyID  ecs.EntityID

	frameCount  uint64
	clock       frameClock
	frameMillis float64
	done        bool
}

// frameClock gates the simulation to the configured cadence. It advances on
// every accepted tick, so a tick's duration only ever spans the gap since the
// previous accepted tick.
type frameClock struct {
	last time.Time
}

// tick reports whether a simulation step is due at now and, if so, advances
// the clock and returns the step duration in milliseconds.
func (c *frameClock) tick(now time.Time) (float64, bool) {
	elapsed := now.Sub(c.last)
	if elapsed < config.MinFrameMillis*time.Millisecond {
		return 0, false
	}
	c.last = now
	return float64(elapsed) / float64(time.Millisecond), true
}

// NewGame loads the assets and builds the scene. Failures here are fatal at
// startup; the game never runs without its atlas and catalog.
func NewGame() (*Game, error) {
	catalog, err := data.LoadCatalog(config.CatalogPath)
	if err != nil {
		return nil, err
	}
	if len(catalog.Characters) == 0 || len(catalog.Enemies) == 0 || len(catalog.Tiles) == 0 {
		return nil, fmt.Errorf("tile list %s has no usable entries", config.CatalogPath)
	}

	sheet, err := systems.NewSpriteSheet(config.SpriteSheetPath)
	if err != nil {
		return nil, err
	}

	panel, err := systems.NewEditorPanel(catalog)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	world.AddSystem(systems.NewMovementSystem())
	world.AddSystem(systems.NewAnimationSystem())
	systems.WireEditorLog(world)

	game := &Game{
		world:        world,
		catalog:      catalog,
		renderSystem: systems.NewRenderSystem(sheet),
		editorSystem: systems.NewEditorSystem(catalog),
		panel:        panel,
		selection:    systems.Selection{Editing: true},
		clock:        frameClock{last: time.Now()},
	}
	game.initialize()
	return game, nil
}

// initialize sets up the scene map and the two live actors
func (g *Game) initialize() {
	scene := g.world.CreateEntity()
	g.world.TagEntity(scene.ID, "scene")
	g.world.AddComponent(scene.ID, components.SceneMapID, components.NewSceneMapComponent())

	player := g.world.CreateEntity()
	g.world.TagEntity(player.ID, "player")
	g.world.AddComponent(player.ID, components.Position,
		&components.PositionComponent{X: config.PlayerStartX, Y: config.PlayerStartY})
	g.world.AddComponent(player.ID, components.Velocity, &components.VelocityComponent{})
	g.world.AddComponent(player.ID, components.Sprite,
		components.NewSpriteComponent(&g.catalog.Characters[0]))
	g.world.AddComponent(player.ID, components.Player, &components.PlayerComponent{})
	g.playerID = player.ID

	enemy := g.world.CreateEntity()
	g.world.TagEntity(enemy.ID, "enemy")
	g.world.AddComponent(enemy.ID, components.Position,
		&components.PositionComponent{X: config.EnemyPosX, Y: config.EnemyPosY})
	g.world.AddComponent(enemy.ID, components.Sprite,
		components.NewSpriteComponent(&g.catalog.Enemies[0]))
	g.enemyID = enemy.ID

	systems.GetMessageLog().Add("editor ready: left click places, right click erases")
	systems.GetMessageLog().Add("arrow keys move, A swings")
}

// Update runs one cooperative frame step
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.done = true
	}
	if g.done {
		return ebiten.Termination
	}

	dt, due := g.clock.tick(time.Now())
	if !due {
		// not an error, just not time for the next tick yet
		return nil
	}
	g.frameMillis = dt
	g.frameCount++

	// The clock keeps ticking while minimized; only input and simulation
	// pause, so the first step after restore spans one frame.
	if ebiten.IsWindowMinimized() {
		time.Sleep(config.MinimizedDelayMillis * time.Millisecond)
		return nil
	}

	g.pointerCaptured = g.panel.Update(&g.selection)
	g.applySelection()
	if !g.pointerCaptured {
		g.editorSystem.Update(g.world, &g.selection)
	}

	g.world.Update(g.frameMillis)
	return nil
}

// applySelection pushes the panel's picks onto the live actors: the player
// wears the selected character sheet, the shown enemy wears the selected
// enemy sheet at its fixed spot.
func (g *Game) applySelection() {
	if comp, ok := g.world.GetComponent(g.playerID, components.Sprite); ok {
		sprite := comp.(*components.SpriteComponent)
		sprite.Def = &g.catalog.Characters[g.catalog.ClampCharacter(g.selection.Character)]
	}

	if comp, ok := g.world.GetComponent(g.enemyID, components.Sprite); ok {
		sprite := comp.(*components.SpriteComponent)
		sprite.Def = &g.catalog.Enemies[g.catalog.ClampEnemy(g.selection.Enemy)]
		if g.selection.EnemyRun {
			sprite.SetRunningAhead()
		} else {
			sprite.SetIdle()
		}
	}
	if comp, ok := g.world.GetComponent(g.enemyID, components.Position); ok {
		pos := comp.(*components.PositionComponent)
		pos.X, pos.Y = config.EnemyPosX, config.EnemyPosY
	}
}

// Draw renders the scene and the editor chrome
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen, g.frameCount, &g.selection, g.pointerCaptured)
	g.panel.Draw(screen, &g.selection, g.frameMillis)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
}

// Layout implements ebiten.Game's Layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
