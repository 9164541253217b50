package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
)

// MovementSystem reads the keyboard into the player's heading and sprite
// state, then integrates the position. Eight-way movement on the arrow
// keys; A swings.
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update handles player input and movement
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	players := world.EntitiesWithTag("player")
	if len(players) == 0 {
		return
	}
	playerID := players[0].ID

	posComp, hasPos := world.GetComponent(playerID, components.Position)
	velComp, hasVel := world.GetComponent(playerID, components.Velocity)
	sprComp, hasSpr := world.GetComponent(playerID, components.Sprite)
	if !hasPos || !hasVel || !hasSpr {
		return
	}
	pos := posComp.(*components.PositionComponent)
	vel := velComp.(*components.VelocityComponent)
	sprite := sprComp.(*components.SpriteComponent)

	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	// World y grows upward, so "up" is the 90 degree heading
	switch {
	case up:
		vel.Speed = config.PlayerSpeed
		switch {
		case left:
			vel.AngleDeg = 135
			sprite.SetRunning(true)
		case right:
			vel.AngleDeg = 45
			sprite.SetRunning(false)
		default:
			vel.AngleDeg = 90
			sprite.SetRunningAhead()
		}
	case down:
		vel.Speed = config.PlayerSpeed
		switch {
		case left:
			vel.AngleDeg = 225
			sprite.SetRunning(true)
		case right:
			vel.AngleDeg = 315
			sprite.SetRunning(false)
		default:
			vel.AngleDeg = 270
			sprite.SetRunningAhead()
		}
	case left:
		vel.Speed = config.PlayerSpeed
		vel.AngleDeg = 180
		sprite.SetRunning(true)
	case right:
		vel.Speed = config.PlayerSpeed
		vel.AngleDeg = 0
		sprite.SetRunning(false)
	default:
		vel.Speed = 0
		sprite.SetIdle()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		sprite.SetHit()
	}

	vel.Integrate(pos, dt)
}
