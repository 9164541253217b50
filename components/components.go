package components

import (
	"math"

	"ebiten-dungeon/ecs"
)

// Component IDs for the scene
const (
	Position ecs.ComponentID = iota
	Velocity
	Sprite
	Player
	SceneMapID
)

// PositionComponent stores an actor's position in world units. The vertical
// axis grows upward; the renderer flips it onto the screen.
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent stores a polar heading. Speed is in world units per
// millisecond; AngleDeg is counterclockwise from the positive x axis.
type VelocityComponent struct {
	Speed    float64
	AngleDeg float64
}

// Integrate advances pos by dt milliseconds along the heading
func (v *VelocityComponent) Integrate(pos *PositionComponent, dt float64) {
	rad := v.AngleDeg * math.Pi / 180
	pos.X += v.Speed * dt * math.Cos(rad)
	pos.Y += v.Speed * dt * math.Sin(rad)
}

// PlayerComponent marks the player-controlled entity
type PlayerComponent struct{}
