package systems

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// AnimationSystem steps every sprite's frame column at half the simulation
// tick rate
type AnimationSystem struct {
	tick uint64
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances sprite frames. Ticks count from 1; sprites advance on the
// even ones.
func (s *AnimationSystem) Update(world *ecs.World, dt float64) {
	s.tick++
	for _, entity := range world.EntitiesWithComponent(components.Sprite) {
		comp, ok := world.GetComponent(entity.ID, components.Sprite)
		if !ok {
			continue
		}
		comp.(*components.SpriteComponent).AdvanceOnEven(s.tick)
	}
}
