package ecs

// System processes entities once per simulation tick. dt is the elapsed time
// of the tick in milliseconds.
type System interface {
	Update(world *World, dt float64)
}
