package ecs

import "sync/atomic"

// EntityID uniquely identifies an entity for its lifetime
type EntityID uint64

var lastEntityID uint64

func nextEntityID() EntityID {
	return EntityID(atomic.AddUint64(&lastEntityID, 1))
}

// Entity is a game object: an identifier plus lookup tags. All of its data
// lives in components attached through the world.
type Entity struct {
	ID EntityID
	// Tags give quick named access to well-known entities ("player", "scene")
	Tags map[string]bool
}

func newEntity() *Entity {
	return &Entity{
		ID:   nextEntityID(),
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity carries a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
