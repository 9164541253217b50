package ecs

// World owns all entities, their components, and the registered systems.
// It is mutated only from the frame loop; nothing here is safe for
// concurrent use and nothing needs to be.
type World struct {
	entities   map[EntityID]*Entity
	components map[EntityID]componentMap
	systems    []System
	entityTags map[string]map[EntityID]bool
	events     *EventManager
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities:   make(map[EntityID]*Entity),
		components: make(map[EntityID]componentMap),
		entityTags: make(map[string]map[EntityID]bool),
		events:     NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	entity := newEntity()
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(componentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}
	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent attaches a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if comps, exists := w.components[entityID]; exists {
		component, ok := comps[componentID]
		return component, ok
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, ok := w.GetComponent(entityID, componentID)
	return ok
}

// RemoveComponent detaches a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if comps, exists := w.components[entityID]; exists {
		delete(comps, componentID)
	}
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}
	entity.Tags[tag] = true
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// EntitiesWithTag returns all entities carrying a specific tag
func (w *World) EntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	return entities
}

// EntitiesWithComponent returns all entities that have a specific component
func (w *World) EntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for id, comps := range w.components {
		if _, ok := comps[componentID]; ok {
			if entity, exists := w.entities[id]; exists {
				entities = append(entities, entity)
			}
		}
	}
	return entities
}

// AddSystem registers a system to run on every world update
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs all registered systems in registration order
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// Events returns the world's event manager
func (w *World) Events() *EventManager {
	return w.events
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.events.Emit(event)
}
