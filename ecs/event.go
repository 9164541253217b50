package ecs

// EventType identifies different kinds of events
type EventType string

// Event is anything a system can emit through the event manager
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventManager dispatches events to subscribed handlers. Dispatch is
// synchronous; handlers run on the frame that emitted the event.
type EventManager struct {
	subscribers map[EventType][]EventHandler
}

// NewEventManager creates an empty event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Emit dispatches an event to all handlers subscribed to its type
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}
