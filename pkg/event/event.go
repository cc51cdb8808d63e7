// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted    Type = "game_started"
	GameEnded      Type = "game_ended"
	BallBounced    Type = "ball_bounced"
	PaddleHit      Type = "paddle_hit"
	PaddleStopped  Type = "paddle_stopped"
	BlockDespawned Type = "block_despawned"
	BallLost       Type = "ball_lost"
	BoardCleared   Type = "board_cleared"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// BlockEvent is published when a block leaves play
type BlockEvent struct {
	BaseEvent
	BlockID   uint64
	Row       int
	Column    int
	Remaining int
}

// NewBlockEvent creates a new block event
func NewBlockEvent(source interface{}, blockID uint64, row, column, remaining int) *BlockEvent {
	return &BlockEvent{
		BaseEvent: BaseEvent{
			EventType: BlockDespawned,
			Source:    source,
		},
		BlockID:   blockID,
		Row:       row,
		Column:    column,
		Remaining: remaining,
	}
}

// CollisionEvent contains information about resolved collisions
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
	Tick    uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(eventType Type, source interface{}, entityA, entityB uint64, tick uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityA: entityA,
		EntityB: entityB,
		Tick:    tick,
	}
}
