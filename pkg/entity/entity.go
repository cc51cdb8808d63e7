// pkg/entity/entity.go
package entity

import (
	"image/color"
	"sync/atomic"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var nextID atomic.Uint64

// GenerateID returns a new process-unique entity ID
func GenerateID() ID {
	return ID(nextID.Add(1))
}

// CollisionType is the coarse class an entity presents to the entity it
// collides with. Responses branch on the other entity's type.
type CollisionType int

const (
	CollisionWall CollisionType = iota
	CollisionMovable
	CollisionBlock
)

// String returns the collision type name
func (c CollisionType) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionMovable:
		return "movable"
	case CollisionBlock:
		return "block"
	default:
		return "unknown"
	}
}

// DespawnPosition is where despawned entities are parked, far outside any
// playfield, so they neither collide nor show up on screen.
var DespawnPosition = physics.Vector2D{X: -1e9, Y: -1e9}

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	Body() *physics.Body
	Update(deltaTime float64)
	CollisionType() CollisionType
	// OnCollision resolves a broad-phase overlap with other. It reports
	// whether any state was changed.
	OnCollision(other Entity) bool
	Despawn()
	IsActive() bool
	Render(r Renderer)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID      ID
	Physics physics.Body
	Color   color.RGBA
	Active  bool
}

func newBaseEntity(hitbox physics.Rectangle, velocity physics.Vector2D, c color.RGBA) BaseEntity {
	return BaseEntity{
		ID:      GenerateID(),
		Physics: physics.NewBody(hitbox, velocity),
		Color:   c,
		Active:  true,
	}
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// Body returns the entity's mutable physics state
func (e *BaseEntity) Body() *physics.Body {
	return &e.Physics
}

// Hitbox returns the entity's current bounding rectangle
func (e *BaseEntity) Hitbox() physics.Rectangle {
	return e.Physics.Hitbox
}

// Update does nothing for static entities
func (e *BaseEntity) Update(deltaTime float64) {}

// OnCollision does nothing by default
func (e *BaseEntity) OnCollision(other Entity) bool {
	return false
}

// IsActive reports whether the entity still takes part in the game
func (e *BaseEntity) IsActive() bool {
	return e.Active
}

// Despawn takes the entity out of play without removing it from its
// owning collection
func (e *BaseEntity) Despawn() {
	e.Active = false
	e.Physics.Velocity = physics.Vector2D{}
	e.Physics.Hitbox.Position = DespawnPosition
	e.Physics.PreviousPosition = DespawnPosition
}

// Render draws the entity's hitbox in its color
func (e *BaseEntity) Render(r Renderer) {
	if !e.Active {
		return
	}
	r.RenderRect(e.Physics.Hitbox, e.Color)
}

// Intersects is the broad-phase test: it reports whether the boxes swept by
// the two entities during the last tick overlap. For entities that did not
// move this is plain AABB overlap.
func Intersects(a, b Entity) bool {
	return a.Body().SweptBounds().Intersects(b.Body().SweptBounds())
}
