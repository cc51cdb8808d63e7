// pkg/entity/player.go
package entity

import (
	"image/color"
	"math"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Direction is the paddle's current steering input
type Direction int

const (
	Idle Direction = iota
	Left
	Right
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case Idle:
		return "idle"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the paddle. It only ever moves horizontally and acts as a wall
// for anything that runs into it.
type Player struct {
	BaseEntity
	Direction Direction
}

// NewPlayer creates a paddle that slides at speed units per second
func NewPlayer(hitbox physics.Rectangle, speed float64, c color.RGBA) *Player {
	return &Player{
		BaseEntity: newBaseEntity(hitbox, physics.Vector2D{X: speed}, c),
		Direction:  Idle,
	}
}

// Update moves the paddle along the x axis in its current direction. An
// idle paddle has an empty tick segment.
func (p *Player) Update(deltaTime float64) {
	switch p.Direction {
	case Left:
		p.Physics.Velocity.X = -math.Abs(p.Physics.Velocity.X)
		p.Physics.ApplyVelocity(deltaTime)
	case Right:
		p.Physics.Velocity.X = math.Abs(p.Physics.Velocity.X)
		p.Physics.ApplyVelocity(deltaTime)
	case Idle:
		p.Physics.PreviousPosition = p.Physics.Hitbox.Position
	}
}

// CollisionType implements Entity
func (p *Player) CollisionType() CollisionType {
	return CollisionWall
}

// OnCollision stops the paddle at walls and deflects movable objects
func (p *Player) OnCollision(other Entity) bool {
	switch other.CollisionType() {
	case CollisionWall:
		return p.stopAt(other.Body().Hitbox)
	case CollisionMovable:
		return p.deflect(other.Body())
	default:
		return false
	}
}

// stopAt clamps the paddle against the obstacle edge it slid through
func (p *Player) stopAt(obstacle physics.Rectangle) bool {
	crossing, ok := physics.ClosestCrossing(&p.Physics, obstacle)
	if !ok {
		return false
	}

	switch p.Direction {
	case Left:
		p.Physics.Hitbox.Position.X = crossing.Point.X
	case Right:
		p.Physics.Hitbox.Position.X = crossing.Point.X - p.Physics.Hitbox.Width()
	default:
		return false
	}
	return true
}

// deflect sends the other body upwards. The further from the paddle's left
// edge it lands, the further right it goes: -1 at the left edge, 0 in the
// middle, 1 at the right edge. Speed is preserved.
func (p *Player) deflect(other *physics.Body) bool {
	if !other.Hitbox.Intersects(p.Physics.Hitbox) {
		return false
	}

	halfWidth := p.Physics.Hitbox.Width() / 2
	scaled := 0.0
	if halfWidth > 0 {
		scaled = math.Abs(other.Hitbox.Center().X-p.Physics.Hitbox.Left())/halfWidth - 1
	}

	speed := other.Velocity.Length()
	other.Velocity = physics.Vector2D{X: scaled, Y: -1}.SetLength(speed)
	return true
}
