package entity

import (
	"image/color"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Ball moves freely and bounces off everything it runs into
type Ball struct {
	BaseEntity
}

// NewBall creates a ball with the given hitbox and starting velocity
func NewBall(hitbox physics.Rectangle, velocity physics.Vector2D, c color.RGBA) *Ball {
	return &Ball{BaseEntity: newBaseEntity(hitbox, velocity, c)}
}

// Update integrates the ball's motion
func (b *Ball) Update(deltaTime float64) {
	b.Physics.ApplyVelocity(deltaTime)
}

// CollisionType implements Entity
func (b *Ball) CollisionType() CollisionType {
	return CollisionMovable
}

// OnCollision reflects the ball off walls, paddles and other movables, and
// knocks out blocks it bounces off.
func (b *Ball) OnCollision(other Entity) bool {
	switch other.CollisionType() {
	case CollisionWall, CollisionMovable:
		return b.bounceOff(other.Body().Hitbox)
	case CollisionBlock:
		if !b.bounceOff(other.Body().Hitbox) {
			return false
		}
		other.Despawn()
		return true
	default:
		return false
	}
}

// bounceOff reflects the ball's velocity about the closest obstacle edge
// its path went through. Two extras on top of the plain reflection:
//
//   - Crossings of edges the ball is moving away from (velocity·outward >= 0)
//     are skipped, so a ball already inside an obstacle is not turned back in.
//   - The position is corrected too. The part of the crossing corner's path
//     past the edge is mirrored about the same normal, so the ball ends the
//     tick outside the obstacle instead of overlapping it until the next tick.
func (b *Ball) bounceOff(obstacle physics.Rectangle) bool {
	corners := b.Physics.Hitbox.Corners()

	for _, crossing := range physics.SweptCrossings(&b.Physics, obstacle) {
		if b.Physics.Velocity.Dot(crossing.Edge.Outward) >= 0 {
			// leaving through this edge, not entering
			continue
		}

		edge := crossing.Edge.Segment
		normal := edge.Vector().CloserNormal(b.Physics.PreviousPosition.Sub(edge.Start))

		b.Physics.Velocity = b.Physics.Velocity.Reflect(normal)

		cornerEnd := b.Physics.Hitbox.Position.Add(corners[crossing.Corner])
		penetration := cornerEnd.Sub(crossing.Point)
		mirrored := crossing.Point.Add(penetration.Reflect(normal))
		b.Physics.Hitbox.Position.AddAssign(mirrored.Sub(cornerEnd))
		return true
	}
	return false
}
