package entity

import (
	"image/color"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// WallSide identifies which playfield boundary a wall guards
type WallSide int

const (
	WallLeft WallSide = iota
	WallTop
	WallRight
)

// String returns the side name
func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallTop:
		return "top"
	case WallRight:
		return "right"
	default:
		return "unknown"
	}
}

// Wall is a static playfield boundary
type Wall struct {
	BaseEntity
	Side WallSide
}

// NewWall creates a static boundary wall
func NewWall(side WallSide, hitbox physics.Rectangle, c color.RGBA) *Wall {
	return &Wall{
		BaseEntity: newBaseEntity(hitbox, physics.Vector2D{}, c),
		Side:       side,
	}
}

// CollisionType implements Entity
func (w *Wall) CollisionType() CollisionType {
	return CollisionWall
}
