// pkg/entity/block.go
package entity

import (
	"image/color"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Block is a destructible brick
type Block struct {
	BaseEntity
	Row    int
	Column int
}

// NewBlock creates a block at the given grid cell
func NewBlock(hitbox physics.Rectangle, c color.RGBA, row, column int) *Block {
	return &Block{
		BaseEntity: newBaseEntity(hitbox, physics.Vector2D{}, c),
		Row:        row,
		Column:     column,
	}
}

// CollisionType implements Entity
func (b *Block) CollisionType() CollisionType {
	return CollisionBlock
}
