// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// spriteSink is the part of common.RenderSystem the renderer needs
type spriteSink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
	Remove(basic ecs.BasicEntity)
}

// rectSprite is one solid rectangle in the ECS world
type rectSprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer on top of an engo render system.
// Engo draws retained entities, so each frame reuses a pool of rectangle
// sprites: the n-th RenderRect call moves the n-th sprite and Present hides
// whatever the frame did not use.
type EngoRenderer struct {
	sink     spriteSink
	viewport Viewport

	sprites []*rectSprite
	used    int
}

// NewEngoRenderer creates a renderer drawing into sink through viewport
func NewEngoRenderer(sink spriteSink, viewport Viewport) *EngoRenderer {
	return &EngoRenderer{
		sink:     sink,
		viewport: viewport,
	}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	r.used = 0
}

// RenderRect implements entity.Renderer
func (r *EngoRenderer) RenderRect(rect physics.Rectangle, c color.RGBA) {
	sprite := r.nextSprite()

	pos, w, h := r.viewport.ToScreenRect(rect)
	sprite.SpaceComponent.Position = pos
	sprite.SpaceComponent.Width = w
	sprite.SpaceComponent.Height = h
	sprite.RenderComponent.Color = c
	sprite.RenderComponent.Hidden = false
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	for _, sprite := range r.sprites[r.used:] {
		sprite.RenderComponent.Hidden = true
	}
}

// Close removes every sprite from the render system
func (r *EngoRenderer) Close() {
	for _, sprite := range r.sprites {
		r.sink.Remove(sprite.BasicEntity)
	}
	r.sprites = nil
	r.used = 0
}

// nextSprite returns the next pooled sprite, growing the pool when needed
func (r *EngoRenderer) nextSprite() *rectSprite {
	if r.used < len(r.sprites) {
		sprite := r.sprites[r.used]
		r.used++
		return sprite
	}

	sprite := &rectSprite{BasicEntity: ecs.NewBasic()}
	sprite.RenderComponent.Drawable = common.Rectangle{}
	sprite.RenderComponent.Scale = engo.Point{X: 1, Y: 1}
	// later draws stack above earlier ones, so the ball sits on top
	sprite.RenderComponent.SetZIndex(float32(len(r.sprites)))
	r.sink.Add(&sprite.BasicEntity, &sprite.RenderComponent, &sprite.SpaceComponent)

	r.sprites = append(r.sprites, sprite)
	r.used++
	return sprite
}

var _ entity.Renderer = (*EngoRenderer)(nil)
