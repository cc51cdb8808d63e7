// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Viewport maps a fixed world area onto the window. The whole board is
// always visible, so there is no camera movement; the view is scaled
// uniformly and centered.
type Viewport struct {
	view    physics.Rectangle
	scale   float32
	offsetX float32
	offsetY float32
}

// NewViewport fits view into a width x height window
func NewViewport(view physics.Rectangle, width, height float32) Viewport {
	v := Viewport{view: view}
	if view.Width() <= 0 || view.Height() <= 0 || width <= 0 || height <= 0 {
		return v
	}
	v.scale = min(width/float32(view.Width()), height/float32(view.Height()))
	v.offsetX = (width - float32(view.Width())*v.scale) / 2
	v.offsetY = (height - float32(view.Height())*v.scale) / 2
	return v
}

// Scale returns screen pixels per world unit
func (v Viewport) Scale() float32 {
	return v.scale
}

// ToScreen converts a world point to window coordinates
func (v Viewport) ToScreen(p physics.Vector2D) engo.Point {
	return engo.Point{
		X: v.offsetX + float32(p.X-v.view.Left())*v.scale,
		Y: v.offsetY + float32(p.Y-v.view.Top())*v.scale,
	}
}

// ToScreenRect converts a world rectangle to a window position and size
func (v Viewport) ToScreenRect(r physics.Rectangle) (engo.Point, float32, float32) {
	return v.ToScreen(r.Position), float32(r.Width()) * v.scale, float32(r.Height()) * v.scale
}
