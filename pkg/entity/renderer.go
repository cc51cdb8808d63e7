package entity

import (
	"image/color"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// Renderer handles rendering game entities
type Renderer interface {
	RenderRect(rect physics.Rectangle, c color.RGBA)
	Clear()
	Present()
}
