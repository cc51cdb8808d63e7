// pkg/render/renderer.go
package render

import (
	"context"
	"image/color"
	"sync"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/logging"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// NullRenderer is a headless implementation of entity.Renderer. It draws
// nothing, counts what it is asked to draw, and logs frames at debug level.
type NullRenderer struct {
	logger *logging.Logger

	mu         sync.Mutex
	frames     int
	rects      int
	frameRects int
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frameRects = 0
}

// RenderRect implements entity.Renderer.
func (d *NullRenderer) RenderRect(rect physics.Rectangle, c color.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rects++
	d.frameRects++
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.mu.Lock()
	d.frames++
	frame, rects := d.frames, d.frameRects
	d.mu.Unlock()

	d.logger.Debug(context.Background(), "frame presented",
		"frame", frame,
		"rects", rects,
	)
}

// Frames returns the number of presented frames
func (d *NullRenderer) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Rects returns the number of rectangles drawn across all frames
func (d *NullRenderer) Rects() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rects
}

var _ entity.Renderer = (*NullRenderer)(nil)
