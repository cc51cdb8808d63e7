package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

// cellAspect is the height of a terminal cell in widths
const cellAspect = 2.0

// BoardView is the world area a renderer should show: the playfield plus
// the walls around its left, top and right sides.
func BoardView(size, wallThickness float64) physics.Rectangle {
	return physics.NewRectangle(-wallThickness, -wallThickness, size+2*wallThickness, size+wallThickness)
}

// TerminalRenderer draws the board as solid blocks on a tcell screen. The
// view is scaled to the largest area that fits the terminal while keeping
// its aspect ratio, and centered.
type TerminalRenderer struct {
	screen tcell.Screen
	view   physics.Rectangle

	cols, rows       int
	offsetX, offsetY int
	unitsPerCol      float64
	unitsPerRow      float64
}

// NewTerminalRenderer creates a renderer showing view on screen. The screen
// must already be initialized.
func NewTerminalRenderer(screen tcell.Screen, view physics.Rectangle) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, view: view}
	r.resize()
	return r
}

// resize fits the view to the current screen size
func (r *TerminalRenderer) resize() {
	w, h := r.screen.Size()
	r.cols, r.rows = 0, 0
	if w <= 0 || h <= 0 || r.view.Width() <= 0 || r.view.Height() <= 0 {
		return
	}

	// columns needed per row to keep world units square on screen
	ratio := r.view.Width() / r.view.Height() * cellAspect
	rows := h
	cols := int(math.Floor(float64(rows) * ratio))
	if cols > w {
		cols = w
		rows = int(math.Floor(float64(cols) / ratio))
	}
	r.cols, r.rows = max(cols, 1), max(rows, 1)
	r.offsetX = (w - r.cols) / 2
	r.offsetY = (h - r.rows) / 2
	r.unitsPerCol = r.view.Width() / float64(r.cols)
	r.unitsPerRow = r.view.Height() / float64(r.rows)
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.resize()
	r.screen.Clear()
}

// RenderRect implements entity.Renderer. Every rectangle covers at least one
// cell so thin objects stay visible.
func (r *TerminalRenderer) RenderRect(rect physics.Rectangle, c color.RGBA) {
	if r.cols == 0 || !rect.Intersects(r.view) {
		return
	}

	x0, x1 := span(rect.Left()-r.view.Left(), rect.Right()-r.view.Left(), r.unitsPerCol, r.cols)
	y0, y1 := span(rect.Top()-r.view.Top(), rect.Bottom()-r.view.Top(), r.unitsPerRow, r.rows)

	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(r.offsetX+x, r.offsetY+y, '█', nil, style)
		}
	}
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// span maps a world interval to a half-open cell range clipped to [0, limit)
func span(from, to, unitsPerCell float64, limit int) (int, int) {
	start := int(math.Floor(from / unitsPerCell))
	end := int(math.Ceil(to / unitsPerCell))
	if end <= start {
		end = start + 1
	}
	return max(start, 0), min(end, limit)
}

var _ entity.Renderer = (*TerminalRenderer)(nil)
