// pkg/render/engo/renderer_test.go
package engo

import (
	"image/color"
	"testing"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// fakeSink records sprites instead of drawing them
type fakeSink struct {
	added   map[uint64]*common.RenderComponent
	removed int
}

func newFakeSink() *fakeSink {
	return &fakeSink{added: make(map[uint64]*common.RenderComponent)}
}

func (s *fakeSink) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	s.added[basic.ID()] = render
}

func (s *fakeSink) Remove(basic ecs.BasicEntity) {
	delete(s.added, basic.ID())
	s.removed++
}

func TestViewport_FitsAndCenters(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		scale         float32
		origin        engo.Point
	}{
		{"exact fit", 880, 840, 2, engo.Point{X: 40, Y: 40}},
		{"tall window", 880, 1000, 2, engo.Point{X: 40, Y: 120}},
		{"wide window", 1000, 420, 1, engo.Point{X: 300, Y: 20}},
	}

	view := physics.NewRectangle(-20, -20, 440, 420)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(view, tt.width, tt.height)
			if v.Scale() != tt.scale {
				t.Errorf("Expected scale %v, got %v", tt.scale, v.Scale())
			}
			if got := v.ToScreen(physics.Vector2D{}); got != tt.origin {
				t.Errorf("Expected world origin at %v, got %v", tt.origin, got)
			}
		})
	}
}

func TestViewport_ToScreenRect(t *testing.T) {
	v := NewViewport(physics.NewRectangle(0, 0, 100, 100), 200, 200)
	pos, w, h := v.ToScreenRect(physics.NewRectangle(10, 20, 30, 5))

	if pos != (engo.Point{X: 20, Y: 40}) {
		t.Errorf("Expected position (20,40), got %v", pos)
	}
	if w != 60 || h != 10 {
		t.Errorf("Expected size 60x10, got %vx%v", w, h)
	}
}

func TestEngoRenderer_ReusesSprites(t *testing.T) {
	sink := newFakeSink()
	r := NewEngoRenderer(sink, NewViewport(physics.NewRectangle(0, 0, 100, 100), 100, 100))
	red := color.RGBA{R: 255, A: 255}

	r.Clear()
	r.RenderRect(physics.NewRectangle(0, 0, 10, 10), red)
	r.RenderRect(physics.NewRectangle(20, 0, 10, 10), red)
	r.RenderRect(physics.NewRectangle(40, 0, 10, 10), red)
	r.Present()

	if len(sink.added) != 3 {
		t.Fatalf("Expected 3 sprites, got %d", len(sink.added))
	}

	r.Clear()
	r.RenderRect(physics.NewRectangle(5, 5, 10, 10), red)
	r.Present()

	if len(sink.added) != 3 {
		t.Errorf("Expected sprites to be reused, got %d", len(sink.added))
	}
	if r.sprites[0].Hidden {
		t.Error("Expected the drawn sprite to be visible")
	}
	if r.sprites[0].SpaceComponent.Position != (engo.Point{X: 5, Y: 5}) {
		t.Errorf("Expected sprite moved to (5,5), got %v", r.sprites[0].SpaceComponent.Position)
	}
	for i, sprite := range r.sprites[1:] {
		if !sprite.Hidden {
			t.Errorf("Expected unused sprite %d to be hidden", i+1)
		}
	}
}

func TestEngoRenderer_Close(t *testing.T) {
	sink := newFakeSink()
	r := NewEngoRenderer(sink, NewViewport(physics.NewRectangle(0, 0, 100, 100), 100, 100))

	r.Clear()
	r.RenderRect(physics.NewRectangle(0, 0, 10, 10), color.RGBA{})
	r.RenderRect(physics.NewRectangle(0, 0, 10, 10), color.RGBA{})
	r.Close()

	if sink.removed != 2 || len(sink.added) != 0 {
		t.Errorf("Expected all sprites removed, removed=%d left=%d", sink.removed, len(sink.added))
	}
}
