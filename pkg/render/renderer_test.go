// pkg/render/renderer_test.go
package render

import (
	"bytes"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/opd-ai/go-breakout/pkg/logging"
	"github.com/opd-ai/go-breakout/pkg/physics"
)

func TestNullRenderer_CountsFrames(t *testing.T) {
	renderer := NewNullRenderer(nil)

	for frame := 0; frame < 3; frame++ {
		renderer.Clear()
		renderer.RenderRect(physics.NewRectangle(0, 0, 10, 10), color.RGBA{255, 255, 255, 255})
		renderer.RenderRect(physics.NewRectangle(20, 0, 10, 10), color.RGBA{255, 0, 0, 255})
		renderer.Present()
	}

	if renderer.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", renderer.Frames())
	}
	if renderer.Rects() != 6 {
		t.Errorf("Expected 6 rects, got %d", renderer.Rects())
	}
}

func TestNullRenderer_Present_LogsFrame(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerTo(&buf, slog.LevelDebug))

	renderer.Clear()
	renderer.RenderRect(physics.NewRectangle(0, 0, 1, 1), color.RGBA{})
	renderer.Present()

	output := buf.String()
	if !strings.Contains(output, "frame presented") {
		t.Errorf("Expected log to contain 'frame presented', got: %s", output)
	}
	if !strings.Contains(output, `"rects":1`) {
		t.Errorf("Expected log to report one rect, got: %s", output)
	}
}
