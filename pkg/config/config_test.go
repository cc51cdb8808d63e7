package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-breakout/pkg/level"
	"github.com/opd-ai/go-breakout/pkg/validation"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if config.BoardSize != 400 {
		t.Errorf("Expected BoardSize 400, got %f", config.BoardSize)
	}

	// Starting positions of the classic board
	if config.Paddle.X != 250 || config.Paddle.Y != 350 || config.Paddle.Width != 100 || config.Paddle.Height != 15 {
		t.Errorf("Unexpected paddle box %+v", config.Paddle)
	}
	if config.Paddle.Speed != 100 {
		t.Errorf("Expected paddle speed 100, got %f", config.Paddle.Speed)
	}
	if config.Ball.X != 295 || config.Ball.Y != 250 || config.Ball.Width != 10 || config.Ball.Height != 10 {
		t.Errorf("Unexpected ball box %+v", config.Ball)
	}
	if config.Ball.VelocityX != 20 || config.Ball.VelocityY != 150 {
		t.Errorf("Expected ball velocity (20,150), got (%f,%f)", config.Ball.VelocityX, config.Ball.VelocityY)
	}

	if config.Layout.Rows != 5 || config.Layout.Columns != 8 {
		t.Errorf("Expected 5x8 layout, got %dx%d", config.Layout.Rows, config.Layout.Columns)
	}
	if config.Loop.TickRate != 60 {
		t.Errorf("Expected TickRate 60, got %d", config.Loop.TickRate)
	}
	if config.Loop.MaxDeltaTime != 0.1 {
		t.Errorf("Expected MaxDeltaTime 0.1, got %f", config.Loop.MaxDeltaTime)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig should validate, got %v", err)
	}
}

func TestDefaultConfig_BlockLayoutMatchesLevelDefault(t *testing.T) {
	l, err := DefaultConfig().BlockLayout()
	require.NoError(t, err)
	assert.Equal(t, level.DefaultLayout(400), l)
}

func TestSaveAndLoadConfig_AllFormats(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "breakout"+ext)

			original := DefaultConfig()
			original.BoardSize = 600
			original.Ball.VelocityX = -35.5
			original.Layout.Preset = "wall"
			original.Layout.Colors = []string{"#FF0000", "#00FF0080"}
			original.Renderer.Kind = RendererNull

			require.NoError(t, SaveConfig(original, path))

			loaded, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, original, loaded)
		})
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "partial.json", `{"boardSize": 500, "ball": {"velocityX": -10}}`},
		{"yaml", "partial.yaml", "boardSize: 500\nball:\n  velocityX: -10\n"},
		{"toml", "partial.toml", "boardSize = 500\n[ball]\nvelocityX = -10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			config, err := LoadConfig(path)
			require.NoError(t, err)

			assert.Equal(t, 500.0, config.BoardSize)
			assert.Equal(t, -10.0, config.Ball.VelocityX)
			assert.Equal(t, 150.0, config.Ball.VelocityY, "unset field keeps default")
			assert.Equal(t, 100.0, config.Paddle.Width, "unset section keeps default")
		})
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	config, err := LoadConfig("/path/that/does/not/exist/config.json")

	if err == nil {
		t.Error("Expected error when loading non-existent file, got nil")
	}
	if config != nil {
		t.Error("Expected nil config when file not found, got non-nil")
	}
	if err != nil && !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Unexpected error message %q", err.Error())
	}
}

func TestLoadConfig_InvalidContent(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"invalid.json", `{"boardSize": 400, invalid json}`},
		{"invalid.yaml", "boardSize: [400\n"},
		{"invalid.toml", "boardSize = = 400\n"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			config, err := LoadConfig(path)
			assert.Error(t, err)
			assert.Nil(t, config)
			assert.Contains(t, err.Error(), "failed to parse config file")
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"game.json", FormatJSON, false},
		{"GAME.JSON", FormatJSON, false},
		{"game.yaml", FormatYAML, false},
		{"game.yml", FormatYAML, false},
		{"dir.d/game.toml", FormatTOML, false},
		{"game.ini", "", true},
		{"game", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSaveConfig_UnsupportedExtension(t *testing.T) {
	err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "config.xml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr error
	}{
		{"zero board", func(c *GameConfig) { c.BoardSize = 0 }, validation.ErrInvalidBoardSize},
		{"zero wall", func(c *GameConfig) { c.WallThickness = 0 }, validation.ErrInvalidRectangle},
		{"negative paddle", func(c *GameConfig) { c.Paddle.Width = -1 }, validation.ErrInvalidRectangle},
		{"negative ball", func(c *GameConfig) { c.Ball.Height = -1 }, validation.ErrInvalidRectangle},
		{"negative rows", func(c *GameConfig) { c.Layout.Rows = -1 }, validation.ErrInvalidLayout},
		{"unknown preset", func(c *GameConfig) { c.Layout.Preset = "nope" }, validation.ErrInvalidLayout},
		{"unknown policy", func(c *GameConfig) { c.Layout.Policy = "diagonal" }, validation.ErrInvalidLayout},
		{"bad color", func(c *GameConfig) { c.Ball.Color = "white" }, validation.ErrInvalidColor},
		{"bad palette color", func(c *GameConfig) { c.Layout.Colors = []string{"#12"} }, validation.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_LoopAndRenderer(t *testing.T) {
	c := DefaultConfig()
	c.Loop.TickRate = 0
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Loop.MaxDeltaTime = 0
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Renderer.Kind = "vr"
	assert.Error(t, c.Validate())
}

func TestBlockLayout_Preset(t *testing.T) {
	c := DefaultConfig()
	c.BoardSize = 800
	c.Layout.Preset = "sparse"
	c.Layout.Colors = []string{"#102030"}

	l, err := c.BlockLayout()
	require.NoError(t, err)

	preset, _ := level.GetPreset("sparse")
	want := preset.Layout(800)
	want.Colors = []color.RGBA{{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}}
	assert.Equal(t, want, l)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF8000", color.RGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}, false},
		{"#11223344", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false},
		{"red", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	fallback := color.RGBA{R: 1, A: 255}
	assert.Equal(t, fallback, ParseColorOr("bogus", fallback))
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Run("NoVariables", func(t *testing.T) {
		c := DefaultConfig()
		require.NoError(t, ApplyEnvironmentOverrides(c))
		assert.Equal(t, DefaultConfig(), c)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv(EnvBoardSize, "640")
		t.Setenv(EnvPaddleSpeed, "220.5")
		t.Setenv(EnvBallVelocityY, "-90")
		t.Setenv(EnvLayoutRows, "3")
		t.Setenv(EnvLayoutPreset, "wall")
		t.Setenv(EnvTickRate, "120")
		t.Setenv(EnvRenderer, RendererEngo)
		t.Setenv(EnvFullscreen, "true")

		c := DefaultConfig()
		require.NoError(t, ApplyEnvironmentOverrides(c))

		assert.Equal(t, 640.0, c.BoardSize)
		assert.Equal(t, 220.5, c.Paddle.Speed)
		assert.Equal(t, -90.0, c.Ball.VelocityY)
		assert.Equal(t, 3, c.Layout.Rows)
		assert.Equal(t, "wall", c.Layout.Preset)
		assert.Equal(t, 120, c.Loop.TickRate)
		assert.Equal(t, RendererEngo, c.Renderer.Kind)
		assert.True(t, c.Renderer.Fullscreen)
	})

	t.Run("Malformed", func(t *testing.T) {
		tests := []struct{ key, value string }{
			{EnvBoardSize, "huge"},
			{EnvTickRate, "1.5"},
			{EnvFullscreen, "maybe"},
		}
		for _, tt := range tests {
			t.Run(tt.key, func(t *testing.T) {
				t.Setenv(tt.key, tt.value)
				err := ApplyEnvironmentOverrides(DefaultConfig())
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.key)
			})
		}
	})
}
