// pkg/config/config.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-breakout/pkg/level"
	"github.com/opd-ai/go-breakout/pkg/physics"
	"github.com/opd-ai/go-breakout/pkg/validation"
)

// GameConfig contains configuration for a Breakout game
type GameConfig struct {
	BoardSize     float64        `json:"boardSize" yaml:"boardSize" toml:"boardSize"`
	WallThickness float64        `json:"wallThickness" yaml:"wallThickness" toml:"wallThickness"`
	WallColor     string         `json:"wallColor" yaml:"wallColor" toml:"wallColor"`
	Paddle        PaddleConfig   `json:"paddle" yaml:"paddle" toml:"paddle"`
	Ball          BallConfig     `json:"ball" yaml:"ball" toml:"ball"`
	Layout        LayoutConfig   `json:"layout" yaml:"layout" toml:"layout"`
	Loop          LoopConfig     `json:"loop" yaml:"loop" toml:"loop"`
	Renderer      RendererConfig `json:"renderer" yaml:"renderer" toml:"renderer"`
}

// PaddleConfig contains the paddle's starting box and sliding speed
type PaddleConfig struct {
	X      float64 `json:"x" yaml:"x" toml:"x"`
	Y      float64 `json:"y" yaml:"y" toml:"y"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
	Speed  float64 `json:"speed" yaml:"speed" toml:"speed"`
	Color  string  `json:"color" yaml:"color" toml:"color"`
}

// BallConfig contains the ball's starting box and velocity
type BallConfig struct {
	X         float64 `json:"x" yaml:"x" toml:"x"`
	Y         float64 `json:"y" yaml:"y" toml:"y"`
	Width     float64 `json:"width" yaml:"width" toml:"width"`
	Height    float64 `json:"height" yaml:"height" toml:"height"`
	VelocityX float64 `json:"velocityX" yaml:"velocityX" toml:"velocityX"`
	VelocityY float64 `json:"velocityY" yaml:"velocityY" toml:"velocityY"`
	Color     string  `json:"color" yaml:"color" toml:"color"`
}

// LayoutConfig describes the block field. When Preset is set it replaces
// the grid geometry; Colors still apply.
type LayoutConfig struct {
	Preset      string   `json:"preset,omitempty" yaml:"preset,omitempty" toml:"preset,omitempty"`
	Rows        int      `json:"rows" yaml:"rows" toml:"rows"`
	Columns     int      `json:"columns" yaml:"columns" toml:"columns"`
	OriginX     float64  `json:"originX" yaml:"originX" toml:"originX"`
	OriginY     float64  `json:"originY" yaml:"originY" toml:"originY"`
	BlockWidth  float64  `json:"blockWidth" yaml:"blockWidth" toml:"blockWidth"`
	BlockHeight float64  `json:"blockHeight" yaml:"blockHeight" toml:"blockHeight"`
	Gap         float64  `json:"gap" yaml:"gap" toml:"gap"`
	Policy      string   `json:"policy" yaml:"policy" toml:"policy"`
	Colors      []string `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
}

// LoopConfig contains game loop timing
type LoopConfig struct {
	TickRate     int     `json:"tickRate" yaml:"tickRate" toml:"tickRate"`
	MaxDeltaTime float64 `json:"maxDeltaTime" yaml:"maxDeltaTime" toml:"maxDeltaTime"`
}

// RendererConfig selects and sizes the front-end
type RendererConfig struct {
	Kind       string `json:"kind" yaml:"kind" toml:"kind"`
	Width      int    `json:"width" yaml:"width" toml:"width"`
	Height     int    `json:"height" yaml:"height" toml:"height"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen" toml:"fullscreen"`
	LogFile    string `json:"logFile,omitempty" yaml:"logFile,omitempty" toml:"logFile,omitempty"`
}

// Renderer kinds
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererNull     = "null"
)

// Format is a configuration file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

// Decode parses data in the given format over the default configuration
func Decode(data []byte, format Format) (*GameConfig, error) {
	config := DefaultConfig()

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, config)
	case FormatYAML:
		err = yaml.Unmarshal(data, config)
	case FormatTOML:
		_, err = toml.Decode(string(data), config)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Encode renders the configuration in the given format
func Encode(config *GameConfig, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(config, "", "  ")
	case FormatYAML:
		return yaml.Marshal(config)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(config, format)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration: a 400 unit board,
// the paddle near the bottom and the ball falling towards it
func DefaultConfig() *GameConfig {
	const size = 400.0
	layout := level.DefaultLayout(size)

	return &GameConfig{
		BoardSize:     size,
		WallThickness: 20,
		WallColor:     "#9E9E9E",
		Paddle: PaddleConfig{
			X:      250,
			Y:      350,
			Width:  100,
			Height: 15,
			Speed:  100,
			Color:  "#FFFFFF",
		},
		Ball: BallConfig{
			X:         295,
			Y:         250,
			Width:     10,
			Height:    10,
			VelocityX: 20,
			VelocityY: 150,
			Color:     "#FFFFFF",
		},
		Layout: LayoutConfig{
			Rows:        layout.Rows,
			Columns:     layout.Columns,
			OriginX:     layout.Origin.X,
			OriginY:     layout.Origin.Y,
			BlockWidth:  layout.BlockSize.X,
			BlockHeight: layout.BlockSize.Y,
			Gap:         layout.Gap,
			Policy:      layout.Policy.String(),
		},
		Loop: LoopConfig{
			TickRate:     60,
			MaxDeltaTime: 0.1,
		},
		Renderer: RendererConfig{
			Kind:   RendererTerminal,
			Width:  800,
			Height: 800,
		},
	}
}

// Validate checks every value the game core relies on
func (c *GameConfig) Validate() error {
	if err := validation.ValidateBoardSize(c.BoardSize); err != nil {
		return err
	}
	if err := validation.ValidateWallThickness(c.WallThickness); err != nil {
		return err
	}
	if err := validation.ValidateRectangle("paddle", c.Paddle.X, c.Paddle.Y, c.Paddle.Width, c.Paddle.Height); err != nil {
		return err
	}
	if err := validation.ValidateSpeed("paddle speed", c.Paddle.Speed); err != nil {
		return err
	}
	if err := validation.ValidateRectangle("ball", c.Ball.X, c.Ball.Y, c.Ball.Width, c.Ball.Height); err != nil {
		return err
	}
	if err := validation.ValidateSpeed("ball velocity x", c.Ball.VelocityX); err != nil {
		return err
	}
	if err := validation.ValidateSpeed("ball velocity y", c.Ball.VelocityY); err != nil {
		return err
	}

	if c.Layout.Preset != "" {
		if _, ok := level.GetPreset(c.Layout.Preset); !ok {
			return fmt.Errorf("%w: unknown preset %q (have %s)", validation.ErrInvalidLayout,
				c.Layout.Preset, strings.Join(level.PresetNames(), ", "))
		}
	} else if err := validation.ValidateGrid(c.Layout.Rows, c.Layout.Columns,
		c.Layout.BlockWidth, c.Layout.BlockHeight, c.Layout.Gap); err != nil {
		return err
	}
	if _, ok := level.ParseColorPolicy(c.Layout.Policy); !ok {
		return fmt.Errorf("%w: unknown color policy %q", validation.ErrInvalidLayout, c.Layout.Policy)
	}

	colors := append([]string{c.WallColor, c.Paddle.Color, c.Ball.Color}, c.Layout.Colors...)
	for _, col := range colors {
		if col == "" {
			continue
		}
		if err := validation.ValidateHexColor(col); err != nil {
			return err
		}
	}

	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.Loop.TickRate)
	}
	if err := validation.ValidateDeltaTime(c.Loop.MaxDeltaTime); err != nil || c.Loop.MaxDeltaTime == 0 {
		return fmt.Errorf("max delta time %v must be a positive number", c.Loop.MaxDeltaTime)
	}

	switch c.Renderer.Kind {
	case RendererTerminal, RendererEngo, RendererNull:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer.Kind)
	}

	return nil
}

// BlockLayout converts the layout section into a level layout
func (c *GameConfig) BlockLayout() (level.Layout, error) {
	var l level.Layout
	if c.Layout.Preset != "" {
		preset, ok := level.GetPreset(c.Layout.Preset)
		if !ok {
			return l, fmt.Errorf("%w: unknown preset %q", validation.ErrInvalidLayout, c.Layout.Preset)
		}
		l = preset.Layout(c.BoardSize)
	} else {
		policy, ok := level.ParseColorPolicy(c.Layout.Policy)
		if !ok {
			return l, fmt.Errorf("%w: unknown color policy %q", validation.ErrInvalidLayout, c.Layout.Policy)
		}
		l = level.Layout{
			Rows:      c.Layout.Rows,
			Columns:   c.Layout.Columns,
			Origin:    physics.Vector2D{X: c.Layout.OriginX, Y: c.Layout.OriginY},
			BlockSize: physics.Vector2D{X: c.Layout.BlockWidth, Y: c.Layout.BlockHeight},
			Gap:       c.Layout.Gap,
			Policy:    policy,
		}
	}

	for _, s := range c.Layout.Colors {
		col, err := ParseColor(s)
		if err != nil {
			return l, err
		}
		l.Colors = append(l.Colors, col)
	}
	return l, nil
}

// ParseColor converts #RRGGBB or #RRGGBBAA to a color. An empty string is
// opaque white.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, nil
	}
	if err := validation.ValidateHexColor(s); err != nil {
		return color.RGBA{}, err
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", validation.ErrInvalidColor, s, err)
	}
	if len(s) == 7 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ParseColorOr is ParseColor with a fallback for malformed values
func ParseColorOr(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
