package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables applied on top of a loaded configuration
const (
	EnvBoardSize     = "BREAKOUT_BOARD_SIZE"
	EnvWallThickness = "BREAKOUT_WALL_THICKNESS"
	EnvPaddleSpeed   = "BREAKOUT_PADDLE_SPEED"
	EnvBallVelocityX = "BREAKOUT_BALL_VELOCITY_X"
	EnvBallVelocityY = "BREAKOUT_BALL_VELOCITY_Y"
	EnvLayoutPreset  = "BREAKOUT_LAYOUT_PRESET"
	EnvLayoutRows    = "BREAKOUT_LAYOUT_ROWS"
	EnvLayoutColumns = "BREAKOUT_LAYOUT_COLUMNS"
	EnvTickRate      = "BREAKOUT_TICK_RATE"
	EnvMaxDeltaTime  = "BREAKOUT_MAX_DELTA_TIME"
	EnvRenderer      = "BREAKOUT_RENDERER"
	EnvFullscreen    = "BREAKOUT_FULLSCREEN"
)

// ApplyEnvironmentOverrides replaces configuration values with those set in
// BREAKOUT_* environment variables. Unset or empty variables are ignored.
// The first malformed value stops processing and is returned as an error.
func ApplyEnvironmentOverrides(c *GameConfig) error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvBoardSize, &c.BoardSize},
		{EnvWallThickness, &c.WallThickness},
		{EnvPaddleSpeed, &c.Paddle.Speed},
		{EnvBallVelocityX, &c.Ball.VelocityX},
		{EnvBallVelocityY, &c.Ball.VelocityY},
		{EnvMaxDeltaTime, &c.Loop.MaxDeltaTime},
	}
	for _, f := range floats {
		if err := overrideFloat(f.key, f.dst); err != nil {
			return err
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvLayoutRows, &c.Layout.Rows},
		{EnvLayoutColumns, &c.Layout.Columns},
		{EnvTickRate, &c.Loop.TickRate},
	}
	for _, i := range ints {
		if err := overrideInt(i.key, i.dst); err != nil {
			return err
		}
	}

	if v := os.Getenv(EnvLayoutPreset); v != "" {
		c.Layout.Preset = v
	}
	if v := os.Getenv(EnvRenderer); v != "" {
		c.Renderer.Kind = v
	}
	if v := os.Getenv(EnvFullscreen); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvFullscreen, v, err)
		}
		c.Renderer.Fullscreen = b
	}

	return nil
}

func overrideFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = f
	return nil
}

func overrideInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
