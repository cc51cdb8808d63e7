// cmd/breakout/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-breakout/pkg/config"
	"github.com/opd-ai/go-breakout/pkg/engine"
	"github.com/opd-ai/go-breakout/pkg/game"
	"github.com/opd-ai/go-breakout/pkg/input"
	"github.com/opd-ai/go-breakout/pkg/logging"
	"github.com/opd-ai/go-breakout/pkg/render"
	engorender "github.com/opd-ai/go-breakout/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "breakout.yaml", "Path to configuration file (.json, .yaml or .toml)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "", "Renderer type: 'terminal', 'engo' or 'null' (overrides config)")
	preset := flag.String("preset", "", "Block layout preset (overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Window width (Engo only)")
	height := flag.Int("height", 0, "Window height (Engo only)")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), logging.GenerateSessionID())

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig, err := loadConfig(*configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}

	// Command line flags win over the file and the environment
	if *renderer != "" {
		gameConfig.Renderer.Kind = *renderer
	}
	if *preset != "" {
		gameConfig.Layout.Preset = *preset
	}
	if *fullscreen {
		gameConfig.Renderer.Fullscreen = true
	}
	if *width > 0 {
		gameConfig.Renderer.Width = *width
	}
	if *height > 0 {
		gameConfig.Renderer.Height = *height
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, gameConfig, logger); err != nil {
		logger.Error(ctx, "Game failed", err, "renderer", gameConfig.Renderer.Kind)
		os.Exit(1)
	}
}

// loadConfig reads path when it exists, falls back to the defaults when it
// does not, and applies environment overrides either way
func loadConfig(path string) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		return nil, fmt.Errorf("failed to apply environment configuration: %w", err)
	}
	return gameConfig, nil
}

// run plays one game with the configured front-end
func run(ctx context.Context, gameConfig *config.GameConfig, logger *logging.Logger) error {
	switch gameConfig.Renderer.Kind {
	case config.RendererEngo:
		return runEngo(ctx, gameConfig, logger)
	case config.RendererNull:
		return runHeadless(ctx, gameConfig, logger)
	case config.RendererTerminal, "":
		return runTerminal(ctx, gameConfig)
	default:
		return fmt.Errorf("unknown renderer %q", gameConfig.Renderer.Kind)
	}
}

// runTerminal plays in the terminal. The screen owns stdout, so logs go to
// a file.
func runTerminal(ctx context.Context, gameConfig *config.GameConfig) error {
	logger, closer, err := logging.NewFileLogger(gameConfig.Renderer.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	g, err := engine.NewGame(ctx, gameConfig, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialize terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	view := render.BoardView(gameConfig.BoardSize, gameConfig.WallThickness)
	loop := game.NewLoop(g, render.NewTerminalRenderer(screen, view), input.NewTcellSource(screen), logger)
	return loop.Run(ctx)
}

// runEngo plays in a window. It blocks on the main goroutine until the
// window closes.
func runEngo(ctx context.Context, gameConfig *config.GameConfig, logger *logging.Logger) error {
	g, err := engine.NewGame(ctx, gameConfig, logger)
	if err != nil {
		return err
	}
	return engorender.Run(ctx, g, gameConfig.Renderer, logger)
}

// runHeadless plays without input or output until the ball is lost
func runHeadless(ctx context.Context, gameConfig *config.GameConfig, logger *logging.Logger) error {
	g, err := engine.NewGame(ctx, gameConfig, logger)
	if err != nil {
		return err
	}

	loop := game.NewLoop(g, render.NewNullRenderer(logger), nil, logger)
	loop.EndDelay = 0
	if err := loop.Run(ctx); err != nil {
		return err
	}

	state := g.GetGameState()
	logger.Info(ctx, "Game finished",
		"reason", string(g.EndReason),
		"ticks", state.Tick,
		"remaining_blocks", state.Remaining,
		"elapsed_seconds", g.ElapsedTime,
	)
	return nil
}
