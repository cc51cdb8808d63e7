// pkg/render/engo/scene.go
package engo

import (
	"context"
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-breakout/pkg/config"
	"github.com/opd-ai/go-breakout/pkg/engine"
	"github.com/opd-ai/go-breakout/pkg/input"
	"github.com/opd-ai/go-breakout/pkg/logging"
	"github.com/opd-ai/go-breakout/pkg/render"
)

// GameScene represents the main game scene in Engo
type GameScene struct {
	world *ecs.World

	game       *engine.Game
	controller *input.Controller
	logger     *logging.Logger
	ctx        context.Context

	renderer *EngoRenderer
	input    *InputSystem
	width    float32
	height   float32
}

// NewGameScene creates a new game scene for game in a width x height window
func NewGameScene(ctx context.Context, game *engine.Game, width, height int, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{
		world:      &ecs.World{},
		game:       game,
		controller: input.NewController(),
		logger:     logger,
		ctx:        ctx,
		width:      float32(width),
		height:     float32(height),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = u.(*ecs.World)
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	cfg := scene.game.Config
	view := render.BoardView(cfg.BoardSize, cfg.WallThickness)
	scene.renderer = NewEngoRenderer(renderSystem, NewViewport(view, scene.width, scene.height))

	SetupInputBindings()
	scene.input = NewInputSystem()
	scene.world.AddSystem(&gameSystem{scene: scene})

	scene.game.Start()
	scene.logger.Info(scene.ctx, "engo scene started",
		"width", scene.width,
		"height", scene.height,
	)
}

// frame applies input, advances the game and redraws it. It reports false
// once the player asked to quit or the scene's context is done.
func (scene *GameScene) frame(events []input.KeyEvent) bool {
	if err := scene.ctx.Err(); err != nil {
		scene.logger.Info(scene.ctx, "engo scene cancelled", "error", err)
		return false
	}
	for _, ev := range events {
		if ev.Action == input.ActionQuit && ev.Pressed {
			return false
		}
		if d, changed := scene.controller.Handle(ev); changed {
			scene.game.SetDirection(d)
		}
	}

	if err := scene.game.Update(); err != nil {
		scene.logger.Debug(scene.ctx, "game update failed", "error", err)
	}
	scene.game.Render(scene.renderer)
	return true
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.game.Stop()
	if scene.renderer != nil {
		scene.renderer.Close()
	}
}

// gameSystem drives the scene once per engo frame
type gameSystem struct {
	scene *GameScene
}

// Update satisfies the ecs.System interface
func (gs *gameSystem) Update(dt float32) {
	if !gs.scene.frame(gs.scene.input.Poll()) {
		engo.Exit()
	}
}

// Remove satisfies the ecs.System interface
func (gs *gameSystem) Remove(basic ecs.BasicEntity) {}

// Run opens a window and plays game until the window closes or the player
// quits. It blocks and must be called from the main goroutine.
func Run(ctx context.Context, game *engine.Game, cfg config.RendererConfig, logger *logging.Logger) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	engo.Run(engo.RunOptions{
		Title:      "Breakout",
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		FPSLimit:   game.Config.Loop.TickRate,
	}, NewGameScene(ctx, game, cfg.Width, cfg.Height, logger))
	return nil
}
