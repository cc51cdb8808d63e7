// Package game runs a breakout game: it feeds key events to the paddle,
// ticks the board at a fixed rate and redraws it after every tick.
package game

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-breakout/pkg/engine"
	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/input"
	"github.com/opd-ai/go-breakout/pkg/logging"
)

// DefaultEndDelay is how long the final board stays on screen after the
// game ends
const DefaultEndDelay = 2 * time.Second

// Loop drives a game against a renderer and an input source
type Loop struct {
	Game       *engine.Game
	Renderer   entity.Renderer
	Input      input.Source // nil for headless runs
	Controller *input.Controller
	UpdateRate time.Duration
	EndDelay   time.Duration
	Logger     *logging.Logger
}

// NewLoop creates a loop ticking at the game's configured tick rate
func NewLoop(g *engine.Game, r entity.Renderer, src input.Source, logger *logging.Logger) *Loop {
	if logger == nil {
		logger = logging.Discard()
	}
	rate := time.Second / 60
	if g.Config.Loop.TickRate > 0 {
		rate = time.Second / time.Duration(g.Config.Loop.TickRate)
	}
	return &Loop{
		Game:       g,
		Renderer:   r,
		Input:      src,
		Controller: input.NewController(),
		UpdateRate: rate,
		EndDelay:   DefaultEndDelay,
		Logger:     logger,
	}
}

// Run starts the game and blocks until it ends, the player quits or ctx is
// cancelled. The game is stopped on return.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.Game.Start()
	l.Logger.Info(ctx, "game loop started", "update_rate", l.UpdateRate.String())

	events := make(chan input.KeyEvent, 16)
	group, groupCtx := errgroup.WithContext(ctx)

	if l.Input != nil {
		group.Go(func() error {
			return l.Input.Run(groupCtx, events)
		})
	}
	group.Go(func() error {
		l.pumpInput(groupCtx, events, cancel)
		return nil
	})
	group.Go(func() error {
		l.gameLoop(groupCtx, cancel)
		return nil
	})

	err := group.Wait()
	l.Game.Stop()
	l.Logger.Info(ctx, "game loop stopped",
		"reason", string(l.Game.EndReason),
		"remaining_blocks", l.Game.GetGameState().Remaining,
	)
	if err != nil {
		return logging.WrapError(err, "input source failed")
	}
	return nil
}

// pumpInput applies key events to the paddle until ctx is done. A quit key
// ends the run.
func (l *Loop) pumpInput(ctx context.Context, events <-chan input.KeyEvent, quit context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if ev.Action == input.ActionQuit && ev.Pressed {
				l.Logger.Info(ctx, "quit requested")
				quit()
				return
			}
			if d, changed := l.Controller.Handle(ev); changed {
				l.Game.SetDirection(d)
				l.Logger.Debug(ctx, "paddle direction changed", "direction", d.String())
			}
		}
	}
}

// gameLoop runs the main game loop
func (l *Loop) gameLoop(ctx context.Context, done context.CancelFunc) {
	ticker := time.NewTicker(l.UpdateRate)
	defer ticker.Stop()

	l.Game.Render(l.Renderer)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := l.Game.Update(); err != nil {
			l.Logger.Debug(ctx, "game update failed", "error", err)
		}
		l.Game.Render(l.Renderer)

		if l.Game.GetStatus() == engine.GameStatusEnded {
			select {
			case <-time.After(l.EndDelay):
			case <-ctx.Done():
			}
			done()
			return
		}
	}
}
