// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/go-breakout/pkg/config"
	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/event"
	"github.com/opd-ai/go-breakout/pkg/logging"
)

// GameStatus is the lifecycle state of a game
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// String returns the status name
func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game wraps a Gameboard with a lifecycle and serializes access to it.
// Input, ticking and rendering may run on different goroutines.
type Game struct {
	Config       *config.GameConfig
	Board        *Gameboard
	EntityLock   sync.RWMutex
	Running      bool
	MaxDeltaTime float64 // cap for wall-clock steps, seconds
	LastUpdate   time.Time
	EventBus     *event.Bus
	Logger       *logging.Logger
	Status       GameStatus
	EndReason    event.Type // BallLost, BoardCleared, or GameEnded when stopped
	StartTime    time.Time
	EndTime      time.Time
	ElapsedTime  float64 // seconds of simulated time

	ctx context.Context
}

// NewGame validates cfg and builds a game around a fresh board. The
// context's session ID is attached to every log line of the game.
func NewGame(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	layout, err := cfg.BlockLayout()
	if err != nil {
		return nil, fmt.Errorf("invalid block layout: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	game := &Game{
		Config:       cfg,
		Board:        NewGameboard(cfg, layout.Generate()),
		MaxDeltaTime: cfg.Loop.MaxDeltaTime,
		LastUpdate:   time.Now(),
		EventBus:     event.NewEventBus(),
		Logger:       logger,
		Status:       GameStatusWaiting,
		ctx:          ctx,
	}

	game.Board.EventBus = game.EventBus
	game.Board.Logger = logger
	game.Board.Context = ctx
	game.registerEventHandlers()

	logger.Info(ctx, "game created",
		"board_size", cfg.BoardSize,
		"blocks", len(game.Board.Blocks),
	)
	return game, nil
}

// Start begins the game
func (g *Game) Start() {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if g.Status != GameStatusWaiting {
		return
	}
	g.Running = true
	g.Status = GameStatusActive
	g.StartTime = time.Now()
	g.LastUpdate = g.StartTime
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
}

// Stop ends the game early
func (g *Game) Stop() {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	g.endGameInternal(event.GameEnded)
}

// Update advances the game by the wall-clock time since the last update,
// capped at MaxDeltaTime
func (g *Game) Update() error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	return g.stepInternal(g.calculateDeltaTime())
}

// Step advances the game by exactly deltaTime seconds
func (g *Game) Step(deltaTime float64) error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	return g.stepInternal(deltaTime)
}

// stepInternal advances an active game (must be called with lock held)
func (g *Game) stepInternal(deltaTime float64) error {
	if g.Status != GameStatusActive {
		return nil
	}
	if err := g.Board.Update(deltaTime); err != nil {
		g.Logger.Warn(g.ctx, "tick skipped", "delta_time", deltaTime, "error", err.Error())
		return err
	}
	g.ElapsedTime += deltaTime
	return nil
}

// calculateDeltaTime calculates the time since the last update and caps it.
func (g *Game) calculateDeltaTime() float64 {
	now := time.Now()
	deltaTime := now.Sub(g.LastUpdate).Seconds()
	g.LastUpdate = now

	// Cap delta time so a stalled loop does not teleport the ball
	if g.MaxDeltaTime > 0 && deltaTime > g.MaxDeltaTime {
		deltaTime = g.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	return deltaTime
}

// SetDirection steers the paddle
func (g *Game) SetDirection(d entity.Direction) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	g.Board.SetDirection(d)
}

// GetStatus returns the lifecycle state
func (g *Game) GetStatus() GameStatus {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	return g.Status
}

// GetGameState returns a snapshot of the current board
func (g *Game) GetGameState() *Snapshot {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	return g.Board.Snapshot()
}

// Render draws the board while holding the read lock
func (g *Game) Render(r entity.Renderer) {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	g.Board.Render(r)
}

// registerEventHandlers registers handlers for game events
func (g *Game) registerEventHandlers() {
	g.EventBus.Subscribe(event.BallLost, g.handleGameOverEvent)
	g.EventBus.Subscribe(event.BoardCleared, g.handleGameOverEvent)
}

// handleGameOverEvent ends the game. Board events are published from
// inside Update, so the lock is already held.
func (g *Game) handleGameOverEvent(e event.Event) {
	g.endGameInternal(e.GetType())
}

// endGameInternal ends the game (must be called with lock held)
func (g *Game) endGameInternal(reason event.Type) {
	if g.Status == GameStatusEnded {
		return
	}
	g.Status = GameStatusEnded
	g.EndTime = time.Now()
	g.Running = false
	g.EndReason = reason

	g.Logger.Info(g.ctx, "game ended",
		"reason", string(reason),
		"remaining_blocks", g.Board.Remaining(),
		"ticks", g.Board.CurrentTick,
	)
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
}
