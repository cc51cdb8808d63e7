// pkg/engine/gameboard.go
package engine

import (
	"context"
	"image/color"
	"sort"

	"github.com/opd-ai/go-breakout/pkg/config"
	"github.com/opd-ai/go-breakout/pkg/entity"
	"github.com/opd-ai/go-breakout/pkg/event"
	"github.com/opd-ai/go-breakout/pkg/level"
	"github.com/opd-ai/go-breakout/pkg/logging"
	"github.com/opd-ai/go-breakout/pkg/physics"
	"github.com/opd-ai/go-breakout/pkg/validation"
)

// blockIndexCapacity is the number of blocks per quad before subdivision
const blockIndexCapacity = 8

// Gameboard owns every entity of one game and advances them one tick at a
// time. It is not safe for concurrent use; Game serializes access.
type Gameboard struct {
	Player *entity.Player
	Ball   *entity.Ball
	Walls  [3]*entity.Wall // indexed by entity.WallSide
	Blocks []*entity.Block
	Size   float64

	CurrentTick uint64
	EventBus    *event.Bus
	Logger      *logging.Logger
	Context     context.Context // carries the session ID for log lines

	blockIndex *physics.QuadTree
	unindexed  []int // blocks outside the index boundary
	remaining  int
	ballLost   bool
}

// NewGameboard builds the board described by cfg and fills it with the
// given blocks, in order. Blocks are stored as given; overlaps are not
// rejected.
func NewGameboard(cfg *config.GameConfig, blocks []level.Placement) *Gameboard {
	size := cfg.BoardSize
	t := cfg.WallThickness
	wallColor := config.ParseColorOr(cfg.WallColor, color.RGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF})

	b := &Gameboard{
		Player: entity.NewPlayer(
			physics.NewRectangle(cfg.Paddle.X, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height),
			cfg.Paddle.Speed,
			config.ParseColorOr(cfg.Paddle.Color, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}),
		),
		Ball: entity.NewBall(
			physics.NewRectangle(cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Width, cfg.Ball.Height),
			physics.Vector2D{X: cfg.Ball.VelocityX, Y: cfg.Ball.VelocityY},
			config.ParseColorOr(cfg.Ball.Color, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}),
		),
		Walls: [3]*entity.Wall{
			entity.WallLeft:  entity.NewWall(entity.WallLeft, physics.NewRectangle(-t, -t, t, size+t), wallColor),
			entity.WallTop:   entity.NewWall(entity.WallTop, physics.NewRectangle(-t, -t, size+2*t, t), wallColor),
			entity.WallRight: entity.NewWall(entity.WallRight, physics.NewRectangle(size, -t, t, size+t), wallColor),
		},
		Size:     size,
		EventBus: event.NewEventBus(),
		Logger:   logging.Discard(),
		Context:  context.Background(),
	}

	b.Blocks = make([]*entity.Block, 0, len(blocks))
	for _, p := range blocks {
		b.Blocks = append(b.Blocks, entity.NewBlock(p.Hitbox, p.Color, p.Row, p.Column))
	}
	b.remaining = len(b.Blocks)
	b.initBlockIndex()

	return b
}

// initBlockIndex loads every block into a quadtree over the playfield.
// Blocks never move while active, so the index is built once.
func (b *Gameboard) initBlockIndex() {
	b.blockIndex = physics.NewQuadTree(physics.NewRectangle(0, 0, b.Size, b.Size), blockIndexCapacity)
	b.unindexed = b.unindexed[:0]
	for i, block := range b.Blocks {
		if !b.blockIndex.Insert(block.Hitbox(), i) {
			b.unindexed = append(b.unindexed, i)
		}
	}
}

// SetDirection steers the paddle
func (b *Gameboard) SetDirection(d entity.Direction) {
	b.Player.Direction = d
}

// Remaining returns the number of blocks still in play
func (b *Gameboard) Remaining() int {
	return b.remaining
}

// BallLost reports whether the ball has left the board through the open
// bottom side
func (b *Gameboard) BallLost() bool {
	return b.ballLost
}

// Update advances the board by deltaTime seconds: motion first, then the
// paddle and the ball against each other, then the walls in order, then
// at most one block. Invalid steps are rejected without touching state.
func (b *Gameboard) Update(deltaTime float64) error {
	if err := validation.ValidateDeltaTime(deltaTime); err != nil {
		return err
	}

	b.Player.Update(deltaTime)
	b.Ball.Update(deltaTime)

	b.collidePlayerAndBall()
	b.collideWalls()
	b.collideBlocks()
	b.checkBallLost()

	b.CurrentTick++
	return nil
}

func (b *Gameboard) collidePlayerAndBall() {
	if !entity.Intersects(b.Player, b.Ball) {
		return
	}
	if b.Player.OnCollision(b.Ball) {
		b.publishCollision(event.PaddleHit, b.Player, b.Ball)
	}
}

func (b *Gameboard) collideWalls() {
	for _, wall := range b.Walls {
		if entity.Intersects(b.Ball, wall) && b.Ball.OnCollision(wall) {
			b.publishCollision(event.BallBounced, b.Ball, wall)
		}
		if entity.Intersects(b.Player, wall) && b.Player.OnCollision(wall) {
			b.publishCollision(event.PaddleStopped, b.Player, wall)
		}
	}
}

// collideBlocks resolves the ball against the first block, in collection
// order, whose response changes the ball's velocity
func (b *Gameboard) collideBlocks() {
	for _, i := range b.blockCandidates() {
		block := b.Blocks[i]
		if !block.IsActive() || !entity.Intersects(b.Ball, block) {
			continue
		}

		before := b.Ball.Physics.Velocity
		b.Ball.OnCollision(block)

		if !block.IsActive() {
			b.onBlockDespawned(block)
		}
		if b.Ball.Physics.Velocity != before {
			return
		}
	}
}

// blockCandidates returns the indices of blocks that may overlap the ball,
// in collection order
func (b *Gameboard) blockCandidates() []int {
	candidates := b.blockIndex.Query(b.Ball.Physics.SweptBounds())
	if len(b.unindexed) == 0 {
		return candidates
	}
	candidates = append(candidates, b.unindexed...)
	sort.Ints(candidates)
	return candidates
}

func (b *Gameboard) onBlockDespawned(block *entity.Block) {
	b.remaining--

	if b.Logger.DebugEnabled(b.Context) {
		b.Logger.Debug(b.Context, "block despawned",
			"block_id", uint64(block.GetID()),
			"row", block.Row,
			"column", block.Column,
			"remaining", b.remaining,
			"tick", b.CurrentTick,
		)
	}

	b.EventBus.Publish(event.NewBlockEvent(b, uint64(block.GetID()), block.Row, block.Column, b.remaining))

	if b.remaining == 0 {
		b.Logger.Info(b.Context, "board cleared", "tick", b.CurrentTick)
		b.EventBus.Publish(&event.BaseEvent{EventType: event.BoardCleared, Source: b})
	}
}

// checkBallLost publishes BallLost once, when the ball is entirely below
// the board
func (b *Gameboard) checkBallLost() {
	if b.ballLost || b.Ball.Hitbox().Top() <= b.Size {
		return
	}
	b.ballLost = true
	b.Logger.Info(b.Context, "ball lost", "tick", b.CurrentTick, "x", b.Ball.Hitbox().Left())
	b.EventBus.Publish(&event.BaseEvent{EventType: event.BallLost, Source: b})
}

func (b *Gameboard) publishCollision(t event.Type, a, o entity.Entity) {
	b.EventBus.Publish(event.NewCollisionEvent(t, b, uint64(a.GetID()), uint64(o.GetID()), b.CurrentTick))
}

// Render draws the whole board: walls, blocks, paddle, ball
func (b *Gameboard) Render(r entity.Renderer) {
	r.Clear()
	for _, wall := range b.Walls {
		wall.Render(r)
	}
	for _, block := range b.Blocks {
		block.Render(r)
	}
	b.Player.Render(r)
	b.Ball.Render(r)
	r.Present()
}

// Snapshot returns a copy of everything a renderer needs
func (b *Gameboard) Snapshot() *Snapshot {
	s := &Snapshot{
		Tick:      b.CurrentTick,
		Size:      b.Size,
		Player:    RectState{Hitbox: b.Player.Hitbox(), Color: b.Player.Color},
		Ball:      RectState{Hitbox: b.Ball.Hitbox(), Color: b.Ball.Color},
		Direction: b.Player.Direction,
		Remaining: b.remaining,
		BallLost:  b.ballLost,
		Blocks:    make([]BlockState, len(b.Blocks)),
	}
	for i, wall := range b.Walls {
		s.Walls[i] = RectState{Hitbox: wall.Hitbox(), Color: wall.Color}
	}
	for i, block := range b.Blocks {
		s.Blocks[i] = BlockState{
			RectState: RectState{Hitbox: block.Hitbox(), Color: block.Color},
			ID:        block.GetID(),
			Row:       block.Row,
			Column:    block.Column,
			Active:    block.IsActive(),
		}
	}
	return s
}

// Snapshot represents the read-only state of a board after a tick
type Snapshot struct {
	Tick      uint64
	Size      float64
	Player    RectState
	Ball      RectState
	Walls     [3]RectState
	Blocks    []BlockState
	Direction entity.Direction
	Remaining int
	BallLost  bool
}

// RectState is a colored box
type RectState struct {
	Hitbox physics.Rectangle
	Color  color.RGBA
}

// BlockState represents a snapshot of a block
type BlockState struct {
	RectState
	ID     entity.ID
	Row    int
	Column int
	Active bool
}
