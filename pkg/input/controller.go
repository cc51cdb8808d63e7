// Package input turns key presses and releases into a paddle direction.
package input

import (
	"context"
	"sync"

	"github.com/opd-ai/go-breakout/pkg/entity"
)

// Action is a game command bound to a key
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionQuit
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// KeyEvent is one press or release of a bound key
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// Source produces key events until ctx is done
type Source interface {
	Run(ctx context.Context, out chan<- KeyEvent) error
}

// Controller tracks the paddle direction from key events. Pressing left or
// right steers that way; releasing a key only stops the paddle when it is
// the key currently steering, so rolling from one arrow to the other keeps
// the paddle moving.
type Controller struct {
	mu        sync.Mutex
	direction entity.Direction
}

// NewController returns an idle controller
func NewController() *Controller {
	return &Controller{direction: entity.Idle}
}

// Handle applies ev and reports the resulting direction and whether it
// changed
func (c *Controller) Handle(ev KeyEvent) (entity.Direction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := c.direction
	d, ok := directionFor(ev.Action)
	if !ok {
		return before, false
	}

	if ev.Pressed {
		c.direction = d
	} else if c.direction == d {
		c.direction = entity.Idle
	}
	return c.direction, c.direction != before
}

// Direction returns the current direction
func (c *Controller) Direction() entity.Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

func directionFor(a Action) (entity.Direction, bool) {
	switch a {
	case ActionLeft:
		return entity.Left, true
	case ActionRight:
		return entity.Right, true
	default:
		return entity.Idle, false
	}
}
