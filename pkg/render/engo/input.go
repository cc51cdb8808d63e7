// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-breakout/pkg/input"
)

// button is the part of engo.Button the input system reads
type button interface {
	JustPressed() bool
	JustReleased() bool
}

// binding ties an engo button name to a game action
type binding struct {
	name   string
	action input.Action
}

var bindings = []binding{
	{"left", input.ActionLeft},
	{"right", input.ActionRight},
	{"quit", input.ActionQuit},
}

// InputSystem turns engo button edges into key events. Engo reports real
// releases, so no hold timeout is needed as it is for terminals.
type InputSystem struct {
	lookup func(name string) button
}

// NewInputSystem creates an input system reading engo.Input
func NewInputSystem() *InputSystem {
	return &InputSystem{
		lookup: func(name string) button { return engo.Input.Button(name) },
	}
}

// Poll returns the key events since the previous frame
func (is *InputSystem) Poll() []input.KeyEvent {
	var events []input.KeyEvent
	for _, b := range bindings {
		btn := is.lookup(b.name)
		if btn.JustPressed() {
			events = append(events, input.KeyEvent{Action: b.action, Pressed: true})
		}
		if btn.JustReleased() {
			events = append(events, input.KeyEvent{Action: b.action, Pressed: false})
		}
	}
	return events
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton("left", engo.KeyArrowLeft, engo.KeyA)
	engo.Input.RegisterButton("right", engo.KeyArrowRight, engo.KeyD)
	engo.Input.RegisterButton("quit", engo.KeyEscape, engo.KeyQ)
}
