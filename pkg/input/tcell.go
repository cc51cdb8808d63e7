package input

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTimeout is how long a key counts as held after the terminal
// last reported it. Terminals send repeats while a key is down but never a
// release, so the release is inferred once repeats stop.
const DefaultHoldTimeout = 150 * time.Millisecond

// TcellSource reads key events from a tcell screen
type TcellSource struct {
	Screen      tcell.Screen
	HoldTimeout time.Duration

	mu        sync.Mutex
	held      map[Action]time.Time
	now       func() time.Time
	tickEvery time.Duration
}

// NewTcellSource creates a source for screen with the default hold timeout
func NewTcellSource(screen tcell.Screen) *TcellSource {
	return &TcellSource{
		Screen:      screen,
		HoldTimeout: DefaultHoldTimeout,
	}
}

// Run delivers key events to out until ctx is done or the screen is
// finalized. It blocks; out is not closed.
func (s *TcellSource) Run(ctx context.Context, out chan<- KeyEvent) error {
	s.init()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := s.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				if !s.press(ctx, MapKey(key), out) {
					return nil
				}
			}
		case <-ticker.C:
			if !s.expire(ctx, out) {
				return nil
			}
		}
	}
}

func (s *TcellSource) init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.HoldTimeout <= 0 {
		s.HoldTimeout = DefaultHoldTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.tickEvery = s.HoldTimeout / 3
	s.held = make(map[Action]time.Time)
}

// press records a key report. Only the first report of a held key is
// forwarded; repeats just extend the hold.
func (s *TcellSource) press(ctx context.Context, a Action, out chan<- KeyEvent) bool {
	if a == ActionNone {
		return true
	}

	s.mu.Lock()
	_, alreadyHeld := s.held[a]
	if a != ActionQuit {
		s.held[a] = s.now()
	}
	s.mu.Unlock()

	if alreadyHeld {
		return true
	}
	return send(ctx, out, KeyEvent{Action: a, Pressed: true})
}

// expire releases keys that have not been reported within the hold timeout
func (s *TcellSource) expire(ctx context.Context, out chan<- KeyEvent) bool {
	s.mu.Lock()
	now := s.now()
	var released []Action
	for a, last := range s.held {
		if now.Sub(last) >= s.HoldTimeout {
			released = append(released, a)
			delete(s.held, a)
		}
	}
	s.mu.Unlock()

	for _, a := range released {
		if !send(ctx, out, KeyEvent{Action: a, Pressed: false}) {
			return false
		}
	}
	return true
}

func send(ctx context.Context, out chan<- KeyEvent, ev KeyEvent) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// MapKey binds terminal keys to actions: arrows or a/d steer; Escape,
// Ctrl-C and q quit
func MapKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return ActionLeft
		case 'd', 'D', 'l':
			return ActionRight
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
