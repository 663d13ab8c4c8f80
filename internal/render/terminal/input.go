package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/wallview/internal/render"
)

// DefaultHoldTicks is how long a key counts as held after its last event.
// Terminals only report presses and auto-repeat, never releases.
const DefaultHoldTicks = 3

// InputManager implements render.InputManager from terminal key events.
// Events arrive on the poll goroutine while the tick loop reads.
type InputManager struct {
	mu        sync.Mutex
	tick      uint64
	hold      uint64
	lastPress map[render.Key]uint64
}

// NewInputManager creates an input manager with the given hold window.
func NewInputManager(holdTicks int) *InputManager {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &InputManager{
		hold:      uint64(holdTicks),
		lastPress: make(map[render.Key]uint64),
	}
}

// IsKeyPressed reports whether key had an event within the hold window.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	last, ok := m.lastPress[key]
	return ok && m.tick-last < m.hold
}

// IsKeyJustPressed reports whether key had an event since the previous tick.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	last, ok := m.lastPress[key]
	return ok && last == m.tick
}

// Advance moves to the next tick.
func (m *InputManager) Advance() {
	m.mu.Lock()
	m.tick++
	m.mu.Unlock()
}

// Press records a key event for the upcoming tick. Unmapped keys are ignored.
func (m *InputManager) Press(key tcell.Key, r rune) {
	k, ok := keyFromTcell(key, r)
	if !ok {
		return
	}

	m.mu.Lock()
	m.lastPress[k] = m.tick
	m.mu.Unlock()
}

// keyFromTcell converts a tcell key event to a render.Key.
func keyFromTcell(key tcell.Key, r rune) (render.Key, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyUp:
		return render.KeyW, true
	case tcell.KeyDown:
		return render.KeyS, true
	case tcell.KeyLeft:
		return render.KeyA, true
	case tcell.KeyRight:
		return render.KeyD, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch r {
	case 'w', 'W':
		return render.KeyW, true
	case 'a', 'A':
		return render.KeyA, true
	case 's', 'S':
		return render.KeyS, true
	case 'd', 'D':
		return render.KeyD, true
	case ',', '<':
		return render.KeyComma, true
	case '.', '>':
		return render.KeyPeriod, true
	case 'm', 'M':
		return render.KeyM, true
	case 'q', 'Q':
		return render.KeyEscape, true
	default:
		return 0, false
	}
}
