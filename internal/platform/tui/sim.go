package tui

import (
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// machineSim runs a snake.Machine under loop.Loop. TickInterval and Active
// come from the embedded machine.
type machineSim struct {
	*snake.Machine
}

// FixedUpdate runs one simulation tick. Game over reaches the host through
// the machine's listeners.
func (s machineSim) FixedUpdate() {
	s.Tick()
}

// Update places food when none exists.
func (s machineSim) Update() {
	s.Frame()
}
