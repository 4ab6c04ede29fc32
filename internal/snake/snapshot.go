package snake

import "time"

// Snapshot is a read-only projection of the machine for renderers.
type Snapshot struct {
	State      State
	Difficulty Difficulty
	Width      int
	Height     int

	Score    int
	Body     []Cell // Head first
	Food     Cell
	HasFood  bool
	Heading  Direction // Direction of travel; a pending reversal is not shown
	Ticks    uint64
	Interval time.Duration

	Last    Result
	HasLast bool
}

// Snapshot copies the current state. In the menu only the board size,
// difficulty and last result are filled in.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:      m.state,
		Difficulty: m.difficulty,
		Width:      m.settings.Grid.Width,
		Height:     m.settings.Grid.Height,
		Interval:   m.TickInterval(),
	}
	snap.Last, snap.HasLast = m.LastResult()

	s := m.session
	if s == nil {
		return snap
	}
	snap.Score = s.score
	snap.Body = s.body.Segments()
	snap.Food, snap.HasFood = s.Food()
	snap.Heading = s.body.Facing()
	snap.Ticks = s.ticks
	return snap
}
