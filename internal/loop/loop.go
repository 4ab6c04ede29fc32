// Package loop schedules a simulation's fixed-rate ticks and variable-rate
// frames against wall-clock time supplied by the host.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Simulation is what the loop drives.
type Simulation interface {
	// FixedUpdate runs one fixed tick.
	FixedUpdate()
	// Update runs the once-per-frame pass.
	Update()
	// TickInterval is read after every tick, so it may change as the
	// simulation progresses.
	TickInterval() time.Duration
	// Active reports whether fixed ticks should run at all.
	Active() bool
}

// Loop tracks the deadline of the next fixed tick. The host calls Advance
// once per rendered frame with the current time; the loop never sleeps.
type Loop struct {
	sim        Simulation
	maxCatchUp int
	logger     *log.Logger

	running bool
	next    time.Time // Deadline of the next fixed tick

	ticks   uint64
	dropped uint64
}

// New creates a loop. At most maxCatchUp ticks run per Advance; any further
// backlog is dropped. A nil logger discards output.
func New(sim Simulation, maxCatchUp int, logger *log.Logger) *Loop {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		sim:        sim,
		maxCatchUp: maxCatchUp,
		logger:     logger,
	}
}

// Advance runs every fixed tick due by now, then one variable-rate pass.
// It returns the number of ticks run.
func (l *Loop) Advance(now time.Time) int {
	if !l.sim.Active() {
		l.running = false
		l.sim.Update()
		return 0
	}
	if !l.running {
		l.running = true
		l.next = now.Add(l.sim.TickInterval())
	}

	n := 0
	for !now.Before(l.next) {
		if n == l.maxCatchUp {
			behind := now.Sub(l.next)
			l.next = now.Add(l.sim.TickInterval())
			l.dropped++
			l.logger.Debug("dropping tick backlog", "behind", behind, "ran", n)
			break
		}

		l.sim.FixedUpdate()
		l.ticks++
		n++

		if !l.sim.Active() {
			l.running = false
			break
		}
		l.next = l.next.Add(l.sim.TickInterval())
	}

	l.sim.Update()
	return n
}

// Reset forgets the current deadline. The next Advance on an active
// simulation starts a fresh interval.
func (l *Loop) Reset() {
	l.running = false
}

// Next returns the deadline of the next fixed tick and whether one is
// scheduled.
func (l *Loop) Next() (time.Time, bool) {
	return l.next, l.running
}

// Ticks returns the total number of fixed ticks run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Dropped returns how many times a backlog was discarded.
func (l *Loop) Dropped() uint64 {
	return l.dropped
}
