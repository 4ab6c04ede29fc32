package loop

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

type fakeSim struct {
	active    bool
	intervals []time.Duration // Interval after n ticks; last value repeats
	ticks     int
	frames    int
	stopAfter int // Deactivate after this many ticks; 0 means never
}

func (f *fakeSim) FixedUpdate() {
	f.ticks++
	if f.stopAfter > 0 && f.ticks >= f.stopAfter {
		f.active = false
	}
}

func (f *fakeSim) Update() { f.frames++ }

func (f *fakeSim) TickInterval() time.Duration {
	if f.ticks < len(f.intervals) {
		return f.intervals[f.ticks]
	}
	return f.intervals[len(f.intervals)-1]
}

func (f *fakeSim) Active() bool { return f.active }

func TestAdvanceRunsDueTicks(t *testing.T) {
	sim := &fakeSim{active: true, intervals: []time.Duration{100 * time.Millisecond}}
	l := New(sim, 10, nil)
	t0 := time.Unix(0, 0)

	if n := l.Advance(t0); n != 0 {
		t.Errorf("first Advance ran %d ticks, expected 0", n)
	}
	if n := l.Advance(t0.Add(99 * time.Millisecond)); n != 0 {
		t.Errorf("Advance before deadline ran %d ticks", n)
	}
	if n := l.Advance(t0.Add(100 * time.Millisecond)); n != 1 {
		t.Errorf("Advance at deadline ran %d ticks, expected 1", n)
	}
	if n := l.Advance(t0.Add(350 * time.Millisecond)); n != 2 {
		t.Errorf("Advance after 250ms ran %d ticks, expected 2", n)
	}
	if sim.frames != 4 {
		t.Errorf("frames = %d, expected one per Advance", sim.frames)
	}
}

func TestAdvanceRereadsInterval(t *testing.T) {
	sim := &fakeSim{active: true, intervals: []time.Duration{
		100 * time.Millisecond, // Before the first tick
		50 * time.Millisecond,  // After one tick
		10 * time.Millisecond,
	}}
	l := New(sim, 10, nil)
	t0 := time.Unix(0, 0)
	l.Advance(t0)

	// Deadlines: 100, 150, 160, 170 ...
	if n := l.Advance(t0.Add(160 * time.Millisecond)); n != 3 {
		t.Errorf("ran %d ticks, expected 3", n)
	}
	next, ok := l.Next()
	if !ok || !next.Equal(t0.Add(170*time.Millisecond)) {
		t.Errorf("next deadline = %v, expected +170ms", next.Sub(t0))
	}
}

func TestAdvanceCapsCatchUp(t *testing.T) {
	sim := &fakeSim{active: true, intervals: []time.Duration{10 * time.Millisecond}}
	l := New(sim, 3, nil)
	t0 := time.Unix(0, 0)
	l.Advance(t0)

	now := t0.Add(time.Second)
	if n := l.Advance(now); n != 3 {
		t.Errorf("ran %d ticks, expected the cap of 3", n)
	}
	if l.Dropped() != 1 {
		t.Errorf("dropped = %d, expected 1", l.Dropped())
	}
	next, _ := l.Next()
	if !next.Equal(now.Add(10 * time.Millisecond)) {
		t.Errorf("backlog not discarded, next deadline %v", next.Sub(t0))
	}
}

func TestInactiveSimulationOnlyFrames(t *testing.T) {
	sim := &fakeSim{active: false, intervals: []time.Duration{time.Millisecond}}
	l := New(sim, 5, nil)
	t0 := time.Unix(0, 0)

	for i := 0; i < 5; i++ {
		if n := l.Advance(t0.Add(time.Duration(i) * time.Second)); n != 0 {
			t.Fatalf("inactive simulation ticked %d times", n)
		}
	}
	if sim.frames != 5 || l.Ticks() != 0 {
		t.Errorf("frames = %d ticks = %d", sim.frames, l.Ticks())
	}
}

func TestStopsWhenSimulationEnds(t *testing.T) {
	sim := &fakeSim{active: true, intervals: []time.Duration{10 * time.Millisecond}, stopAfter: 2}
	l := New(sim, 10, nil)
	t0 := time.Unix(0, 0)
	l.Advance(t0)

	if n := l.Advance(t0.Add(100 * time.Millisecond)); n != 2 {
		t.Errorf("ran %d ticks, expected 2 before the game ended", n)
	}
	if _, ok := l.Next(); ok {
		t.Error("no tick should be scheduled after the simulation stops")
	}

	// A new session starts a fresh interval from the time it is first seen
	sim.active = true
	sim.stopAfter = 0
	later := t0.Add(time.Hour)
	if n := l.Advance(later); n != 0 {
		t.Errorf("restart ran %d stale ticks", n)
	}
}

// snakeSim runs a snake.Machine under the loop.
type snakeSim struct{ *snake.Machine }

func (s snakeSim) FixedUpdate() { s.Tick() }
func (s snakeSim) Update()      { s.Frame() }

func TestDrivesSnakeMachine(t *testing.T) {
	m := snake.NewMachine(snake.DefaultSettings(), 1)
	if err := m.Start(snake.Hard); err != nil {
		t.Fatal(err)
	}
	l := New(snakeSim{m}, 5, nil)
	t0 := time.Unix(0, 0)
	l.Advance(t0)

	interval := m.TickInterval()
	l.Advance(t0.Add(interval))

	if snap := m.Snapshot(); snap.Ticks != 1 || snap.Body[0] != (snake.Cell{Col: 2, Row: 0}) {
		t.Errorf("after one interval: ticks = %d body = %v", snap.Ticks, snap.Body)
	}
}
