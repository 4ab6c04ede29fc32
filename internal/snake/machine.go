// Package snake implements the snake simulation: board geometry, the body and
// its movement, collisions, food placement, the speed curve and the
// menu/in-game state machine. It has no rendering or timing of its own; a
// host drives it through Tick and Frame and reads it back through Snapshot.
package snake

import (
	"errors"
	"math/rand"
	"time"
)

// State is the top-level application state.
type State int

const (
	StateMenu State = iota
	StateInGame
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateInGame:
		return "in-game"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a transition is requested from the
// wrong state.
var ErrInvalidTransition = errors.New("snake: invalid state transition")

// Result summarises a finished session.
type Result struct {
	Difficulty Difficulty
	Score      int
	Length     int
	Ticks      uint64
	Cause      Cause
}

// Machine drives sessions through Menu and InGame. It is not safe for
// concurrent use; the host serialises all calls.
type Machine struct {
	settings Settings
	resolver *Resolver
	spawner  *Spawner

	state      State
	session    *Session
	difficulty Difficulty
	last       *Result

	listeners []func(Result)
}

// NewMachine creates a machine in the Menu state. seed feeds food placement.
func NewMachine(settings Settings, seed int64) *Machine {
	return &Machine{
		settings: settings,
		resolver: NewResolver(settings.Grid, settings.SegmentSize),
		spawner:  NewSpawner(settings.Grid, rand.New(rand.NewSource(seed))),
		state:    StateMenu,
	}
}

// OnGameOver registers a listener called with the result each time a session
// ends. Listeners run synchronously inside Tick.
func (m *Machine) OnGameOver(fn func(Result)) {
	m.listeners = append(m.listeners, fn)
}

// Start leaves the menu and begins a session at the chosen difficulty.
func (m *Machine) Start(d Difficulty) error {
	if m.state != StateMenu {
		return ErrInvalidTransition
	}
	m.difficulty = d
	m.session = newSession(m.settings, d, m.resolver, m.spawner)
	m.session.Frame()
	m.state = StateInGame
	return nil
}

// Tick runs one fixed update. It does nothing outside InGame.
func (m *Machine) Tick() StepResult {
	if m.state != StateInGame {
		return StepResult{}
	}

	res := m.session.Tick()
	if res.GameOver {
		m.finish()
	}
	return res
}

// Frame runs the variable-rate pass. It does nothing outside InGame.
func (m *Machine) Frame() {
	if m.state == StateInGame {
		m.session.Frame()
	}
}

// Steer buffers a direction for the next tick. Ignored outside InGame.
func (m *Machine) Steer(d Direction) {
	if m.state == StateInGame {
		m.session.Steer(d)
	}
}

// TickInterval is the period the host must wait between fixed ticks.
// Outside InGame it is the interval a new session would start with.
func (m *Machine) TickInterval() time.Duration {
	if m.state == StateInGame {
		return m.session.Interval()
	}
	return m.settings.Speed.Interval(0, m.difficulty)
}

// Active reports whether fixed ticks should run.
func (m *Machine) Active() bool {
	return m.state == StateInGame
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Difficulty returns the most recently selected difficulty.
func (m *Machine) Difficulty() Difficulty {
	return m.difficulty
}

// Settings returns the settings sessions are built from.
func (m *Machine) Settings() Settings {
	return m.settings
}

// LastResult returns the result of the most recent session, if any.
func (m *Machine) LastResult() (Result, bool) {
	if m.last == nil {
		return Result{}, false
	}
	return *m.last, true
}

func (m *Machine) finish() {
	s := m.session
	r := Result{
		Difficulty: s.difficulty,
		Score:      s.score,
		Length:     s.body.Len(),
		Ticks:      s.ticks,
		Cause:      s.cause,
	}
	m.last = &r
	m.session = nil
	m.state = StateMenu

	for _, fn := range m.listeners {
		fn(r)
	}
}
