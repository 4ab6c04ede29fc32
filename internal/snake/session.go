package snake

import "time"

// Cause records why a session ended.
type Cause string

const (
	CauseNone Cause = ""
	CauseWall Cause = "wall"
	CauseSelf Cause = "self"
)

// StepResult describes what happened during one fixed tick.
type StepResult struct {
	Moved    bool
	Ate      bool
	Grew     bool
	GameOver bool
	Cause    Cause
}

// Session owns every piece of per-game state. It is created on entry to
// InGame and dropped when the game ends.
type Session struct {
	settings   Settings
	difficulty Difficulty
	resolver   *Resolver
	spawner    *Spawner

	body     *Body
	food     *Cell
	score    int
	interval time.Duration
	ticks    uint64

	// Cell released by the tail on the current tick; growth lands here.
	tailSlot    Cell
	growPending bool
	over        bool
	cause       Cause
}

// newSession builds a fresh session with the starting snake and the interval
// for a zero score. Food is not placed here.
func newSession(s Settings, d Difficulty, resolver *Resolver, spawner *Spawner) *Session {
	return &Session{
		settings:   s,
		difficulty: d,
		resolver:   resolver,
		spawner:    spawner,
		body:       NewBody(Cell{Col: 1, Row: 0}, DirRight),
		interval:   s.Speed.Interval(0, d),
	}
}

// Tick runs one fixed update: movement, collision, score projection, speed
// recompute and growth, in that order.
func (s *Session) Tick() StepResult {
	var res StepResult
	if s.over {
		return res
	}
	s.ticks++

	// Movement
	vacated, moved := s.body.Advance()
	res.Moved = moved
	if moved {
		s.tailSlot = vacated
	}

	// Collision
	for _, hit := range s.resolver.Resolve(s.body, s.food) {
		switch hit.Kind {
		case ColliderFood:
			s.score++
			s.food = nil
			s.growPending = true
			res.Ate = true
		case ColliderWall, ColliderBody:
			s.body.Stop()
			s.over = true
			if s.cause == CauseNone {
				s.cause = causeOf(hit.Kind)
			}
		}
	}

	// Speed
	s.interval = s.settings.Speed.Interval(s.score, s.difficulty)

	// Growth
	if s.growPending && moved {
		s.body.Grow(s.tailSlot)
		s.growPending = false
		res.Grew = true
	}

	res.GameOver = s.over
	res.Cause = s.cause
	return res
}

// Frame runs the variable-rate work: placing food when none exists.
func (s *Session) Frame() {
	if s.over || s.food != nil {
		return
	}
	if c, ok := s.spawner.Spawn(s.body.Occupancy()); ok {
		s.food = &c
	}
}

// Steer buffers a direction for the next tick.
func (s *Session) Steer(d Direction) {
	s.body.Steer(d)
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Interval returns the current fixed tick interval.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// Body returns the snake. Callers must not mutate it.
func (s *Session) Body() *Body {
	return s.body
}

// Food returns the food cell, if any.
func (s *Session) Food() (Cell, bool) {
	if s.food == nil {
		return Cell{}, false
	}
	return *s.food, true
}

func causeOf(k ColliderKind) Cause {
	if k == ColliderWall {
		return CauseWall
	}
	return CauseSelf
}
