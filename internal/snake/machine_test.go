package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// startAt starts a session and moves the food somewhere out of the way so
// scenarios are independent of the seed.
func startAt(t *testing.T, d Difficulty, food Cell) *Machine {
	t.Helper()
	m := NewMachine(DefaultSettings(), 42)
	if err := m.Start(d); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	m.session.food = &food
	return m
}

func TestStartBuildsInitialSession(t *testing.T) {
	m := NewMachine(DefaultSettings(), 42)
	if m.State() != StateMenu {
		t.Fatalf("initial state = %v, expected menu", m.State())
	}
	if err := m.Start(Regular); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	snap := m.Snapshot()
	if snap.State != StateInGame || snap.Difficulty != Regular {
		t.Errorf("state = %v difficulty = %v", snap.State, snap.Difficulty)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if !reflect.DeepEqual(snap.Body, []Cell{{1, 0}, {0, 0}}) {
		t.Errorf("body = %v", snap.Body)
	}
	if snap.Heading != DirRight {
		t.Errorf("heading = %v, expected right", snap.Heading)
	}
	if !snap.HasFood {
		t.Fatal("initial food not spawned")
	}
	if snap.Food == (Cell{1, 0}) || snap.Food == (Cell{0, 0}) {
		t.Errorf("food spawned on the snake at %v", snap.Food)
	}
	if want := DefaultSettings().Speed.Interval(0, Regular); snap.Interval != want {
		t.Errorf("interval = %v, expected %v", snap.Interval, want)
	}
}

func TestStartWhileInGame(t *testing.T) {
	m := startAt(t, Simple, Cell{20, 15})
	if err := m.Start(Hard); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Start() in game = %v, expected ErrInvalidTransition", err)
	}
	if m.Difficulty() != Simple {
		t.Errorf("difficulty changed to %v", m.Difficulty())
	}
}

func TestTickMovesRight(t *testing.T) {
	m := startAt(t, Simple, Cell{20, 15})

	res := m.Tick()
	if !res.Moved || res.Ate || res.GameOver {
		t.Errorf("unexpected result %+v", res)
	}
	if got := m.Snapshot().Body; !reflect.DeepEqual(got, []Cell{{2, 0}, {1, 0}}) {
		t.Errorf("body = %v, expected [{2 0} {1 0}]", got)
	}
}

func TestEatingGrowsAtOldTail(t *testing.T) {
	m := startAt(t, Simple, Cell{2, 0})
	before := m.TickInterval()

	res := m.Tick()
	if !res.Ate || !res.Grew {
		t.Fatalf("expected food to be eaten, got %+v", res)
	}

	snap := m.Snapshot()
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if !reflect.DeepEqual(snap.Body, []Cell{{2, 0}, {1, 0}, {0, 0}}) {
		t.Errorf("body = %v", snap.Body)
	}
	if snap.HasFood {
		t.Error("eaten food should be gone until the next frame")
	}
	if snap.Interval >= before {
		t.Errorf("interval %v should shrink from %v after scoring", snap.Interval, before)
	}

	m.Frame()
	snap = m.Snapshot()
	if !snap.HasFood {
		t.Fatal("Frame() should respawn food")
	}
	for _, c := range snap.Body {
		if c == snap.Food {
			t.Errorf("food respawned on the body at %v", c)
		}
	}
}

func TestWallEndsSession(t *testing.T) {
	m := startAt(t, Hard, Cell{20, 15})
	var results []Result
	m.OnGameOver(func(r Result) { results = append(results, r) })

	sess := m.session
	m.Steer(DirUp)
	res := m.Tick()

	if !res.GameOver || res.Cause != CauseWall {
		t.Fatalf("expected a wall game over, got %+v", res)
	}
	if m.State() != StateMenu {
		t.Errorf("state = %v, expected menu", m.State())
	}
	if sess.body.Heading() != DirNone {
		t.Errorf("heading after death = %v, expected none", sess.body.Heading())
	}
	if len(results) != 1 {
		t.Fatalf("listener called %d times", len(results))
	}
	want := Result{Difficulty: Hard, Score: 0, Length: 2, Ticks: 1, Cause: CauseWall}
	if results[0] != want {
		t.Errorf("result = %+v, expected %+v", results[0], want)
	}
	if last, ok := m.LastResult(); !ok || last != want {
		t.Errorf("LastResult() = %+v, %v", last, ok)
	}

	// Menu ignores ticks and input
	if res := m.Tick(); res != (StepResult{}) {
		t.Errorf("Tick() in menu = %+v", res)
	}
	m.Steer(DirDown)
	m.Frame()
	if snap := m.Snapshot(); snap.Body != nil || !snap.HasLast {
		t.Errorf("menu snapshot = %+v", snap)
	}
}

func TestThinWallsStillEndSession(t *testing.T) {
	for _, thickness := range []float64{0, 2} {
		settings := DefaultSettings()
		settings.Grid.WallThickness = thickness
		m := NewMachine(settings, 42)
		if err := m.Start(Simple); err != nil {
			t.Fatalf("Start() failed: %v", err)
		}
		m.session.food = &Cell{20, 15}

		m.Steer(DirUp)
		res := m.Tick()
		if !res.GameOver || res.Cause != CauseWall {
			t.Errorf("wall %g: expected a wall game over, got %+v", thickness, res)
		}
		if m.State() != StateMenu {
			t.Errorf("wall %g: state = %v, expected menu", thickness, m.State())
		}
	}
}

func TestSelfCollision(t *testing.T) {
	m := startAt(t, Simple, Cell{20, 15})
	s := m.session
	s.body = NewBody(Cell{5, 5}, DirRight)
	for _, c := range []Cell{{3, 5}, {2, 5}, {1, 5}} {
		s.body.Grow(c)
	}

	for _, d := range []Direction{DirDown, DirLeft} {
		m.Steer(d)
		if res := m.Tick(); res.GameOver {
			t.Fatalf("early game over steering %v: %+v", d, res)
		}
	}
	m.Steer(DirUp)
	res := m.Tick()
	if !res.GameOver || res.Cause != CauseSelf {
		t.Errorf("expected a self collision, got %+v", res)
	}
}

func TestFoodAndDeathInOneTick(t *testing.T) {
	m := startAt(t, Simple, Cell{4, 5})
	s := m.session
	s.body = NewBody(Cell{5, 5}, DirRight)
	for _, c := range []Cell{{3, 5}, {2, 5}, {1, 5}} {
		s.body.Grow(c)
	}
	m.Steer(DirDown)
	m.Tick()
	m.Steer(DirLeft)
	m.Tick()

	var got Result
	m.OnGameOver(func(r Result) { got = r })
	m.Steer(DirUp)
	res := m.Tick()

	if !res.Ate || !res.GameOver {
		t.Fatalf("expected both food and death, got %+v", res)
	}
	if got.Score != 1 || got.Cause != CauseSelf {
		t.Errorf("result = %+v", got)
	}
}

func TestReversalIgnoredThroughMachine(t *testing.T) {
	m := startAt(t, Simple, Cell{20, 15})
	m.Steer(DirLeft)
	m.Tick()
	snap := m.Snapshot()
	if head := snap.Body[0]; head != (Cell{2, 0}) {
		t.Errorf("head = %v, expected {2 0}", head)
	}
	if snap.Heading != DirRight {
		t.Errorf("snapshot heading = %v, expected right", snap.Heading)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m := startAt(t, Simple, Cell{20, 15})
	m.Steer(DirUp)
	m.Tick()

	if err := m.Start(Hard); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	snap := m.Snapshot()
	if snap.Score != 0 || len(snap.Body) != 2 || snap.Difficulty != Hard {
		t.Errorf("restart snapshot = %+v", snap)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		m := NewMachine(DefaultSettings(), 12345)
		if err := m.Start(Regular); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 40 && m.Active(); i++ {
			switch i {
			case 5:
				m.Steer(DirDown)
			case 12:
				m.Steer(DirRight)
			}
			m.Tick()
			m.Frame()
		}
		return m.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different snapshots:\n%+v\n%+v", a, b)
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	m := NewMachine(DefaultSettings(), 3)
	for game := 0; game < 20; game++ {
		if err := m.Start(Simple); err != nil {
			t.Fatal(err)
		}
		for m.Active() {
			m.Steer(dirs[rng.Intn(len(dirs))])
			m.Tick()
			m.Frame()

			snap := m.Snapshot()
			if !snap.HasFood {
				continue
			}
			for _, c := range snap.Body {
				if c == snap.Food {
					t.Fatalf("food on body cell %v", c)
				}
			}
		}
	}
}
