package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.Player = "tester"
	return cfg
}

func press(m SessionModel, k tea.KeyMsg) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(SessionModel), cmd
}

func frame(m SessionModel, t time.Time) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(FrameMsg(t))
	return next.(SessionModel), cmd
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		dir    snake.Direction
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, snake.DirUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, core.ActionDown, snake.DirDown, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft, snake.DirLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, snake.DirRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, snake.DirNone, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, snake.DirNone, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, snake.DirNone, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, snake.DirNone, false},
	}
	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
		if got := DirectionFor(action); got != tc.dir {
			t.Errorf("DirectionFor(%v) = %v, expected %v", action, got, tc.dir)
		}
	}
}

func TestSessionPlaysUntilWall(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewSessionModel(snake.DefaultSettings(), store, testConfig(), nil)

	// Pick "hard" and start
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting a game should schedule frames")
	}
	if snap := m.Snapshot(); snap.State != snake.StateInGame || snap.Difficulty != snake.Hard {
		t.Fatalf("after Enter: state %v difficulty %v", snap.State, snap.Difficulty)
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the score")
	}

	t0 := time.Unix(1000, 0)
	interval := m.Snapshot().Interval
	m, _ = frame(m, t0)
	m, cmd = frame(m, t0.Add(interval))
	if m.Snapshot().Ticks != 1 || cmd == nil {
		t.Fatalf("expected one tick and another frame, ticks = %d", m.Snapshot().Ticks)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd = frame(m, t0.Add(3*interval))
	if cmd != nil {
		t.Error("frames should stop after game over")
	}

	snap := m.Snapshot()
	if snap.State != snake.StateMenu || !snap.HasLast || snap.Last.Cause != snake.CauseWall {
		t.Fatalf("expected a wall game over, got %+v", snap)
	}
	if !strings.Contains(m.View(), "Game over (wall)") {
		t.Error("menu should show the last result")
	}

	scores, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "tester" || scores[0].Cause != "wall" {
		t.Errorf("stored scores = %+v", scores)
	}
}

func TestScoreboardFromMenu(t *testing.T) {
	m := NewSessionModel(snake.DefaultSettings(), nil, testConfig(), nil)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatal("Tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES - SIMPLE") {
		t.Error("scoreboard should open on the highlighted difficulty")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Error("Esc should return to the menu")
	}
}

func TestScoreboardStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	results := []snake.Result{
		{Difficulty: snake.Regular, Score: 4, Length: 6, Ticks: 40, Cause: snake.CauseWall},
		{Difficulty: snake.Regular, Score: 2, Length: 4, Ticks: 25, Cause: snake.CauseSelf},
	}
	for _, r := range results {
		if _, err := store.SaveResult("tester", r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	wide := NewScoreboardModel(store, 120, 30, snake.Regular)
	view := wide.View()
	for _, want := range []string{"HIGH SCORES - REGULAR", "Games 2", "Avg 3.0", "Longest 6", "Wall 1 Self 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("wide view missing %q", want)
		}
	}

	narrow := NewScoreboardModel(store, 60, 30, snake.Hard)
	if !strings.Contains(narrow.View(), "No scores recorded yet.") {
		t.Error("hard has no scores and should say so")
	}
	next, _ := narrow.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if !strings.Contains(next.View(), "Games 2") {
		t.Error("switching to regular should show its stats")
	}
}

func TestDrawBoard(t *testing.T) {
	scr := core.NewScreen(80, 24)
	snap := snake.Snapshot{
		State:      snake.StateInGame,
		Difficulty: snake.Regular,
		Width:      30,
		Height:     20,
		Score:      3,
		Body:       []snake.Cell{{Col: 2, Row: 0}, {Col: 1, Row: 0}},
		Food:       snake.Cell{Col: 5, Row: 5},
		HasFood:    true,
		Interval:   500 * time.Millisecond,
	}
	DrawBoard(scr, snap)

	if !strings.Contains(scr.Row(0), "Score: 3") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	// Board is 62 wide, centred: x = 9
	left := 9
	if scr.Get(left, 1) != '┌' {
		t.Errorf("expected board corner at (%d,1), got %q", left, scr.Get(left, 1))
	}
	if scr.Get(left+1+2*2, 2) != '█' {
		t.Error("head not drawn at column 2")
	}
	if scr.Get(left+1+5*2, 7) != '(' {
		t.Error("food not drawn at (5,5)")
	}

	small := core.NewScreen(40, 10)
	DrawBoard(small, snap)
	if !strings.Contains(small.String(), "Terminal too small") {
		t.Error("small screen should show a warning")
	}
}
