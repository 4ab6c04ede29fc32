package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore(ScoreEntry{Difficulty: "regular", Score: score, Length: score + 2, Cause: "wall", Player: "local"}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore(ScoreEntry{Difficulty: "hard", Score: 50}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("regular", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Length != 22 || scores[0].Cause != "wall" || scores[0].Player != "local" {
		t.Errorf("Entry fields not round-tripped: %+v", scores[0])
	}

	hard, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	r := snake.Result{Difficulty: snake.Hard, Score: 7, Length: 9, Ticks: 120, Cause: snake.CauseSelf}
	if _, err := store.SaveResult("alice", r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores("hard", 1)
	if err != nil || len(scores) != 1 {
		t.Fatalf("TopScores() = %v, %v", scores, err)
	}
	got := scores[0]
	if got.Score != 7 || got.Length != 9 || got.Ticks != 120 || got.Cause != "self" || got.Player != "alice" {
		t.Errorf("stored entry = %+v", got)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{Difficulty: "simple", Score: (i + 1) * 10})
	}

	scores, err := store.TopScores("simple", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("simple")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no games, got %d", high)
	}

	store.SaveScore(ScoreEntry{Difficulty: "simple", Score: 10})
	store.SaveScore(ScoreEntry{Difficulty: "simple", Score: 30})
	store.SaveScore(ScoreEntry{Difficulty: "simple", Score: 20})

	high, err = store.HighScore("simple")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Difficulty: "simple", Score: 1})
	store.SaveScore(ScoreEntry{Difficulty: "simple", Score: 2})
	store.SaveScore(ScoreEntry{Difficulty: "hard", Score: 3})

	if err := store.ClearScores("simple"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	simple, _ := store.TopScores("simple", 10)
	if len(simple) != 0 {
		t.Errorf("Expected 0 simple scores after clear, got %d", len(simple))
	}
	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard scores should not be affected by clearing simple")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("regular")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ScoreEntry{Difficulty: "regular", Score: 4, Length: 6, Cause: "wall"})
	store.SaveScore(ScoreEntry{Difficulty: "regular", Score: 8, Length: 10, Cause: "self"})
	store.SaveScore(ScoreEntry{Difficulty: "regular", Score: 0, Length: 2, Cause: "wall"})

	stats, err := store.GetStats("regular")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 8 || stats.LongestLen != 10 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, expected 4", stats.AvgScore)
	}
	if stats.WallDeaths != 2 || stats.SelfDeaths != 1 {
		t.Errorf("deaths wall=%d self=%d", stats.WallDeaths, stats.SelfDeaths)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
