package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a difficulty, or for every difficulty
when none is given. With --tui, open the interactive scoreboard instead.

Examples:
  snake scores
  snake scores hard
  snake scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulties := snake.Difficulties()
	if len(args) == 1 {
		d, err := snake.ParseDifficulty(args[0])
		if err != nil {
			return fmt.Errorf("%w (expected simple, regular or hard)", err)
		}
		difficulties = []snake.Difficulty{d}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height, difficulties[0])
	}

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, d); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, d snake.Difficulty) error {
	scores, err := store.TopScores(d.String(), 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", d)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-12s  %s\n", "Rank", "Score", "Length", "Cause", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-5s  %-12s  %s\n",
			i+1, e.Score, e.Length, e.Cause, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats(d.String())
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Longest: %d  Wall: %d  Self: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LongestLen, stats.WallDeaths, stats.SelfDeaths)
	}
	return nil
}
