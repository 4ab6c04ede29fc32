package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show difficulty levels and their speed curves",
	Long: `Shows each difficulty with its base rate and the tick interval at a
few scores, using the active configuration.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	settings, _, err := settingsAndConfig()
	if err != nil {
		return err
	}
	curve := settings.Speed
	scores := []int{0, 10, 50, 100, 250}

	fmt.Printf("Board %dx%d, interval floor %v\n\n", settings.Grid.Width, settings.Grid.Height, curve.Floor)

	fmt.Printf("  %-8s  %-6s", "Level", "Base")
	for _, s := range scores {
		fmt.Printf("  %8s", fmt.Sprintf("@%d", s))
	}
	fmt.Println()

	for _, d := range snake.Difficulties() {
		fmt.Printf("  %-8s  %-6g", d, curve.BaseRate(d))
		for _, s := range scores {
			fmt.Printf("  %8v", curve.Interval(s, d).Round(time.Millisecond))
		}
		fmt.Println()
	}
	return nil
}
