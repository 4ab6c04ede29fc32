package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// menuState is the difficulty picker shown between games.
type menuState struct {
	items  []snake.Difficulty
	cursor int
	store  *storage.Store
	best   map[snake.Difficulty]int
}

func newMenuState(store *storage.Store) menuState {
	ms := menuState{
		items: snake.Difficulties(),
		store: store,
	}
	ms.refresh(snake.Simple)
	return ms
}

// refresh highlights d and reloads the best score per difficulty.
func (ms *menuState) refresh(d snake.Difficulty) {
	for i, item := range ms.items {
		if item == d {
			ms.cursor = i
		}
	}

	ms.best = make(map[snake.Difficulty]int, len(ms.items))
	if ms.store == nil {
		return
	}
	for _, item := range ms.items {
		if high, err := ms.store.HighScore(item.String()); err == nil {
			ms.best[item] = high
		}
	}
}

func (ms menuState) selected() snake.Difficulty {
	return ms.items[ms.cursor]
}

// handleMenuKey processes keyboard input for menu navigation.
func (m SessionModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case core.ActionDown:
		if m.menu.cursor < len(m.menu.items)-1 {
			m.menu.cursor++
		}
	case core.ActionConfirm:
		return m.startGame(m.menu.selected())
	case core.ActionScores:
		return m.openScoreboard()
	}

	return m, nil
}

// render draws the menu, including the last result when there is one.
func (ms menuState) render(snap snake.Snapshot, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), width))
	b.WriteString("\n\n")

	if snap.HasLast {
		r := snap.Last
		line := fmt.Sprintf("Game over (%s): score %d, length %d", r.Cause, r.Score, r.Length)
		b.WriteString(centerText(resultStyle.Render(line), width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Select difficulty:", width))
	b.WriteString("\n\n")

	for i, d := range ms.items {
		line := fmt.Sprintf("  %-8s", d)
		if best, ok := ms.best[d]; ok && best > 0 {
			line += fmt.Sprintf(" best %d", best)
		}
		if i == ms.cursor {
			line = "> " + line[2:]
			b.WriteString(centerText(selectedStyle.Render(line), width))
		} else {
			b.WriteString(centerText(line, width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within the given width, ignoring escape codes.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
