package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	plainStyle = lipgloss.NewStyle()

	// colorStyles maps board palette entries to terminal colors.
	colorStyles = map[core.Color]lipgloss.Style{
		core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return plainStyle
}

// RenderScreen turns a screen buffer into styled terminal output, emitting
// one style per same-color run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, span := range s.Spans(y) {
			if span.Color == core.ColorDefault {
				sb.WriteString(span.Text)
				continue
			}
			sb.WriteString(styleFor(span.Color).Render(span.Text))
		}
	}
	return sb.String()
}
