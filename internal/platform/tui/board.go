package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Each board cell is drawn two characters wide so it looks square.
const cellChars = 2

// boardRect returns where the bordered board sits on a screen, below a
// one-line HUD. ok is false when the screen cannot fit it.
func boardRect(screenW, screenH, cols, rows int) (r core.Rect, ok bool) {
	w := cols*cellChars + 2
	h := rows + 2
	if screenW < w || screenH < h+1 {
		return core.Rect{}, false
	}
	return core.NewRect((screenW-w)/2, 1, w, h), true
}

// DrawBoard renders a running session's snapshot onto the screen.
func DrawBoard(scr *core.Screen, snap snake.Snapshot) {
	scr.Clear()

	r, ok := boardRect(scr.Width(), scr.Height(), snap.Width, snap.Height)
	if !ok {
		scr.DrawTextCentered(scr.Height()/2, "Terminal too small", core.ColorBrightRed)
		need := fmt.Sprintf("need %dx%d", snap.Width*cellChars+2, snap.Height+3)
		scr.DrawTextCentered(scr.Height()/2+1, need, core.ColorGray)
		return
	}

	hud := fmt.Sprintf("Score: %d   Length: %d   %s   %dms",
		snap.Score, len(snap.Body), snap.Difficulty, snap.Interval.Milliseconds())
	scr.DrawText(r.X, 0, hud, core.ColorBrightYellow)

	scr.DrawBox(r, core.ColorGray)

	plot := func(c snake.Cell, glyph string, color core.Color) {
		x := r.X + 1 + c.Col*cellChars
		y := r.Y + 1 + c.Row
		scr.DrawText(x, y, glyph, color)
	}

	if snap.HasFood {
		plot(snap.Food, "()", core.ColorOrange)
	}
	// Draw tail first so the head wins where segments overlap
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			plot(snap.Body[i], "██", core.ColorBrightGreen)
		} else {
			plot(snap.Body[i], "▓▓", core.ColorGreen)
		}
	}
}
