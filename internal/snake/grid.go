package snake

import (
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board dimensions used when no configuration overrides them.
const (
	GridWidth  = 30
	GridHeight = 20
)

// Cell addresses one square of the board. Row 0 is the top row.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Grid maps between board cells and world-space positions.
// The arena is centred on the world origin with walls straddling its edges.
type Grid struct {
	Width         int
	Height        int
	CellSize      float64
	WallThickness float64
}

// left is the x coordinate of the left wall's centre line.
func (g Grid) left() float64 {
	return -(float64(g.Width)*g.CellSize + g.WallThickness) / 2
}

// top is the y coordinate of the top wall's centre line.
func (g Grid) top() float64 {
	return (float64(g.Height)*g.CellSize + g.WallThickness) / 2
}

// CellToWorld returns the world position of a cell's centre.
func (g Grid) CellToWorld(c Cell) core.Vec2 {
	return core.Vec2{
		X: g.left() + (float64(c.Col)+0.5)*g.CellSize + g.WallThickness/2,
		Y: g.top() - (float64(c.Row)+0.5)*g.CellSize - g.WallThickness/2,
	}
}

// WorldToCell returns the cell containing a world position, flooring toward
// the lower index. It is the inverse of CellToWorld for cell centres.
func (g Grid) WorldToCell(p core.Vec2) Cell {
	return Cell{
		Col: int(math.Floor((p.X - g.left() - g.WallThickness/2) / g.CellSize)),
		Row: int(math.Floor((g.top() - p.Y - g.WallThickness/2) / g.CellSize)),
	}
}

// InBounds reports whether the cell lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Area is the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Walls returns the four border walls as world-space boxes.
// Each wall is centred on the arena edge and overlaps its neighbours at the corners.
func (g Grid) Walls() []core.Box {
	left, top := g.left(), g.top()
	arenaW := -2 * left
	arenaH := 2 * top
	vertical := core.Vec2{X: g.WallThickness, Y: arenaH + g.WallThickness}
	horizontal := core.Vec2{X: arenaW + g.WallThickness, Y: g.WallThickness}

	return []core.Box{
		core.NewBox(core.Vec2{X: left, Y: 0}, vertical),
		core.NewBox(core.Vec2{X: -left, Y: 0}, vertical),
		core.NewBox(core.Vec2{X: 0, Y: -top}, horizontal),
		core.NewBox(core.Vec2{X: 0, Y: top}, horizontal),
	}
}
