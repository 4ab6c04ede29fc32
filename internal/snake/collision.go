package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// ColliderKind tags what the head ran into.
type ColliderKind int

const (
	ColliderWall ColliderKind = iota
	ColliderBody
	ColliderFood
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderWall:
		return "wall"
	case ColliderBody:
		return "body"
	case ColliderFood:
		return "food"
	default:
		return "unknown"
	}
}

// Fatal reports whether touching this kind of collider ends the session.
func (k ColliderKind) Fatal() bool {
	return k == ColliderWall || k == ColliderBody
}

// Collider is anything the head can overlap, with its world-space bounds.
type Collider struct {
	Kind ColliderKind
	Box  core.Box
}

// Resolver tests the head against walls, the rest of the body and food using
// axis-aligned box overlap in world space.
type Resolver struct {
	grid    Grid
	segSize core.Vec2
	walls   []Collider
}

// NewResolver builds a resolver for the given board. segmentSize is the
// collider size of head, body segments and food.
func NewResolver(grid Grid, segmentSize float64) *Resolver {
	r := &Resolver{
		grid:    grid,
		segSize: core.Vec2{X: segmentSize, Y: segmentSize},
	}
	for _, box := range grid.Walls() {
		r.walls = append(r.walls, Collider{Kind: ColliderWall, Box: box})
	}
	return r
}

// box returns the collider box for something occupying cell c.
func (r *Resolver) box(c Cell) core.Box {
	return core.NewBox(r.grid.CellToWorld(c), r.segSize)
}

// Colliders lists every collider other than the head: walls, each body
// segment after the head, and the food when present.
func (r *Resolver) Colliders(body *Body, food *Cell) []Collider {
	out := make([]Collider, 0, len(r.walls)+body.Len())
	out = append(out, r.walls...)
	for _, seg := range body.segments[1:] {
		out = append(out, Collider{Kind: ColliderBody, Box: r.box(seg)})
	}
	if food != nil {
		out = append(out, Collider{Kind: ColliderFood, Box: r.box(*food)})
	}
	return out
}

// Resolve returns every collider the head currently overlaps. Each collider
// is evaluated on its own, so one tick can report both food and a fatal hit.
// A head off the board always reports a wall, even when the walls are too
// thin to reach it.
func (r *Resolver) Resolve(body *Body, food *Cell) []Collider {
	head := r.box(body.Head())

	var hits []Collider
	wall := false
	for _, c := range r.Colliders(body, food) {
		if head.Intersects(c.Box) {
			hits = append(hits, c)
			wall = wall || c.Kind == ColliderWall
		}
	}
	if !wall && !r.grid.InBounds(body.Head()) {
		hits = append(hits, Collider{Kind: ColliderWall, Box: head})
	}
	return hits
}
