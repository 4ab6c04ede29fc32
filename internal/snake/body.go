package snake

// Occupancy records which cells are covered by the snake's body.
// Vacated cells are set back to false rather than deleted, so the map may
// hold stale false entries but never a true entry without a segment on it.
type Occupancy struct {
	cells map[Cell]bool
	count int
}

// NewOccupancy creates an empty occupancy map.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[Cell]bool)}
}

// Mark flags a cell as occupied.
func (o *Occupancy) Mark(c Cell) {
	if !o.cells[c] {
		o.count++
	}
	o.cells[c] = true
}

// Clear flags a cell as free.
func (o *Occupancy) Clear(c Cell) {
	if o.cells[c] {
		o.count--
	}
	o.cells[c] = false
}

// Occupied reports whether a segment sits on the cell.
func (o *Occupancy) Occupied(c Cell) bool {
	return o.cells[c]
}

// Count is the number of distinct occupied cells.
func (o *Occupancy) Count() int {
	return o.count
}

// Cells returns every cell currently marked occupied, in no particular order.
func (o *Occupancy) Cells() []Cell {
	out := make([]Cell, 0, o.count)
	for c, occupied := range o.cells {
		if occupied {
			out = append(out, c)
		}
	}
	return out
}

// Body is the snake: segments ordered head first, plus its occupancy map.
type Body struct {
	segments []Cell // Head at index 0
	occ      *Occupancy

	heading Direction // Head velocity, written by input; DirNone once dead
	applied Direction // Direction of the last step actually taken
}

// NewBody creates a two-segment snake with the head one cell ahead of the
// tail, moving away from it.
func NewBody(head Cell, dir Direction) *Body {
	dc, dr := dir.Delta()
	tail := head.Add(-dc, -dr)

	b := &Body{
		segments: []Cell{head, tail},
		occ:      NewOccupancy(),
		heading:  dir,
		applied:  dir,
	}
	b.occ.Mark(head)
	b.occ.Mark(tail)
	return b
}

// Head returns the head cell.
func (b *Body) Head() Cell {
	return b.segments[0]
}

// Tail returns the last segment's cell.
func (b *Body) Tail() Cell {
	return b.segments[len(b.segments)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segment cells, head first.
func (b *Body) Segments() []Cell {
	out := make([]Cell, len(b.segments))
	copy(out, b.segments)
	return out
}

// Occupancy exposes the occupancy map for read-only queries.
func (b *Body) Occupancy() *Occupancy {
	return b.occ
}

// Heading returns the buffered intent: the direction written by the last
// Steer, which may be a reversal the next Advance will ignore. DirNone once
// stopped.
func (b *Body) Heading() Direction {
	return b.heading
}

// Applied returns the direction of the most recent step.
func (b *Body) Applied() Direction {
	return b.applied
}

// Facing is the direction the head actually travels: the last applied step,
// or DirNone once stopped.
func (b *Body) Facing() Direction {
	if b.heading == DirNone {
		return DirNone
	}
	return b.applied
}

// Steer records a new intended direction. The last call before a tick wins.
// A stopped snake ignores input.
func (b *Body) Steer(d Direction) {
	if b.heading == DirNone || d == DirNone {
		return
	}
	b.heading = d
}

// Stop zeroes the head's velocity. Later calls to Advance do nothing.
func (b *Body) Stop() {
	b.heading = DirNone
}

// Advance moves the snake one cell. A heading that exactly reverses the last
// applied direction is ignored for this step. It returns the cell released by
// the former tail; moved is false when the snake is stopped.
func (b *Body) Advance() (vacated Cell, moved bool) {
	if b.heading == DirNone {
		return Cell{}, false
	}
	if b.heading != b.applied.Opposite() {
		b.applied = b.heading
	}

	dc, dr := b.applied.Delta()
	next := b.segments[0].Add(dc, dr)
	b.occ.Mark(next)

	// Each segment takes the position of the one in front; next ends up
	// holding the old tail.
	for i := range b.segments {
		b.segments[i], next = next, b.segments[i]
	}
	vacated = next

	if !b.contains(vacated) {
		b.occ.Clear(vacated)
	}
	return vacated, true
}

// Grow appends one segment at the given cell, normally the cell the tail
// vacated on the same tick.
func (b *Body) Grow(at Cell) {
	b.segments = append(b.segments, at)
	b.occ.Mark(at)
}

// contains reports whether any segment sits on c.
func (b *Body) contains(c Cell) bool {
	for _, s := range b.segments {
		if s == c {
			return true
		}
	}
	return false
}
