package snake

import "math/rand"

// Spawner places food on free cells.
type Spawner struct {
	rng  *rand.Rand
	grid Grid
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(grid Grid, rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng, grid: grid}
}

// Spawn picks a uniformly random free cell by rejection sampling against the
// occupancy map. It returns false without sampling when the board is full.
func (s *Spawner) Spawn(occ *Occupancy) (Cell, bool) {
	if occ.Count() >= s.grid.Area() {
		return Cell{}, false
	}

	for {
		c := Cell{
			Col: s.rng.Intn(s.grid.Width),
			Row: s.rng.Intn(s.grid.Height),
		}
		if !occ.Occupied(c) {
			return c, true
		}
	}
}
