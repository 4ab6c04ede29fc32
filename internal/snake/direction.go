package snake

// Direction represents the snake's movement direction.
// The zero value is "no movement", used only after a fatal collision.
type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirDown
	DirLeft
	DirUp
)

// Delta returns the grid offset of one step in this direction.
// Up decreases the row because row 0 is the top of the board.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the exact negation of d. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}
