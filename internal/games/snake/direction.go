package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every direction in declaration order.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// Offset returns the unit step for the direction. Y grows downward.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
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
	default:
		return "unknown"
	}
}

// NextHead returns the cell one step from head in direction d.
func NextHead(head core.Position, d Direction) core.Position {
	dx, dy := d.Offset()
	return head.Add(dx, dy)
}
