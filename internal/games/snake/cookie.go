package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultCookieSymbol is drawn when no symbol is configured.
const DefaultCookieSymbol = 'o'

// maxRelocateTries bounds random sampling before falling back to a scan.
const maxRelocateTries = 1000

// Cookie is the consumable target.
type Cookie struct {
	Pos    core.Position
	Symbol rune
}

// hiddenPos marks a cookie that could not be placed.
var hiddenPos = core.Position{X: -1, Y: -1}

// Visible reports whether the cookie is on the board.
func (c Cookie) Visible() bool {
	return c.Pos != hiddenPos
}

// Relocate picks a uniformly random interior cell not in occupied.
// Border cells are never returned. ok is false only when every interior
// cell is occupied.
func Relocate(rng *rand.Rand, board core.BoardSize, occupied []core.Position) (pos core.Position, ok bool) {
	in := board.Interior()
	if in.Area() == 0 {
		return hiddenPos, false
	}

	taken := make(map[core.Position]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	for i := 0; i < maxRelocateTries; i++ {
		p := core.Position{
			X: in.X + rng.Intn(in.W),
			Y: in.Y + rng.Intn(in.H),
		}
		if _, hit := taken[p]; !hit {
			return p, true
		}
	}

	// Nearly full board: pick among the remaining free cells directly.
	var free []core.Position
	for y := in.Y; y < in.Bottom(); y++ {
		for x := in.X; x < in.Right(); x++ {
			p := core.Position{X: x, Y: y}
			if _, hit := taken[p]; !hit {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return hiddenPos, false
	}
	return free[rng.Intn(len(free))], true
}
