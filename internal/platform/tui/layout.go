package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// reservedRows are kept free for the score bar above the board and the hint below.
const reservedRows = 2

// Layout places the board and the score bar inside the terminal.
type Layout struct {
	Board       core.BoardSize
	BoardOrigin core.Position
	ScoreOrigin core.Position
	HintOrigin  core.Position
	TermW       int
	TermH       int
}

// ComputeLayout sizes the board from the terminal. A terminal wider than
// tall takes size_mult of its rows and derives cols from row_per_col;
// otherwise it takes size_mult of its cols and derives rows. The result is
// clamped to fit.
func ComputeLayout(termW, termH int, lc config.LayoutConfig) (Layout, error) {
	var rows, cols int
	if termH < termW {
		rows = int(lc.SizeMult * float64(termH))
		cols = int(float64(rows) / lc.RowPerCol)
	} else {
		cols = int(lc.SizeMult * float64(termW))
		rows = int(lc.RowPerCol * float64(cols))
	}
	cols = min(cols, termW)
	rows = min(rows, termH-reservedRows)

	board, err := core.NewBoardSize(rows, cols)
	if err != nil {
		return Layout{}, fmt.Errorf("tui: terminal %dx%d: %w", termW, termH, err)
	}

	l := Layout{Board: board}
	l.Recenter(termW, termH)
	return l, nil
}

// Recenter keeps the board size and centers it in a terminal of the given size.
func (l *Layout) Recenter(termW, termH int) {
	l.TermW = termW
	l.TermH = termH

	x := max((termW-l.Board.Cols)/2, 0)
	y := max((termH-l.Board.Rows)/2, 1)

	l.BoardOrigin = core.Position{X: x, Y: y}
	l.ScoreOrigin = core.Position{X: x, Y: y - 1}
	l.HintOrigin = core.Position{X: x, Y: y + l.Board.Rows}
}
