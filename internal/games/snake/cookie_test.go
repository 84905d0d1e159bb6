package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRelocateAvoidsSnakeAndBorder(t *testing.T) {
	board := core.BoardSize{Rows: 8, Cols: 10}
	rng := rand.New(rand.NewSource(999))

	occupied := []core.Position{pos(1, 1), pos(2, 1), pos(3, 1), pos(4, 1), pos(4, 2), pos(4, 3)}

	for i := 0; i < 500; i++ {
		p, ok := Relocate(rng, board, occupied)
		if !ok {
			t.Fatal("Relocate() failed on a mostly empty board")
		}
		if board.IsBorder(p) {
			t.Fatalf("Relocate() returned border cell %v", p)
		}
		if !board.Interior().Contains(p.X, p.Y) {
			t.Fatalf("Relocate() returned %v outside the interior", p)
		}
		for _, o := range occupied {
			if p == o {
				t.Fatalf("Relocate() returned occupied cell %v", p)
			}
		}
	}
}

func TestRelocateReachesWholeInterior(t *testing.T) {
	board := core.BoardSize{Rows: 5, Cols: 5}
	rng := rand.New(rand.NewSource(7))

	seen := make(map[core.Position]bool)
	for i := 0; i < 1000; i++ {
		p, _ := Relocate(rng, board, nil)
		seen[p] = true
	}

	// 3x3 interior, every cell including the last row and column.
	if len(seen) != 9 {
		t.Errorf("Relocate() covered %d cells, expected 9: %v", len(seen), seen)
	}
}

func TestRelocateLastFreeCell(t *testing.T) {
	board := core.BoardSize{Rows: 5, Cols: 5}
	rng := rand.New(rand.NewSource(1))

	var occupied []core.Position
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if x == 3 && y == 2 {
				continue
			}
			occupied = append(occupied, pos(x, y))
		}
	}

	p, ok := Relocate(rng, board, occupied)
	if !ok || p != pos(3, 2) {
		t.Errorf("Relocate() = %v, %v; expected (3,2), true", p, ok)
	}
}

func TestRelocateFullBoard(t *testing.T) {
	board := core.BoardSize{Rows: 5, Cols: 5}
	rng := rand.New(rand.NewSource(1))

	var occupied []core.Position
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			occupied = append(occupied, pos(x, y))
		}
	}

	p, ok := Relocate(rng, board, occupied)
	if ok {
		t.Fatalf("Relocate() on a full board = %v, expected failure", p)
	}
	if (Cookie{Pos: p}).Visible() {
		t.Error("a cookie at the failure position should be hidden")
	}
}
