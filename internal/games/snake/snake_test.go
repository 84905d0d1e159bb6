package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func pos(x, y int) core.Position {
	return core.Position{X: x, Y: y}
}

func TestNewSnakeCentered(t *testing.T) {
	s := NewSnake(core.BoardSize{Rows: 20, Cols: 66})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", s.Len())
	}
	if s.Head() != pos(33, 10) || s.Tail() != pos(33, 10) {
		t.Errorf("head/tail = %v/%v, expected (33,10)", s.Head(), s.Tail())
	}
}

func TestNextHead(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Position
	}{
		{DirLeft, pos(4, 5)},
		{DirRight, pos(6, 5)},
		{DirUp, pos(5, 4)},
		{DirDown, pos(5, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := NextHead(pos(5, 5), tc.dir); got != tc.expected {
				t.Errorf("NextHead((5,5), %s) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestAdvanceMovementLaw(t *testing.T) {
	s := newSnakeFrom(pos(3, 5), pos(4, 5), pos(5, 5), pos(5, 4))
	before := s.Segments()
	newHead := pos(6, 4)

	if err := s.Advance(newHead); err != nil {
		t.Fatalf("Advance() unexpected error: %v", err)
	}

	after := s.Segments()
	if len(after) != len(before) {
		t.Fatalf("length changed from %d to %d", len(before), len(after))
	}
	for i := 0; i < len(before)-1; i++ {
		if after[i] != before[i+1] {
			t.Errorf("segment %d = %v, expected old segment %d %v", i, after[i], i+1, before[i+1])
		}
	}
	if s.Head() != newHead {
		t.Errorf("Head() = %v, expected %v", s.Head(), newHead)
	}
	if s.Vacated() != before[0] {
		t.Errorf("Vacated() = %v, expected old tail %v", s.Vacated(), before[0])
	}
}

func TestAdvanceSingleSegment(t *testing.T) {
	s := newSnakeFrom(pos(10, 10))
	if err := s.Advance(pos(11, 10)); err != nil {
		t.Fatalf("Advance() unexpected error: %v", err)
	}
	if s.Len() != 1 || s.Head() != pos(11, 10) || s.Tail() != pos(11, 10) {
		t.Errorf("single segment snake should just move, got %v", s.Segments())
	}
}

func TestAdvanceCollision(t *testing.T) {
	tests := []struct {
		name     string
		segments []core.Position
		newHead  core.Position
		collide  bool
	}{
		{
			name:     "reverse into neck",
			segments: []core.Position{pos(5, 5), pos(6, 5), pos(7, 5)},
			newHead:  pos(6, 5),
			collide:  true,
		},
		{
			name:     "loop into body",
			segments: []core.Position{pos(6, 4), pos(6, 5), pos(6, 6), pos(5, 6), pos(5, 5)},
			newHead:  pos(6, 5),
			collide:  true,
		},
		{
			name:     "into vacating tail",
			segments: []core.Position{pos(5, 4), pos(6, 4), pos(6, 5), pos(5, 5)},
			newHead:  pos(5, 4),
			collide:  false,
		},
		{
			name:     "free cell",
			segments: []core.Position{pos(5, 5), pos(6, 5), pos(7, 5)},
			newHead:  pos(8, 5),
			collide:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSnakeFrom(tc.segments...)
			err := s.Advance(tc.newHead)

			if tc.collide {
				if !errors.Is(err, ErrCollision) {
					t.Fatalf("Advance(%v) error = %v, expected ErrCollision", tc.newHead, err)
				}
				got := s.Segments()
				for i := range tc.segments {
					if got[i] != tc.segments[i] {
						t.Fatalf("snake mutated on collision: %v", got)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Advance(%v) unexpected error: %v", tc.newHead, err)
			}
		})
	}
}

func TestGrowReclaimsVacatedCell(t *testing.T) {
	s := newSnakeFrom(pos(5, 5), pos(6, 5))
	if err := s.Advance(pos(7, 5)); err != nil {
		t.Fatal(err)
	}
	s.Grow()

	want := []core.Position{pos(5, 5), pos(6, 5), pos(7, 5)}
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("Segments() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestGrowSingleSegmentKeepsCellsDistinct(t *testing.T) {
	s := newSnakeFrom(pos(10, 10))
	if err := s.Advance(pos(11, 10)); err != nil {
		t.Fatal(err)
	}
	s.Grow()

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	if s.Tail() != pos(10, 10) || s.Head() != pos(11, 10) {
		t.Errorf("Segments() = %v, expected [(10,10) (11,10)]", s.Segments())
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	s := newSnakeFrom(pos(1, 1), pos(2, 1))
	segs := s.Segments()
	segs[0] = pos(9, 9)
	if s.Tail() != pos(1, 1) {
		t.Error("mutating Segments() result should not affect the snake")
	}
}

func TestOccupies(t *testing.T) {
	s := newSnakeFrom(pos(1, 1), pos(2, 1), pos(3, 1))
	if !s.Occupies(pos(1, 1)) || !s.Occupies(pos(3, 1)) {
		t.Error("Occupies should report body and head cells")
	}
	if s.Occupies(pos(4, 1)) {
		t.Error("Occupies should be false for free cells")
	}
}
