// Package snake implements the snake game engine: the body, cookie placement,
// the per-tick state machine and drawing into a core.Screen.
package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrCollision is returned by Advance when the new head lands on the body.
var ErrCollision = errors.New("snake: self collision")

// Snake is an ordered run of segments stored tail first, head last.
type Snake struct {
	segments []core.Position

	// vacated is the cell the tail left on the last Advance.
	// Grow reclaims it.
	vacated core.Position
}

// NewSnake creates a length-1 snake centered on the board.
func NewSnake(board core.BoardSize) *Snake {
	start := board.Center()
	return &Snake{
		segments: []core.Position{start},
		vacated:  start,
	}
}

// newSnakeFrom builds a snake from explicit cells, tail first.
func newSnakeFrom(tailToHead ...core.Position) *Snake {
	if len(tailToHead) == 0 {
		panic("snake: at least one segment required")
	}
	segs := make([]core.Position, len(tailToHead))
	copy(segs, tailToHead)
	return &Snake{segments: segs, vacated: segs[0]}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.segments[len(s.segments)-1]
}

// Tail returns the tail position.
func (s *Snake) Tail() core.Position {
	return s.segments[0]
}

// Segments returns a copy of the segment positions, tail first.
func (s *Snake) Segments() []core.Position {
	out := make([]core.Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Collides reports whether moving the head to newHead would hit the body.
// After a shift segment i holds the old position of segment i+1, so the
// surface is every old position except the tail's.
func (s *Snake) Collides(newHead core.Position) bool {
	for _, seg := range s.segments[1:] {
		if seg == newHead {
			return true
		}
	}
	return false
}

// Advance shifts every segment onto its forward neighbor and puts the head
// on newHead. On ErrCollision the snake is left untouched.
func (s *Snake) Advance(newHead core.Position) error {
	if s.Collides(newHead) {
		return ErrCollision
	}
	s.vacated = s.segments[0]
	copy(s.segments, s.segments[1:])
	s.segments[len(s.segments)-1] = newHead
	return nil
}

// Vacated returns the cell the tail left on the last Advance.
func (s *Snake) Vacated() core.Position {
	return s.vacated
}

// Grow adds a segment behind the tail, on the cell the tail held before the
// last Advance.
func (s *Snake) Grow() {
	s.segments = append(s.segments, core.Position{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = s.vacated
}
