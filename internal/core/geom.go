// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// MinBoardSide is the exclusive lower bound for both board dimensions.
// A board needs a 1-cell border on each side plus room to move.
const MinBoardSide = 4

// ErrBoardTooSmall is returned when a board cannot hold a border and an interior.
var ErrBoardTooSmall = errors.New("board too small")

// Position is a board-relative cell coordinate.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// BoardSize holds the board dimensions in cells, border included.
type BoardSize struct {
	Rows int
	Cols int
}

// NewBoardSize validates and returns a board size.
func NewBoardSize(rows, cols int) (BoardSize, error) {
	if rows <= MinBoardSide || cols <= MinBoardSide {
		return BoardSize{}, fmt.Errorf("core: %dx%d: %w", rows, cols, ErrBoardTooSmall)
	}
	return BoardSize{Rows: rows, Cols: cols}, nil
}

// Center returns the middle cell (cols/2, rows/2).
func (b BoardSize) Center() Position {
	return Position{X: b.Cols / 2, Y: b.Rows / 2}
}

// IsBorder reports whether p lies on the outer ring of cells.
func (b BoardSize) IsBorder(p Position) bool {
	return p.X == 0 || p.X == b.Cols-1 || p.Y == 0 || p.Y == b.Rows-1
}

// Interior returns the rectangle of playable cells: [1, cols-2] x [1, rows-2].
func (b BoardSize) Interior() Rect {
	return NewRect(1, 1, b.Cols-2, b.Rows-2)
}

// Bounds returns the full board rectangle at the origin.
func (b BoardSize) Bounds() Rect {
	return NewRect(0, 0, b.Cols, b.Rows)
}

// Rect represents an axis-aligned rectangle of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
