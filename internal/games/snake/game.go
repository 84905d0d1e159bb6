package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the state machine position of a game.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Reason records why a game ended.
type Reason string

const (
	ReasonNone Reason = ""
	ReasonWall Reason = "wall"
	ReasonSelf Reason = "self"
)

// Options configure a new game.
type Options struct {
	Seed         int64
	CookieSymbol rune
	Direction    Direction // Initial heading
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State  State
	Reason Reason
	Ate    bool // Cookie consumed this tick
}

// Game is the snake state machine. It is not safe for concurrent use;
// the owning loop drives every call.
type Game struct {
	board     core.BoardSize
	rng       *rand.Rand
	snake     *Snake
	cookie    Cookie
	direction Direction
	state     State
	reason    Reason
	tick      uint64
}

// NewGame creates a game in the Playing state with a centered length-1
// snake and a placed cookie.
func NewGame(board core.BoardSize, opts Options) *Game {
	symbol := opts.CookieSymbol
	if symbol == 0 {
		symbol = DefaultCookieSymbol
	}

	g := &Game{
		board:     board,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		snake:     NewSnake(board),
		cookie:    Cookie{Symbol: symbol},
		direction: opts.Direction,
		state:     StatePlaying,
	}
	g.cookie.Pos, _ = Relocate(g.rng, board, g.snake.Segments())
	return g
}

// Step advances the game by one tick heading in direction d.
// Once the game is over Step does nothing.
func (g *Game) Step(d Direction) StepResult {
	if g.state == StateGameOver {
		return g.result(false)
	}
	g.tick++
	g.direction = d

	newHead := NextHead(g.snake.Head(), d)

	if g.board.IsBorder(newHead) {
		g.end(ReasonWall)
		return g.result(false)
	}

	if err := g.snake.Advance(newHead); err != nil {
		g.end(ReasonSelf)
		return g.result(false)
	}

	if newHead != g.cookie.Pos {
		return g.result(false)
	}

	// Relocate first, then grow. The cell growth reclaims is excluded too.
	occupied := append(g.snake.Segments(), g.snake.Vacated())
	g.cookie.Pos, _ = Relocate(g.rng, g.board, occupied)
	g.snake.Grow()
	return g.result(true)
}

func (g *Game) end(r Reason) {
	g.state = StateGameOver
	g.reason = r
}

func (g *Game) result(ate bool) StepResult {
	return StepResult{State: g.state, Reason: g.reason, Ate: ate}
}

// Board returns the board dimensions.
func (g *Game) Board() core.BoardSize {
	return g.board
}

// Snake returns the snake. Callers must not mutate it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Length returns the current snake length.
func (g *Game) Length() int {
	return g.snake.Len()
}

// Cookie returns the current cookie.
func (g *Game) Cookie() Cookie {
	return g.cookie
}

// Direction returns the heading used on the last tick.
func (g *Game) Direction() Direction {
	return g.direction
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Reason returns why the game ended, or ReasonNone.
func (g *Game) Reason() Reason {
	return g.reason
}

// GameOver reports whether the game reached its terminal state.
func (g *Game) GameOver() bool {
	return g.state == StateGameOver
}

// Tick returns the number of ticks played.
func (g *Game) Tick() uint64 {
	return g.tick
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Board: %dx%d\n", g.tick, g.board.Cols, g.board.Rows)
	fmt.Fprintf(&b, "Length: %d, Direction: %s\n", g.snake.Len(), g.direction)
	fmt.Fprintf(&b, "Head: %s, Cookie: %s\n", g.snake.Head(), g.cookie.Pos)
	fmt.Fprintf(&b, "State: %s, Reason: %q\n", g.state, g.reason)
	return b.String()
}
