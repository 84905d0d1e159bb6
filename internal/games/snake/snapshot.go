package snake

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Length  int
	HeadX   int
	HeadY   int
	Dir     Direction
	CookieX int
	CookieY int
	State   State
	Reason  Reason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Tick:    g.tick,
		Length:  g.snake.Len(),
		HeadX:   head.X,
		HeadY:   head.Y,
		Dir:     g.direction,
		CookieX: g.cookie.Pos.X,
		CookieY: g.cookie.Pos.Y,
		State:   g.state,
		Reason:  g.reason,
	}
}
