package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultSegmentRune is the filled block used for snake segments.
const DefaultSegmentRune = '█'

// Theme holds the drawing choices for a frame.
type Theme struct {
	SegmentRune rune
	Palette     core.Palette
	BorderColor core.Color
	ScoreColor  core.Color
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		SegmentRune: DefaultSegmentRune,
		Palette:     core.DefaultPalette,
		BorderColor: core.ColorDefault,
		ScoreColor:  core.ColorGreen,
	}
}

// Render draws the board with its top-left corner at origin: the border,
// each segment colored by its tail-first index, and the cookie colored by
// the current second.
func (g *Game) Render(dst *core.Screen, origin core.Position, theme Theme, now time.Time) {
	dst.DrawBox(g.board.Bounds().Offset(origin.X, origin.Y), theme.BorderColor)

	for i, seg := range g.snake.segments {
		dst.SetColored(origin.X+seg.X, origin.Y+seg.Y, theme.SegmentRune, theme.Palette.At(i))
	}

	if g.cookie.Visible() {
		c := theme.Palette.At(int(now.Unix()))
		dst.SetColored(origin.X+g.cookie.Pos.X, origin.Y+g.cookie.Pos.Y, g.cookie.Symbol, c)
	}
}

// RenderScore draws the "Length: N" bar starting at origin.
func (g *Game) RenderScore(dst *core.Screen, origin core.Position, theme Theme) {
	dst.DrawText(origin.X, origin.Y, ScoreText(g.snake.Len()), theme.ScoreColor)
}

// ScoreText formats the score bar.
func ScoreText(length int) string {
	return fmt.Sprintf("Length: %d", length)
}
