package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoColor is returned when the output cannot display colors.
var ErrNoColor = errors.New("your terminal does not support colors")

// ansiCodes maps core.Color to basic ANSI color numbers.
var ansiCodes = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
}

// CheckColor fails with ErrNoColor when the renderer's profile has no colors.
func CheckColor(r *lipgloss.Renderer) error {
	if r.ColorProfile() == termenv.Ascii {
		return ErrNoColor
	}
	return nil
}

// ScreenRenderer converts Screen buffers to styled strings for one output.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewScreenRenderer builds styles bound to the given lipgloss renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	sr := &ScreenRenderer{
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range ansiCodes {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return sr
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if style, ok := sr.styles[c]; ok {
		return style
	}
	return sr.plain
}
