package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// KeyMap holds the key bindings. Each direction has a letter and an arrow alias.
type KeyMap struct {
	Up    key.Binding
	Left  key.Binding
	Down  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the WASD + arrow bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps the key read this tick to a heading. A nil key (nothing
// read) or an unbound key keeps prev. Reversal is not filtered.
func (km KeyMap) Direction(pending *tea.KeyMsg, prev snake.Direction) snake.Direction {
	if pending == nil {
		return prev
	}

	switch msg := *pending; {
	case key.Matches(msg, km.Up):
		return snake.DirUp
	case key.Matches(msg, km.Left):
		return snake.DirLeft
	case key.Matches(msg, km.Down):
		return snake.DirDown
	case key.Matches(msg, km.Right):
		return snake.DirRight
	}
	return prev
}

// HelpLine renders the bindings as a one-line hint.
func (km KeyMap) HelpLine() string {
	bindings := []key.Binding{km.Up, km.Left, km.Down, km.Right, km.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
