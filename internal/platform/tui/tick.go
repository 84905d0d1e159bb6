// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, layout and drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// lingerDoneMsg ends the program after the game-over frame was shown.
type lingerDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// lingerCmd waits d and then asks the model to quit.
func lingerCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return tea.Quit
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return lingerDoneMsg{}
	})
}
