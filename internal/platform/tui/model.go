package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ModelOptions configure a Model.
type ModelOptions struct {
	Config   config.SnakeConfig
	Runtime  core.RuntimeConfig
	Layout   Layout
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	layout   Layout
	theme    snake.Theme
	keys     KeyMap
	output   *ScreenRenderer
	logger   *log.Logger
	interval time.Duration
	linger   time.Duration
	now      func() time.Time

	// pending is the first key read since the last tick; later keys are dropped.
	pending  *tea.KeyMsg
	quitting bool
}

// NewModel creates a model with a fresh game sized by opts.Layout.
func NewModel(opts ModelOptions) Model {
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	look := opts.Config.Look
	game := snake.NewGame(opts.Layout.Board, snake.Options{
		Seed:         seed,
		CookieSymbol: look.CookieRune(),
		Direction:    snake.DirLeft,
	})

	interval := opts.Runtime.TickInterval
	if interval <= 0 {
		interval = opts.Config.TickInterval()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Layout.TermW, opts.Layout.TermH),
		layout: opts.Layout,
		theme: snake.Theme{
			SegmentRune: look.SegmentGlyph(),
			Palette:     look.Palette,
			BorderColor: look.BorderColor,
			ScoreColor:  look.ScoreColor,
		},
		keys:     DefaultKeyMap(),
		output:   NewScreenRenderer(renderer),
		logger:   logger,
		interval: interval,
		linger:   opts.Config.Linger(),
		now:      time.Now,
	}
}

// Game returns the game driven by this model.
func (m Model) Game() *snake.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", m.layout.Board.Cols, m.layout.Board.Rows),
		"tick", m.interval,
	)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout.Recenter(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case lingerDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.logger.Info("quit requested", "length", m.game.Length())
		m.quitting = true
		return m, tea.Quit
	}

	// Any key dismisses the final frame.
	if m.game.GameOver() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.pending == nil {
		k := msg
		m.pending = &k
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.GameOver() {
		return m, nil
	}

	dir := m.keys.Direction(m.pending, m.game.Direction())
	m.pending = nil

	res := m.game.Step(dir)
	if res.State == snake.StateGameOver {
		m.logger.Info("game over",
			"reason", res.Reason,
			"length", m.game.Length(),
			"ticks", m.game.Tick(),
		)
		return m, lingerCmd(m.linger)
	}
	if res.Ate {
		m.logger.Debug("cookie eaten", "length", m.game.Length(), "cookie", m.game.Cookie().Pos)
	}

	return m, tickCmd(m.interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen, m.layout.BoardOrigin, m.theme, m.now())
	m.game.RenderScore(m.screen, m.layout.ScoreOrigin, m.theme)

	hint := m.keys.HelpLine()
	if m.game.GameOver() {
		hint = fmt.Sprintf("Game over (%s) · press any key", m.game.Reason())
	}
	m.screen.DrawText(m.layout.HintOrigin.X, m.layout.HintOrigin.Y, hint, core.ColorDefault)

	return m.output.Render(m.screen)
}

// RunOptions configure a local game.
type RunOptions struct {
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Run checks the terminal, sizes the board and plays one game on stdout.
// The terminal is restored on every exit path.
func Run(opts RunOptions) error {
	renderer := lipgloss.NewRenderer(os.Stdout)
	if err := CheckColor(renderer); err != nil {
		return err
	}

	layout, err := ComputeLayout(opts.Runtime.ScreenW, opts.Runtime.ScreenH, opts.Config.Layout)
	if err != nil {
		return err
	}

	model := NewModel(ModelOptions{
		Config:   opts.Config,
		Runtime:  opts.Runtime,
		Layout:   layout,
		Renderer: renderer,
		Logger:   opts.Logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
