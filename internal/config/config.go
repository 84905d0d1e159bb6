// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Layout LayoutConfig `yaml:"layout"`
	Look   LookConfig   `yaml:"look"`
}

// TimingConfig defines loop cadence.
type TimingConfig struct {
	TickMS           int `yaml:"tick_ms"`             // Delay between ticks
	GameOverLingerMS int `yaml:"game_over_linger_ms"` // How long the final frame stays up
}

// LayoutConfig defines how the board is sized from the terminal.
type LayoutConfig struct {
	SizeMult  float64 `yaml:"size_mult"`   // Share of the limiting terminal side
	RowPerCol float64 `yaml:"row_per_col"` // Board rows per board column
}

// LookConfig defines glyphs and colors.
type LookConfig struct {
	CookieSymbol string       `yaml:"cookie_symbol"`
	SegmentRune  string       `yaml:"segment_rune"`
	Palette      core.Palette `yaml:"palette"`
	ScoreColor   core.Color   `yaml:"score_color"`
	BorderColor  core.Color   `yaml:"border_color"`
}

// TickInterval returns the tick delay as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Linger returns how long the game-over frame is shown.
func (c SnakeConfig) Linger() time.Duration {
	return time.Duration(c.Timing.GameOverLingerMS) * time.Millisecond
}

// CookieRune returns the first rune of the cookie symbol.
func (c LookConfig) CookieRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CookieSymbol)
	return r
}

// SegmentGlyph returns the first rune of the segment glyph.
func (c LookConfig) SegmentGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.SegmentRune)
	return r
}

// Validate checks that the configuration is usable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.GameOverLingerMS < 0 {
		errs = append(errs, fmt.Errorf("timing.game_over_linger_ms must not be negative, got %d", c.Timing.GameOverLingerMS))
	}
	if c.Layout.SizeMult <= 0 || c.Layout.SizeMult > 1 {
		errs = append(errs, fmt.Errorf("layout.size_mult must be in (0, 1], got %g", c.Layout.SizeMult))
	}
	if c.Layout.RowPerCol <= 0 {
		errs = append(errs, fmt.Errorf("layout.row_per_col must be positive, got %g", c.Layout.RowPerCol))
	}
	if utf8.RuneCountInString(c.Look.CookieSymbol) != 1 {
		errs = append(errs, fmt.Errorf("look.cookie_symbol must be a single character, got %q", c.Look.CookieSymbol))
	}
	if utf8.RuneCountInString(c.Look.SegmentRune) != 1 {
		errs = append(errs, fmt.Errorf("look.segment_rune must be a single character, got %q", c.Look.SegmentRune))
	}
	if len(c.Look.Palette) == 0 {
		errs = append(errs, errors.New("look.palette must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
