package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded snake configuration.
// It matches defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Timing: TimingConfig{
			TickMS:           150,
			GameOverLingerMS: 1500,
		},
		Layout: LayoutConfig{
			SizeMult:  0.7,
			RowPerCol: 0.3,
		},
		Look: LookConfig{
			CookieSymbol: "o",
			SegmentRune:  "█",
			Palette:      append(core.Palette(nil), core.DefaultPalette...),
			ScoreColor:   core.ColorGreen,
			BorderColor:  core.ColorDefault,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
