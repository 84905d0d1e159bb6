package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// isolate points HOME and the working directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML(), SourceEmbedded)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg.TickInterval().Milliseconds() != 150 {
		t.Errorf("TickInterval() = %v, expected 150ms", cfg.TickInterval())
	}
	if cfg.Look.CookieRune() != 'o' || cfg.Look.SegmentGlyph() != '█' {
		t.Errorf("glyphs = %q/%q", cfg.Look.CookieRune(), cfg.Look.SegmentGlyph())
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, localConfigPath), "timing:\n  tick_ms: 300\n")
	cfg, src, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != localConfigPath || cfg.Timing.TickMS != 300 {
		t.Errorf("local config not used: src=%q tick=%d", src, cfg.Timing.TickMS)
	}

	userPath := filepath.Join(dir, ".snake", "config.yaml")
	writeFile(t, userPath, "timing:\n  tick_ms: 200\n")
	cfg, src, err = LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != userPath || cfg.Timing.TickMS != 200 {
		t.Errorf("user config should win over local: src=%q tick=%d", src, cfg.Timing.TickMS)
	}

	customPath := filepath.Join(dir, "custom.yaml")
	writeFile(t, customPath, "timing:\n  tick_ms: 90\n")
	cfg, src, err = LoadSnake(customPath)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != customPath || cfg.Timing.TickMS != 90 {
		t.Errorf("custom config should win: src=%q tick=%d", src, cfg.Timing.TickMS)
	}
}

func TestLoadSnakePartialOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	writeFile(t, path, "look:\n  cookie_symbol: \"*\"\n  palette: [cyan, magenta]\n")

	cfg, _, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Look.CookieRune() != '*' {
		t.Errorf("cookie = %q, expected '*'", cfg.Look.CookieRune())
	}
	if !reflect.DeepEqual(cfg.Look.Palette, core.Palette{core.ColorCyan, core.ColorMagenta}) {
		t.Errorf("palette = %v", cfg.Look.Palette)
	}
	if cfg.Timing.TickMS != 150 || cfg.Look.ScoreColor != core.ColorGreen {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad yaml", "timing: [", "failed to parse"},
		{"bad color", "look:\n  score_color: chartreuse\n", "unknown color"},
		{"zero tick", "timing:\n  tick_ms: 0\n", "tick_ms"},
		{"size mult", "layout:\n  size_mult: 1.5\n", "size_mult"},
		{"long symbol", "look:\n  cookie_symbol: ab\n", "cookie_symbol"},
		{"empty palette", "look:\n  palette: []\n", "palette"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			writeFile(t, path, tc.content)

			_, _, err := LoadSnake(path)
			if err == nil {
				t.Fatal("LoadSnake() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err, tc.wantMsg)
			}
		})
	}

	if _, _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}
