package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded"

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snake.yaml"

// LoadSnake loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep default values.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	// A custom path must load; its errors are not skipped over
	if customPath != "" {
		cfg, err := loadFile(customPath)
		return cfg, customPath, err
	}

	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		return cfg, path, err
	}

	cfg, err := parse(defaultSnakeYAML, SourceEmbedded)
	if err != nil {
		return DefaultSnakeConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, name string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}
