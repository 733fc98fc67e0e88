package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./shapegen.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Shapegen")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Shapegen")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shapegen")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shapegen")
	}
}

// loadFromFile merges a YAML file into cfg. A file that switches shape kind
// starts from the new kind's defaults; parameters it lists, zero included,
// replace them.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var head struct {
		Shape struct {
			Kind string `yaml:"kind"`
		} `yaml:"shape"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return err
	}
	if k := head.Shape.Kind; k != "" && k != cfg.Shape.Kind {
		cfg.Shape = DefaultShape(k)
	}

	return yaml.Unmarshal(data, cfg)
}
