package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.View.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %q", cfg.View.ScreenshotDir)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Shape.Kind != "cube" || cfg.Shape.Side != 2 {
		t.Errorf("expected a side-2 cube, got %+v", cfg.Shape)
	}

	if cfg.View.UVScale != [2]float32{1, 1} {
		t.Errorf("expected uv scale (1, 1), got %v", cfg.View.UVScale)
	}
	if !cfg.View.Animate {
		t.Error("expected animation to be on by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestDefaultShape(t *testing.T) {
	tests := []struct {
		kind  string
		check func(ShapeConfig) bool
	}{
		{"cube", func(s ShapeConfig) bool { return s.Side > 0 }},
		{"sphere", func(s ShapeConfig) bool { return s.Radius > 0 && s.Segments > 0 && s.SubSegments > 0 }},
		{"cylinder", func(s ShapeConfig) bool { return s.Radius > s.InnerRadius && s.Height > 0 && s.Segments > 0 }},
		{"cone", func(s ShapeConfig) bool { return s.InnerRadius == 0 && s.Height > 0 }},
		{"torus", func(s ShapeConfig) bool { return s.Radius > s.TubeRadius && s.TubeRadius > 0 && s.SubSegments > 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s := DefaultShape(tt.kind)
			if s.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, s.Kind)
			}
			if !tt.check(s) {
				t.Errorf("unexpected defaults for %s: %+v", tt.kind, s)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "shapegen.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  sample_count: 1

shape:
  kind: torus
  radius: 2
  tube_radius: 0.5
  segments: 64

view:
  wireframe: true
  animate: false
  uv_scale: [2, 3]

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.SampleCount != 1 {
		t.Errorf("expected sample count 1, got %d", cfg.Graphics.SampleCount)
	}

	if cfg.Shape.Kind != "torus" || cfg.Shape.Radius != 2 || cfg.Shape.TubeRadius != 0.5 || cfg.Shape.Segments != 64 {
		t.Errorf("unexpected shape %+v", cfg.Shape)
	}
	if cfg.Shape.SubSegments != 20 {
		t.Errorf("expected torus default sub segments 20, got %d", cfg.Shape.SubSegments)
	}
	// Switching kind drops the cube side instead of leaking it.
	if cfg.Shape.Side != 0 {
		t.Errorf("expected cube side to be cleared, got %v", cfg.Shape.Side)
	}

	if !cfg.View.Wireframe || cfg.View.Animate {
		t.Errorf("unexpected view %+v", cfg.View)
	}
	if cfg.View.UVScale != [2]float32{2, 3} {
		t.Errorf("expected uv scale (2, 3), got %v", cfg.View.UVScale)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileKeepsExplicitZero(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "shapegen.yaml")

	yamlContent := `
shape:
  kind: torus
  tube_radius: 0
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Shape.TubeRadius != 0 {
		t.Errorf("expected explicit tube radius 0 to be kept, got %v", cfg.Shape.TubeRadius)
	}
	if cfg.Shape.Radius != 1.5 || cfg.Shape.Segments != 40 {
		t.Errorf("expected torus defaults for unlisted fields, got %+v", cfg.Shape)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "shapegen.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find shapegen.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "shape flag",
			setup: func() { *flagShape = "sphere" },
			verify: func(cfg *Config) {
				if cfg.Shape != DefaultShape("sphere") {
					t.Errorf("expected sphere defaults, got %+v", cfg.Shape)
				}
			},
			teardown: func() { *flagShape = "" },
		},
		{
			name:  "wireframe flag",
			setup: func() { *flagWireframe = true },
			verify: func(cfg *Config) {
				if !cfg.View.Wireframe {
					t.Error("expected wireframe to be enabled")
				}
			},
			teardown: func() { *flagWireframe = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "shapegen.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
shape:
  kind: sphere
  radius: 4
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	// Radius from the file, segment counts from the sphere defaults.
	if cfg.Shape.Radius != 4 || cfg.Shape.Segments != 15 || cfg.Shape.SubSegments != 20 {
		t.Errorf("unexpected shape %+v", cfg.Shape)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Shape = DefaultShape("cylinder")
	cfg.View.UVScale = [2]float32{4, 2}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Shape != cfg.Shape {
		t.Errorf("shape = %+v, want %+v", loaded.Shape, cfg.Shape)
	}
	if loaded.View.UVScale != cfg.View.UVScale {
		t.Errorf("uv scale = %v, want %v", loaded.View.UVScale, cfg.View.UVScale)
	}
}

func TestSaveWritesUserConfig(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is only redirectable through XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.View.Wireframe = true
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, filepath.Join(ConfigDir(), "config.yaml")); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if !loaded.View.Wireframe {
		t.Error("expected saved wireframe setting to be reloaded")
	}
}
