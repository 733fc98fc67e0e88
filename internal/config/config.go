// Package config handles viewer and tool configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Shape    ShapeConfig    `yaml:"shape"`
	View     ViewConfig     `yaml:"view"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	Fullscreen  bool `yaml:"fullscreen"`
	VSync       bool `yaml:"vsync"`
	SampleCount int  `yaml:"sample_count"`
}

// ShapeConfig selects a generator and its parameters. Only the fields used by
// the selected kind are read.
type ShapeConfig struct {
	Kind string `yaml:"kind"` // cube, sphere, cylinder, cone, torus

	Side float32 `yaml:"side"` // cube

	Radius      float32 `yaml:"radius"`       // sphere radius, cylinder outer radius, torus ring radius
	InnerRadius float32 `yaml:"inner_radius"` // cylinder
	TubeRadius  float32 `yaml:"tube_radius"`  // torus
	Height      float32 `yaml:"height"`       // cylinder
	Segments    uint16  `yaml:"segments"`     // sphere latitude, cylinder angular, torus ring
	SubSegments uint16  `yaml:"sub_segments"` // sphere longitude, torus tube
	AtlasUV     bool    `yaml:"atlas_uv"`     // cube: use the 3x2 atlas UV set
}

// ViewConfig holds interactive viewer state that can be preset.
type ViewConfig struct {
	Wireframe      bool       `yaml:"wireframe"`
	Animate        bool       `yaml:"animate"`
	AnimationSpeed float32    `yaml:"animation_speed"` // degrees per second
	UVScale        [2]float32 `yaml:"uv_scale"`
	CameraDistance float32    `yaml:"camera_distance"`
	Gamma          bool       `yaml:"gamma"`
	ScreenshotDir  string     `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:       1280,
			Height:      720,
			Fullscreen:  false,
			VSync:       true,
			SampleCount: 4,
		},
		Shape: DefaultShape("cube"),
		View: ViewConfig{
			Wireframe:      false,
			Animate:        true,
			AnimationSpeed: 45,
			UVScale:        [2]float32{1, 1},
			CameraDistance: 6,
			Gamma:          true,
			ScreenshotDir:  "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultShape returns the default parameters for a shape kind. Unknown kinds
// get the cube defaults with the given name so the error surfaces at build time.
func DefaultShape(kind string) ShapeConfig {
	switch kind {
	case "sphere":
		return ShapeConfig{Kind: kind, Radius: 1.5, Segments: 15, SubSegments: 20}
	case "cylinder":
		return ShapeConfig{Kind: kind, Radius: 1.5, InnerRadius: 1, Height: 3, Segments: 20}
	case "cone":
		return ShapeConfig{Kind: kind, Radius: 1.5, InnerRadius: 0, Height: 3, Segments: 20}
	case "torus":
		return ShapeConfig{Kind: kind, Radius: 1.5, TubeRadius: 0.4, Segments: 40, SubSegments: 20}
	default:
		return ShapeConfig{Kind: kind, Side: 2}
	}
}
