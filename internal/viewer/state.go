// Package viewer holds the interactive viewer state and the actions that
// change it. It has no GL or SDL dependency.
package viewer

import (
	"fmt"
	"time"

	"github.com/Faultbox/shapegen/internal/config"
	"github.com/Faultbox/shapegen/internal/engine/lighting"
	"github.com/Faultbox/shapegen/internal/shapes"
	"github.com/Faultbox/shapegen/pkg/math"
)

const (
	uvStep       = 0.1
	minUVScale   = 0.1
	speedStep    = 15 // degrees per second
	sunStep      = 15 // degrees
	maxSpeed     = 720
	defaultSpeed = 45
)

// Action is a user command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleWireframe
	ActionToggleAnimation
	ActionToggleNormalMap
	ActionToggleGamma
	ActionNextShape
	ActionGrowU
	ActionShrinkU
	ActionGrowV
	ActionShrinkV
	ActionResetUV
	ActionFaster
	ActionSlower
	ActionSunLeft
	ActionSunRight
	ActionScreenshot
	ActionSaveConfig
)

// Change reports what an action invalidated.
type Change int

const (
	ChangeNone     Change = iota
	ChangeView            // uniforms only
	ChangeUV              // re-interleave vertices, same topology
	ChangeGeometry        // rebuild and re-upload the mesh
	ChangeCapture         // save the next rendered frame
	ChangeConfig          // write the settings back to the config file
)

// State is the viewer state driven by actions and time.
type State struct {
	Shape     config.ShapeConfig
	Wireframe bool
	Animate   bool
	NormalMap bool
	Gamma     bool
	UVScale   [2]float32
	Speed     float32 // degrees per second around +Y
	Angle     math.Deg
	Sun       lighting.Sun
	Quit      bool
}

// NewState builds the initial state from config.
func NewState(cfg *config.Config) *State {
	s := &State{
		Shape:     cfg.Shape,
		Wireframe: cfg.View.Wireframe,
		Animate:   cfg.View.Animate,
		NormalMap: true,
		Gamma:     cfg.View.Gamma,
		UVScale:   cfg.View.UVScale,
		Speed:     cfg.View.AnimationSpeed,
		Sun:       lighting.DefaultSun(),
	}
	if s.UVScale[0] < minUVScale {
		s.UVScale[0] = 1
	}
	if s.UVScale[1] < minUVScale {
		s.UVScale[1] = 1
	}
	if s.Speed <= 0 {
		s.Speed = defaultSpeed
	}
	return s
}

// Apply performs an action and reports what must be refreshed.
func (s *State) Apply(a Action) Change {
	switch a {
	case ActionQuit:
		s.Quit = true
		return ChangeNone
	case ActionToggleWireframe:
		s.Wireframe = !s.Wireframe
	case ActionToggleAnimation:
		s.Animate = !s.Animate
	case ActionToggleNormalMap:
		s.NormalMap = !s.NormalMap
	case ActionToggleGamma:
		s.Gamma = !s.Gamma
	case ActionNextShape:
		s.Shape = config.DefaultShape(shapes.Next(s.Shape.Kind))
		return ChangeGeometry
	case ActionGrowU:
		s.UVScale[0] += uvStep
		return ChangeUV
	case ActionShrinkU:
		s.UVScale[0] = max(s.UVScale[0]-uvStep, minUVScale)
		return ChangeUV
	case ActionGrowV:
		s.UVScale[1] += uvStep
		return ChangeUV
	case ActionShrinkV:
		s.UVScale[1] = max(s.UVScale[1]-uvStep, minUVScale)
		return ChangeUV
	case ActionResetUV:
		s.UVScale = [2]float32{1, 1}
		return ChangeUV
	case ActionFaster:
		s.Speed = min(s.Speed+speedStep, maxSpeed)
	case ActionSlower:
		s.Speed = max(s.Speed-speedStep, 0)
	case ActionSunLeft:
		s.Sun.Rotate(-sunStep)
	case ActionSunRight:
		s.Sun.Rotate(sunStep)
	case ActionScreenshot:
		return ChangeCapture
	case ActionSaveConfig:
		return ChangeConfig
	default:
		return ChangeNone
	}
	return ChangeView
}

// Advance moves the animation forward by dt, keeping Angle in [0, 360).
func (s *State) Advance(dt time.Duration) {
	if !s.Animate {
		return
	}
	a := float32(s.Angle) + s.Speed*float32(dt.Seconds())
	for a >= 360 {
		a -= 360
	}
	s.Angle = math.Deg(a)
}

// Store copies the settings that survive a restart into cfg.
func (s *State) Store(cfg *config.Config) {
	cfg.Shape = s.Shape
	cfg.View.Wireframe = s.Wireframe
	cfg.View.Animate = s.Animate
	cfg.View.Gamma = s.Gamma
	cfg.View.UVScale = s.UVScale
	cfg.View.AnimationSpeed = s.Speed
}

// ModelMatrix returns the shape's transform for the current angle.
func (s *State) ModelMatrix() math.Mat4 {
	return math.Model(math.Vec3{}, math.Vec3{Y: float32(s.Angle)}, math.Vec3{X: 1, Y: 1, Z: 1})
}

// Title summarizes the state for the window title bar.
func (s *State) Title() string {
	t := fmt.Sprintf("shapegen - %s  uv %.1fx%.1f", s.Shape.Kind, s.UVScale[0], s.UVScale[1])
	if s.Wireframe {
		t += "  wireframe"
	}
	if !s.NormalMap {
		t += "  flat"
	}
	return t
}
