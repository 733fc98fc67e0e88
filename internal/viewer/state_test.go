package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/shapegen/internal/config"
	"github.com/Faultbox/shapegen/pkg/math"
)

func TestNewState(t *testing.T) {
	cfg := config.Default()
	cfg.View.UVScale = [2]float32{0, 2}
	cfg.View.AnimationSpeed = 0

	s := NewState(cfg)
	assert.Equal(t, "cube", s.Shape.Kind)
	assert.Equal(t, [2]float32{1, 2}, s.UVScale)
	assert.Equal(t, float32(defaultSpeed), s.Speed)
	assert.True(t, s.NormalMap)
	assert.True(t, s.Animate)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   Change
		check  func(*testing.T, *State)
	}{
		{"wireframe", ActionToggleWireframe, ChangeView, func(t *testing.T, s *State) { assert.True(t, s.Wireframe) }},
		{"animation", ActionToggleAnimation, ChangeView, func(t *testing.T, s *State) { assert.False(t, s.Animate) }},
		{"normal map", ActionToggleNormalMap, ChangeView, func(t *testing.T, s *State) { assert.False(t, s.NormalMap) }},
		{"gamma", ActionToggleGamma, ChangeView, func(t *testing.T, s *State) { assert.False(t, s.Gamma) }},
		{"next shape", ActionNextShape, ChangeGeometry, func(t *testing.T, s *State) {
			assert.Equal(t, config.DefaultShape("sphere"), s.Shape)
		}},
		{"grow u", ActionGrowU, ChangeUV, func(t *testing.T, s *State) { assert.InDelta(t, 1.1, s.UVScale[0], 1e-6) }},
		{"grow v", ActionGrowV, ChangeUV, func(t *testing.T, s *State) { assert.InDelta(t, 1.1, s.UVScale[1], 1e-6) }},
		{"shrink u", ActionShrinkU, ChangeUV, func(t *testing.T, s *State) { assert.InDelta(t, 0.9, s.UVScale[0], 1e-6) }},
		{"faster", ActionFaster, ChangeView, func(t *testing.T, s *State) { assert.Equal(t, float32(60), s.Speed) }},
		{"sun right", ActionSunRight, ChangeView, func(t *testing.T, s *State) { assert.InDelta(t, 50, float32(s.Sun.Azimuth), 1e-4) }},
		{"sun left", ActionSunLeft, ChangeView, func(t *testing.T, s *State) { assert.InDelta(t, 20, float32(s.Sun.Azimuth), 1e-4) }},
		{"screenshot", ActionScreenshot, ChangeCapture, func(t *testing.T, s *State) { assert.False(t, s.Quit) }},
		{"save config", ActionSaveConfig, ChangeConfig, func(t *testing.T, s *State) { assert.False(t, s.Quit) }},
		{"quit", ActionQuit, ChangeNone, func(t *testing.T, s *State) { assert.True(t, s.Quit) }},
		{"none", ActionNone, ChangeNone, func(t *testing.T, s *State) { assert.False(t, s.Quit) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(config.Default())
			assert.Equal(t, tt.want, s.Apply(tt.action))
			tt.check(t, s)
		})
	}
}

func TestUVScaleFloor(t *testing.T) {
	s := NewState(config.Default())
	for i := 0; i < 50; i++ {
		s.Apply(ActionShrinkU)
		s.Apply(ActionShrinkV)
	}
	assert.Equal(t, [2]float32{minUVScale, minUVScale}, s.UVScale)

	s.Apply(ActionResetUV)
	assert.Equal(t, [2]float32{1, 1}, s.UVScale)
}

func TestSpeedBounds(t *testing.T) {
	s := NewState(config.Default())
	for i := 0; i < 100; i++ {
		s.Apply(ActionSlower)
	}
	assert.Zero(t, s.Speed)

	for i := 0; i < 100; i++ {
		s.Apply(ActionFaster)
	}
	assert.Equal(t, float32(maxSpeed), s.Speed)
}

func TestNextShapeCycles(t *testing.T) {
	s := NewState(config.Default())
	var seen []string
	for i := 0; i < 5; i++ {
		s.Apply(ActionNextShape)
		seen = append(seen, s.Shape.Kind)
	}
	assert.Equal(t, []string{"sphere", "cylinder", "cone", "torus", "cube"}, seen)
}

func TestAdvance(t *testing.T) {
	s := NewState(config.Default())
	s.Speed = 90

	s.Advance(time.Second)
	assert.InDelta(t, 90, float32(s.Angle), 1e-4)

	s.Advance(4 * time.Second)
	assert.InDelta(t, 90, float32(s.Angle), 1e-3, "wraps at 360")

	s.Apply(ActionToggleAnimation)
	s.Advance(time.Second)
	assert.InDelta(t, 90, float32(s.Angle), 1e-3, "paused")
}

func TestTitle(t *testing.T) {
	s := NewState(config.Default())
	assert.Equal(t, "shapegen - cube  uv 1.0x1.0", s.Title())

	s.Apply(ActionToggleWireframe)
	s.Apply(ActionToggleNormalMap)
	assert.Equal(t, "shapegen - cube  uv 1.0x1.0  wireframe  flat", s.Title())
}

func TestStore(t *testing.T) {
	s := NewState(config.Default())
	s.Apply(ActionNextShape)
	s.Apply(ActionToggleWireframe)
	s.Apply(ActionGrowV)
	s.Apply(ActionFaster)

	cfg := config.Default()
	s.Store(cfg)
	assert.Equal(t, config.DefaultShape("sphere"), cfg.Shape)
	assert.True(t, cfg.View.Wireframe)
	assert.InDelta(t, 1.1, cfg.View.UVScale[1], 1e-6)
	assert.Equal(t, float32(60), cfg.View.AnimationSpeed)
	assert.Equal(t, "screenshots", cfg.View.ScreenshotDir, "unrelated settings untouched")
}

func TestModelMatrix(t *testing.T) {
	s := NewState(config.Default())
	s.Angle = 90

	p := s.ModelMatrix().TransformPoint(math.Vec3{Z: 1})
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
}
