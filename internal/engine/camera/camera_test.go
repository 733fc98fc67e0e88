package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/shapegen/pkg/math"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw math.Deg
		want       math.Vec3
	}{
		{"front", 0, 0, math.Vec3{Z: 5}},
		{"right", 0, 90, math.Vec3{X: 5}},
		{"above", 90, 0, math.Vec3{Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera(5)
			c.Pitch, c.Yaw = tt.pitch, tt.yaw
			got := c.Position()
			assert.InDelta(t, tt.want.X, got.X, 1e-5)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-5)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-5)
		})
	}
}

func TestPositionOrbitsTarget(t *testing.T) {
	c := NewOrbitCamera(4)
	c.Target = math.Vec3{X: 1, Y: -2, Z: 3}
	c.Pitch, c.Yaw = 0, 180

	got := c.Position()
	assert.InDelta(t, 1, got.X, 1e-5)
	assert.InDelta(t, -2, got.Y, 1e-5)
	assert.InDelta(t, -1, got.Z, 1e-5)
	assert.InDelta(t, 4, got.Distance(c.Target), 1e-5)
}

func TestViewMatrixMapsTargetOntoAxis(t *testing.T) {
	c := NewOrbitCamera(6)
	c.Target = math.Vec3{X: 1, Y: 2, Z: 3}
	c.Yaw = 30

	p := c.ViewMatrix().TransformPoint(c.Target)
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 0, p.Y, 1e-4)
	assert.InDelta(t, -6, p.Z, 1e-4)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(5)
	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPitch, c.Pitch)

	c.HandleDrag(0, -10000)
	assert.Equal(t, c.MinPitch, c.Pitch)

	c.HandleDrag(10, 0)
	assert.InDelta(t, -4, float32(c.Yaw), 1e-5)
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera(5)
	c.HandleZoom(1)
	assert.InDelta(t, 4.5, c.Distance, 1e-5)

	for i := 0; i < 100; i++ {
		c.HandleZoom(5)
	}
	assert.Equal(t, c.MinDistance, c.Distance)

	for i := 0; i < 100; i++ {
		c.HandleZoom(-5)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera(50)
	c.FitToBounds([3]float32{-1, 0, -1}, [3]float32{1, 2, 1})

	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 0}, c.Target)
	// A sphere of radius sqrt(3) fits inside the vertical field of view.
	assert.Greater(t, c.Distance, float32(1.7320508))
	assert.Less(t, c.Distance, float32(10))

	d := c.Distance
	c.FitToBounds([3]float32{1, 1, 1}, [3]float32{1, 1, 1})
	assert.Equal(t, d, c.Distance, "point bounds keep the distance")
}

func TestProjectionMatrixAspect(t *testing.T) {
	c := NewOrbitCamera(5)
	wide := c.ProjectionMatrix(2)
	square := c.ProjectionMatrix(0)
	assert.InDelta(t, square[0]/2, wide[0], 1e-6)
	assert.Equal(t, square[5], wide[5])
}
