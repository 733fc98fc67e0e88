package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/shapegen/pkg/math"
)

func TestToSun(t *testing.T) {
	tests := []struct {
		name string
		sun  Sun
		want math.Vec3
	}{
		{"front horizon", Sun{Azimuth: 0, Elevation: 0}, math.Vec3{Z: 1}},
		{"right horizon", Sun{Azimuth: 90, Elevation: 0}, math.Vec3{X: 1}},
		{"zenith", Sun{Azimuth: 123, Elevation: 90}, math.Vec3{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sun.ToSun()
			assert.InDelta(t, tt.want.X, got.X, 1e-5)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-5)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-5)
			assert.InDelta(t, 1, got.Length(), 1e-5)
		})
	}
}

func TestDirectionOpposesToSun(t *testing.T) {
	s := DefaultSun()
	assert.InDelta(t, -1, s.Direction().Dot(s.ToSun()), 1e-5)
	assert.Less(t, s.Direction().Y, float32(0), "light travels downward")
}

func TestRotateWraps(t *testing.T) {
	s := Sun{Azimuth: 350}
	s.Rotate(20)
	assert.InDelta(t, 10, float32(s.Azimuth), 1e-4)

	s.Rotate(-30)
	assert.InDelta(t, 340, float32(s.Azimuth), 1e-4)
}
