// Package lighting describes the viewer's directional light.
package lighting

import "github.com/Faultbox/shapegen/pkg/math"

// Sun is a directional light placed by azimuth around +Y (0 is +Z, 90 is +X)
// and elevation above the horizon.
type Sun struct {
	Azimuth   math.Deg
	Elevation math.Deg
}

// DefaultSun lights the front-right of a shape from above.
func DefaultSun() Sun {
	return Sun{Azimuth: 35, Elevation: 50}
}

// ToSun returns the unit vector pointing from the scene toward the sun: +Z
// tilted up by the elevation, then turned by the azimuth.
func (s Sun) ToSun() math.Vec3 {
	r := math.RotateY(s.Azimuth).Mul(math.RotateX(-s.Elevation))
	return r.TransformDirection(math.Vec3{Z: 1})
}

// Direction returns the direction the light travels, the negated ToSun.
func (s Sun) Direction() math.Vec3 {
	return s.ToSun().Scale(-1)
}

// Rotate turns the sun around +Y, keeping the azimuth in [0, 360).
func (s *Sun) Rotate(delta math.Deg) {
	a := float32(s.Azimuth + delta)
	for a < 0 {
		a += 360
	}
	for a >= 360 {
		a -= 360
	}
	s.Azimuth = math.Deg(a)
}
