// Package camera provides the orbit camera used by the shape viewer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapegen/pkg/math"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target math.Vec3

	Distance float32
	Pitch    math.Deg // elevation above the XZ plane
	Yaw      math.Deg // rotation around +Y, 0 looks down -Z

	MinDistance float32
	MaxDistance float32
	MinPitch    math.Deg
	MaxPitch    math.Deg

	FovY       math.Deg
	Near, Far  float32
	DragSpeed  float32 // degrees per pixel
	ZoomFactor float32 // fraction of distance per wheel step
}

// NewOrbitCamera returns a camera at distance looking at the origin from
// slightly above.
func NewOrbitCamera(distance float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:    distance,
		Pitch:       20,
		MinDistance: 1,
		MaxDistance: 100,
		MinPitch:    -89,
		MaxPitch:    89,
		FovY:        45,
		Near:        0.1,
		Far:         200,
		DragSpeed:   0.4,
		ZoomFactor:  0.1,
	}
}

// Position returns the eye position in world space: a point Distance along
// +Z in the orbit frame centered on Target.
func (c *OrbitCamera) Position() math.Vec3 {
	orbit := math.Model(c.Target, math.Vec3{X: float32(-c.Pitch), Y: float32(c.Yaw)}, math.Vec3{X: 1, Y: 1, Z: 1})
	return orbit.TransformPoint(math.Vec3{Z: c.Distance})
}

// ViewMatrix returns the world-to-view transform.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio (width/height).
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY.Radians(), aspect, c.Near, c.Far)
}

// HandleDrag rotates by a mouse delta in pixels.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.Yaw -= math.Deg(dx * c.DragSpeed)
	c.Pitch += math.Deg(dy * c.DragSpeed)
	c.Pitch = math.Deg(clamp(float32(c.Pitch), float32(c.MinPitch), float32(c.MaxPitch)))
}

// HandleZoom moves toward the target for positive wheel steps.
func (c *OrbitCamera) HandleZoom(steps float32) {
	c.Distance -= steps * c.Distance * c.ZoomFactor
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on an axis-aligned box and backs off far
// enough to keep its bounding sphere in view.
func (c *OrbitCamera) FitToBounds(minP, maxP [3]float32) {
	lo, hi := math.V3(minP), math.V3(maxP)
	c.Target = lo.Add(hi).Scale(0.5)

	radius := hi.Sub(lo).Length() / 2
	if radius == 0 {
		return
	}
	d := radius / math32.Sin((c.FovY / 2).Radians())
	c.Distance = clamp(d*1.1, c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
