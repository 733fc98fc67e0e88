package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
)

// Deg is an angle in degrees. Generators step in degrees and convert only for trig.
type Deg float32

// Radians converts the angle to radians.
func (d Deg) Radians() float32 {
	return float32(d) * (stdmath.Pi / 180)
}

// Sin returns the sine of the angle.
func (d Deg) Sin() float32 {
	return math32.Sin(d.Radians())
}

// Cos returns the cosine of the angle.
func (d Deg) Cos() float32 {
	return math32.Cos(d.Radians())
}

// Step returns the i-th of n equal steps over span: i*span/n.
func Step(i, n int, span float32) Deg {
	return Deg(float32(i) * span / float32(n))
}
