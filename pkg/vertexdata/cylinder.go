package vertexdata

import (
	"fmt"

	"github.com/Faultbox/shapegen/pkg/math"
)

// innerRadiusLimit keeps the inner wall from coinciding with the outer wall.
const innerRadiusLimit = 0.999

// ClampInnerRadius limits rin to 0.999*rout.
func ClampInnerRadius(rin, rout float32) float32 {
	if rin >= innerRadiusLimit*rout {
		return innerRadiusLimit * rout
	}
	return rin
}

func cylinderPosition(r float32, theta math.Deg, y float32) [3]float32 {
	return [3]float32{r * theta.Cos(), y, -r * theta.Sin()}
}

// CreateCylinderData builds a hollow tube of height h between radii rin and
// rout with n angular segments. rin == 0 gives a solid cylinder; rin is
// silently clamped to 0.999*rout.
//
// Each of the n+1 angular steps stores four vertices: outer-top, outer-bottom,
// inner-bottom, inner-top. The last step repeats angle 0 to close the loop.
// Only positions are produced.
func CreateCylinderData(rin, rout, h float32, n uint16) (*Mesh, error) {
	if !positive(rout) {
		return nil, fmt.Errorf("%w: cylinder outer radius %v", ErrInvalidRadius, rout)
	}
	if !(rin >= 0) {
		return nil, fmt.Errorf("%w: cylinder inner radius %v", ErrInvalidRadius, rin)
	}
	if !positive(h) {
		return nil, fmt.Errorf("%w: cylinder height %v", ErrInvalidHeight, h)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: cylinder", ErrInvalidSegments)
	}
	steps := int(n) + 1
	if err := checkGrid(steps, 4); err != nil {
		return nil, err
	}
	rin = ClampInnerRadius(rin, rout)

	m := &Mesh{Positions: make([][3]float32, 0, steps*4)}
	for i := 0; i < steps; i++ {
		theta := math.Step(i, int(n), 360)
		m.Positions = append(m.Positions,
			cylinderPosition(rout, theta, h/2),
			cylinderPosition(rout, theta, -h/2),
			cylinderPosition(rin, theta, -h/2),
			cylinderPosition(rin, theta, h/2),
		)
	}

	m.Indices = make([]uint16, 0, int(n)*24)
	m.WireframeIndices = make([]uint16, 0, int(n)*16)
	for i := 0; i < int(n); i++ {
		b := uint16(i * 4)
		idx0, idx1, idx2, idx3 := b, b+1, b+2, b+3
		idx4, idx5, idx6, idx7 := b+4, b+5, b+6, b+7

		m.Indices = append(m.Indices,
			idx0, idx4, idx7, idx7, idx3, idx0, // top
			idx1, idx2, idx6, idx6, idx5, idx1, // bottom
			idx0, idx1, idx5, idx5, idx4, idx0, // outer
			idx2, idx3, idx7, idx7, idx6, idx2, // inner
		)
		m.WireframeIndices = append(m.WireframeIndices,
			idx0, idx3, idx3, idx7, idx4, idx0, // top
			idx1, idx2, idx2, idx6, idx5, idx1, // bottom
			idx0, idx1, idx3, idx2, // side
		)
	}
	return m, nil
}
