package vertexdata

import (
	"fmt"

	"github.com/Faultbox/shapegen/pkg/math"
)

// TorusPosition returns the point at ring angle u and tube angle v on a torus
// with major radius rTorus and tube radius rTube.
func TorusPosition(rTorus, rTube float32, u, v math.Deg) [3]float32 {
	ring := rTorus + rTube*v.Cos()
	return [3]float32{
		ring * u.Cos(),
		rTube * v.Sin(),
		-ring * u.Sin(),
	}
}

// CreateTorusData builds a torus with nTorus segments around the ring and
// nTube around the tube, (nTorus+1)*(nTube+1) vertices.
//
// Normals come from central differences of TorusPosition along u and v. The
// same approach works for any parametric surface. With rTube == 0 the surface
// collapses onto a circle and the normals come out zero instead of NaN.
func CreateTorusData(rTorus, rTube float32, nTorus, nTube uint16) (*Mesh, error) {
	if !positive(rTorus) {
		return nil, fmt.Errorf("%w: torus radius %v", ErrInvalidRadius, rTorus)
	}
	if !(rTube >= 0) {
		return nil, fmt.Errorf("%w: torus tube radius %v", ErrInvalidRadius, rTube)
	}
	if nTorus == 0 || nTube == 0 {
		return nil, fmt.Errorf("%w: torus %dx%d", ErrInvalidSegments, nTorus, nTube)
	}
	rows, cols := int(nTorus)+1, int(nTube)+1
	if err := checkGrid(rows, cols); err != nil {
		return nil, err
	}

	eps := math.Deg(0.01 * 360 / float32(nTube))
	pos := func(u, v math.Deg) math.Vec3 {
		return math.V3(TorusPosition(rTorus, rTube, u, v))
	}

	m := &Mesh{
		Positions: make([][3]float32, 0, rows*cols),
		Normals:   make([][3]float32, 0, rows*cols),
		UVs:       make([][2]float32, 0, rows*cols),
	}
	for i := 0; i < rows; i++ {
		u := math.Step(i, int(nTorus), 360)
		for j := 0; j < cols; j++ {
			v := math.Step(j, int(nTube), 360)
			m.Positions = append(m.Positions, TorusPosition(rTorus, rTube, u, v))

			nu := pos(u+eps, v).Sub(pos(u-eps, v))
			nv := pos(u, v+eps).Sub(pos(u, v-eps))
			m.Normals = append(m.Normals, nu.Cross(nv).Normalize().Array())

			m.UVs = append(m.UVs, [2]float32{float32(i) / float32(nTorus), float32(j) / float32(nTube)})
		}
	}

	m.Indices, m.WireframeIndices = gridIndices(int(nTorus), int(nTube))
	return m, nil
}
