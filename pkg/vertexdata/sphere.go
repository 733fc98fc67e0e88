package vertexdata

import (
	"fmt"

	"github.com/Faultbox/shapegen/pkg/math"
)

// SpherePosition returns the point at polar angle theta (from +Y) and azimuth
// phi on a sphere of radius r.
func SpherePosition(r float32, theta, phi math.Deg) [3]float32 {
	st := theta.Sin()
	return [3]float32{
		r * st * phi.Cos(),
		r * theta.Cos(),
		-r * st * phi.Sin(),
	}
}

// CreateSphereData builds a UV sphere with u latitude and v longitude
// subdivisions, (u+1)*(v+1) vertices. The pole rows repeat one point, so their
// triangles are degenerate in position (not in UV).
func CreateSphereData(r float32, u, v uint16) (*Mesh, error) {
	if !positive(r) {
		return nil, fmt.Errorf("%w: sphere radius %v", ErrInvalidRadius, r)
	}
	if u == 0 || v == 0 {
		return nil, fmt.Errorf("%w: sphere %dx%d", ErrInvalidSegments, u, v)
	}
	rows, cols := int(u)+1, int(v)+1
	if err := checkGrid(rows, cols); err != nil {
		return nil, err
	}

	m := &Mesh{
		Positions: make([][3]float32, 0, rows*cols),
		Normals:   make([][3]float32, 0, rows*cols),
		UVs:       make([][2]float32, 0, rows*cols),
	}
	for i := 0; i < rows; i++ {
		theta := math.Step(i, int(u), 180)
		for j := 0; j < cols; j++ {
			phi := math.Step(j, int(v), 360)
			p := SpherePosition(r, theta, phi)
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, [3]float32{p[0] / r, p[1] / r, p[2] / r})
			m.UVs = append(m.UVs, [2]float32{float32(i) / float32(u), float32(j) / float32(v)})
		}
	}

	m.Indices, m.WireframeIndices = gridIndices(int(u), int(v))
	return m, nil
}

// gridIndices triangulates a rows x cols cell grid laid out row-major with
// cols+1 vertices per row. Each cell (i,j) becomes two triangles and
// contributes its two leading edges to the wireframe, so the union of all
// cells draws the grid without duplicated lines.
func gridIndices(rows, cols int) (tris, lines []uint16) {
	stride := cols + 1
	tris = make([]uint16, 0, rows*cols*6)
	lines = make([]uint16, 0, rows*cols*4)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			idx0 := uint16(j + i*stride)
			idx1 := uint16(j + 1 + i*stride)
			idx2 := uint16(j + 1 + (i+1)*stride)
			idx3 := uint16(j + (i+1)*stride)

			tris = append(tris, idx0, idx1, idx2, idx2, idx3, idx0)
			lines = append(lines, idx0, idx1, idx0, idx3)
		}
	}
	return tris, lines
}
