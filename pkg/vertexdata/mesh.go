// Package vertexdata generates vertex attribute and index arrays for parametric
// solids (cube, sphere, cylinder, torus) and derives per-vertex tangent frames
// for normal mapping.
//
// All outputs are plain slices ready for GPU upload. Index i in every attribute
// slice of a Mesh refers to the same vertex. Indices are uint16, so a single
// mesh holds at most MaxVertices vertices.
package vertexdata

import (
	"fmt"

	"github.com/chewxy/math32"
)

// MaxVertices is the largest vertex count addressable by uint16 indices.
const MaxVertices = 1 << 16

// Mesh holds the arrays produced by a generator. Attributes a generator does
// not produce are nil.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Colors    [][3]float32

	// Indices is a counter-clockwise triangle list.
	Indices []uint16
	// WireframeIndices is a line list meant for an edge overlay.
	WireframeIndices []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// LineCount returns the number of line segments in WireframeIndices.
func (m *Mesh) LineCount() int {
	return len(m.WireframeIndices) / 2
}

// Validate checks the structural invariants of the mesh: every present
// attribute matches the position count, index lists have whole primitives,
// and no index points past the last vertex.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	attrs := []struct {
		name string
		len  int
	}{
		{"normals", len(m.Normals)},
		{"uvs", len(m.UVs)},
		{"colors", len(m.Colors)},
	}
	for _, a := range attrs {
		if a.len != 0 && a.len != n {
			return fmt.Errorf("%w: %d positions, %d %s", ErrLengthMismatch, n, a.len, a.name)
		}
	}

	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d triangle indices", ErrIndexCount, len(m.Indices))
	}
	if len(m.WireframeIndices)%2 != 0 {
		return fmt.Errorf("%w: %d wireframe indices", ErrIndexCount, len(m.WireframeIndices))
	}
	if err := checkIndices(m.Indices, n); err != nil {
		return fmt.Errorf("triangles: %w", err)
	}
	if err := checkIndices(m.WireframeIndices, n); err != nil {
		return fmt.Errorf("wireframe: %w", err)
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (minP, maxP [3]float32) {
	if len(m.Positions) == 0 {
		return minP, maxP
	}
	minP, maxP = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			minP[k] = math32.Min(minP[k], p[k])
			maxP[k] = math32.Max(maxP[k], p[k])
		}
	}
	return minP, maxP
}

func checkIndices(indices []uint16, vertexCount int) error {
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: index %d at position %d, %d vertices", ErrIndexOutOfRange, idx, i, vertexCount)
		}
	}
	return nil
}

// checkGrid rejects grids whose vertex count cannot be addressed by uint16.
func checkGrid(rows, cols int) error {
	if rows*cols > MaxVertices {
		return fmt.Errorf("%w: %dx%d grid", ErrTooManyVertices, rows, cols)
	}
	return nil
}

func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1)
}
