package vertexdata

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/shapegen/pkg/math"
)

// Vertex carries a position, UV and a full tangent frame.
type Vertex struct {
	Position  [3]float32
	UV        [2]float32
	Normal    [3]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// Handedness returns +1 when (normal, tangent, bitangent) is right-handed and
// -1 otherwise. The tangent builder does not correct mirrored UVs; shaders that
// need it multiply the reconstructed bitangent by this sign.
func (v Vertex) Handedness() float32 {
	n, t, b := math.V3(v.Normal), math.V3(v.Tangent), math.V3(v.Bitangent)
	if n.Cross(t).Dot(b) < 0 {
		return -1
	}
	return 1
}

// BuildOptions tunes CreateTangentDataWithOptions.
type BuildOptions struct {
	// AllowUnreferenced leaves a zero tangent frame on vertices that no
	// triangle uses instead of failing with ErrUnreferencedVertex.
	AllowUnreferenced bool
	// AllowDegenerate leaves a zero tangent frame on vertices whose averaged
	// tangent or bitangent vanishes after Gram-Schmidt instead of failing with
	// ErrDegenerateFrame. Sphere pole vertices need this.
	AllowDegenerate bool
}

// CreateTangentData computes per-vertex tangents and bitangents from
// triangle geometry and UVs. Normals must be unit length.
//
// Each triangle's tangent and bitangent are summed into its three vertices and
// then divided by the number of triangles touching the vertex. The mean is
// made orthonormal against the normal with Gram-Schmidt. Handedness is not
// tracked; see Vertex.Handedness.
//
// Triangles with zero UV area, vertices used by no triangle and vertices whose
// tangent or bitangent collapses to zero length are reported as errors rather
// than producing NaN or a partial frame. On a UV sphere the pole vertex at the
// seam (row 0, column v) is such a vertex: its only triangle has a zero raw
// bitangent.
func CreateTangentData(positions, normals [][3]float32, uvs [][2]float32, indices []uint16) ([]Vertex, error) {
	return CreateTangentDataWithOptions(positions, normals, uvs, indices, BuildOptions{})
}

// CreateTangentDataWithOptions is CreateTangentData with explicit options.
func CreateTangentDataWithOptions(positions, normals [][3]float32, uvs [][2]float32, indices []uint16, opts BuildOptions) ([]Vertex, error) {
	n := len(positions)
	if len(normals) != n || len(uvs) != n {
		return nil, fmt.Errorf("%w: %d positions, %d normals, %d uvs", ErrLengthMismatch, n, len(normals), len(uvs))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d triangle indices", ErrIndexCount, len(indices))
	}
	if err := checkIndices(indices, n); err != nil {
		return nil, err
	}

	// Accumulation buffers indexed by vertex id, local to this call.
	tangents := make([]math.Vec3, n)
	bitangents := make([]math.Vec3, n)
	triangles := make([]int, n)

	for i := 0; i < len(indices); i += 3 {
		c := [3]uint16{indices[i], indices[i+1], indices[i+2]}

		p0, p1, p2 := math.V3(positions[c[0]]), math.V3(positions[c[1]]), math.V3(positions[c[2]])
		uv0, uv1, uv2 := math.V2(uvs[c[0]]), math.V2(uvs[c[1]]), math.V2(uvs[c[2]])

		dp1 := p1.Sub(p0)
		dp2 := p2.Sub(p0)
		duv1 := uv1.Sub(uv0)
		duv2 := uv2.Sub(uv0)

		det := duv1.Cross(duv2)
		d := 1 / det
		if det == 0 || !finite(d) {
			return nil, fmt.Errorf("%w: triangle %d (%d, %d, %d)", ErrDegenerateUV, i/3, c[0], c[1], c[2])
		}

		tangent := dp1.Scale(duv2.Y).Sub(dp2.Scale(duv1.Y)).Scale(d)
		bitangent := dp2.Scale(duv1.X).Sub(dp1.Scale(duv2.X)).Scale(-d)

		for _, idx := range c {
			tangents[idx] = tangents[idx].Add(tangent)
			bitangents[idx] = bitangents[idx].Add(bitangent)
			triangles[idx]++
		}
	}

	vertices := make([]Vertex, n)
	for i := range vertices {
		vertices[i] = Vertex{Position: positions[i], UV: uvs[i], Normal: normals[i]}

		count := triangles[i]
		if count == 0 {
			if opts.AllowUnreferenced {
				continue
			}
			return nil, fmt.Errorf("%w: vertex %d", ErrUnreferencedVertex, i)
		}

		t := tangents[i].Div(float32(count))
		b := bitangents[i].Div(float32(count))
		tangent, bitangent, ok := orthonormalize(math.V3(normals[i]), t, b)
		if !ok {
			if opts.AllowDegenerate {
				continue
			}
			return nil, fmt.Errorf("%w: vertex %d", ErrDegenerateFrame, i)
		}
		vertices[i].Tangent, vertices[i].Bitangent = tangent, bitangent
	}
	return vertices, nil
}

// orthonormalize removes the normal component from t, then the normal and new
// tangent components from b, and normalizes both. ok is false when either
// vector has no length left to normalize.
func orthonormalize(n, t, b math.Vec3) (tangent, bitangent [3]float32, ok bool) {
	t1 := t.Sub(n.Scale(t.Dot(n)))
	if t1.LengthSqr() == 0 {
		return tangent, bitangent, false
	}
	t1 = t1.Normalize()
	b1 := b.Sub(n.Scale(b.Dot(n))).Sub(t1.Scale(b.Dot(t1)))
	if b1.LengthSqr() == 0 {
		return tangent, bitangent, false
	}
	return t1.Array(), b1.Normalize().Array(), true
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
