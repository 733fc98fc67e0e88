package vertexdata

// InterleavedStride is the number of float32 values per vertex written by
// Interleave: position(3) normal(3) uv(2) tangent(3) bitangent(3).
const InterleavedStride = 14

// Attribute offsets, in floats, within one interleaved vertex.
const (
	OffsetPosition  = 0
	OffsetNormal    = 3
	OffsetUV        = 6
	OffsetTangent   = 8
	OffsetBitangent = 11
)

// Interleave packs vertices into a flat buffer for a single vertex buffer upload.
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*InterleavedStride)
	for _, v := range vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
		out = append(out, v.UV[:]...)
		out = append(out, v.Tangent[:]...)
		out = append(out, v.Bitangent[:]...)
	}
	return out
}

// Vertices zips the mesh attributes into Vertex values without computing a
// tangent frame. Missing attributes stay zero.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, len(m.Positions))
	for i := range out {
		out[i].Position = m.Positions[i]
		if i < len(m.Normals) {
			out[i].Normal = m.Normals[i]
		}
		if i < len(m.UVs) {
			out[i].UV = m.UVs[i]
		}
	}
	return out
}
