package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapegen/internal/engine/shader"
	"github.com/Faultbox/shapegen/pkg/vertexdata"
)

// Mesh is a vertex array with one interleaved vertex buffer and one index
// buffer holding the triangle list followed by the line list.
type Mesh struct {
	vao, vbo, ebo uint32

	vertexCount   int
	triangleCount int32
	lineCount     int32
	lineOffset    int // bytes into ebo
	hasSurface    bool
}

type attribute struct {
	location uint32
	size     int32
	offset   int
}

var attributes = []attribute{
	{shader.AttribPosition, 3, vertexdata.OffsetPosition},
	{shader.AttribNormal, 3, vertexdata.OffsetNormal},
	{shader.AttribUV, 2, vertexdata.OffsetUV},
	{shader.AttribTangent, 3, vertexdata.OffsetTangent},
	{shader.AttribBitangent, 3, vertexdata.OffsetBitangent},
}

// Upload creates GPU buffers for interleaved vertices (InterleavedStride
// floats each) and their triangle and line indices. hasSurface marks meshes
// with normals, UVs and tangents; others are shaded flat.
func (r *Renderer) Upload(vertices []float32, triangles, lines []uint16, hasSurface bool) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%vertexdata.InterleavedStride != 0 {
		return nil, fmt.Errorf("vertex buffer of %d floats is not a whole number of vertices", len(vertices))
	}

	m := &Mesh{
		vertexCount:   len(vertices) / vertexdata.InterleavedStride,
		triangleCount: int32(len(triangles)),
		lineCount:     int32(len(lines)),
		lineOffset:    len(triangles) * 2,
		hasSurface:    hasSurface,
	}

	indices := make([]uint16, 0, len(triangles)+len(lines))
	indices = append(indices, triangles...)
	indices = append(indices, lines...)
	if len(indices) == 0 {
		return nil, fmt.Errorf("mesh has no indices")
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)

	stride := int32(vertexdata.InterleavedStride * 4)
	for _, a := range attributes {
		gl.VertexAttribPointerWithOffset(a.location, a.size, gl.FLOAT, false, stride, uintptr(a.offset*4))
		gl.EnableVertexAttribArray(a.location)
	}

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("vertices", m.vertexCount),
		zap.Int32("triangle_indices", m.triangleCount),
		zap.Int32("line_indices", m.lineCount))
	return m, nil
}

// UpdateVertices replaces the vertex data in place, e.g. after rescaling UVs.
// The vertex count must not change.
func (m *Mesh) UpdateVertices(vertices []float32) error {
	if len(vertices) != m.vertexCount*vertexdata.InterleavedStride {
		return fmt.Errorf("vertex buffer size changed: got %d floats, want %d",
			len(vertices), m.vertexCount*vertexdata.InterleavedStride)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = Mesh{}
}
