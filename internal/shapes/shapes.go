// Package shapes turns a shape configuration into a mesh with its tangent
// frame, ready for upload or export.
package shapes

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/shapegen/internal/config"
	"github.com/Faultbox/shapegen/internal/logger"
	"github.com/Faultbox/shapegen/pkg/vertexdata"
)

// ErrUnknownKind is returned by Build for a kind not listed by Kinds.
var ErrUnknownKind = errors.New("unknown shape kind")

// Model is a generated shape.
type Model struct {
	Name string
	Mesh *vertexdata.Mesh
	// Frame holds the per-vertex tangent frame. It is nil for meshes without
	// normals or UVs (cylinder, cone).
	Frame  []vertexdata.Vertex
	Stride int
}

type generator func(cfg config.ShapeConfig) (*vertexdata.Mesh, error)

var kinds = []string{"cube", "sphere", "cylinder", "cone", "torus"}

var generators = map[string]generator{
	"cube": func(cfg config.ShapeConfig) (*vertexdata.Mesh, error) {
		m, err := vertexdata.CreateCubeData(cfg.Side)
		if err != nil {
			return nil, err
		}
		if cfg.AtlasUV {
			m.UVs = vertexdata.CreateCubeUV()
		}
		return m, nil
	},
	"sphere": func(cfg config.ShapeConfig) (*vertexdata.Mesh, error) {
		return vertexdata.CreateSphereData(cfg.Radius, cfg.Segments, cfg.SubSegments)
	},
	"cylinder": func(cfg config.ShapeConfig) (*vertexdata.Mesh, error) {
		return vertexdata.CreateCylinderData(cfg.InnerRadius, cfg.Radius, cfg.Height, cfg.Segments)
	},
	"cone": func(cfg config.ShapeConfig) (*vertexdata.Mesh, error) {
		return vertexdata.CreateCylinderData(0, cfg.Radius, cfg.Height, cfg.Segments)
	},
	"torus": func(cfg config.ShapeConfig) (*vertexdata.Mesh, error) {
		return vertexdata.CreateTorusData(cfg.Radius, cfg.TubeRadius, cfg.Segments, cfg.SubSegments)
	},
}

// Kinds returns the supported shape names in cycling order.
func Kinds() []string {
	out := make([]string, len(kinds))
	copy(out, kinds)
	return out
}

// Next returns the kind after kind in Kinds order, wrapping around.
func Next(kind string) string {
	for i, k := range kinds {
		if k == kind {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

// Build generates the shape described by cfg. Parameters are used as given;
// start from config.DefaultShape to get the kind's defaults. Vertices whose
// tangent frame collapses, such as sphere poles, keep a zero frame.
func Build(cfg config.ShapeConfig) (*Model, error) {
	gen, ok := generators[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}

	mesh, err := gen(cfg)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", cfg.Kind, err)
	}

	model := &Model{Name: cfg.Kind, Mesh: mesh, Stride: vertexdata.InterleavedStride}

	if mesh.Normals != nil && mesh.UVs != nil {
		frame, err := vertexdata.CreateTangentDataWithOptions(mesh.Positions, mesh.Normals, mesh.UVs, mesh.Indices,
			vertexdata.BuildOptions{AllowDegenerate: true})
		if err != nil {
			return nil, fmt.Errorf("tangent frame for %s: %w", cfg.Kind, err)
		}
		model.Frame = frame
	}

	logger.Named("shapes").Debug("shape built",
		zap.String("kind", cfg.Kind),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("lines", mesh.LineCount()),
		zap.Bool("tangents", model.Frame != nil))

	return model, nil
}

// Vertices returns the interleaved vertex buffer with UVs multiplied by
// (su, sv). The tangent frame is reused as is.
func (m *Model) Vertices(su, sv float32) []float32 {
	var verts []vertexdata.Vertex
	if m.Frame != nil {
		verts = make([]vertexdata.Vertex, len(m.Frame))
		copy(verts, m.Frame)
	} else {
		verts = m.Mesh.Vertices()
	}
	if m.Mesh.UVs != nil {
		for i, uv := range vertexdata.ScaleUV(m.Mesh.UVs, su, sv) {
			verts[i].UV = uv
		}
	}
	return vertexdata.Interleave(verts)
}

// HasSurface reports whether the model carries normals and a tangent frame,
// i.e. whether it can be lit and textured.
func (m *Model) HasSurface() bool {
	return m.Frame != nil
}
