// Package gltfexport writes generated meshes to glTF 2.0 files.
package gltfexport

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/shapegen/pkg/vertexdata"
)

// ErrEmptyMesh is returned when there is nothing to export.
var ErrEmptyMesh = errors.New("mesh has no positions")

// Options controls what Write emits.
type Options struct {
	// Wireframe adds a second LINES primitive built from WireframeIndices.
	Wireframe bool
	// Binary forces .glb output. Paths ending in .glb are always binary.
	Binary bool
}

// Build converts a mesh and optional tangent frame into a glTF document with a
// single node. frame, when non-nil, must have one entry per vertex and
// supplies TANGENT (xyz plus handedness in w).
func Build(name string, m *vertexdata.Mesh, frame []vertexdata.Vertex, opts Options) (*gltf.Document, error) {
	if m == nil || len(m.Positions) == 0 {
		return nil, ErrEmptyMesh
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh %q: %w", name, err)
	}
	if frame != nil && len(frame) != len(m.Positions) {
		return nil, fmt.Errorf("%w: %d vertices, %d tangent frames", vertexdata.ErrLengthMismatch, len(m.Positions), len(frame))
	}

	doc := gltf.NewDocument()

	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, m.Positions),
	}
	if len(m.Normals) > 0 {
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, m.Normals)
	}
	if len(m.UVs) > 0 {
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, m.UVs)
	}
	if len(m.Colors) > 0 {
		attrs[gltf.COLOR_0] = modeler.WriteColor(doc, m.Colors)
	}
	if frame != nil {
		attrs[gltf.TANGENT] = modeler.WriteTangent(doc, tangents(frame))
	}

	mesh := &gltf.Mesh{Name: name}
	if len(m.Indices) > 0 {
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices:    gltf.Index(modeler.WriteIndices(doc, m.Indices)),
			Attributes: attrs,
			Mode:       gltf.PrimitiveTriangles,
		})
	}
	if opts.Wireframe && len(m.WireframeIndices) > 0 {
		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Indices:    gltf.Index(modeler.WriteIndices(doc, m.WireframeIndices)),
			Attributes: attrs,
			Mode:       gltf.PrimitiveLines,
		})
	}
	if len(mesh.Primitives) == 0 {
		return nil, fmt.Errorf("mesh %q has no primitives to export", name)
	}

	doc.Meshes = append(doc.Meshes, mesh)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	return doc, nil
}

// Write builds the document and saves it to path.
func Write(path, name string, m *vertexdata.Mesh, frame []vertexdata.Vertex, opts Options) error {
	doc, err := Build(name, m, frame, opts)
	if err != nil {
		return err
	}

	if opts.Binary || strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func tangents(frame []vertexdata.Vertex) [][4]float32 {
	out := make([][4]float32, len(frame))
	for i, v := range frame {
		out[i] = [4]float32{v.Tangent[0], v.Tangent[1], v.Tangent[2], v.Handedness()}
	}
	return out
}
