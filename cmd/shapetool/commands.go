package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/shapegen/internal/shapes"
	"github.com/Faultbox/shapegen/pkg/gltfexport"
	"github.com/Faultbox/shapegen/pkg/uvmap"
	"github.com/Faultbox/shapegen/pkg/vertexdata"
)

func cmdInfo(w io.Writer, args []string) error {
	sf := newShapeFlags("info")
	m, _, err := sf.build(args, "info [options] <kind>")
	if err != nil {
		return err
	}

	mesh := m.Mesh
	minP, maxP := mesh.Bounds()

	fmt.Fprintf(w, "Shape:      %s\n", m.Name)
	fmt.Fprintf(w, "Vertices:   %d\n", mesh.VertexCount())
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintf(w, "Lines:      %d\n", mesh.LineCount())
	fmt.Fprintf(w, "Attributes: %s\n", strings.Join(attributeNames(m), ", "))
	fmt.Fprintf(w, "Bounds:     (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		minP[0], minP[1], minP[2], maxP[0], maxP[1], maxP[2])
	return nil
}

func attributeNames(m *shapes.Model) []string {
	names := []string{"position"}
	if m.Mesh.Normals != nil {
		names = append(names, "normal")
	}
	if m.Mesh.UVs != nil {
		names = append(names, "uv")
	}
	if m.Mesh.Colors != nil {
		names = append(names, "color")
	}
	if m.Frame != nil {
		names = append(names, "tangent", "bitangent")
	}
	return names
}

func cmdCheck(w io.Writer, args []string) error {
	sf := newShapeFlags("check")
	m, _, err := sf.build(args, "check [options] <kind>")
	if err != nil {
		return err
	}

	if err := m.Mesh.Validate(); err != nil {
		return fmt.Errorf("%s: %w", m.Name, err)
	}
	fmt.Fprintf(w, "%s: indices ok (%d triangles, %d lines)\n", m.Name, m.Mesh.TriangleCount(), m.Mesh.LineCount())

	if m.Frame == nil {
		fmt.Fprintf(w, "%s: no tangent frame (mesh has no normals or uvs)\n", m.Name)
		return nil
	}

	r := checkFrame(m.Frame)
	fmt.Fprintf(w, "%s: tangent frame over %d vertices\n", m.Name, r.Vertices)
	fmt.Fprintf(w, "  max |t.n|      %.2e\n", r.MaxTangentDotNormal)
	fmt.Fprintf(w, "  max ||t|-1|    %.2e\n", r.MaxTangentLengthError)
	fmt.Fprintf(w, "  max ||b|-1|    %.2e\n", r.MaxBitangentLengthError)
	fmt.Fprintf(w, "  right-handed   %d\n", r.RightHanded)
	fmt.Fprintf(w, "  left-handed    %d\n", r.LeftHanded)
	fmt.Fprintf(w, "  degenerate     %d\n", r.Degenerate)

	if !r.OK() {
		return fmt.Errorf("%s: tangent frame exceeds tolerance %.0e", m.Name, frameTolerance)
	}
	return nil
}

func cmdExport(w io.Writer, args []string) error {
	sf := newShapeFlags("export")
	wireframe := sf.fs.Bool("wireframe", false, "Also export the wireframe as a LINES primitive")
	binary := sf.fs.Bool("binary", false, "Write binary glTF regardless of extension")

	m, rest, err := sf.build(args, "export [options] <kind> <out.gltf|out.glb>")
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("usage: shapetool export [options] <kind> <out.gltf|out.glb>")
	}
	out := rest[0]

	opts := gltfexport.Options{Wireframe: *wireframe, Binary: *binary}
	if err := gltfexport.Write(out, m.Name, m.Mesh, m.Frame, opts); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s (%d vertices, %d triangles)\n", out, m.Mesh.VertexCount(), m.Mesh.TriangleCount())
	return nil
}

func cmdDump(w io.Writer, args []string) error {
	sf := newShapeFlags("dump")
	limit := sf.fs.Int("n", 8, "Number of vertices to print (0 = all)")
	su := sf.fs.Float64("su", 1, "U scale")
	sv := sf.fs.Float64("sv", 1, "V scale")

	m, _, err := sf.build(args, "dump [options] <kind>")
	if err != nil {
		return err
	}

	data := m.Vertices(float32(*su), float32(*sv))
	count := len(data) / m.Stride
	if *limit > 0 && *limit < count {
		count = *limit
	}

	fmt.Fprintln(w, "#    position                  normal                 uv              tangent                bitangent")
	for i := 0; i < count; i++ {
		v := data[i*m.Stride : (i+1)*m.Stride]
		fmt.Fprintf(w, "%-4d %s  %s  %s  %s  %s\n", i,
			vec(v[vertexdata.OffsetPosition:vertexdata.OffsetNormal]),
			vec(v[vertexdata.OffsetNormal:vertexdata.OffsetUV]),
			vec(v[vertexdata.OffsetUV:vertexdata.OffsetTangent]),
			vec(v[vertexdata.OffsetTangent:vertexdata.OffsetBitangent]),
			vec(v[vertexdata.OffsetBitangent:vertexdata.InterleavedStride]))
	}
	return nil
}

func vec(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%6.3f", f)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func cmdUVMap(w io.Writer, args []string) error {
	sf := newShapeFlags("uvmap")
	size := sf.fs.Int("size", 512, "Image size in pixels")
	su := sf.fs.Float64("su", 1, "U scale")
	sv := sf.fs.Float64("sv", 1, "V scale")

	m, rest, err := sf.build(args, "uvmap [options] <kind> <out.png>")
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("usage: shapetool uvmap [options] <kind> <out.png>")
	}

	mesh := *m.Mesh
	mesh.UVs = vertexdata.ScaleUV(mesh.UVs, float32(*su), float32(*sv))
	img, err := uvmap.Render(&mesh, *size, uvmap.DefaultStyle)
	if err != nil {
		return fmt.Errorf("%s: %w", m.Name, err)
	}

	f, err := os.Create(rest[0])
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", rest[0], err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s (%dx%d, %d triangles)\n", rest[0], *size, *size, m.Mesh.TriangleCount())
	return nil
}
