package vertexdata

import "fmt"

// Cube vertex layout. Each face owns four vertices so it can carry a flat
// normal and its own UVs. Faces are stored in the order +X, -X, +Y, -Y, +Z, -Z
// starting at the slot listed below. Corner signs are (x, y, z) multiples of
// side/2. UV sets, tangent frames and the wireframe table all depend on this
// exact slot assignment.
//
//	slot face  corners (x y z)
//	 0   +X    + + +   + + -   + - +   + - -
//	 4   -X    - + -   - + +   - - -   - - +
//	 8   +Y    - + -   + + -   - + +   + + +
//	12   -Y    - - +   + - +   - - -   + - -
//	16   +Z    - + +   + + +   - - +   + - +
//	20   -Z    + + -   - + -   + - -   - - -
var cubeCorners = [24][3]float32{
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, -1}, {-1, 1, 1}, {-1, -1, -1}, {-1, -1, 1},
	{-1, 1, -1}, {1, 1, -1}, {-1, 1, 1}, {1, 1, 1},
	{-1, -1, 1}, {1, -1, 1}, {-1, -1, -1}, {1, -1, -1},
	{-1, 1, 1}, {1, 1, 1}, {-1, -1, 1}, {1, -1, 1},
	{1, 1, -1}, {-1, 1, -1}, {1, -1, -1}, {-1, -1, -1},
}

// cubeFaceNormals is indexed by slot/4.
var cubeFaceNormals = [6][3]float32{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// cubeColors is a per-slot debug palette.
var cubeColors = [24][3]float32{
	{1, 1, 1}, {1, 1, 0}, {1, 0, 1}, {1, 0, 0},
	{0, 1, 0}, {0, 1, 1}, {0, 0, 0}, {0, 0, 1},
	{0, 1, 0}, {1, 1, 0}, {0, 1, 1}, {1, 1, 1},
	{0, 0, 1}, {1, 0, 1}, {0, 0, 0}, {1, 0, 0},
	{0, 1, 1}, {1, 1, 1}, {0, 0, 1}, {1, 0, 1},
	{1, 1, 0}, {0, 1, 0}, {1, 0, 0}, {0, 0, 0},
}

// cubeFaceUV is repeated for every face: top-left, top-right, bottom-left, bottom-right.
var cubeFaceUV = [4][2]float32{{0, 1}, {1, 1}, {0, 0}, {1, 0}}

// cubeIndices holds two counter-clockwise triangles per face.
var cubeIndices = [36]uint16{
	0, 2, 1, 2, 3, 1,
	4, 6, 5, 6, 7, 5,
	8, 10, 9, 10, 11, 9,
	12, 14, 13, 14, 15, 13,
	16, 18, 17, 18, 19, 17,
	20, 22, 21, 22, 23, 21,
}

// cubeWireframe draws the box edges as a line list using the +Y and -Y face
// slots: the top ring, the bottom ring, then the four vertical edges.
var cubeWireframe = [24]uint16{
	8, 9, 9, 11, 11, 10, 10, 8, // top
	14, 15, 15, 13, 13, 12, 12, 14, // bottom
	11, 13, 9, 15, 8, 14, 10, 12, // side
}

// cubeAtlasUV maps the faces into a 3x2 texture atlas.
var cubeAtlasUV = [24][2]float32{
	{1. / 3, 1}, {2. / 3, 1}, {1. / 3, 1. / 2}, {2. / 3, 1. / 2}, // right
	{0, 1. / 2}, {1. / 3, 1. / 2}, {0, 0}, {1. / 3, 0}, // left
	{1. / 3, 1. / 2}, {2. / 3, 1. / 2}, {1. / 3, 0}, {2. / 3, 0}, // top
	{2. / 3, 1. / 2}, {1, 1. / 2}, {2. / 3, 0}, {1, 0}, // bottom
	{0, 1}, {1. / 3, 1}, {0, 1. / 2}, {1. / 3, 1. / 2}, // front
	{2. / 3, 1}, {1, 1}, {2. / 3, 1. / 2}, {1, 1. / 2}, // back
}

// CreateCubeData builds an axis-aligned cube centred at the origin with the
// given side length.
func CreateCubeData(side float32) (*Mesh, error) {
	if !positive(side) {
		return nil, fmt.Errorf("%w: cube side %v", ErrInvalidSize, side)
	}
	s2 := side / 2

	m := &Mesh{
		Positions:        make([][3]float32, len(cubeCorners)),
		Normals:          make([][3]float32, len(cubeCorners)),
		UVs:              make([][2]float32, len(cubeCorners)),
		Colors:           make([][3]float32, len(cubeCorners)),
		Indices:          make([]uint16, len(cubeIndices)),
		WireframeIndices: make([]uint16, len(cubeWireframe)),
	}
	for i, c := range cubeCorners {
		m.Positions[i] = [3]float32{c[0] * s2, c[1] * s2, c[2] * s2}
		m.Normals[i] = cubeFaceNormals[i/4]
		m.UVs[i] = cubeFaceUV[i%4]
		m.Colors[i] = cubeColors[i]
	}
	copy(m.Indices, cubeIndices[:])
	copy(m.WireframeIndices, cubeWireframe[:])
	return m, nil
}

// CreateCubeUV returns the atlas UV set for a cube from CreateCubeData. Bind it
// in place of Mesh.UVs when a single texture holds all six faces.
func CreateCubeUV() [][2]float32 {
	uvs := make([][2]float32, len(cubeAtlasUV))
	copy(uvs, cubeAtlasUV[:])
	return uvs
}
