package shader

import _ "embed"

// Vertex attribute locations shared by every program.
const (
	AttribPosition  = 0
	AttribNormal    = 1
	AttribUV        = 2
	AttribTangent   = 3
	AttribBitangent = 4
)

// SurfaceVertex transforms interleaved vertices and passes the world-space
// tangent frame on to SurfaceFragment.
//
//go:embed surface.vert
var SurfaceVertex string

// SurfaceFragment shades with Blinn-Phong. Meshes with a tangent frame sample
// the albedo and tangent-space normal maps; meshes without one are lit with a
// flat face normal rebuilt from screen-space derivatives.
//
//go:embed surface.frag
var SurfaceFragment string

// LineVertex draws the wireframe overlay from positions only.
//
//go:embed line.vert
var LineVertex string

// LineFragment fills lines with a single color.
//
//go:embed line.frag
var LineFragment string
