package vertexdata

import "errors"

// Parameter errors returned by the shape generators.
var (
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidRadius   = errors.New("invalid radius")
	ErrInvalidHeight   = errors.New("invalid height")
	ErrInvalidSegments = errors.New("segment count must be positive")
	ErrTooManyVertices = errors.New("vertex count exceeds uint16 index range")
)

// Attribute errors returned by Validate and the tangent builder.
var (
	ErrLengthMismatch     = errors.New("vertex attribute lengths differ")
	ErrIndexCount         = errors.New("index count is not a multiple of the primitive size")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrDegenerateUV       = errors.New("triangle has zero area in UV space")
	ErrUnreferencedVertex = errors.New("vertex is not referenced by any triangle")
	ErrDegenerateFrame    = errors.New("tangent frame has zero length")
)
