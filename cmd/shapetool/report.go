package main

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapegen/pkg/math"
	"github.com/Faultbox/shapegen/pkg/vertexdata"
)

const frameTolerance = 1e-3

// frameReport summarizes how close a tangent frame is to orthonormal.
// Vertices whose tangent collapsed to zero, such as sphere poles, count as
// degenerate and are excluded from the maxima.
type frameReport struct {
	Vertices                int
	MaxTangentDotNormal     float32
	MaxTangentLengthError   float32
	MaxBitangentLengthError float32
	RightHanded             int
	LeftHanded              int
	Degenerate              int
}

func checkFrame(frame []vertexdata.Vertex) frameReport {
	r := frameReport{Vertices: len(frame)}
	for _, v := range frame {
		t, b, n := math.V3(v.Tangent), math.V3(v.Bitangent), math.V3(v.Normal)
		if t.LengthSqr() == 0 || b.LengthSqr() == 0 {
			r.Degenerate++
			continue
		}
		r.MaxTangentDotNormal = math32.Max(r.MaxTangentDotNormal, math32.Abs(t.Dot(n)))
		r.MaxTangentLengthError = math32.Max(r.MaxTangentLengthError, math32.Abs(t.Length()-1))
		r.MaxBitangentLengthError = math32.Max(r.MaxBitangentLengthError, math32.Abs(b.Length()-1))
		if v.Handedness() > 0 {
			r.RightHanded++
		} else {
			r.LeftHanded++
		}
	}
	return r
}

// OK reports whether every non-degenerate frame is within frameTolerance.
func (r frameReport) OK() bool {
	return r.MaxTangentDotNormal <= frameTolerance &&
		r.MaxTangentLengthError <= frameTolerance &&
		r.MaxBitangentLengthError <= frameTolerance
}
