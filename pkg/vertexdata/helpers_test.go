package vertexdata

import (
	"testing"

	"github.com/Faultbox/shapegen/pkg/math"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-4

func v3(a [3]float32) math.Vec3 { return math.V3(a) }

func length(a [3]float32) float32 { return v3(a).Length() }

func zeros(a [3]float32) int {
	n := 0
	for _, c := range a {
		if c == 0 {
			n++
		}
	}
	return n
}

// assertFrames checks that every vertex not listed in skip has a unit
// tangent and bitangent orthogonal to its normal.
func assertFrames(t *testing.T, vertices []Vertex, skip func(i int) bool) {
	t.Helper()
	for i, v := range vertices {
		if skip != nil && skip(i) {
			continue
		}
		n, tan, bit := v3(v.Normal), v3(v.Tangent), v3(v.Bitangent)
		assert.InDelta(t, 1, tan.Length(), tolerance, "vertex %d |tangent|", i)
		assert.InDelta(t, 1, bit.Length(), tolerance, "vertex %d |bitangent|", i)
		assert.InDelta(t, 0, tan.Dot(n), tolerance, "vertex %d tangent.normal", i)
		assert.InDelta(t, 0, bit.Dot(n), tolerance, "vertex %d bitangent.normal", i)
		assert.InDelta(t, 0, bit.Dot(tan), tolerance, "vertex %d bitangent.tangent", i)
	}
}
