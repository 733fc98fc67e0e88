package vertexdata

import (
	"testing"

	"github.com/Faultbox/shapegen/pkg/math"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTorusData_Counts(t *testing.T) {
	const nTorus, nTube = 16, 8
	m, err := CreateTorusData(2, 0.5, nTorus, nTube)
	require.NoError(t, err)

	n := (nTorus + 1) * (nTube + 1)
	assert.Len(t, m.Positions, n)
	assert.Len(t, m.Normals, n)
	assert.Len(t, m.UVs, n)
	assert.Len(t, m.Indices, nTorus*nTube*6)
	assert.Len(t, m.WireframeIndices, nTorus*nTube*4)
	assert.NoError(t, m.Validate())
}

func TestTorusPosition(t *testing.T) {
	tests := []struct {
		u, v math.Deg
		want [3]float32
	}{
		{0, 0, [3]float32{3, 0, 0}},
		{0, 90, [3]float32{2, 1, 0}},
		{90, 0, [3]float32{0, 0, -3}},
		{0, 180, [3]float32{1, 0, 0}},
	}
	for _, tt := range tests {
		got := TorusPosition(2, 1, tt.u, tt.v)
		assert.InDelta(t, 0, v3(got).Distance(v3(tt.want)), tolerance, "TorusPosition(u=%v, v=%v) = %v", tt.u, tt.v, got)
	}
}

func TestCreateTorusData_NormalsMatchAnalytic(t *testing.T) {
	const R, r = 3, 1
	const nTorus, nTube = 24, 12
	m, err := CreateTorusData(R, r, nTorus, nTube)
	require.NoError(t, err)

	for i := 0; i <= nTorus; i++ {
		u := math.Step(i, nTorus, 360)
		for j := 0; j <= nTube; j++ {
			v := math.Step(j, nTube, 360)
			want := math.Vec3{X: v.Cos() * u.Cos(), Y: v.Sin(), Z: -v.Cos() * u.Sin()}
			got := v3(m.Normals[j+i*(nTube+1)])
			assert.InDelta(t, 1, got.Dot(want), 1e-3, "normal (%d,%d) = %v, want %v", i, j, got, want)
		}
	}
}

func TestCreateTorusData_ZeroTube(t *testing.T) {
	const R = 2
	m, err := CreateTorusData(R, 0, 12, 6)
	require.NoError(t, err)

	for i, p := range m.Positions {
		assert.Equal(t, float32(0), p[1], "vertex %d leaves the XZ plane", i)
		assert.InDelta(t, R, math32.Hypot(p[0], p[2]), tolerance, "vertex %d", i)
		assert.True(t, v3(m.Normals[i]).IsFinite(), "normal %d = %v", i, m.Normals[i])
	}
}

func TestCreateTorusData_Tangents(t *testing.T) {
	m, err := CreateTorusData(1.5, 0.5, 20, 10)
	require.NoError(t, err)

	vertices, err := CreateTangentData(m.Positions, m.Normals, m.UVs, m.Indices)
	require.NoError(t, err)
	assertFrames(t, vertices, nil)
}

func TestCreateTorusData_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		rTorus, rTube float32
		nTorus, nTube uint16
		want          error
	}{
		{"zero ring", 0, 0.5, 8, 8, ErrInvalidRadius},
		{"negative tube", 1, -0.5, 8, 8, ErrInvalidRadius},
		{"zero ring segments", 1, 0.5, 0, 8, ErrInvalidSegments},
		{"zero tube segments", 1, 0.5, 8, 0, ErrInvalidSegments},
		{"too many vertices", 1, 0.5, 1000, 100, ErrTooManyVertices},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateTorusData(tt.rTorus, tt.rTube, tt.nTorus, tt.nTube)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
