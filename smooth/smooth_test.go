package smooth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wkohlman/polylla-go/halfedge"
)

// symmetricFan builds a diamond of four triangles around an interior vertex
// v (index 0) whose four neighbors are placed symmetrically at (1,0),
// (0,1), (-1,0) and (0,-1): the sum of neighbor offsets from v is exactly
// zero, so a Laplacian relaxation must leave v in place.
func symmetricFan(t *testing.T) *halfedge.HalfEdgeMesh {
	t.Helper()
	points := []halfedge.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
	}
	faces := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
		{0, 4, 1},
	}
	m, err := halfedge.NewFromFaces(points, faces, nil)
	assert.NoError(t, err)
	return m
}

func TestLaplacianLeavesSymmetricVertexInPlace(t *testing.T) {
	m := symmetricFan(t)
	Laplacian{Iterations: 1}.Smooth(m, false)

	assert.InDelta(t, 0.0, m.GetPointX(0), 1e-9)
	assert.InDelta(t, 0.0, m.GetPointY(0), 1e-9)
}

func TestLaplacianSkipsBorderVertices(t *testing.T) {
	m := symmetricFan(t)
	before := [][2]float64{}
	for v := 1; v < m.NumVertices(); v++ {
		before = append(before, [2]float64{m.GetPointX(v), m.GetPointY(v)})
	}

	Laplacian{Iterations: 5}.Smooth(m, false)

	for i, v := 0, 1; v < m.NumVertices(); v, i = v+1, i+1 {
		assert.Equal(t, before[i][0], m.GetPointX(v))
		assert.Equal(t, before[i][1], m.GetPointY(v))
	}
}

func TestLaplacianSkipsRegionBoundaryVertices(t *testing.T) {
	points := []halfedge.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 1},
	}
	faces := [][3]int{
		{0, 1, 4},
		{1, 2, 4},
		{2, 3, 4},
		{3, 0, 4},
	}
	regions := []int{0, 0, 1, 1}
	m, err := halfedge.NewFromFaces(points, faces, regions)
	assert.NoError(t, err)

	cache := RegionBoundaryCache(m, true)
	assert.True(t, cache[4], "the center vertex touches both regions")

	before := m.GetPointX(4)
	Laplacian{Iterations: 3}.Smooth(m, true)
	assert.Equal(t, before, m.GetPointX(4))
}

func TestEdgeRatioEvalFaceSquare(t *testing.T) {
	points := []halfedge.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}}
	faces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	m, err := halfedge.NewFromFaces(points, faces, nil)
	assert.NoError(t, err)

	ratio := EdgeRatio{}.EvalFace(m, 0)
	assert.Greater(t, ratio, 0.0)
	assert.LessOrEqual(t, ratio, 1.0)
}

func TestEdgeRatioIsBetterStrict(t *testing.T) {
	r := EdgeRatio{}
	assert.True(t, r.IsBetter(0.9, 0.8))
	assert.False(t, r.IsBetter(0.8, 0.8), "ties must not count as better")
	assert.False(t, r.IsBetter(0.7, 0.8))
}

func TestDistMeshAutoTargetLengthConverges(t *testing.T) {
	m := symmetricFan(t)
	ran := DistMesh{Iterations: 10}.Smooth(m, false)
	assert.Greater(t, ran, 0)
	// The symmetric fan's center is already at its equilibrium distance
	// from every neighbor, so DistMesh must not move it either.
	assert.InDelta(t, 0.0, m.GetPointX(0), 1e-9)
	assert.InDelta(t, 0.0, m.GetPointY(0), 1e-9)
}

func TestIsValidMoveTrueForUndisturbedMesh(t *testing.T) {
	m := symmetricFan(t)
	assert.True(t, IsValidMove(m, 0))
}
