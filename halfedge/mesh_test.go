package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// unitSquare builds the two-triangle unit square: vertices
// (0,0),(1,0),(0,1),(1,1) split along the diagonal (1,0)->(0,1).
func unitSquare(t *testing.T) *HalfEdgeMesh {
	t.Helper()
	points := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	faces := [][3]int{
		{0, 1, 2}, // triangle A: (0,0)-(1,0)-(0,1)
		{1, 3, 2}, // triangle B: (1,0)-(1,1)-(0,1)
	}
	mesh, err := NewFromFaces(points, faces, nil)
	assert.NoError(t, err)
	return mesh
}

func TestNewFromFacesSingleTriangle(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}}
	faces := [][3]int{{0, 1, 2}}

	mesh, err := NewFromFaces(points, faces, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, mesh.NumVertices())
	assert.Equal(t, 2, mesh.NumFaces()) // 1 interior + 1 border
	assert.Equal(t, 6, mesh.NumHalfEdges())

	for h := 0; h < 3; h++ {
		assert.True(t, mesh.IsInteriorFace(h))
		assert.True(t, mesh.IsBorderFace(mesh.Twin(h)))
		assert.Equal(t, h, mesh.Twin(mesh.Twin(h)))
		assert.Equal(t, h, mesh.Next(mesh.Prev(h)))
	}
	for v := 0; v < 3; v++ {
		assert.True(t, mesh.IsBorderVertex(v))
		assert.Equal(t, 2, mesh.Degree(v))
	}
}

func TestTwinSymmetryAndNavigation(t *testing.T) {
	mesh := unitSquare(t)

	for h := 0; h < mesh.NumHalfEdges(); h++ {
		tw := mesh.Twin(h)
		assert.Equal(t, h, mesh.Twin(tw), "twin(twin(h)) == h")
		assert.Equal(t, h, mesh.Next(mesh.Prev(h)), "next(prev(h)) == h")
	}

	// The diagonal is shared between the two interior triangles, so it's
	// the only interior/interior twin pair; everything else borders.
	interiorTwins := 0
	for h := 0; h < 6; h++ {
		if mesh.IsInteriorFace(mesh.Twin(h)) {
			interiorTwins++
		}
	}
	assert.Equal(t, 2, interiorTwins) // the diagonal, counted from both sides
}

func TestCWCCWAreInverses(t *testing.T) {
	mesh := unitSquare(t)

	for v := 0; v < mesh.NumVertices(); v++ {
		e := mesh.EdgeOfVertex(v)
		assert.GreaterOrEqual(t, e, 0)
		assert.Equal(t, e, mesh.CCWEdgeToVertex(mesh.CWEdgeToVertex(e)))
		assert.Equal(t, e, mesh.CWEdgeToVertex(mesh.CCWEdgeToVertex(e)))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	mesh := unitSquare(t)
	clone := mesh.Clone()

	clone.SetNext(0, 99)
	clone.SetPointX(0, 42)

	assert.NotEqual(t, 99, mesh.Next(0))
	assert.NotEqual(t, float64(42), mesh.GetPointX(0))
}

func TestNewFromNeighborTable(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	faces := [][3]int{
		{0, 1, 2},
		{1, 3, 2},
	}
	// Triangle 0's edge opposite vertex-slot 0 (between local verts 1,2 ->
	// global 1,2) borders triangle 1; Triangle 1's edge opposite
	// vertex-slot 1 (between local verts 2,0 -> global 2,1) borders
	// triangle 0.
	neighbors := [][3]int{
		{1, -1, -1},
		{-1, 0, -1},
	}

	mesh, err := NewFromNeighborTable(points, faces, neighbors, nil)
	assert.NoError(t, err)
	assert.Equal(t, 10, mesh.NumHalfEdges()) // 6 interior + 4 border

	diagonalShared := false
	for h := 0; h < 6; h++ {
		if mesh.IsInteriorFace(h) && mesh.IsInteriorFace(mesh.Twin(h)) {
			diagonalShared = true
		}
	}
	assert.True(t, diagonalShared)
}

func TestNonManifoldDetected(t *testing.T) {
	// Three triangles sharing the same edge (0,1) is non-manifold.
	points := []Point{{0, 0}, {1, 0}, {0, 1}, {0, -1}, {-1, 0}}
	faces := [][3]int{
		{0, 1, 2},
		{1, 0, 3},
		{0, 1, 4},
	}
	_, err := NewFromFaces(points, faces, nil)
	assert.ErrorIs(t, err, ErrNonManifold)
}

func TestDanglingVertexReference(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}}
	faces := [][3]int{{0, 1, 5}}
	_, err := NewFromFaces(points, faces, nil)
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestRegionFace(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}}
	faces := [][3]int{{0, 1, 2}}
	mesh, err := NewFromFaces(points, faces, []int{7})
	assert.NoError(t, err)
	assert.Equal(t, 7, mesh.RegionFace(mesh.IndexFace(0)))
}
