package polylla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wkohlman/polylla-go/halfedge"
)

func TestRunSingleTriangle(t *testing.T) {
	m := singleTriangle(t)
	res := Run(m, Options{})

	assert.Len(t, res.PolygonSeeds, 1)
	assert.Equal(t, 0, res.Repair.PolygonsRepaired)
	assert.Equal(t, 0, res.Repair.BarrierEdgeTips)

	vertices := PolygonVertices(res.Mesh, res.PolygonSeeds[0])
	assert.ElementsMatch(t, []int{0, 1, 2}, vertices)
}

func TestRunUnitSquareMergesAlongDiagonal(t *testing.T) {
	m := unitSquareTwoTriangles(t)
	res := Run(m, Options{})

	assert.Len(t, res.PolygonSeeds, 1, "the diagonal is a terminal edge, producing one polygon")
	assert.Equal(t, 0, res.Repair.BarrierEdgeTips)

	vertices := PolygonVertices(res.Mesh, res.PolygonSeeds[0])
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, vertices)
}

// stripOfFourTriangles builds a zigzag strip of four triangles whose shared
// edges all have length sqrt(5), realized as lattice vectors (±1,±2) so
// equal lengths compare bit-identical and the tie-break order
// (edge, next, prev) actually decides every max-edge choice:
//
//	face 0 {0,1,2}: sides 2, sqrt5, sqrt5 -> max is next (1->2)
//	face 1 {1,3,2}: sides sqrt5, 2, sqrt5 -> max is edge (1->3)
//	face 2 {3,1,4}: sides sqrt5, 2, sqrt5 -> max is edge (3->1)
//	face 3 {3,4,5}: sides sqrt5, sqrt5, 2 -> max is edge (3->4)
//
// Faces 1 and 2 both pick the shared edge 1-3, so it is the strip's only
// terminal edge; the other shared edges are max on exactly one side. Every
// interior edge ends up non-frontier and a single seed survives.
func stripOfFourTriangles(t *testing.T) *halfedge.HalfEdgeMesh {
	t.Helper()
	points := []halfedge.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2},
		{X: 3, Y: 2}, {X: 4, Y: 0}, {X: 5, Y: 2},
	}
	faces := [][3]int{
		{0, 1, 2},
		{1, 3, 2},
		{3, 1, 4},
		{3, 4, 5},
	}
	m, err := halfedge.NewFromFaces(points, faces, nil)
	assert.NoError(t, err)
	return m
}

func TestRunStripTieBreakProducesOnePolygon(t *testing.T) {
	m := stripOfFourTriangles(t)
	res := Run(m, Options{})

	assert.Len(t, res.PolygonSeeds, 1, "one terminal edge, one polygon covering the strip")
	assert.Equal(t, 0, res.Repair.BarrierEdgeTips)
	assert.Equal(t, 0, res.Repair.PolygonsRepaired)

	vertices := PolygonVertices(res.Mesh, res.PolygonSeeds[0])
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, vertices)
}

func TestRunRegionSplitsOutputMesh(t *testing.T) {
	points := []halfedge.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	faces := [][3]int{{0, 1, 2}, {1, 3, 2}}

	withoutRegions, err := halfedge.NewFromFaces(points, faces, nil)
	assert.NoError(t, err)
	resNoRegions := Run(withoutRegions, Options{UseRegions: false})
	assert.Len(t, resNoRegions.PolygonSeeds, 1)

	withRegions, err := halfedge.NewFromFaces(points, faces, []int{0, 1})
	assert.NoError(t, err)
	resRegions := Run(withRegions, Options{UseRegions: true})
	assert.GreaterOrEqual(t, len(resRegions.PolygonSeeds), 2, "region boundary forces a split")
}

// offCenterSmoother is a one-pass Laplacian stand-in implementing the
// Smoother interface, so this package's tests don't import smooth.
type offCenterSmoother struct{}

// offCenterFan is the diamond fan with its interior vertex displaced from
// the centroid of its neighbors, so one Laplacian pass has a non-zero move
// to make: the mean neighbor offset pulls vertex 0 from (0.25,0) back to
// the origin.
func offCenterFan(t *testing.T) *halfedge.HalfEdgeMesh {
	t.Helper()
	points := []halfedge.Point{
		{X: 0.25, Y: 0},
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

// Smooth relocates every eligible vertex to the mean of its neighbor
// offsets, once.
func (offCenterSmoother) Smooth(mesh *halfedge.HalfEdgeMesh, useRegions bool) int {
	for v := 0; v < mesh.NumVertices(); v++ {
		if mesh.IsBorderVertex(v) || mesh.EdgeOfVertex(v) < 0 {
			continue
		}
		eInit := mesh.EdgeOfVertex(v)
		x, y := 0.0, 0.0
		n := 0
		for e := eInit; ; {
			vNext := mesh.Target(e)
			x += mesh.GetPointX(vNext) - mesh.GetPointX(v)
			y += mesh.GetPointY(vNext) - mesh.GetPointY(v)
			n++
			e = mesh.CCWEdgeToVertex(e)
			if e == eInit {
				break
			}
		}
		mesh.SetPointX(v, mesh.GetPointX(v)+x/float64(n))
		mesh.SetPointY(v, mesh.GetPointY(v)+y/float64(n))
	}
	return 1
}

func TestRunSmootherTouchesOnlyOutputMesh(t *testing.T) {
	m := offCenterFan(t)
	res := Run(m, Options{Smoother: offCenterSmoother{}})

	assert.Equal(t, 1, res.SmoothIterations)

	// The input mesh stays pristine: labeling and traversal read it, and
	// callers keep using it for stats and exports after Run returns.
	assert.Equal(t, 0.25, m.GetPointX(0))
	assert.Equal(t, 0.0, m.GetPointY(0))

	// The clone carries the smoothed position.
	assert.InDelta(t, 0.0, res.Mesh.GetPointX(0), 1e-9)
	assert.InDelta(t, 0.0, res.Mesh.GetPointY(0), 1e-9)

	// Border vertices are untouched on both meshes.
	for v := 1; v < m.NumVertices(); v++ {
		assert.Equal(t, m.GetPointX(v), res.Mesh.GetPointX(v))
		assert.Equal(t, m.GetPointY(v), res.Mesh.GetPointY(v))
	}
}

func TestRunLabelsFromPristineInputWhenSmoothing(t *testing.T) {
	m := offCenterFan(t)

	without := Run(offCenterFan(t), Options{})
	with := Run(m, Options{Smoother: offCenterSmoother{}})

	// Labeling reads edge lengths from the input mesh, which smoothing
	// never changes, so the polygon decomposition is identical with and
	// without a smoother.
	assert.Equal(t, len(without.PolygonSeeds), len(with.PolygonSeeds))
	assert.Equal(t, without.PolygonSeeds, with.PolygonSeeds)
	assert.Equal(t, without.NumFrontierEdges, with.NumFrontierEdges)
}
