package polylla

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wkohlman/polylla-go/halfedge"
)

// diamondFan builds four triangles sharing a common interior vertex v (index
// 0) at the center of a diamond with points p0=(1,0), p1=(0,1), p2=(-1,0),
// p3=(0,-1): v has degree 4, and every spoke and boundary half-edge index is
// a fixed, hand-derivable offset from the face construction order, which the
// traversal and repair tests rely on:
//
//	face 0 {v,p0,p1}: he 0=v->p0, 1=p0->p1, 2=p1->v
//	face 1 {v,p1,p2}: he 3=v->p1, 4=p1->p2, 5=p2->v
//	face 2 {v,p2,p3}: he 6=v->p2, 7=p2->p3, 8=p3->v
//	face 3 {v,p3,p0}: he 9=v->p3, 10=p3->p0, 11=p0->v
func diamondFan(t *testing.T) *halfedge.HalfEdgeMesh {
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
