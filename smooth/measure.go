// Package smooth relocates the vertices of a polygon mesh to improve its
// element quality before Polylla's labeling and traversal phases run.
package smooth

import "github.com/wkohlman/polylla-go/halfedge"

// Measure scores a polygon, identified by one of its boundary half-edges,
// and compares two scores. Laplacian-constrained smoothing evaluates a
// vertex's incident polygons before and after a candidate move and reverts the
// move when Measure says the original score was better.
type Measure interface {
	// EvalFace scores the polygon whose boundary includes seed.
	EvalFace(mesh *halfedge.HalfEdgeMesh, seed int) float64

	// IsBetter reports whether a is a better score than b.
	IsBetter(a, b float64) bool
}
