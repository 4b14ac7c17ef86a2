package smooth

import "github.com/wkohlman/polylla-go/halfedge"

// EdgeRatio scores a polygon as the ratio of its shortest to its longest
// boundary edge: 1.0 for a regular polygon, approaching 0 as it degenerates.
// A strictly greater ratio is considered better; constrained smoothing
// reverts a move only when the original average was strictly better, so a
// move whose average ties is kept.
type EdgeRatio struct{}

var _ Measure = EdgeRatio{}

// EvalFace returns min(edge length) / max(edge length) over the polygon
// boundary starting at seed.
func (EdgeRatio) EvalFace(mesh *halfedge.HalfEdgeMesh, seed int) float64 {
	maxEdge, minEdge := -1.0, -1.0
	for e := seed; ; {
		length := mesh.Distance(e)
		if maxEdge < 0 {
			maxEdge = length
			minEdge = length
		}
		if length > maxEdge {
			maxEdge = length
		}
		if length < minEdge {
			minEdge = length
		}
		e = mesh.Next(e)
		if e == seed {
			break
		}
	}
	return minEdge / maxEdge
}

// IsBetter reports whether a is strictly greater than b.
func (EdgeRatio) IsBetter(a, b float64) bool {
	return a > b
}
