// Package geom implements the 2D geometric predicates the Polylla pipeline
// needs at a fixed tolerance: collinearity, parallelism, signed-area
// orientation, range containment and segment intersection.
package geom

import "math"

// Epsilon is the tolerance used by every predicate in this package.
const Epsilon = 1e-6

// Point is a planar coordinate pair.
type Point struct {
	X, Y float64
}

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// GreaterEqual reports whether a >= b within Epsilon.
func GreaterEqual(a, b float64) bool {
	return Equal(a, b) || a > b
}

// Area2 returns twice the signed area of the triangle (v0, v1, v2): positive
// when v0->v1->v2 turns left (counter-clockwise).
func Area2(v0, v1, v2 Point) float64 {
	return (v1.X-v0.X)*(v2.Y-v0.Y) - (v1.Y-v0.Y)*(v2.X-v0.X)
}

// IsLeft reports whether p lies strictly to the left of the directed line
// v0->v1.
func IsLeft(v0, v1, p Point) bool {
	return Area2(v0, v1, p) > 0
}

// Collinear reports whether v0, v1, v2 are collinear within Epsilon.
func Collinear(v0, v1, v2 Point) bool {
	return math.Abs(Area2(v0, v1, v2)) < Epsilon
}

// Parallel reports whether segment (v0,v1) is parallel to segment (v2,v3).
func Parallel(v0, v1, v2, v3 Point) bool {
	den := (v0.X-v1.X)*(v2.Y-v3.Y) - (v0.Y-v1.Y)*(v2.X-v3.X)
	return math.Abs(den) < Epsilon
}

// InRange reports whether p lies strictly between the endpoints of segment
// (v0, v1) along the x axis or along the y axis. For a point collinear with
// the segment this is strict containment in the segment's interior, including
// for horizontal and vertical segments; the endpoints themselves are excluded.
func InRange(p, v0, v1 Point) bool {
	return (math.Min(v0.X, v1.X) < p.X && p.X < math.Max(v0.X, v1.X)) ||
		(math.Min(v0.Y, v1.Y) < p.Y && p.Y < math.Max(v0.Y, v1.Y))
}

// SegmentsIntersect reports whether segment (v0,v1) properly intersects
// segment (v2,v3): the endpoints of each segment disagree on which side of
// the other segment's line they fall.
func SegmentsIntersect(v0, v1, v2, v3 Point) bool {
	return IsLeft(v0, v1, v2) != IsLeft(v0, v1, v3) && IsLeft(v2, v3, v0) != IsLeft(v2, v3, v1)
}
