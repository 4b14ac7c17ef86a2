package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaAndIsLeft(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}
	assert.Greater(t, Area2(a, b, c), 0.0)
	assert.True(t, IsLeft(a, b, c))
	assert.False(t, IsLeft(a, b, Point{0, -1}))
}

func TestCollinear(t *testing.T) {
	assert.True(t, Collinear(Point{0, 0}, Point{1, 0}, Point{2, 0}))
	assert.False(t, Collinear(Point{0, 0}, Point{1, 0}, Point{1, 1}))
}

func TestParallel(t *testing.T) {
	assert.True(t, Parallel(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}))
	assert.False(t, Parallel(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 2}))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(Point{0.5, 0}, Point{0, 0}, Point{1, 0}))
	assert.False(t, InRange(Point{1, 0}, Point{0, 0}, Point{1, 0})) // endpoint, not strict interior
	assert.False(t, InRange(Point{2, 0}, Point{0, 0}, Point{1, 0}))
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, SegmentsIntersect(Point{0, 0}, Point{1, 1}, Point{0, 1}, Point{1, 0}))
	assert.False(t, SegmentsIntersect(Point{0, 0}, Point{1, 0}, Point{0, 1}, Point{1, 1}))
}

func TestGreaterEqual(t *testing.T) {
	assert.True(t, GreaterEqual(1, 1))
	assert.True(t, GreaterEqual(2, 1))
	assert.False(t, GreaterEqual(1, 2))
}
