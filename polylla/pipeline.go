// Package polylla builds a polygonal mesh out of a triangular mesh: it
// labels the longest edge of every triangle, derives frontier edges from
// that labeling, walks frontier-to-frontier cycles into polygons, and
// repairs any polygon whose boundary touches itself at a barrier-edge tip.
package polylla

import "github.com/wkohlman/polylla-go/halfedge"

// Smoother relocates the vertices of mesh in place before polygon
// generation starts, returning the number of iterations it actually ran.
// smooth.Laplacian, smooth.LaplacianConstrained and smooth.DistMesh all
// implement this.
type Smoother interface {
	Smooth(mesh *halfedge.HalfEdgeMesh, useRegions bool) int
}

// Options configures a pipeline Run.
type Options struct {
	// UseRegions makes region boundaries act as frontier edges and
	// terminal-region edges act as seed edges, splitting the polygon mesh
	// along region boundaries.
	UseRegions bool

	// Smoother optionally relocates the output mesh's vertices before
	// labeling starts. Nil skips smoothing.
	Smoother Smoother
}

// Result is the output of a pipeline Run: the polygon mesh itself plus the
// bookkeeping the stats report needs.
type Result struct {
	Mesh *halfedge.HalfEdgeMesh

	// PolygonSeeds holds one representative half-edge per output polygon:
	// walking Next from PolygonSeeds[i] visits every half-edge on that
	// polygon's boundary.
	PolygonSeeds []int

	NumFrontierEdges int
	SmoothIterations int
	Repair           RepairCounters

	Context *BuildContext
}

// Run executes the full Polylla pipeline against input, producing the
// polygon mesh in a clone of input. input is never mutated: smoothing, like
// traversal and repair, touches only the clone, so the serialized output
// coordinates reflect the smoothed positions while every labeling phase and
// every topology/edge-length query keeps reading the pristine input.
func Run(input *halfedge.HalfEdgeMesh, opts Options) *Result {
	ctx := NewBuildContext(true)

	output := input.Clone()

	smoothIterations := 0
	if opts.Smoother != nil {
		ctx.StartTimer(TimerSmooth)
		smoothIterations = opts.Smoother.Smooth(output, opts.UseRegions)
		ctx.StopTimer(TimerSmooth)
		ctx.Progressf("smoothed mesh in %d iterations", smoothIterations)
	}

	ctx.StartTimer(TimerLabelMaxEdges)
	maxEdges := LabelMaxEdges(input)
	ctx.StopTimer(TimerLabelMaxEdges)

	ctx.StartTimer(TimerLabelFrontierEdges)
	frontierEdges, nFrontier := LabelFrontierEdges(input, maxEdges, opts.UseRegions)
	ctx.StopTimer(TimerLabelFrontierEdges)

	ctx.StartTimer(TimerLabelSeedEdges)
	seedEdges := CollectSeedEdges(input, maxEdges, opts.UseRegions)
	ctx.StopTimer(TimerLabelSeedEdges)

	var counters RepairCounters
	var polygonSeeds []int
	seedBetMark := NewBitSet(input.NumHalfEdges())

	ctx.StartTimer(TimerTraversalAndRepair)
	for _, e := range seedEdges {
		ctx.StartTimer(TimerTraversal)
		seed := travelTriangles(input, output, frontierEdges, e)
		ctx.StopTimer(TimerTraversal)

		if !hasBarrierEdgeTip(output, seed) {
			polygonSeeds = append(polygonSeeds, seed)
			continue
		}

		ctx.StartTimer(TimerRepair)
		barrierEdgeTipRepair(input, output, frontierEdges, seedBetMark, seed, &polygonSeeds, &counters)
		ctx.StopTimer(TimerRepair)
	}
	ctx.StopTimer(TimerTraversalAndRepair)

	nFrontier += counters.FrontierEdgesAdded
	ctx.Progressf("generated %d polygons, %d frontier edges, %d barrier-edge tips",
		len(polygonSeeds), nFrontier/2, counters.BarrierEdgeTips)

	return &Result{
		Mesh:             output,
		PolygonSeeds:     polygonSeeds,
		NumFrontierEdges: nFrontier / 2,
		SmoothIterations: smoothIterations,
		Repair:           counters,
		Context:          ctx,
	}
}
