// Package stats turns a polylla.Result into the flat JSON statistics report
// written alongside the OFF mesh: polygon/edge counters, per-phase timings
// and a coarse memory accounting of the structures the pipeline allocated.
package stats

import (
	"encoding/json"

	"github.com/wkohlman/polylla-go/halfedge"
	"github.com/wkohlman/polylla-go/polylla"
)

// Counters holds the polygon-mesh size and repair counters reported in the
// JSON stats object, in the exact field order the report is emitted in.
type Counters struct {
	NPolygons                 int `json:"n_polygons"`
	NFrontierEdges            int `json:"n_frontier_edges"`
	NBarrierEdgeTips          int `json:"n_barrier_edge_tips"`
	NHalfEdges                int `json:"n_half_edges"`
	NFaces                    int `json:"n_faces"`
	NVertices                 int `json:"n_vertices"`
	NPolygonsToRepair         int `json:"n_polygons_to_repair"`
	NPolygonsAddedAfterRepair int `json:"n_polygons_added_after_repair"`
	NSmoothIterations         int `json:"n_smooth_iterations"`
}

// Timings holds the millisecond durations of each pipeline phase, plus the
// two derived totals (LabelTotal, GeneratePolygonalMesh).
type Timings struct {
	LabelMaxEdges         float64 `json:"time_to_label_max_edges"`
	LabelFrontierEdges    float64 `json:"time_to_label_frontier_edges"`
	LabelSeedEdges        float64 `json:"time_to_label_seed_edges"`
	LabelTotal            float64 `json:"time_to_label_total"`
	TraversalAndRepair    float64 `json:"time_to_traversal_and_repair"`
	Traversal             float64 `json:"time_to_traversal"`
	Repair                float64 `json:"time_to_repair"`
	Smooth                float64 `json:"time_to_smooth"`
	GeneratePolygonalMesh float64 `json:"time_to_generate_polygonal_mesh"`
}

// Memory holds a coarse byte-size accounting of the pipeline's auxiliary
// bitsets and of the input/output meshes, plus the grand total.
type Memory struct {
	MaxEdges      int64 `json:"memory_max_edges"`
	FrontierEdges int64 `json:"memory_frontier_edge"`
	SeedEdges     int64 `json:"memory_seed_edges"`
	SeedBetMark   int64 `json:"memory_seed_bet_mark"`
	TriangleList  int64 `json:"memory_triangle_list"`
	MeshInput     int64 `json:"memory_mesh_input"`
	MeshOutput    int64 `json:"memory_mesh_output"`
	Total         int64 `json:"memory_total"`
}

// Report is the full JSON stats object: counters, timings and memory
// accounting for one pipeline Run.
type Report struct {
	Counters
	Timings
	Memory
}

// bitSetBytes estimates a BitSet's footprint as one byte per bit, matching
// its unpacked []bool representation.
func bitSetBytes(n int) int64 { return int64(n) }

// Build assembles a Report from the result of a polylla.Run and the input
// mesh it was run against (input and result.Mesh are the pipeline's two
// half-edge meshes: the pristine triangulation and the polygon mesh clone).
func Build(input *halfedge.HalfEdgeMesh, result *polylla.Result) Report {
	ctx := result.Context

	nHalfEdges := input.NumHalfEdges()
	nPolygonsToRepair := result.Repair.PolygonsRepaired
	nPolygonsAddedAfterRepair := result.Repair.PolygonsAddedAfterRepair

	counters := Counters{
		NPolygons:                 len(result.PolygonSeeds),
		NFrontierEdges:            result.NumFrontierEdges,
		NBarrierEdgeTips:          result.Repair.BarrierEdgeTips,
		NHalfEdges:                nHalfEdges,
		NFaces:                    input.NumFaces(),
		NVertices:                 input.NumVertices(),
		NPolygonsToRepair:         nPolygonsToRepair,
		NPolygonsAddedAfterRepair: nPolygonsAddedAfterRepair,
		NSmoothIterations:         result.SmoothIterations,
	}

	labelTotal := ctx.AccumulatedMillis(polylla.TimerLabelMaxEdges) +
		ctx.AccumulatedMillis(polylla.TimerLabelFrontierEdges) +
		ctx.AccumulatedMillis(polylla.TimerLabelSeedEdges)
	smoothMillis := ctx.AccumulatedMillis(polylla.TimerSmooth)
	traversalAndRepairMillis := ctx.AccumulatedMillis(polylla.TimerTraversalAndRepair)

	timings := Timings{
		LabelMaxEdges:         ctx.AccumulatedMillis(polylla.TimerLabelMaxEdges),
		LabelFrontierEdges:    ctx.AccumulatedMillis(polylla.TimerLabelFrontierEdges),
		LabelSeedEdges:        ctx.AccumulatedMillis(polylla.TimerLabelSeedEdges),
		LabelTotal:            labelTotal,
		TraversalAndRepair:    traversalAndRepairMillis,
		Traversal:             ctx.AccumulatedMillis(polylla.TimerTraversal),
		Repair:                ctx.AccumulatedMillis(polylla.TimerRepair),
		Smooth:                smoothMillis,
		GeneratePolygonalMesh: labelTotal + traversalAndRepairMillis + smoothMillis,
	}

	meshInputBytes := input.SizeBytes()
	meshOutputBytes := result.Mesh.SizeBytes()
	maxEdgesBytes := bitSetBytes(nHalfEdges)
	frontierEdgesBytes := bitSetBytes(nHalfEdges)
	seedEdgesBytes := int64(len(result.PolygonSeeds)+nPolygonsAddedAfterRepair) * 8
	seedBetMarkBytes := bitSetBytes(nHalfEdges)
	triangleListBytes := int64(result.Repair.FrontierEdgesAdded) * 8

	memory := Memory{
		MaxEdges:      maxEdgesBytes,
		FrontierEdges: frontierEdgesBytes,
		SeedEdges:     seedEdgesBytes,
		SeedBetMark:   seedBetMarkBytes,
		TriangleList:  triangleListBytes,
		MeshInput:     meshInputBytes,
		MeshOutput:    meshOutputBytes,
		Total: maxEdgesBytes + frontierEdgesBytes + seedEdgesBytes + seedBetMarkBytes +
			triangleListBytes + meshInputBytes + meshOutputBytes,
	}

	return Report{Counters: counters, Timings: timings, Memory: memory}
}

// ToJSON renders the report as an indented JSON object. Struct field order
// above is explicit and fixed, so two reports built from identical input and
// configuration marshal to byte-identical output.
func (r Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
