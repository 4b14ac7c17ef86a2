package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wkohlman/polylla-go/halfedge"
	"github.com/wkohlman/polylla-go/polylla"
)

func unitSquare(t *testing.T) *halfedge.HalfEdgeMesh {
	t.Helper()
	points := []halfedge.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	faces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	m, err := halfedge.NewFromFaces(points, faces, nil)
	assert.NoError(t, err)
	return m
}

func TestBuildCountersMatchResult(t *testing.T) {
	m := unitSquare(t)
	result := polylla.Run(m, polylla.Options{})

	report := Build(m, result)

	assert.Equal(t, len(result.PolygonSeeds), report.NPolygons)
	assert.Equal(t, result.NumFrontierEdges, report.NFrontierEdges)
	assert.Equal(t, result.Repair.BarrierEdgeTips, report.NBarrierEdgeTips)
	assert.Equal(t, m.NumHalfEdges(), report.NHalfEdges)
	assert.Equal(t, m.NumFaces(), report.NFaces)
	assert.Equal(t, m.NumVertices(), report.NVertices)
	assert.Equal(t, result.Repair.PolygonsRepaired, report.NPolygonsToRepair)
	assert.Equal(t, result.Repair.PolygonsAddedAfterRepair, report.NPolygonsAddedAfterRepair)
	assert.Equal(t, result.SmoothIterations, report.NSmoothIterations)
}

func TestBuildGeneratePolygonalMeshIsSumOfPhases(t *testing.T) {
	m := unitSquare(t)
	result := polylla.Run(m, polylla.Options{})

	report := Build(m, result)

	assert.InDelta(t, report.LabelTotal+report.TraversalAndRepair+report.Smooth,
		report.GeneratePolygonalMesh, 1e-9)
	assert.InDelta(t, report.LabelMaxEdges+report.LabelFrontierEdges+report.LabelSeedEdges,
		report.LabelTotal, 1e-9)
}

func TestBuildMemoryTotalIsSumOfParts(t *testing.T) {
	m := unitSquare(t)
	result := polylla.Run(m, polylla.Options{})

	report := Build(m, result)

	sum := report.MaxEdges + report.FrontierEdges + report.SeedEdges +
		report.SeedBetMark + report.TriangleList + report.MeshInput + report.MeshOutput
	assert.Equal(t, sum, report.Total)
	assert.Greater(t, report.MeshInput, int64(0))
	assert.Greater(t, report.MeshOutput, int64(0))
}

func TestReportToJSONIsFlatAndDeterministic(t *testing.T) {
	m := unitSquare(t)
	result := polylla.Run(m, polylla.Options{})
	report := Build(m, result)

	out1, err := report.ToJSON()
	assert.NoError(t, err)
	out2, err := report.ToJSON()
	assert.NoError(t, err)
	assert.Equal(t, out1, out2, "identical reports must marshal byte-identically")

	var flat map[string]interface{}
	assert.NoError(t, json.Unmarshal(out1, &flat))
	assert.Contains(t, flat, "n_polygons")
	assert.Contains(t, flat, "time_to_label_total")
	assert.Contains(t, flat, "memory_total")
	// Fields from all three embedded structs land in one flat object, not
	// nested under "Counters"/"Timings"/"Memory" keys.
	assert.NotContains(t, flat, "Counters")
}
