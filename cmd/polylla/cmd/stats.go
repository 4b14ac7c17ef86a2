package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wkohlman/polylla-go/stats"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats REPORT.json",
	Short: "print a summary of a polylla stats report",
	Long: `Read a JSON stats report produced by 'polylla build' and print a
human-readable summary of the polygon/edge counters, timings and memory
accounting on standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  doStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

func doStats(cmd *cobra.Command, args []string) {
	buf, err := os.ReadFile(args[0])
	check(err)

	var report stats.Report
	check(json.Unmarshal(buf, &report))

	fmt.Printf("polygons             : %d\n", report.NPolygons)
	fmt.Printf("frontier edges       : %d\n", report.NFrontierEdges)
	fmt.Printf("barrier-edge tips    : %d\n", report.NBarrierEdgeTips)
	fmt.Printf("half-edges           : %d\n", report.NHalfEdges)
	fmt.Printf("faces                : %d\n", report.NFaces)
	fmt.Printf("vertices             : %d\n", report.NVertices)
	fmt.Printf("polygons repaired    : %d\n", report.NPolygonsToRepair)
	fmt.Printf("polygons post-repair : %d\n", report.NPolygonsAddedAfterRepair)
	fmt.Printf("smoothing iterations : %d\n", report.NSmoothIterations)
	fmt.Printf("total build time     : %.3f ms\n", report.GeneratePolygonalMesh)
	fmt.Printf("total memory         : %d bytes\n", report.Total)
}
