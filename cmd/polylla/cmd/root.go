package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "polylla",
	Short: "build polygonal meshes from triangulations",
	Long: `polylla generates a polygonal mesh from an input triangular mesh by
merging adjacent triangles across non-maximal edges, producing arbitrary-
shape polygons whose union tiles the triangulated domain.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
