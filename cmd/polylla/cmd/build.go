package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wkohlman/polylla-go/halfedge"
	"github.com/wkohlman/polylla-go/meshio"
	"github.com/wkohlman/polylla-go/polylla"
	"github.com/wkohlman/polylla-go/smooth"
	"github.com/wkohlman/polylla-go/stats"
)

var (
	offFlag          bool
	neighFlag        bool
	eleFlag          bool
	regionFlag       bool
	smoothFlag       string
	iterationsFlag   int
	targetLengthFlag float64
	outputFlag       string
	aleFlag          bool
	objFlag          bool
	buildConfigFlag  string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build FILES...",
	Short: "build a polygonal mesh from a triangulation",
	Long: `Build a polygonal mesh from a triangulation given as one of three
interchangeable input formats:

  --off              a single .off file
  --neigh            a .node/.ele/.neigh triple (twins from the neighbor table)
  --ele              a .node/.ele pair (twins derived by hashing vertex pairs)

Always writes <output>.json (pipeline statistics) and <output>.off (the
polygon mesh). --ale and --obj opt into two supplemental writers.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&offFlag, "off", false, "use an OFF file as input")
	buildCmd.Flags().BoolVar(&neighFlag, "neigh", false, "use .node/.ele/.neigh files as input")
	buildCmd.Flags().BoolVar(&eleFlag, "ele", false, "use .node/.ele files as input (no .neigh)")
	buildCmd.Flags().BoolVar(&regionFlag, "region", false, "process the triangulation considering regions")
	buildCmd.Flags().StringVar(&smoothFlag, "smooth", "", "smoothing method: laplacian, laplacian-edge-ratio, distmesh")
	buildCmd.Flags().IntVar(&iterationsFlag, "iterations", 50, "number of smoothing iterations")
	buildCmd.Flags().Float64Var(&targetLengthFlag, "target-length", 0, "target edge length for distmesh method")
	buildCmd.Flags().StringVar(&outputFlag, "output", "", "output file base name (default: derived from input)")
	buildCmd.Flags().BoolVar(&aleFlag, "ale", false, "also write the ALE domain-description format")
	buildCmd.Flags().BoolVar(&objFlag, "obj", false, "also write a debug OBJ export")
	buildCmd.Flags().StringVar(&buildConfigFlag, "config", "", "build settings YAML file (flags override its values)")
}

func runBuild(cmd *cobra.Command, args []string) {
	settings := DefaultBuildSettings()
	if buildConfigFlag != "" {
		check(unmarshalYAMLFile(buildConfigFlag, &settings))
	}
	if cmd.Flags().Changed("region") {
		settings.UseRegions = regionFlag
	}
	if cmd.Flags().Changed("smooth") {
		settings.SmoothMethod = smoothFlag
	}
	if cmd.Flags().Changed("iterations") {
		settings.SmoothIterations = iterationsFlag
	}
	if cmd.Flags().Changed("target-length") {
		settings.TargetLength = targetLengthFlag
	}

	inputFiles, outputBase, err := resolveInput(args)
	check(err)
	if outputFlag != "" {
		outputBase = outputFlag
	}

	check(validateSettings(settings))

	smoother, err := buildSmoother(settings)
	check(err)

	mesh, err := loadMesh(inputFiles)
	check(err)

	result := polylla.Run(mesh, polylla.Options{
		UseRegions: settings.UseRegions,
		Smoother:   smoother,
	})

	report := stats.Build(mesh, result)
	jsonBytes, err := report.ToJSON()
	check(err)
	check(os.WriteFile(outputBase+".json", jsonBytes, 0o644))
	fmt.Printf("output json in %s.json\n", outputBase)

	offFile, err := os.Create(outputBase + ".off")
	check(err)
	err = meshio.WriteOFF(offFile, result.Mesh, result.PolygonSeeds, settings.UseRegions, result.NumFrontierEdges)
	offFile.Close()
	check(err)
	fmt.Printf("output off in %s.off\n", outputBase)

	if aleFlag {
		aleFile, err := os.Create(outputBase + ".ale")
		check(err)
		err = meshio.WriteALE(aleFile, mesh, result.Mesh, result.PolygonSeeds)
		aleFile.Close()
		check(err)
		fmt.Printf("output ale in %s.ale\n", outputBase)
	}

	if objFlag {
		objFile, err := os.Create(outputBase + ".obj")
		check(err)
		err = meshio.WriteOBJ(objFile, result.Mesh, result.PolygonSeeds)
		objFile.Close()
		check(err)
		fmt.Printf("output obj in %s.obj\n", outputBase)
	}
}

// inputFiles groups the three possible loader argument shapes.
type inputFiles struct {
	mode  string // "off", "neigh" or "ele"
	off   string
	node  string
	ele   string
	neigh string
}

// resolveInput matches --off/--neigh/--ele against the positional file
// arguments: find each required file by extension among the arguments, and
// derive the output base name from the first one when --output isn't given.
func resolveInput(args []string) (inputFiles, string, error) {
	modes := 0
	if offFlag {
		modes++
	}
	if neighFlag {
		modes++
	}
	if eleFlag {
		modes++
	}
	if modes == 0 {
		return inputFiles{}, "", fmt.Errorf("no input type specified: pass one of --off, --neigh, --ele")
	}
	if modes > 1 {
		return inputFiles{}, "", fmt.Errorf("multiple input types specified: pass only one of --off, --neigh, --ele")
	}

	byExt := func(ext string) string {
		for _, a := range args {
			if strings.EqualFold(filepath.Ext(a), "."+ext) {
				return a
			}
		}
		return ""
	}

	switch {
	case offFlag:
		off := byExt("off")
		if off == "" {
			return inputFiles{}, "", fmt.Errorf("no .off file found in arguments")
		}
		return inputFiles{mode: "off", off: off}, strings.TrimSuffix(off, filepath.Ext(off)), nil

	case neighFlag:
		node, ele, neigh := byExt("node"), byExt("ele"), byExt("neigh")
		if node == "" || ele == "" || neigh == "" {
			return inputFiles{}, "", fmt.Errorf("missing required files (.node, .ele, .neigh)")
		}
		return inputFiles{mode: "neigh", node: node, ele: ele, neigh: neigh},
			strings.TrimSuffix(node, filepath.Ext(node)), nil

	default: // eleFlag
		node, ele := byExt("node"), byExt("ele")
		if node == "" || ele == "" {
			return inputFiles{}, "", fmt.Errorf("missing required files (.node, .ele)")
		}
		return inputFiles{mode: "ele", node: node, ele: ele},
			strings.TrimSuffix(node, filepath.Ext(node)), nil
	}
}

func loadMesh(in inputFiles) (*halfedge.HalfEdgeMesh, error) {
	switch in.mode {
	case "off":
		return meshio.LoadOFF(in.off)
	case "neigh":
		return meshio.ReadNodeEleNeigh(in.node, in.ele, in.neigh)
	default:
		return meshio.ReadNodeEle(in.node, in.ele)
	}
}

// validateSettings rejects unknown smoothing methods, DistMesh with no
// explicit positive target length, and non-positive iteration counts.
func validateSettings(s BuildSettings) error {
	switch s.SmoothMethod {
	case "", "laplacian", "laplacian-edge-ratio", "distmesh":
	default:
		return fmt.Errorf("invalid smoothing method %q: valid methods are laplacian, laplacian-edge-ratio, distmesh", s.SmoothMethod)
	}
	if s.SmoothMethod == "distmesh" && s.TargetLength <= 0 {
		return fmt.Errorf("target length must be positive for distmesh method, got %v", s.TargetLength)
	}
	if s.SmoothIterations <= 0 {
		return fmt.Errorf("iterations must be a positive number, got %d", s.SmoothIterations)
	}
	return nil
}

func buildSmoother(s BuildSettings) (polylla.Smoother, error) {
	switch s.SmoothMethod {
	case "":
		return nil, nil
	case "laplacian":
		return smooth.Laplacian{Iterations: s.SmoothIterations}, nil
	case "laplacian-edge-ratio":
		return smooth.LaplacianConstrained{Iterations: s.SmoothIterations, Measure: smooth.EdgeRatio{}}, nil
	case "distmesh":
		return smooth.DistMesh{Iterations: s.SmoothIterations, TargetLength: s.TargetLength}, nil
	default:
		return nil, fmt.Errorf("invalid smoothing method %q", s.SmoothMethod)
	}
}
