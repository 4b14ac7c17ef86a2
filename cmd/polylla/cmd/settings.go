package cmd

// BuildSettings mirrors the pipeline's configuration surface in a
// YAML-serializable form. `polylla config` writes a starter file in this
// shape; `polylla build --config` reads one back and flag values passed on
// the command line override it.
type BuildSettings struct {
	UseRegions       bool    `yaml:"use_regions"`
	SmoothMethod     string  `yaml:"smooth_method"`
	SmoothIterations int     `yaml:"smooth_iterations"`
	TargetLength     float64 `yaml:"target_length"`
}

// DefaultBuildSettings returns the configuration defaults: no regions, no
// smoothing, 50 iterations, target length auto-computed (0 here means "let
// the smoother compute it"; distmesh additionally requires an explicit
// positive value, enforced in build.go).
func DefaultBuildSettings() BuildSettings {
	return BuildSettings{
		UseRegions:       false,
		SmoothMethod:     "",
		SmoothIterations: 50,
		TargetLength:     0,
	}
}
