// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reebskel/reeb"
	"github.com/katalvlaran/reebskel/sparse"
)

// Weight modes.
const (
	ModeDistance = "distance"
	ModeX        = "x"
	ModeY        = "y"
	ModeZ        = "z"
)

// Post-process modes.
const (
	PostAverage = "average"
	PostSmooth  = "smooth"
	PostSharpen = "sharpen"
)

// Solvers.
const (
	SolverCG       = "cg"
	SolverCholesky = "cholesky"
)

// Config holds every caller-tunable option of a run.
type Config struct {
	// Resolution is the number of bucket units after renormalization.
	Resolution int    `yaml:"resolution"`
	WeightMode string `yaml:"weight_mode"`

	UseHarmonicField bool `yaml:"use_harmonic_field"`

	// Filter thresholds are fractions of the base graph length.
	FilterInternalThreshold float64 `yaml:"filter_internal_threshold"`
	FilterExternalThreshold float64 `yaml:"filter_external_threshold"`
	UseSmartFilter          bool    `yaml:"use_smart_filter"`
	SmartThreshold          float64 `yaml:"smart_threshold"`
	FilterCycles            bool    `yaml:"filter_cycles"`
	// JoinThreshold is an absolute distance.
	JoinThreshold float64 `yaml:"join_threshold"`

	PostProcessPasses int    `yaml:"post_process_passes"`
	PostProcessMode   string `yaml:"post_process_mode"`
	// SharpenKernel holds the three taps of the sharpen mode. They are
	// divided by their sum when applied.
	SharpenKernel []float64 `yaml:"sharpen_kernel,flow"`

	// SymmetryAngleLimit is in degrees; 0 disables symmetry.
	SymmetryAngleLimit    float64 `yaml:"symmetry_angle_limit"`
	MultiResolutionLevels int     `yaml:"multi_resolution_levels"`

	Verify bool   `yaml:"verify"`
	Solver string `yaml:"solver"`
}

// DefaultConfig returns a working configuration for a distance field.
func DefaultConfig() Config {
	return Config{
		Resolution:            40,
		WeightMode:            ModeDistance,
		SmartThreshold:        0.5,
		FilterCycles:          true,
		PostProcessPasses:     1,
		PostProcessMode:       PostSmooth,
		SharpenKernel:         []float64{reeb.KernelSharpen.F1, reeb.KernelSharpen.F2, reeb.KernelSharpen.F3},
		SymmetryAngleLimit:    10,
		MultiResolutionLevels: 5,
		Verify:                true,
		Solver:                SolverCG,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("LoadConfig: %w", err)
	}
	defer f.Close()
	return DecodeConfig(f)
}

// DecodeConfig strictly decodes YAML from r over the defaults (unknown keys
// are errors) and validates the result.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("DecodeConfig: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("DecodeConfig: %w", err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as YAML.
func WriteConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("WriteConfig: %w", err)
	}
	return enc.Close()
}

// Validate reports the first out-of-range value, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	const method = "Validate"
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidConfig)
	}
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	if c.Resolution < 1 {
		return bad("resolution %d < 1", c.Resolution)
	}
	switch c.WeightMode {
	case ModeDistance, ModeX, ModeY, ModeZ:
	default:
		return bad("weight_mode %q", c.WeightMode)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"filter_internal_threshold", c.FilterInternalThreshold},
		{"filter_external_threshold", c.FilterExternalThreshold},
		{"join_threshold", c.JoinThreshold},
		{"symmetry_angle_limit", c.SymmetryAngleLimit},
	} {
		if !finite(f.v) || f.v < 0 {
			return bad("%s %g", f.name, f.v)
		}
	}
	if !finite(c.SmartThreshold) {
		return bad("smart_threshold %g", c.SmartThreshold)
	}
	if c.SymmetryAngleLimit > 180 {
		return bad("symmetry_angle_limit %g > 180", c.SymmetryAngleLimit)
	}
	if c.PostProcessPasses < 0 {
		return bad("post_process_passes %d", c.PostProcessPasses)
	}
	switch c.PostProcessMode {
	case PostAverage, PostSmooth:
	case PostSharpen:
		if len(c.SharpenKernel) != 3 {
			return bad("sharpen_kernel has %d taps, want 3", len(c.SharpenKernel))
		}
		if c.SharpenKernel[0]+c.SharpenKernel[1]+c.SharpenKernel[2] == 0 {
			return bad("sharpen_kernel sums to zero")
		}
	default:
		return bad("post_process_mode %q", c.PostProcessMode)
	}
	if c.MultiResolutionLevels < 1 {
		return bad("multi_resolution_levels %d < 1", c.MultiResolutionLevels)
	}
	switch c.Solver {
	case SolverCG, SolverCholesky:
	default:
		return bad("solver %q", c.Solver)
	}
	return nil
}

// Kernel returns the post-process kernel of the configured mode.
func (c Config) Kernel() reeb.Kernel {
	switch c.PostProcessMode {
	case PostAverage:
		return reeb.KernelAverage
	case PostSharpen:
		if len(c.SharpenKernel) == 3 {
			return reeb.Kernel{F1: c.SharpenKernel[0], F2: c.SharpenKernel[1], F3: c.SharpenKernel[2]}
		}
		return reeb.KernelSharpen
	default:
		return reeb.KernelSmooth
	}
}

// NewSolver returns the configured harmonic solver.
func (c Config) NewSolver() sparse.Solver {
	if c.Solver == SolverCholesky {
		return sparse.Cholesky{}
	}
	return sparse.NewConjugateGradient()
}

// axis maps a coordinate weight mode to its axis index.
func (c Config) axis() int {
	switch c.WeightMode {
	case ModeX:
		return 0
	case ModeY:
		return 1
	default:
		return 2
	}
}
