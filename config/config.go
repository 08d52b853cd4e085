// Package config holds the simulation tunables a World is built with:
// gravity, Baumgarte stabilization factor, penetration slop, iteration
// caps, and worker count. It follows the teacher's flat tunables
// struct (World{Gravity, Substeps, Workers}) rather than a functional
// options builder.
package config

import (
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Config collects every tunable the constraint solver, integrator and
// world loop need. Default() returns a fully populated Config; zero-valued
// fields are used as given.
type Config struct {
	Gravity mgl64.Vec3 `yaml:"gravity"`

	// Baumgarte is the position-error feedback factor used in the
	// constraint solver's right-hand side (0.1-0.3 is the usual range).
	Baumgarte float64 `yaml:"baumgarte"`

	// SlopPenetration is the penetration depth below which Baumgarte
	// correction is not applied, avoiding jitter from resting contacts.
	SlopPenetration float64 `yaml:"slop_penetration"`

	// GJKMaxIterations and EPAMaxIterations bound the narrow-phase
	// simplex/polytope refinement loops.
	GJKMaxIterations int `yaml:"gjk_max_iterations"`
	EPAMaxIterations int `yaml:"epa_max_iterations"`

	// SolverMaxIterations bounds the Gauss-Seidel sweep count; the
	// solver also exits early once the total change drops below
	// 10*Epsilon*N as original_source's gauss_seidel.rs does.
	SolverMaxIterations int `yaml:"solver_max_iterations"`

	// Workers bounds the fan-out workerpool.Run uses for independent
	// per-body work (force/position integration) and per-pair work
	// (narrow-phase testing) within a single step.
	Workers int `yaml:"workers"`
}

// Default returns the tunables used when a World is constructed without
// an explicit Config.
func Default() Config {
	return Config{
		Gravity:             mgl64.Vec3{0, -9.81, 0},
		Baumgarte:           0.2,
		SlopPenetration:     0.005,
		GJKMaxIterations:    100,
		EPAMaxIterations:    100,
		SolverMaxIterations: 50,
		Workers:             runtime.GOMAXPROCS(0),
	}
}

// Load reads a YAML tunables file over Default(): fields the file does
// not set keep their Default() value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
