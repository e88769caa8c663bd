package engine

import (
	"context"

	"github.com/demetriusdemiurge/placer/internal/model"
)

// SequentialOptions holds the parameters of a sequential solve request
// (spec.md §6).
type SequentialOptions struct {
	Nx, Ny          int
	Seed            int64
	WPair, WLongest float64
}

// DefaultSequentialOptions returns the spec.md §6 sequential request
// defaults.
func DefaultSequentialOptions() SequentialOptions {
	return SequentialOptions{Nx: 16, Ny: 10, Seed: 0, WPair: 1.0, WLongest: 0.3}
}

// GAOptions holds the parameters of a GA solve request (spec.md §6),
// layering field-resolution and island-topology knobs on top of GAConfig.
type GAOptions struct {
	Nx, Ny            int
	Islands           int
	MigrationInterval int
	GAConfig
}

// DefaultGAOptions returns the spec.md §6 GA request defaults.
func DefaultGAOptions() GAOptions {
	return GAOptions{
		Nx:                16,
		Ny:                10,
		Islands:           4,
		MigrationInterval: 20,
		GAConfig:          DefaultGAConfig(),
	}
}

// SolveSequential is the facade entry point for the deterministic greedy
// placer (spec.md §4.8). On any field-resolution failure it returns a
// structured error rather than attempting a partial placement.
func SolveSequential(d model.Design, opts SequentialOptions) (model.Result, error) {
	if err := d.Validate(); err != nil {
		return model.Result{}, err
	}
	field, err := ResolveField(d, opts.Nx, opts.Ny)
	if err != nil {
		return model.Result{}, err
	}

	placement := SequentialPlace(d, field)
	metrics := Evaluate(d, placement, opts.WPair, opts.WLongest)
	return model.Result{Placement: placement, Metrics: metrics}, nil
}

// SolveGA is the facade entry point for the island-model GA (spec.md
// §4.8). comp_order is fixed once, as the Design's deterministic
// component order, for the lifetime of the run.
func SolveGA(ctx context.Context, d model.Design, opts GAOptions) (model.Result, error) {
	if err := d.Validate(); err != nil {
		return model.Result{}, err
	}
	field, err := ResolveField(d, opts.Nx, opts.Ny)
	if err != nil {
		return model.Result{}, err
	}

	compOrder := d.ComponentOrder()
	cfg := opts.GAConfig
	cfg.MigrationInterval = opts.MigrationInterval

	genes, _, err := RunIslandGA(ctx, d, field, compOrder, cfg, opts.Islands)
	if err != nil {
		return model.Result{}, err
	}

	placement := Decode(genes, compOrder, field)
	metrics := Evaluate(d, placement, opts.WPair, opts.WLongest)
	return model.Result{Placement: placement, Metrics: metrics}, nil
}
