package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func TestSolveSequentialInsufficientPositions(t *testing.T) {
	components := make([]model.Component, 5)
	for i := range components {
		components[i] = model.NewComponent(string(rune('A'+i)), 1, 1)
	}
	d := model.NewDesign(model.DefaultBoard(10, 10), components, nil, nil)
	d.Field = model.PositionField{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}

	_, err := SolveSequential(d, SequentialOptions{Nx: 0, Ny: 0, WPair: 1, WLongest: 0.3})
	require.ErrorIs(t, err, model.ErrInsufficientPositions)
}

func TestSolveSequentialDeterministic(t *testing.T) {
	d := model.DemoDesign()
	opts := DefaultSequentialOptions()

	r1, err1 := SolveSequential(d, opts)
	r2, err2 := SolveSequential(d, opts)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1.Metrics, r2.Metrics, "expected identical metrics")
	assert.Equal(t, r1.Placement, r2.Placement, "expected identical placement")
}

func TestSolveGASingleIslandDeterministic(t *testing.T) {
	d := model.DemoDesign()
	opts := GAOptions{
		Nx: 8, Ny: 8, Islands: 1, MigrationInterval: 0,
		GAConfig: GAConfig{PopSize: 30, Generations: 30, MutationRate: 0.2, Elite: 2, Seed: 7, WPair: 1.0, WLongest: 0.3},
	}

	r1, err1 := SolveGA(context.Background(), d, opts)
	r2, err2 := SolveGA(context.Background(), d, opts)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1.Metrics, r2.Metrics, "islands=1 GA solve should be bit-reproducible")
}

func TestSolveGAValidatesInjectiveTotalPlacement(t *testing.T) {
	d := model.DemoDesign()
	opts := GAOptions{
		Nx: 8, Ny: 8, Islands: 2, MigrationInterval: 4,
		GAConfig: GAConfig{PopSize: 24, Generations: 20, MutationRate: 0.2, Elite: 2, Seed: 3, WPair: 1.0, WLongest: 0.3},
	}
	r, err := SolveGA(context.Background(), d, opts)
	require.NoError(t, err)
	require.Len(t, r.Placement, len(d.Components), "placement must be total")

	seen := make(map[model.Position]bool)
	for _, pos := range r.Placement {
		require.False(t, seen[pos], "placement not injective: position %v repeated", pos)
		seen[pos] = true
	}
}

func TestSolveRejectsInvalidDesign(t *testing.T) {
	d := model.Design{Board: model.Board{W: 0, H: 0}}
	_, err := SolveSequential(d, DefaultSequentialOptions())
	assert.Error(t, err, "expected error for invalid design")

	_, err = SolveGA(context.Background(), d, DefaultGAOptions())
	assert.Error(t, err, "expected error for invalid design")
}
