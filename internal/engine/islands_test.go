package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func smallField() model.PositionField {
	field := make(model.PositionField, 0, 30)
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			field = append(field, model.Position{X: float64(x) * 10, Y: float64(y) * 10})
		}
	}
	return field
}

func TestRunIslandGASingleIslandDeterministic(t *testing.T) {
	d := chainDesign()
	field := smallField()
	compOrder := d.ComponentOrder()
	cfg := GAConfig{PopSize: 20, Generations: 15, MutationRate: 0.2, Elite: 2, Seed: 42, WPair: 1.0, WLongest: 0.3}

	genes1, score1, err1 := RunIslandGA(context.Background(), d, field, compOrder, cfg, 1)
	genes2, score2, err2 := RunIslandGA(context.Background(), d, field, compOrder, cfg, 1)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, score1, score2, "islands=1 should be bit-reproducible")
	assert.Equal(t, genes1, genes2, "islands=1 chromosomes must match")
}

func TestRunIslandGAMultiIslandProducesValidResult(t *testing.T) {
	d := chainDesign()
	field := smallField()
	compOrder := d.ComponentOrder()
	cfg := GAConfig{PopSize: 24, Generations: 20, MutationRate: 0.2, Elite: 2, Seed: 42, WPair: 1.0, WLongest: 0.3, MigrationInterval: 5}

	genes, score, err := RunIslandGA(context.Background(), d, field, compOrder, cfg, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 0.0)
	assertValidChromosome(t, genes, len(field), len(compOrder))
}

func TestRunIslandGARespectsCancellation(t *testing.T) {
	d := chainDesign()
	field := smallField()
	compOrder := d.ComponentOrder()
	cfg := GAConfig{PopSize: 20, Generations: 100000, MutationRate: 0.2, Elite: 2, Seed: 1, WPair: 1.0, WLongest: 0.3, MigrationInterval: 5}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		_, _, err := RunIslandGA(ctx, d, field, compOrder, cfg, 2)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunIslandGA did not honor cancellation promptly")
	}
}
