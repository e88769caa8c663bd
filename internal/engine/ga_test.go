package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func chainDesign() model.Design {
	names := []string{"A", "B", "C", "D", "E", "F"}
	components := make([]model.Component, len(names))
	for i, n := range names {
		components[i] = model.NewComponent(n, 4, 4)
	}
	var links []model.Link
	for i := 0; i < len(names)-1; i++ {
		links = append(links, model.Link{A: names[i], B: names[i+1], Count: 1})
	}
	return model.NewDesign(model.Board{W: 100, H: 20, Grid: 1, Margin: 2}, components, nil, links)
}

func TestSwapMutateAlwaysTouchesTwoDistinctSlots(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		c := Chromosome{0, 1, 2, 3, 4}
		before := append(Chromosome{}, c...)
		swapMutate(c, rng)

		diff := 0
		for i := range before {
			if before[i] != c[i] {
				diff++
			}
		}
		assert.Equal(t, 2, diff, "swapMutate must change exactly two distinct slots")
	}
}

func TestSingleIslandGADeterministic(t *testing.T) {
	d := chainDesign()
	field := make(model.PositionField, 0, 30)
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			field = append(field, model.Position{X: float64(x) * 10, Y: float64(y) * 10})
		}
	}
	compOrder := d.ComponentOrder()

	cfg := GAConfig{PopSize: 20, Generations: 15, MutationRate: 0.2, Elite: 2, Seed: 42, WPair: 1.0, WLongest: 0.3}

	genes1, score1 := runIsland(d, field, compOrder, cfg, nil, nil)
	genes2, score2 := runIsland(d, field, compOrder, cfg, nil, nil)

	require.Equal(t, score1, score2, "expected bit-reproducible score")
	assert.Equal(t, genes1, genes2, "expected identical chromosomes at the same seed")
}

func TestSingleIslandGAElitismMonotonic(t *testing.T) {
	d := chainDesign()
	field := make(model.PositionField, 0, 30)
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			field = append(field, model.Position{X: float64(x) * 10, Y: float64(y) * 10})
		}
	}
	compOrder := d.ComponentOrder()
	rng := rand.New(rand.NewSource(7))
	k := len(compOrder)
	m := len(field)

	pop := make([]individual, 20)
	for i := range pop {
		genes := InitChromosome(m, k, rng)
		Repair(genes, k, rng)
		placement := Decode(genes, compOrder, field)
		pop[i] = individual{genes: genes, fitness: Evaluate(d, placement, 1.0, 0.3).Score}
	}

	var prevBest float64 = -1
	for gen := 0; gen < 10; gen++ {
		eliteIdx := bestIndices(pop, 2)
		newPop := make([]individual, 0, len(pop))
		for _, idx := range eliteIdx {
			newPop = append(newPop, cloneIndividual(pop[idx]))
		}
		for len(newPop) < len(pop) {
			i := rng.Intn(len(pop))
			j := rng.Intn(len(pop))
			c1, c2 := uniformCrossover(pop[i].genes, pop[j].genes, rng)
			Repair(c1, k, rng)
			Repair(c2, k, rng)
			newPop = append(newPop, individual{genes: c1, fitness: Evaluate(d, Decode(c1, compOrder, field), 1.0, 0.3).Score})
			if len(newPop) < len(pop) {
				newPop = append(newPop, individual{genes: c2, fitness: Evaluate(d, Decode(c2, compOrder, field), 1.0, 0.3).Score})
			}
		}
		pop = newPop

		_, bestScore := bestOf(pop)
		if prevBest >= 0 {
			assert.LessOrEqual(t, bestScore, prevBest+1e-9, "best score must not regress across generations")
		}
		prevBest = bestScore
	}
}

func TestGAConvergesBelowRandomBaseline(t *testing.T) {
	d := chainDesign()
	field := make(model.PositionField, 0, 30)
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			field = append(field, model.Position{X: float64(x) * 10, Y: float64(y) * 10})
		}
	}
	compOrder := d.ComponentOrder()

	rng := rand.New(rand.NewSource(1))
	randomGenes := InitChromosome(len(field), len(compOrder), rng)
	Repair(randomGenes, len(compOrder), rng)
	randomScore := Evaluate(d, Decode(randomGenes, compOrder, field), 1.0, 0.3).Score

	cfg := GAConfig{PopSize: 60, Generations: 200, MutationRate: 0.2, Elite: 2, Seed: 42, WPair: 1.0, WLongest: 0.3}
	_, gaScore := runIsland(d, field, compOrder, cfg, nil, nil)

	assert.Less(t, gaScore, randomScore, "expected GA score to improve on a random baseline")
}
