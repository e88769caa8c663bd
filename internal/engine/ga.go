package engine

import (
	"math/rand"

	"github.com/demetriusdemiurge/placer/internal/model"
)

// GAConfig holds the tunable parameters of a single-island GA run,
// mirroring the teacher's GeneticConfig (internal/engine/genetic.go).
type GAConfig struct {
	PopSize           int
	Generations       int
	MutationRate      float64
	Elite             int
	Seed              int64
	WPair, WLongest   float64
	MigrationInterval int // 0 disables the migration hook entirely
}

// DefaultGAConfig returns the spec.md §6 GA request defaults.
func DefaultGAConfig() GAConfig {
	return GAConfig{
		PopSize:      120,
		Generations:  400,
		MutationRate: 0.2,
		Elite:        2,
		WPair:        1.0,
		WLongest:     0.3,
	}
}

// individual pairs a chromosome with its cached fitness score.
type individual struct {
	genes   Chromosome
	fitness float64
}

func cloneIndividual(in individual) individual {
	genes := make(Chromosome, len(in.genes))
	copy(genes, in.genes)
	return individual{genes: genes, fitness: in.fitness}
}

// migrantHook lets the island coordinator observe and inject individuals
// at migration points without the GA loop knowing about channels.
type migrantHook struct {
	// send, if non-nil, is called with the current best individual at
	// each migration point. It must not block indefinitely.
	send func(score float64, genes Chromosome)
	// receive, if non-nil, is drained non-blockingly at each migration
	// point; each returned individual replaces the current worst.
	receive func() ([]individual, bool)
}

// runIsland runs the generational loop of spec.md §4.6: elitism,
// tournament-3 selection, uniform crossover, swap mutation, repair, and
// (optionally) a migration hook invoked every MigrationInterval
// generations. It returns the best chromosome and score found in the
// final population — not a global best-so-far tracker, since elitism
// already guarantees the best individual survives every generation.
func runIsland(d model.Design, field model.PositionField, compOrder []string, cfg GAConfig, cancel <-chan struct{}, hook *migrantHook) (Chromosome, float64) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	m := len(field)
	k := len(compOrder)

	evaluate := func(genes Chromosome) float64 {
		placement := Decode(genes, compOrder, field)
		return Evaluate(d, placement, cfg.WPair, cfg.WLongest).Score
	}

	pop := make([]individual, cfg.PopSize)
	for i := range pop {
		genes := InitChromosome(m, k, rng)
		Repair(genes, k, rng)
		pop[i] = individual{genes: genes, fitness: evaluate(genes)}
	}

	tournament := func() individual {
		best := -1
		for t := 0; t < 3; t++ {
			idx := rng.Intn(len(pop))
			if best == -1 || pop[idx].fitness < pop[best].fitness {
				best = idx
			}
		}
		return pop[best]
	}

	for gen := 1; gen <= cfg.Generations; gen++ {
		select {
		case <-cancel:
			return bestOf(pop)
		default:
		}

		eliteIdx := bestIndices(pop, cfg.Elite)
		newPop := make([]individual, 0, cfg.PopSize)
		for _, idx := range eliteIdx {
			newPop = append(newPop, cloneIndividual(pop[idx]))
		}

		for len(newPop) < cfg.PopSize {
			p1 := tournament()
			p2 := tournament()
			c1, c2 := uniformCrossover(p1.genes, p2.genes, rng)

			if rng.Float64() < cfg.MutationRate {
				swapMutate(c1, rng)
			}
			if rng.Float64() < cfg.MutationRate {
				swapMutate(c2, rng)
			}

			Repair(c1, k, rng)
			Repair(c2, k, rng)

			newPop = append(newPop, individual{genes: c1, fitness: evaluate(c1)})
			if len(newPop) < cfg.PopSize {
				newPop = append(newPop, individual{genes: c2, fitness: evaluate(c2)})
			}
		}
		pop = newPop

		if hook != nil && cfg.MigrationInterval > 0 && gen%cfg.MigrationInterval == 0 {
			runMigration(pop, hook)
		}
	}

	return bestOf(pop)
}

func runMigration(pop []individual, hook *migrantHook) {
	if hook.send != nil {
		best := bestIndex(pop)
		genes := make(Chromosome, len(pop[best].genes))
		copy(genes, pop[best].genes)
		hook.send(pop[best].fitness, genes)
	}
	if hook.receive != nil {
		migrants, ok := hook.receive()
		if !ok {
			return
		}
		for _, m := range migrants {
			worst := worstIndex(pop)
			pop[worst] = m
		}
	}
}

func bestOf(pop []individual) (Chromosome, float64) {
	best := bestIndex(pop)
	return pop[best].genes, pop[best].fitness
}

func bestIndex(pop []individual) int {
	best := 0
	for i, ind := range pop {
		if ind.fitness < pop[best].fitness {
			best = i
		}
	}
	return best
}

func worstIndex(pop []individual) int {
	worst := 0
	for i, ind := range pop {
		if ind.fitness > pop[worst].fitness {
			worst = i
		}
	}
	return worst
}

// bestIndices returns the indices of the n lowest-scoring individuals,
// stable-sorted by index for ties.
func bestIndices(pop []individual, n int) []int {
	if n > len(pop) {
		n = len(pop)
	}
	idx := make([]int, len(pop))
	for i := range idx {
		idx[i] = i
	}
	// simple selection since n is always small (elite count)
	for i := 0; i < n; i++ {
		minJ := i
		for j := i + 1; j < len(idx); j++ {
			fj, fm := pop[idx[j]].fitness, pop[idx[minJ]].fitness
			if fj < fm || (fj == fm && idx[j] < idx[minJ]) {
				minJ = j
			}
		}
		idx[i], idx[minJ] = idx[minJ], idx[i]
	}
	return idx[:n]
}

func uniformCrossover(a, b Chromosome, rng *rand.Rand) (Chromosome, Chromosome) {
	n := len(a)
	c1 := make(Chromosome, n)
	c2 := make(Chromosome, n)
	for i := 0; i < n; i++ {
		if rng.Float64() < 0.5 {
			c1[i], c2[i] = b[i], a[i]
		} else {
			c1[i], c2[i] = a[i], b[i]
		}
	}
	return c1, c2
}

func swapMutate(c Chromosome, rng *rand.Rand) {
	if len(c) < 2 {
		return
	}
	i := rng.Intn(len(c))
	j := rng.Intn(len(c) - 1)
	if j >= i {
		j++
	}
	c[i], c[j] = c[j], c[i]
}
