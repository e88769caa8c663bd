package engine

import (
	"math/rand"

	"github.com/demetriusdemiurge/placer/internal/model"
)

// vacant is the chromosome sentinel for an empty slot (spec.md §3/§4.5).
const vacant = -1

// Chromosome is a fixed-length vector of length M; each cell holds either
// a component index in [0, K) or vacant. After repair, every component
// index in [0, K) appears exactly once and the remaining M-K cells are
// vacant. A flat vector with a vacancy sentinel is deliberately chosen
// over a bare permutation representation (spec.md §9): it allows M > K
// and keeps uniform crossover meaningful without a genotype/phenotype
// decoding discontinuity.
type Chromosome []int

// InitChromosome chooses K distinct position indices uniformly without
// replacement from [0,M) and assigns component ids 0..K-1 to them in
// order; remaining slots are vacant.
func InitChromosome(m, k int, rng *rand.Rand) Chromosome {
	c := make(Chromosome, m)
	for i := range c {
		c[i] = vacant
	}
	for compID, slot := range rng.Perm(m)[:k] {
		c[slot] = compID
	}
	return c
}

// Decode produces a Placement by reading position index -> component
// index for every non-vacant cell, resolving component indices through
// compOrder and slots through field.
func Decode(c Chromosome, compOrder []string, field model.PositionField) model.Placement {
	placement := make(model.Placement, len(compOrder))
	for posIdx, gene := range c {
		if gene < 0 {
			continue
		}
		placement[compOrder[gene]] = field[posIdx]
	}
	return placement
}

// Repair restores the "each component id in [0,K) appears exactly once"
// invariant in place (spec.md §4.5): out-of-range and duplicate entries
// are cleared to vacant, then missing component ids are written into
// shuffled vacant slots. Repair cannot fail by construction when M >= K —
// once duplicates are cleared there are M-K vacant slots more than
// missing ids.
func Repair(c Chromosome, k int, rng *rand.Rand) {
	seen := make([]bool, k)
	for i, gene := range c {
		if gene < 0 || gene >= k {
			c[i] = vacant
			continue
		}
		if seen[gene] {
			c[i] = vacant
			continue
		}
		seen[gene] = true
	}

	var missing []int
	for id, ok := range seen {
		if !ok {
			missing = append(missing, id)
		}
	}

	var empties []int
	for i, gene := range c {
		if gene == vacant {
			empties = append(empties, i)
		}
	}
	rng.Shuffle(len(empties), func(i, j int) { empties[i], empties[j] = empties[j], empties[i] })

	for i, id := range missing {
		c[empties[i]] = id
	}
}
