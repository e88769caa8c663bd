package engine

import (
	"sort"

	"github.com/demetriusdemiurge/placer/internal/model"
)

// SequentialPlace implements the weighted-degree-ordered greedy insertion
// placer (spec.md §4.4). Components are visited in descending weighted
// degree (ties broken by name, ascending, for reproducibility); each is
// assigned the free position that minimizes its incremental pair-sum cost
// against already-placed neighbors (ties broken by the field's intrinsic
// order). The result is deterministic given the same design and field —
// it ignores any seed.
func SequentialPlace(d model.Design, field model.PositionField) model.Placement {
	w := BuildPairWeights(d)
	deg := WeightedDegree(w)

	order := d.ComponentOrder()
	sort.Slice(order, func(i, j int) bool {
		di, dj := deg[order[i]], deg[order[j]]
		if di != dj {
			return di > dj
		}
		return order[i] < order[j]
	})

	freeIdx := make([]int, len(field))
	for i := range field {
		freeIdx[i] = i
	}

	placed := make(model.Placement, len(order))
	for _, comp := range order {
		bestSlot := -1
		bestPos := 0
		bestCost := 0.0

		for pos, idx := range freeIdx {
			cost := incrementalCost(w, comp, field[idx], placed)
			if bestSlot == -1 || cost < bestCost {
				bestCost = cost
				bestSlot = idx
				bestPos = pos
			}
		}

		placed[comp] = field[bestSlot]
		freeIdx = append(freeIdx[:bestPos], freeIdx[bestPos+1:]...)
	}

	return placed
}

// incrementalCost is Δ(u,p) from spec.md §4.4: the pair-sum contribution
// of placing component u at position p, given the components already
// placed.
func incrementalCost(w model.PairWeights, comp string, p model.Position, placed model.Placement) float64 {
	var total float64
	for other, otherPos := range placed {
		key := model.CanonicalPair(comp, other)
		weight, ok := w[key]
		if !ok || weight <= 0 {
			continue
		}
		total += float64(weight) * euclid(p, otherPos)
	}
	return total
}
