// Package engine implements the placement cost model and the two solvers
// (sequential greedy and island-model GA) that minimize it.
package engine

import "github.com/demetriusdemiurge/placer/internal/model"

// BuildPairWeights derives a symmetric multiplicity map from a Design's
// nets and links (spec.md §4.1). Every unordered pair within a net's node
// list contributes +1; every link contributes +max(1, count). Component
// identifiers that don't resolve to a known component are tolerated here
// — they simply never match a placed component during cost evaluation.
// This is deliberately more permissive than Design.Validate, which rejects
// dangling references before a solver ever runs.
func BuildPairWeights(d model.Design) model.PairWeights {
	w := make(model.PairWeights)
	for _, net := range d.Nets {
		nodes := net.Nodes
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				key := model.CanonicalPair(nodes[i], nodes[j])
				w[key]++
			}
		}
	}
	for _, link := range d.Links {
		count := link.Count
		if count < 1 {
			count = 1
		}
		key := model.CanonicalPair(link.A, link.B)
		w[key] += count
	}
	return w
}

// WeightedDegree returns, for every component referenced by w (on either
// side of a pair), the sum of weights over all pairs involving it.
func WeightedDegree(w model.PairWeights) map[string]int {
	deg := make(map[string]int)
	for key, weight := range w {
		deg[key.U] += weight
		deg[key.V] += weight
	}
	return deg
}
