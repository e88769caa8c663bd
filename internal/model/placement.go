package model

// Placement is a partial (during construction) or total (once finished)
// mapping from component name to board position. A valid final placement
// is total over Design.Components and injective over positions.
type Placement map[string]Position

// Clone returns an independent copy, since Placement is a map and solvers
// must not let callers mutate engine-owned state through the returned value.
func (p Placement) Clone() Placement {
	out := make(Placement, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// PairKey is a canonicalized (lexicographically ordered) unordered pair of
// component names, used as the PairWeights map key so that (u,v) and
// (v,u) always collide to the same entry.
type PairKey struct {
	U, V string
}

// CanonicalPair orders a and b lexicographically so the same unordered
// pair always produces the same PairKey regardless of argument order.
func CanonicalPair(a, b string) PairKey {
	if a <= b {
		return PairKey{U: a, V: b}
	}
	return PairKey{U: b, V: a}
}

// PairWeights is a symmetric multiplicity map over unordered component
// pairs, built once per solver invocation and treated as immutable
// thereafter.
type PairWeights map[PairKey]int

// Sum returns the sum of all weights, or 0 if the map is empty.
func (w PairWeights) Sum() int {
	total := 0
	for _, c := range w {
		total += c
	}
	return total
}

// Metrics is the objective record returned alongside every Placement:
// raw and normalized pair-sum cost, the longest active interconnect, and
// the weighted scalar score every solver minimizes.
type Metrics struct {
	PairSum     float64 `json:"pair_sum"`
	Longest     float64 `json:"longest"`
	PairNorm    float64 `json:"pair_norm"`
	LongestNorm float64 `json:"longest_norm"`
	Score       float64 `json:"score"`
}

// Result bundles a solver's output for the facade layer (spec.md §6).
type Result struct {
	Placement Placement `json:"placement"`
	Metrics   Metrics   `json:"metrics"`
}
