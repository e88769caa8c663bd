package engine

import (
	"math"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func euclid(a, b model.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}

func boardDiagonal(b model.Board) float64 {
	return math.Hypot(b.W, b.H)
}

// Evaluate computes the objective record for a placement (spec.md §4.2).
// Lower Score is better; it is the exact quantity every solver minimizes.
func Evaluate(d model.Design, placement model.Placement, wPair, wLongest float64) model.Metrics {
	w := BuildPairWeights(d)
	diag := boardDiagonal(d.Board)

	sumW := float64(w.Sum())
	if sumW == 0 {
		sumW = 1.0
	}

	var pairSum, longest float64
	for key, weight := range w {
		if weight <= 0 {
			continue
		}
		pu, okU := placement[key.U]
		pv, okV := placement[key.V]
		if !okU || !okV {
			continue
		}
		dist := euclid(pu, pv)
		pairSum += float64(weight) * dist
		if dist > longest {
			longest = dist
		}
	}

	var pairNorm, longestNorm float64
	if diag > 0 {
		pairNorm = pairSum / (diag * math.Max(1, sumW))
		longestNorm = longest / diag
	}

	return model.Metrics{
		PairSum:     pairSum,
		Longest:     longest,
		PairNorm:    pairNorm,
		LongestNorm: longestNorm,
		Score:       wPair*pairNorm + wLongest*longestNorm,
	}
}
