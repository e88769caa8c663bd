package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func TestEvaluateEmptyConnectivityScoresZero(t *testing.T) {
	d := model.NewDesign(model.DefaultBoard(50, 50),
		[]model.Component{model.NewComponent("A", 1, 1), model.NewComponent("B", 1, 1), model.NewComponent("C", 1, 1)},
		nil, nil)

	placement := model.Placement{
		"A": {X: 0, Y: 0}, "B": {X: 10, Y: 10}, "C": {X: 20, Y: 20},
	}
	m := Evaluate(d, placement, 1.0, 0.3)
	assert.Equal(t, model.Metrics{}, m, "empty connectivity should score all-zero metrics")
}

func TestEvaluateTwoComponentLink(t *testing.T) {
	d := model.NewDesign(model.Board{W: 100, H: 100, Grid: 1, Margin: 5},
		[]model.Component{model.NewComponent("A", 2, 2), model.NewComponent("B", 2, 2)},
		nil, []model.Link{{A: "A", B: "B", Count: 1}})

	placement := model.Placement{
		"A": {X: 5, Y: 5},
		"B": {X: 95, Y: 5},
	}
	m := Evaluate(d, placement, 1.0, 0.3)

	dist := 90.0
	diag := math.Hypot(100, 100)
	wantPairNorm := dist / diag
	wantLongestNorm := dist / diag
	wantScore := 1.0*wantPairNorm + 0.3*wantLongestNorm

	assert.InDelta(t, dist, m.PairSum, 1e-9)
	assert.InDelta(t, dist, m.Longest, 1e-9)
	assert.InDelta(t, wantPairNorm, m.PairNorm, 1e-9)
	assert.InDelta(t, wantLongestNorm, m.LongestNorm, 1e-9)
	assert.InDelta(t, wantScore, m.Score, 1e-9)
}

func TestEvaluateDegenerateBoardDiagIsZeroScore(t *testing.T) {
	d := model.Design{
		Board:      model.Board{W: 0, H: 0},
		Components: map[string]model.Component{"A": model.NewComponent("A", 1, 1), "B": model.NewComponent("B", 1, 1)},
		Links:      []model.Link{{A: "A", B: "B", Count: 1}},
	}
	placement := model.Placement{"A": {X: 0, Y: 0}, "B": {X: 5, Y: 5}}
	m := Evaluate(d, placement, 1, 1)
	assert.Zero(t, m.PairNorm)
	assert.Zero(t, m.LongestNorm)
	assert.Zero(t, m.Score)
}

func TestEvaluateScoreMonotoneInWeights(t *testing.T) {
	d := model.NewDesign(model.DefaultBoard(50, 50),
		[]model.Component{model.NewComponent("A", 1, 1), model.NewComponent("B", 1, 1)},
		nil, []model.Link{{A: "A", B: "B", Count: 1}})
	placement := model.Placement{"A": {X: 0, Y: 0}, "B": {X: 10, Y: 10}}

	low := Evaluate(d, placement, 1.0, 0.0)
	high := Evaluate(d, placement, 2.0, 0.5)
	assert.GreaterOrEqual(t, high.Score, low.Score, "score must be monotone non-decreasing in weights")
	assert.GreaterOrEqual(t, low.Score, 0.0, "score must be non-negative")
}

func TestEvaluatePairSumAgreesWithBruteForce(t *testing.T) {
	d := model.DemoDesign()
	field := []model.Position{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0}, {X: 60, Y: 0}, {X: 80, Y: 0},
		{X: 0, Y: 40}, {X: 20, Y: 40}, {X: 40, Y: 40}, {X: 60, Y: 40}, {X: 80, Y: 40},
	}
	order := d.ComponentOrder()
	placement := make(model.Placement, len(order))
	for i, name := range order {
		placement[name] = field[i]
	}

	m := Evaluate(d, placement, 1.0, 0.3)

	w := BuildPairWeights(d)
	var brute float64
	for key, weight := range w {
		pu, okU := placement[key.U]
		pv, okV := placement[key.V]
		if !okU || !okV {
			continue
		}
		brute += float64(weight) * euclid(pu, pv)
	}
	assert.InDelta(t, brute, m.PairSum, 1e-9, "pair_sum must agree with brute-force recomputation")
}
