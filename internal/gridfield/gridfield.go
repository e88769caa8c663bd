// Package gridfield is the trivial external collaborator spec.md §6
// describes as the "grid producer contract": given a board and a grid
// resolution, it hands back a deduplicated, grid-snapped nx×ny field of
// candidate positions. It is a thin data transform, not part of the core
// cost model or either solver.
package gridfield

import (
	"math"

	"github.com/demetriusdemiurge/placer/internal/model"
)

// Generate returns a deduplicated list of positions on a uniform nx×ny
// grid between margin and W-margin (resp. H), snapped to the board's grid
// step.
func Generate(board model.Board, nx, ny int) model.PositionField {
	if nx <= 0 || ny <= 0 {
		return nil
	}

	snap := func(v float64) float64 {
		if board.Grid <= 0 {
			return v
		}
		return math.Round(v/board.Grid) * board.Grid
	}

	xs := linspace(board.Margin, board.W-board.Margin, nx)
	ys := linspace(board.Margin, board.H-board.Margin, ny)

	seen := make(map[model.Position]bool, nx*ny)
	field := make(model.PositionField, 0, nx*ny)
	for _, y := range ys {
		for _, x := range xs {
			p := model.Position{X: snap(x), Y: snap(y)}
			if seen[p] {
				continue
			}
			seen[p] = true
			field = append(field, p)
		}
	}
	return field
}

// linspace returns n evenly spaced values between lo and hi inclusive (n=1
// returns just lo).
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = lo + step*float64(i)
	}
	return out
}
