package engine

import (
	"fmt"

	"github.com/demetriusdemiurge/placer/internal/gridfield"
	"github.com/demetriusdemiurge/placer/internal/model"
)

// ResolveField implements the Position-Field Adapter (spec.md §4.3): it
// uses the Design's externally supplied field verbatim when present and
// large enough, otherwise falls back to the grid producer. It fails with
// ErrInsufficientPositions if the resolved field is still too small.
func ResolveField(d model.Design, nx, ny int) (model.PositionField, error) {
	k := len(d.Components)

	field := d.Field
	if len(field) < k {
		field = gridfield.Generate(d.Board, nx, ny)
	}
	if len(field) < k {
		return nil, fmt.Errorf("%w: need %d, have %d", model.ErrInsufficientPositions, k, len(field))
	}
	return field, nil
}
