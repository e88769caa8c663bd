package model

import (
	"errors"
	"fmt"
)

// Sentinel error kinds surfaced by the engine (spec.md §7).
var (
	// ErrInsufficientPositions is returned when the candidate field has
	// fewer slots than components; no partial placement is returned.
	ErrInsufficientPositions = errors.New("insufficient positions for components")

	// ErrInvalidDesign covers duplicate names, dangling net/link
	// references, and non-positive board dimensions.
	ErrInvalidDesign = errors.New("invalid design")

	// ErrEmptyProblem is surfaced as a kind of ErrInvalidDesign: zero
	// components. (A design with components but an empty field is reported
	// as ErrInsufficientPositions by the Position-Field Adapter.)
	ErrEmptyProblem = errors.New("empty problem")

	// ErrWorkerFailure is returned when a GA island worker terminates
	// abnormally; the coordinator aborts and drains the remaining workers.
	ErrWorkerFailure = errors.New("ga worker failure")
)

// Validate checks the structural invariants of a Design: unique component
// names, board dimensions, and net/link references resolving to known
// components. It does not check field cardinality against component count
// — that is the Position-Field Adapter's job once nx/ny or an explicit
// field is known.
func (d Design) Validate() error {
	if len(d.duplicateNames) > 0 {
		return fmt.Errorf("%w: duplicate component name %q", ErrInvalidDesign, d.duplicateNames[0])
	}
	if len(d.Components) == 0 {
		return fmt.Errorf("%w: %w: no components", ErrInvalidDesign, ErrEmptyProblem)
	}
	if d.Board.W <= 0 || d.Board.H <= 0 {
		return fmt.Errorf("%w: board dimensions must be positive, got %gx%g", ErrInvalidDesign, d.Board.W, d.Board.H)
	}
	for _, net := range d.Nets {
		for _, node := range net.Nodes {
			if _, ok := d.Components[node]; !ok {
				return fmt.Errorf("%w: net %q references unknown component %q", ErrInvalidDesign, net.Name, node)
			}
		}
	}
	for _, link := range d.Links {
		if _, ok := d.Components[link.A]; !ok {
			return fmt.Errorf("%w: link references unknown component %q", ErrInvalidDesign, link.A)
		}
		if _, ok := d.Components[link.B]; !ok {
			return fmt.Errorf("%w: link references unknown component %q", ErrInvalidDesign, link.B)
		}
	}
	return nil
}
