// Package model holds the data types shared by the placement engine: the
// board/component/net/link inputs (Design), the candidate slot list
// (PositionField), and the resulting component-to-slot assignment
// (Placement).
package model

import (
	"sort"

	"github.com/google/uuid"
)

// GeometryPrimitive is an opaque, decorative shape attached to a Component
// for rendering purposes only. The placement engine never consults it —
// only the placed centroid positions matter to the cost model.
type GeometryPrimitive struct {
	Type   string      `json:"type"` // "rect", "circle", "polygon", or "path"
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	W      float64     `json:"w,omitempty"`
	H      float64     `json:"h,omitempty"`
	Rx     float64     `json:"rx,omitempty"`
	Ry     float64     `json:"ry,omitempty"`
	Cx     float64     `json:"cx,omitempty"`
	Cy     float64     `json:"cy,omitempty"`
	R      float64     `json:"r,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
	D      string      `json:"d,omitempty"`
}

// Component is a named part with a fixed footprint size.
type Component struct {
	Name     string              `json:"name"`
	W        float64             `json:"w"`
	H        float64             `json:"h"`
	Movable  bool                `json:"movable"`
	Geometry []GeometryPrimitive `json:"geometry,omitempty"`
}

// NewComponent creates a Component with Movable defaulting to true.
func NewComponent(name string, w, h float64) Component {
	return Component{Name: name, W: w, H: h, Movable: true}
}

// Net is a multi-node connectivity group; every unordered pair of nodes in
// it is implicitly linked.
type Net struct {
	Name  string   `json:"name"`
	Nodes []string `json:"nodes"`
}

// Link is a direct connection between two named components with an
// integer multiplicity.
type Link struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// Board is the rectangular placement surface.
type Board struct {
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Grid   float64 `json:"grid"`
	Margin float64 `json:"margin"`
}

// DefaultBoard returns a Board with the teacher-style sensible defaults
// (grid snap of 1.0mm, 3mm edge margin).
func DefaultBoard(w, h float64) Board {
	return Board{W: w, H: h, Grid: 1.0, Margin: 3.0}
}

// Position is a 2D centroid coordinate, in millimetres.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositionField is an ordered sequence of distinct candidate slots.
type PositionField []Position

// Design is the complete placement problem: a board, its components keyed
// by name, the connectivity (nets and links), and an optional externally
// supplied field of candidate slots.
type Design struct {
	ID         string               `json:"id"`
	Board      Board                `json:"board"`
	Components map[string]Component `json:"components"`
	Nets       []Net                `json:"nets"`
	Links      []Link               `json:"links"`
	Field      PositionField        `json:"field,omitempty"`

	// duplicateNames records component names seen more than once in the
	// ordered list NewDesign was built from. The map constructor below
	// already collapses them (last one wins), so this is the only trace
	// left for Validate to reject the design on.
	duplicateNames []string
}

// NewDesign builds a Design from an ordered component list, stamping a
// fresh design ID the way the teacher mints Part/StockSheet IDs.
func NewDesign(board Board, components []Component, nets []Net, links []Link) Design {
	byName := make(map[string]Component, len(components))
	var duplicates []string
	for _, c := range components {
		if _, exists := byName[c.Name]; exists {
			duplicates = append(duplicates, c.Name)
		}
		byName[c.Name] = c
	}
	return Design{
		ID:             uuid.New().String()[:8],
		Board:          board,
		Components:     byName,
		Nets:           nets,
		Links:          links,
		duplicateNames: duplicates,
	}
}

// ComponentOrder returns component names in a fixed, deterministic order
// (lexicographic by name). The GA fixes this once per run as comp_order;
// the sequential placer re-derives its own weighted-degree order from it.
func (d Design) ComponentOrder() []string {
	names := make([]string, 0, len(d.Components))
	for name := range d.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
