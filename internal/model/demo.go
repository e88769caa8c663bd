package model

import "fmt"

// DemoDesign returns a fixed ten-component board with a couple of direct
// links and two multi-node nets, for use by tests, examples, and the CLI's
// demo subcommand. Grounded on the original service's demo_design_dict
// fixture shape (component count, link/net wiring), not its literal values.
func DemoDesign() Design {
	board := DefaultBoard(160, 100)
	board.Margin = 5.0

	components := []Component{
		{Name: "U0", W: 10, H: 6, Movable: true, Geometry: []GeometryPrimitive{
			{Type: "rect", X: -5, Y: -3, W: 10, H: 6, Rx: 0.5, Ry: 0.5},
		}},
	}
	for i := 1; i < 10; i++ {
		components = append(components, Component{
			Name:    fmt.Sprintf("U%d", i),
			W:       float64(8 + i%3),
			H:       float64(6 + (i+1)%3),
			Movable: true,
		})
	}

	links := []Link{
		{A: "U0", B: "U1", Count: 2},
		{A: "U0", B: "U2", Count: 1},
		{A: "U3", B: "U4", Count: 3},
	}
	nets := []Net{
		{Name: "BUS1", Nodes: []string{"U5", "U6", "U7"}},
		{Name: "PWR", Nodes: []string{"U0", "U8", "U9"}},
	}

	return NewDesign(board, components, nets, links)
}
