package fixtures

import (
	"fmt"

	"github.com/corvusgraph/pursuit/graph"
)

// Path builds a simple path P_n over vertex IDs "0".."n-1" (n >= 2).
// Grounded on builder/impl_path.go's Cycle-sibling Path constructor.
func Path(n int) *graph.Graph {
	if n < 2 {
		panic(fmt.Sprintf("fixtures: Path requires n >= 2, got %d", n))
	}
	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(nodeID(i))
	}
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(nodeID(i), nodeID(i+1))
	}
	return g
}

// Cycle builds an n-vertex simple cycle C_n over vertex IDs "0".."n-1"
// (n >= 3). Grounded on builder/impl_cycle.go's Cycle constructor.
func Cycle(n int) *graph.Graph {
	if n < 3 {
		panic(fmt.Sprintf("fixtures: Cycle requires n >= 3, got %d", n))
	}
	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(nodeID(i))
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(nodeID(i), nodeID((i+1)%n))
	}
	return g
}

// Star builds a star with a fixed center vertex "center" and n-1 leaves
// "0".."n-2" (n >= 2). Grounded on builder/impl_star.go.
func Star(n int) *graph.Graph {
	if n < 2 {
		panic(fmt.Sprintf("fixtures: Star requires n >= 2, got %d", n))
	}
	g := graph.New()
	_ = g.AddVertex("center")
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge("center", nodeID(i))
	}
	return g
}

// Wheel builds a wheel W_n: a cycle of n-1 rim vertices "0".."n-2" plus a
// hub "center" connected to every rim vertex (n >= 4). Grounded on
// builder/impl_wheel.go.
func Wheel(n int) *graph.Graph {
	if n < 4 {
		panic(fmt.Sprintf("fixtures: Wheel requires n >= 4, got %d", n))
	}
	rim := n - 1
	g := graph.New()
	for i := 0; i < rim; i++ {
		_ = g.AddVertex(nodeID(i))
	}
	for i := 0; i < rim; i++ {
		_ = g.AddEdge(nodeID(i), nodeID((i+1)%rim))
	}
	_ = g.AddVertex("center")
	for i := 0; i < rim; i++ {
		_ = g.AddEdge("center", nodeID(i))
	}
	return g
}

// Grid builds a rows x cols 4-neighborhood grid graph with IDs "r,c"
// (row-major), rows, cols >= 1. Grounded on builder/impl_grid.go.
func Grid(rows, cols int) *graph.Graph {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("fixtures: Grid requires rows,cols >= 1, got %d,%d", rows, cols))
	}
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

	g := graph.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			_ = g.AddVertex(id(r, c))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				_ = g.AddEdge(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				_ = g.AddEdge(id(r, c), id(r+1, c))
			}
		}
	}
	return g
}
