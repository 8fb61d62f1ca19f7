package fixtures

import "github.com/corvusgraph/pursuit/graph"

// Petersen builds the classic Petersen graph: the generalized Petersen
// graph GP(5,2) — an outer 5-cycle "o0".."o4", an inner pentagram
// "i0".."i4" connected with step 2, and five spokes "oK"-"iK". Used by
// spec.md's alpha-beta soundness checks and Scenario A.
func Petersen() *graph.Graph {
	g := graph.New()
	outer := func(i int) string { return "o" + nodeID(i%5) }
	inner := func(i int) string { return "i" + nodeID(i%5) }

	for i := 0; i < 5; i++ {
		_ = g.AddEdge(outer(i), outer(i+1))
		_ = g.AddEdge(inner(i), inner(i+2))
		_ = g.AddEdge(outer(i), inner(i))
	}
	return g
}
