// Package islands splits a possibly-disconnected graph into independent
// connected components ("islands"), allocates cops across them in
// proportion to each island's pursuit difficulty, and dispatches every
// move to the component actually containing the robber.
//
// Grounded on
// original_source/engine/modules/islands/{component,choosing}.py.
package islands

import (
	"math"

	"github.com/corvusgraph/pursuit/graph"
)

// trapFreeReduce returns the subset of component surviving iterated
// removal of degree-≤1 vertices (within the induced subgraph), the
// "trap-free" core a robber can roam indefinitely without being cornered.
func trapFreeReduce(g *graph.Graph, component []string) []string {
	alive := make(map[string]bool, len(component))
	for _, v := range component {
		alive[v] = true
	}

	degree := func(v string) int {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return 0
		}
		d := 0
		for _, n := range nbrs {
			if alive[n] {
				d++
			}
		}
		return d
	}

	for {
		var traps []string
		for v := range alive {
			if degree(v) <= 1 {
				traps = append(traps, v)
			}
		}
		if len(traps) == 0 {
			break
		}
		for _, v := range traps {
			delete(alive, v)
		}
	}

	out := make([]string, 0, len(alive))
	for v := range alive {
		out = append(out, v)
	}
	return out
}

// demand computes a component's cop demand from its trap-free core: a
// core of n' nodes with mean degree μ demands μ cops if the component is
// sparse (μ ≤ √n'), tapering toward 0 demand as μ grows past √n'
// otherwise, and 0 if the trap-free core is empty.
//
// Grounded on original_source/engine/modules/islands/choosing.py's
// demand formula.
func demand(g *graph.Graph, component []string) float64 {
	core := trapFreeReduce(g, component)
	n := len(core)
	if n == 0 {
		return 0
	}

	alive := make(map[string]bool, n)
	for _, v := range core {
		alive[v] = true
	}
	totalDegree := 0
	for _, v := range core {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, nb := range nbrs {
			if alive[nb] {
				totalDegree++
			}
		}
	}
	mu := float64(totalDegree) / float64(n)
	sqrtN := math.Sqrt(float64(n))

	if mu <= sqrtN {
		return mu
	}
	if n == 1 {
		return sqrtN
	}
	return sqrtN * (1 - (mu-sqrtN)/(float64(n)-sqrtN))
}
