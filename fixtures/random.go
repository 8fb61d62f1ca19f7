package fixtures

import (
	"fmt"

	"github.com/corvusgraph/pursuit/graph"
)

// RandomSparse builds an Erdos-Renyi G(n,p) graph: n vertices "0".."n-1",
// each of the n*(n-1)/2 possible edges included independently with
// probability p. Grounded on builder/impl_random_sparse.go.
func RandomSparse(n int, p float64, opts ...Option) *graph.Graph {
	cfg := resolve(opts)
	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(nodeID(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				_ = g.AddEdge(nodeID(i), nodeID(j))
			}
		}
	}
	return g
}

// GNM builds an Erdos-Renyi G(n,M) graph: n vertices and exactly m
// distinct edges chosen uniformly at random, matching spec.md Scenario
// F's "randomly generated G(40, 120) graph" notation.
func GNM(n, m int, opts ...Option) *graph.Graph {
	cfg := resolve(opts)
	maxEdges := n * (n - 1) / 2
	if m > maxEdges {
		m = maxEdges
	}

	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(nodeID(i))
	}

	chosen := make(map[[2]int]bool, m)
	for len(chosen) < m {
		i := cfg.rng.Intn(n)
		j := cfg.rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if chosen[key] {
			continue
		}
		chosen[key] = true
		_ = g.AddEdge(nodeID(i), nodeID(j))
	}
	return g
}

// RandomRegular builds a d-regular simple graph on n vertices via
// repeated stub-matching, retrying on a stuck configuration until it
// succeeds or a bounded number of attempts is exhausted. Returns
// ErrOddDegreeProduct if n*d is odd, and a different error if every
// attempt gets stuck. Grounded on
// builder/impl_random_regular.go.
func RandomRegular(n, d int, opts ...Option) (*graph.Graph, error) {
	if (n*d)%2 != 0 {
		return nil, ErrOddDegreeProduct
	}
	cfg := resolve(opts)

	const maxAttempts = 100
	for attempt := 0; attempt < maxAttempts; attempt++ {
		g, ok := tryRandomRegular(n, d, cfg.rng)
		if ok {
			return g, nil
		}
	}
	return nil, fmt.Errorf("fixtures: no simple %d-regular graph on %d vertices found in %d attempts", d, n, maxAttempts)
}

func tryRandomRegular(n, d int, rng randIntn) (*graph.Graph, bool) {
	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}
	for i := len(stubs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		stubs[i], stubs[j] = stubs[j], stubs[i]
	}

	g := graph.New()
	for v := 0; v < n; v++ {
		_ = g.AddVertex(nodeID(v))
	}

	seen := make(map[[2]int]bool, len(stubs)/2)
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			return nil, false
		}
		seen[key] = true
		_ = g.AddEdge(nodeID(u), nodeID(v))
	}
	return g, true
}

type randIntn interface {
	Intn(n int) int
}
