// Package abstraction builds and queries the hierarchy of coarsened
// graphs the cops strategy searches over: each level is roughly half
// the size of the one below it, built by contracting characteristic
// neighbor pairs (vertex pooling), up to a graph of at most
// SizeThreshold vertices at the top of the chain.
//
// Every level, including the literal one, works over dense int vertex
// IDs rather than the literal graph's string IDs (see SPEC_FULL.md's
// "remap to dense indices internally" note), so pooling, Zobrist
// hashing, and minimax on this package's output operate on plain ints.
package abstraction

import "github.com/corvusgraph/pursuit/graph"

// levelGraph is a small undirected simple graph over dense int vertex
// IDs, used internally to represent one level of the abstraction chain.
type levelGraph struct {
	nodes []int
	adj   map[int]map[int]struct{}
}

func newLevelGraph() *levelGraph {
	return &levelGraph{adj: make(map[int]map[int]struct{})}
}

func (l *levelGraph) addNode(v int) {
	if _, ok := l.adj[v]; !ok {
		l.nodes = append(l.nodes, v)
		l.adj[v] = make(map[int]struct{})
	}
}

func (l *levelGraph) addEdge(u, v int) {
	l.addNode(u)
	l.addNode(v)
	if u == v {
		return
	}
	l.adj[u][v] = struct{}{}
	l.adj[v][u] = struct{}{}
}

func (l *levelGraph) degree(v int) int {
	return len(l.adj[v])
}

func (l *levelGraph) neighbors(v int) []int {
	out := make([]int, 0, len(l.adj[v]))
	for n := range l.adj[v] {
		out = append(out, n)
	}
	return out
}

func (l *levelGraph) edges() [][2]int {
	seen := make(map[[2]int]struct{})
	var out [][2]int
	for u, nbrs := range l.adj {
		for v := range nbrs {
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				out = append(out, key)
			}
		}
	}
	return out
}

// literalLevelGraph translates a literal *graph.Graph into a levelGraph
// over dense int IDs 0..n-1, along with the ID<->string mappings needed
// to translate query results back to the caller's vocabulary.
func literalLevelGraph(g *graph.Graph) (lg *levelGraph, indexOf map[string]int, idOf map[int]string) {
	vertices := g.Vertices()
	indexOf = make(map[string]int, len(vertices))
	idOf = make(map[int]string, len(vertices))
	for i, v := range vertices {
		indexOf[v] = i
		idOf[i] = v
	}

	lg = newLevelGraph()
	for _, v := range vertices {
		lg.addNode(indexOf[v])
	}
	for _, v := range vertices {
		nbrs, _ := g.Neighbors(v)
		for _, n := range nbrs {
			lg.addEdge(indexOf[v], indexOf[n])
		}
	}
	return lg, indexOf, idOf
}
