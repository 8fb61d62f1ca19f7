package abstraction

import (
	"math"
	"sort"
)

// unionFind is a standard union-by-rank, path-compressing disjoint-set
// structure over dense int IDs 0..n-1.
//
// Grounded on the DSU idiom in prim_kruskal/kruskal.go, adapted from
// string-keyed maps to int-indexed slices since pooling always runs
// over a levelGraph's dense vertex IDs.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(v int) int {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}
	return v
}

func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return
	}
	switch {
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}
}

type meanDegreeEdge struct {
	meanDegree float64
	u, v       int
}

// poolVertices computes a structure-preserving contraction of g that
// roughly halves its vertex count: adjacent node pairs are contracted
// in ascending order of their geometric-mean degree, first requiring
// both endpoints unmarked (strict phase), then allowing one already-
// marked endpoint to absorb an unmarked neighbor (loose phase) if the
// strict phase didn't contract enough pairs. Requires g to be
// connected (the caller — the hierarchy — only ever pools one connected
// island at a time).
//
// Grounded on original_source/engine/modules/abstraction/pooling.py's
// abstract_vertex_pooling.
func poolVertices(g *levelGraph) map[int]int {
	n := len(g.nodes)
	index := make(map[int]int, n)
	for i, v := range g.nodes {
		index[v] = i
	}

	uf := newUnionFind(n)
	marked := make([]bool, n)
	nAbstract := n
	target := (n + 1) / 2

	contract := func(strict bool, edges []meanDegreeEdge) {
		sort.Slice(edges, func(i, j int) bool { return edges[i].meanDegree < edges[j].meanDegree })
		for _, e := range edges {
			if nAbstract <= target {
				break
			}
			um, vm := marked[e.u], marked[e.v]
			if strict && (um || vm) {
				continue
			}
			if !strict && um == vm {
				continue
			}
			uf.union(e.u, e.v)
			nAbstract--
			marked[e.u] = true
			marked[e.v] = true
		}
	}

	meanDegree := func(u, v int) float64 {
		du := float64(g.degree(g.nodes[u]))
		dv := float64(g.degree(g.nodes[v]))
		return math.Sqrt(du * dv)
	}

	var strictEdges []meanDegreeEdge
	for _, e := range g.edges() {
		if e[0] == e[1] {
			continue
		}
		u, v := index[e[0]], index[e[1]]
		strictEdges = append(strictEdges, meanDegreeEdge{meanDegree(u, v), u, v})
	}
	contract(true, strictEdges)

	if nAbstract > target {
		var looseEdges []meanDegreeEdge
		for i, node := range g.nodes {
			if marked[i] {
				continue
			}
			for _, nbr := range g.neighbors(node) {
				j := index[nbr]
				if marked[j] {
					looseEdges = append(looseEdges, meanDegreeEdge{meanDegree(i, j), i, j})
				}
			}
		}
		contract(false, looseEdges)
	}

	roots := make(map[int]int)
	mapping := make(map[int]int, n)
	for i, node := range g.nodes {
		root := uf.find(i)
		abstractID, ok := roots[root]
		if !ok {
			abstractID = len(roots)
			roots[root] = abstractID
		}
		mapping[node] = abstractID
	}
	return mapping
}
