package strategy

import (
	"math"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
)

// pageRankWeights computes PageRank over nodes using edgeWeight(u, v) as
// the weight of the directed arc u->v (each undirected edge is modeled
// as a pair of opposing weighted arcs, matching how networkx.pagerank
// treats an undirected weighted graph). Returns (nil, false) if the
// power iteration fails to produce a finite probability distribution,
// so callers can fall back to degree weighting per spec.md §7's
// "arithmetic convergence failures ... caught and replaced by
// degree-weighting".
//
// Grounded on EXPANSION 4.15 / abstract_minimax_disjoint_refinement.py's
// use of networkx.pagerank, reimplemented with gonum's
// graph/network.PageRankWeighted (see DESIGN.md for the directed-arc
// modeling decision this required).
func pageRankWeights(nodes []int, neighbors func(int) []int, edgeWeight func(u, v int) float64) (map[int]float64, bool) {
	g := simple.NewWeightedDirectedGraph(0, 0)
	for _, n := range nodes {
		g.AddNode(simple.Node(int64(n)))
	}
	for _, u := range nodes {
		for _, v := range neighbors(u) {
			w := edgeWeight(u, v)
			if w <= 0 {
				w = 1e-9
			}
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(int64(u)), T: simple.Node(int64(v)), W: w})
		}
	}

	ranks := network.PageRankWeighted(g, 0.85, 1e-6)
	if len(ranks) == 0 {
		return nil, false
	}

	out := make(map[int]float64, len(nodes))
	var sum float64
	for _, n := range nodes {
		r := ranks[int64(n)]
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, false
		}
		out[n] = r
		sum += r
	}
	if sum <= 0 {
		return nil, false
	}
	return out, true
}

// degreeWeights is the fallback vertex weighting used when PageRank
// fails to converge.
func degreeWeights(nodes []int, degree func(int) int) map[int]float64 {
	out := make(map[int]float64, len(nodes))
	for _, n := range nodes {
		out[n] = float64(degree(n))
	}
	return out
}
