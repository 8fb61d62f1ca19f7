package strategy

import (
	"time"

	"github.com/corvusgraph/pursuit/abstraction"
	"github.com/corvusgraph/pursuit/approx"
)

// computeInitPositions chooses the cops' starting vertices: PageRank
// (falling back to degree weighting) drives a weighted k-center
// computed on the literal graph if its distance and edge-rank caches
// populate in time; otherwise at the finest level of the hierarchy for
// which both the shortest-path and edge-rank stores populated, refined
// to literal vertices by picking the highest-degree literal vertex each
// abstract center represents. Falls back to the unweighted Gonzalez
// k-center on the literal graph if no level's stores populated at all.
//
// Grounded on
// abstract_minimax_disjoint_refinement.py's compute_init_positions.
func (s *Strategy) computeInitPositions(finish time.Time) []int {
	literalNodes := s.literalDenseNodes()

	literalShortestPaths := newLiteralDistanceCache(s.g, s.hierarchy, literalNodes, finish)
	literalRanks := newLiteralEdgeRankCache(s.g, s.hierarchy, literalNodes, finish)

	if literalShortestPaths != nil && literalRanks != nil {
		return s.computeCenters(literalNodes, s.literalNeighbors, literalRanks, literalShortestPaths)
	}

	suited := s.hierarchy.LowestFitting(func(a *abstraction.GraphAbstraction) bool {
		return a.ShortestPathLengths.IsPopulated() && a.UndominatedNeighborhood.IsPopulated()
	})
	if suited == nil {
		centers := approx.GonzalezKCenter(s.g, s.nCops)
		out := make([]int, len(centers))
		for i, c := range centers {
			out[i] = s.hierarchy.LiteralIndex(c)
		}
		return out
	}

	abstractCenters := s.computeCenters(suited.Nodes(), suited.Neighbors, suited.UndominatedNeighborhood.Ranks, suited.ShortestPathLengths.PairwiseDistances)

	out := make([]int, len(abstractCenters))
	for i, center := range abstractCenters {
		out[i] = s.highestDegreeLiteralInvert(suited, center)
	}
	return out
}

func (s *Strategy) literalDenseNodes() []int {
	vertices := s.g.Vertices()
	out := make([]int, len(vertices))
	for i, v := range vertices {
		out[i] = s.hierarchy.LiteralIndex(v)
	}
	return out
}

func (s *Strategy) highestDegreeLiteralInvert(level *abstraction.GraphAbstraction, abstractNode int) int {
	candidates := level.InvertNode(abstractNode)
	best := candidates[0]
	bestDeg := -1
	for _, c := range candidates {
		id := s.hierarchy.LiteralID(c)
		d, _ := s.g.Degree(id)
		if d > bestDeg {
			bestDeg = d
			best = c
		}
	}
	return best
}

// computeCenters computes PageRank (falling back to degree) over nodes
// weighted by rankWeights' edge ranks, then feeds the result into
// Wang-Cheng weighted k-center.
func (s *Strategy) computeCenters(nodes []int, neighbors func(int) []int, rankWeights map[[2]int]float64, distances map[int]map[int]int) []int {
	edgeWeight := func(u, v int) float64 {
		if w, ok := rankWeights[[2]int{u, v}]; ok {
			return w
		}
		return 1
	}

	weights, ok := pageRankWeights(nodes, neighbors, edgeWeight)
	if !ok {
		weights = degreeWeights(nodes, func(v int) int { return len(neighbors(v)) })
	}

	distMap := make(map[string]map[string]int, len(nodes))
	weightMap := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		row := make(map[string]int, len(distances[n]))
		for m, d := range distances[n] {
			row[itoa(m)] = d
		}
		distMap[itoa(n)] = row
		weightMap[itoa(n)] = weights[n]
	}

	centers := approx.WangChengWeightedKCenter(distMap, weightMap, s.nCops)
	out := make([]int, len(centers))
	for i, c := range centers {
		out[i] = atoi(c)
	}
	return out
}

func itoa(v int) string { return intToString(v) }
func atoi(s string) int { return stringToInt(s) }
