// Package approx collects the approximation heuristics the engine uses
// wherever the exact optimum is intractable within a move deadline:
// unweighted and weight-biased k-center for initial placement, a
// multi-target shortest path / farthest-node pair for the same, and
// penalty-biased pursuit search for the disjoint-path fallback strategy.
//
// All routines operate over *graph.Graph and plain Go maps/slices rather
// than the networkx.Graph the original implementation used; distances
// are supplied by callers (typically via graph.Graph.ShortestPaths) so
// this package never recomputes BFS trees it doesn't need.
package approx

import "github.com/corvusgraph/pursuit/graph"

// GonzalezKCenter computes a 2-approximation for the unweighted vertex
// k-center problem: starting from the highest-degree vertex, repeatedly
// add the vertex farthest (in hop distance) from the current center set.
//
// Grounded on original_source/engine/modules/util/approximation.py's
// gon(), itself citing Gonzalez's "Clustering to minimize the maximum
// intercluster distance". Panics if g has no vertices or k <= 0 — a
// caller bug, not a runtime condition.
func GonzalezKCenter(g *graph.Graph, k int) []string {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		panic("approx: GonzalezKCenter called on empty graph")
	}
	if k <= 0 {
		panic("approx: GonzalezKCenter requires k > 0")
	}

	best := vertices[0]
	bestDeg := -1
	for _, v := range vertices {
		deg, _ := g.Degree(v)
		if deg > bestDeg {
			bestDeg = deg
			best = v
		}
	}
	centers := []string{best}

	if k > len(vertices) {
		k = len(vertices)
	}
	for len(centers) < k {
		centers = append(centers, FarthestNode(g, centers))
	}
	return centers
}

// FarthestNode returns the last vertex visited by a synchronized
// multi-source BFS seeded from sources — i.e. the vertex farthest (in
// hop distance) from the whole source set, with ties broken by BFS
// visitation order exactly as the Python original's deque-based
// farthest_node does.
func FarthestNode(g *graph.Graph, sources []string) string {
	if len(sources) == 0 {
		panic("approx: FarthestNode requires at least one source")
	}
	visited := make(map[string]bool)
	queue := append([]string(nil), sources...)
	last := sources[0]

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node] {
			continue
		}
		visited[node] = true
		last = node

		nbrs, err := g.Neighbors(node)
		if err != nil {
			continue
		}
		for _, n := range nbrs {
			if !visited[n] {
				queue = append(queue, n)
			}
		}
	}
	return last
}

// GreedyWeightedKCenter greedily selects vertices by descending weight,
// removing every vertex within 2*d hops of a newly chosen center from
// further consideration, until no candidates remain or more than
// upperBound centers have been picked (it then returns upperBound+1
// centers). Grounded on approximation.py's
// greedy_weighted_k_center; used internally by WangChengWeightedKCenter
// to search over candidate radii.
func GreedyWeightedKCenter(dist map[string]map[string]int, weights map[string]float64, d int, upperBound int) []string {
	remaining := make(map[string]bool, len(weights))
	for v := range weights {
		remaining[v] = true
	}

	var centers []string
	for len(remaining) > 0 {
		center := argmaxWeight(remaining, weights)
		centers = append(centers, center)
		if len(centers) > upperBound {
			break
		}
		delete(remaining, center)
		for v := range remaining {
			if dist[center][v] <= 2*d {
				delete(remaining, v)
			}
		}
	}
	return centers
}

func argmaxWeight(candidates map[string]bool, weights map[string]float64) string {
	best := ""
	bestW := 0.0
	first := true
	for v := range candidates {
		w := weights[v]
		if first || w > bestW {
			best, bestW, first = v, w, false
		}
	}
	return best
}

// WangChengWeightedKCenter computes a 2-approximation for the weighted
// vertex k-center problem: binary-search-free scan of all observed
// pairwise distances (ascending), using the smallest radius whose greedy
// solution fits within k centers; pads with the globally
// least-total-distance remaining vertices if the chosen radius leaves
// room to spare, and finally recycles the greedily chosen centers (in
// the order they were selected, deterministically, unlike the Python
// original's random.choices) if there are still fewer than k.
//
// Grounded on approximation.py's wang_cheng_weighted_k_center. dist must
// be a complete pairwise-distance map over all vertices in weights.
func WangChengWeightedKCenter(dist map[string]map[string]int, weights map[string]float64, k int) []string {
	distinct := distinctDistances(dist)

	var centers []string
	for _, d := range distinct {
		candidate := GreedyWeightedKCenter(dist, weights, d, k)
		if len(candidate) <= k {
			centers = candidate
			break
		}
	}

	if len(centers) < k && len(weights) > 0 {
		chosen := make(map[string]bool, len(centers))
		for _, c := range centers {
			chosen[c] = true
		}
		var remaining []string
		for v := range weights {
			if !chosen[v] {
				remaining = append(remaining, v)
			}
		}
		sortByTotalDistance(remaining, dist)
		need := k - len(centers)
		if need > len(remaining) {
			need = len(remaining)
		}
		centers = append(centers, remaining[:need]...)

		for len(centers) < k {
			// Deterministic recycling: cycle through already-chosen
			// centers in order rather than the original's random.choices,
			// since this package has no injected RNG and the engine
			// favors reproducibility over literal parity here.
			centers = append(centers, centers[len(centers)%max(len(chosen), 1)])
		}
	}
	return centers
}

func distinctDistances(dist map[string]map[string]int) []int {
	set := make(map[int]struct{})
	for _, row := range dist {
		for _, d := range row {
			set[d] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	// simple insertion sort; these sets are small (bounded by graph diameter)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func sortByTotalDistance(nodes []string, dist map[string]map[string]int) {
	total := func(v string) int {
		sum := 0
		for _, d := range dist[v] {
			sum += d
		}
		return sum
	}
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && total(nodes[j-1]) > total(nodes[j]); j-- {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
