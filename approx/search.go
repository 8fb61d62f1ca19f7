package approx

import "github.com/corvusgraph/pursuit/graph"

// MultiTargetShortestPath returns the shortest path (inclusive of both
// endpoints) from source to the nearest vertex in targets, breaking ties
// by BFS visitation order. Panics if no target is reachable from source
// — the abstraction and strategy packages only ever call this with a
// target set known to be reachable (e.g. all literal vertices mapping
// to a coarser vertex that does contain a path), so an unreachable
// target set is a programmer error, matching the Python original's
// raised Exception.
//
// Grounded on original_source/engine/modules/util/search.py's
// multi_target_shortest_path.
func MultiTargetShortestPath(g *graph.Graph, source string, targets map[string]bool) []string {
	if targets[source] {
		return []string{source}
	}

	visited := map[string]bool{}
	predecessor := map[string]string{}
	queue := []string{source}
	visited[source] = true

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(node)
		if err != nil {
			continue
		}
		for _, n := range nbrs {
			if visited[n] {
				continue
			}
			visited[n] = true
			predecessor[n] = node
			if targets[n] {
				return tracePath(n, predecessor)
			}
			queue = append(queue, n)
		}
	}
	panic("approx: no path from source to any target")
}

func tracePath(target string, predecessor map[string]string) []string {
	path := []string{target}
	for {
		p, ok := predecessor[target]
		if !ok {
			break
		}
		path = append(path, p)
		target = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FirstStepOnPath returns the vertex a pursuer should move to this turn
// given a path from its current position to its target: the second
// element, or the only element if the path has length 1 (already at the
// target).
func FirstStepOnPath(path []string) string {
	if len(path) == 0 {
		panic("approx: FirstStepOnPath called with empty path")
	}
	if len(path) == 1 {
		return path[0]
	}
	return path[1]
}

// PenaltyAStar finds a shortest path from source to target biased by a
// mutable per-vertex penalty map: penalty[v] acts as extra edge cost for
// entering v, and is incremented by one for every vertex the returned
// path passes through. Run across several cops in sequence (as
// DisjointPursuitSteps does), this spreads their paths across distinct
// corridors instead of having every cop take the same shortest route.
//
// Grounded on search.py's penalty_astar, implemented here as a
// penalty-weighted Dijkstra since the literal graph is unweighted and a
// plain priority-queue relaxation is simpler than wiring an A* heuristic
// for unit-weight graphs.
func PenaltyAStar(g *graph.Graph, source, target string, penalty map[string]int) []string {
	if source == target {
		penalty[source]++
		return []string{source}
	}

	dist := map[string]int{source: 0}
	predecessor := map[string]string{}
	visited := map[string]bool{}

	for {
		cur, ok := minUnvisited(dist, visited)
		if !ok {
			panic("approx: no path from source to target")
		}
		if cur == target {
			break
		}
		visited[cur] = true

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			continue
		}
		for _, n := range nbrs {
			if visited[n] {
				continue
			}
			cand := dist[cur] + 1 + penalty[n]
			if d, ok := dist[n]; !ok || cand < d {
				dist[n] = cand
				predecessor[n] = cur
			}
		}
	}

	path := tracePath(target, predecessor)
	for _, v := range path {
		penalty[v]++
	}
	return path
}

func minUnvisited(dist map[string]int, visited map[string]bool) (string, bool) {
	best := ""
	bestD := 0
	found := false
	for v, d := range dist {
		if visited[v] {
			continue
		}
		if !found || d < bestD {
			best, bestD, found = v, d, true
		}
	}
	return best, found
}

// DisjointPursuitSteps computes, for each cop position in order, a
// single-step move toward robberPosition using PenaltyAStar with a
// shared penalty map — the disjoint-path pursuit fallback strategy.
// Always returns a legal move for every cop, even when no winning
// strategy is known at the current abstraction level.
//
// Grounded on search.py's disjoint_search_steps.
func DisjointPursuitSteps(g *graph.Graph, copPositions []string, robberPosition string) []string {
	penalty := make(map[string]int)
	moves := make([]string, len(copPositions))
	for i, pos := range copPositions {
		path := PenaltyAStar(g, pos, robberPosition, penalty)
		moves[i] = FirstStepOnPath(path)
	}
	return moves
}
