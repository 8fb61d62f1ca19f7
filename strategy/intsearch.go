package strategy

// intAStar is approx.PenaltyAStar specialized to plain int vertex IDs
// and a neighbor closure, for use on abstraction levels (which are
// int-indexed) rather than the literal *graph.Graph approx.PenaltyAStar
// operates on.
func intAStar(neighbors func(int) []int, source, target int, penalty map[int]int) []int {
	if source == target {
		penalty[source]++
		return []int{source}
	}

	dist := map[int]int{source: 0}
	predecessor := map[int]int{}
	visited := map[int]bool{}

	for {
		cur, ok := intMinUnvisited(dist, visited)
		if !ok {
			panic("strategy: no path from source to target during fixation search")
		}
		if cur == target {
			break
		}
		visited[cur] = true
		for _, n := range neighbors(cur) {
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

	var path []int
	cur := target
	for {
		path = append(path, cur)
		p, ok := predecessor[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, v := range path {
		penalty[v]++
	}
	return path
}

func intMinUnvisited(dist map[int]int, visited map[int]bool) (int, bool) {
	best := 0
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
