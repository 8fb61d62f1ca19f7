package minimax

// ContourLevel is one step of the contour expansion: the set of
// vertices visited by the BFS so far (inclusive of the frontier just
// reached), and the indices of cops not yet absorbed into that visited
// set — the cops that must be fixated (moved by a predetermined
// function rather than searched over) if minimax runs on this level's
// subgraph.
type ContourLevel struct {
	Visited    map[int]bool
	HiddenCops map[int]bool
}

// ContourExpansion performs a BFS outward from robberPosition over
// neighbors, yielding one ContourLevel each time the BFS frontier
// absorbs at least one previously-hidden cop, up to maxRadius hops.
// Cops sharing the robber's starting vertex are never hidden (a
// same-vertex cop already ends the game).
//
// Grounded on
// original_source/engine/modules/minimax/engine.py's
// effective_game_graph.
func ContourExpansion(neighbors func(int) []int, copPositions []int, robberPosition int, maxRadius int) []ContourLevel {
	hidden := make(map[int]bool, len(copPositions))
	for i, c := range copPositions {
		if c != robberPosition {
			hidden[i] = true
		}
	}

	var levels []ContourLevel
	contour := map[int]bool{robberPosition: true}
	visited := make(map[int]bool)
	radius := 0

	for len(contour) > 0 {
		if radius > maxRadius {
			break
		}
		for v := range contour {
			visited[v] = true
		}

		next := make(map[int]bool)
		for v := range contour {
			for _, n := range neighbors(v) {
				if !visited[n] {
					next[n] = true
				}
			}
		}

		var newlyFound []int
		for copID := range hidden {
			if next[copPositions[copID]] {
				newlyFound = append(newlyFound, copID)
			}
		}

		if len(newlyFound) > 0 {
			for _, copID := range newlyFound {
				delete(hidden, copID)
			}
			combined := make(map[int]bool, len(visited)+len(next))
			for v := range visited {
				combined[v] = true
			}
			for v := range next {
				combined[v] = true
			}
			hiddenCopy := make(map[int]bool, len(hidden))
			for k := range hidden {
				hiddenCopy[k] = true
			}
			levels = append(levels, ContourLevel{Visited: combined, HiddenCops: hiddenCopy})
		}

		contour = next
		radius++
	}
	return levels
}

// RestrictedNeighbors returns a neighbor function equivalent to
// neighbors but restricted to vertices inside visited — i.e. the
// contour level's effective subgraph.
func RestrictedNeighbors(neighbors func(int) []int, visited map[int]bool) func(int) []int {
	return func(v int) []int {
		var out []int
		for _, n := range neighbors(v) {
			if visited[n] {
				out = append(out, n)
			}
		}
		return out
	}
}
