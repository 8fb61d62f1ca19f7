package minimax

// RepairPermutation finds a permutation of move that is actually
// reachable from copPositions in one step each, given that Zobrist
// hashing is invariant to cop ordering so a move returned by search may
// assign the wrong target to the wrong cop.
//
// Built as a bipartite maximum-cardinality matching between cop slots
// and move slots (an edge exists iff that cop can reach that move
// target in one step), using Kuhn's augmenting-path algorithm — the
// same BFS/DFS-augmenting-path idiom as the teacher's
// flow/edmonds_karp.go max-flow solver, specialized to unit capacities.
// Panics if no full matching exists: the caller guarantees move is
// reachable under some permutation before calling this (search only
// ever returns moves it has already verified are collectively legal).
func RepairPermutation(neighbors func(int) []int, copPositions []int, move []int) []int {
	n := len(move)
	reachable := make([][]bool, n)
	for i, pos := range copPositions {
		reachable[i] = make([]bool, n)
		possible := map[int]bool{pos: true}
		for _, nb := range neighbors(pos) {
			possible[nb] = true
		}
		for j, target := range move {
			reachable[i][j] = possible[target]
		}
	}

	already := true
	for i := range move {
		if !reachable[i][i] {
			already = false
			break
		}
	}
	if already {
		return append([]int(nil), move...)
	}

	matchOfMove := make([]int, n)
	for i := range matchOfMove {
		matchOfMove[i] = -1
	}

	var tryAugment func(cop int, visited []bool) bool
	tryAugment = func(cop int, visited []bool) bool {
		for j := 0; j < n; j++ {
			if !reachable[cop][j] || visited[j] {
				continue
			}
			visited[j] = true
			if matchOfMove[j] == -1 || tryAugment(matchOfMove[j], visited) {
				matchOfMove[j] = cop
				return true
			}
		}
		return false
	}

	for cop := 0; cop < n; cop++ {
		visited := make([]bool, n)
		if !tryAugment(cop, visited) {
			panic("minimax: RepairPermutation found no feasible cop/move matching")
		}
	}

	permuted := make([]int, n)
	for j, cop := range matchOfMove {
		permuted[cop] = move[j]
	}
	return permuted
}
