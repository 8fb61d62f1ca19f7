package minimax_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/minimax"
	"github.com/corvusgraph/pursuit/zobrist"
)

// triangle: 0-1-2-0. A single cop always wins this on a cop-win graph.
func triangleNeighbors(v int) []int {
	adj := map[int][]int{0: {1, 2}, 1: {0, 2}, 2: {0, 1}}
	return adj[v]
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, minimax.IsTerminal([]int{1, 2}, 2))
	assert.False(t, minimax.IsTerminal([]int{1, 2}, 3))
}

func TestAlphaBetaCopWinsOnTriangle(t *testing.T) {
	keys := zobrist.NewTable(3, 1, zobrist.WithSeed(1))
	tt := zobrist.NewTranspositionTable(keys)

	copTransitions := func(cops []int, _ int) [][]int {
		var out [][]int
		for _, n := range append(triangleNeighbors(cops[0]), cops[0]) {
			out = append(out, []int{n})
		}
		return out
	}
	robberTransitions := func(_ []int, robber int) []int {
		return append([]int{robber}, triangleNeighbors(robber)...)
	}

	_, value := minimax.AlphaBeta(tt, copTransitions, robberTransitions, []int{0}, 1, true, 4, time.Now().Add(time.Second), 0, 1)
	assert.Equal(t, 1.0, value)
}

func TestContourExpansionFindsHiddenCops(t *testing.T) {
	neighbors := func(v int) []int {
		adj := map[int][]int{0: {1}, 1: {0, 2}, 2: {1, 3}, 3: {2}}
		return adj[v]
	}
	levels := minimax.ContourExpansion(neighbors, []int{3}, 0, 5)
	require.NotEmpty(t, levels)
	last := levels[len(levels)-1]
	assert.Empty(t, last.HiddenCops)
}

func TestRepairPermutationFixesOrder(t *testing.T) {
	neighbors := func(v int) []int {
		adj := map[int][]int{0: {1}, 1: {0, 2}, 2: {1}}
		return adj[v]
	}
	// cop 0 at 1 can reach {0,1,2}; cop 1 at 0 can reach {0,1}.
	// move [0, 2] isn't assignable in that order (cop 1 can't reach 2),
	// but swapping it to [2, 0] is.
	fixed := minimax.RepairPermutation(neighbors, []int{1, 0}, []int{0, 2})
	require.Len(t, fixed, 2)
	assert.Equal(t, []int{2, 0}, fixed)
}

func TestIterativeDeepeningMinimaxEngine(t *testing.T) {
	keys := zobrist.NewTable(3, 1, zobrist.WithSeed(2))
	engine := minimax.NewEngine(triangleNeighbors, keys)

	fixated := func(positions []int, robber int) []int { return positions }
	move, won := engine.BestCopMove([]int{0}, 1, 4, fixated, time.Now().Add(time.Second))
	require.NotNil(t, move)
	assert.True(t, won)
}
