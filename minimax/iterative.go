package minimax

import (
	"time"

	"github.com/corvusgraph/pursuit/deadline"
	"github.com/corvusgraph/pursuit/zobrist"
)

// CopWinValue is the AlphaBeta evaluation that means "cops win with
// optimal play at this depth".
const CopWinValue = 1.0

// FixatedSteps computes, for the cops outside the current contour
// (identified by index), their predetermined next step given their
// current positions and the robber's position — typically disjoint-path
// pursuit (see approx.DisjointPursuitSteps).
type FixatedSteps func(fixatedCopPositions []int, robberPosition int) []int

// IterativeDeepeningMinimax runs AlphaBeta at increasing depths from 0
// up to maxDepth, stopping early once a depth proves a cop win or the
// deadline is reached. Cops whose index is in hiddenCops are not
// searched over — their move at every depth is fixed by fixatedSteps —
// which keeps the branching factor proportional to the contour size
// rather than the full cop count.
//
// Returns the move found at the last completed depth (permuted back
// into the caller's cop ordering when copTurn) and whether it is a
// proven cop win.
//
// Grounded on
// original_source/engine/modules/minimax/iterative_deepening.py's
// iterative_deepening_minimax.
func IterativeDeepeningMinimax(
	graphNeighbors func(int) []int,
	effectiveNeighbors func(int) []int,
	copPositions []int,
	robberPosition int,
	copTurn bool,
	maxDepth int,
	finish time.Time,
	tt *zobrist.TranspositionTable,
	hiddenCops map[int]bool,
	fixatedSteps FixatedSteps,
) (zobrist.Move, bool) {
	var fixatedCops []int
	var fixatedPositions []int
	for i := range hiddenCops {
		fixatedCops = append(fixatedCops, i)
		fixatedPositions = append(fixatedPositions, copPositions[i])
	}
	fixedMoves := make(map[int]int)
	if len(fixatedCops) > 0 {
		steps := fixatedSteps(fixatedPositions, robberPosition)
		for k, copID := range fixatedCops {
			fixedMoves[copID] = steps[k]
		}
	}

	transitionCache := make(map[int][]int)
	copTransitionsOf := func(pos int) []int {
		if cached, ok := transitionCache[pos]; ok {
			return cached
		}
		opts := append([]int(nil), graphNeighbors(pos)...)
		opts = append(opts, pos)
		transitionCache[pos] = opts
		return opts
	}

	copTransitions := func(curCops []int, _ int) [][]int {
		options := make([][]int, len(curCops))
		for i, pos := range curCops {
			if hiddenCops[i] {
				options[i] = []int{fixedMoves[i]}
			} else {
				options[i] = copTransitionsOf(pos)
			}
		}
		return cartesianProduct(options)
	}

	robberTransitions := func(_ []int, robberPos int) []int {
		out := append([]int{robberPos}, effectiveNeighbors(robberPos)...)
		return out
	}

	var move zobrist.Move
	if copTurn {
		move = zobrist.Move(append([]int(nil), copPositions...))
	} else {
		move = zobrist.Move{robberPosition}
	}
	value := 0.0

	loop := deadline.NewLoop(finish, 2)
	for depth := 0; depth <= maxDepth; depth++ {
		ran := loop.Try(func() {
			move, value = AlphaBeta(tt, copTransitions, robberTransitions, copPositions, robberPosition, copTurn, depth, finish, 0, 1)
		})
		if !ran || value == CopWinValue {
			break
		}
	}

	if copTurn {
		move = RepairPermutation(graphNeighbors, copPositions, move)
	}
	return move, value == CopWinValue
}

func cartesianProduct(options [][]int) [][]int {
	result := [][]int{{}}
	for _, opt := range options {
		var next [][]int
		for _, partial := range result {
			for _, v := range opt {
				combo := append(append([]int(nil), partial...), v)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}
