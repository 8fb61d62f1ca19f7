// Package minimax implements the cops-and-robbers game-tree search: a
// depth-limited alpha-beta minimax core, the contour-expansion subgraph
// sequence that lets cops outside the robber's blast radius be
// fixated, iterative deepening across depths with early exit on a
// proven cop win, and permutation repair for the Zobrist table's
// order-invariant moves.
package minimax

import (
	"time"

	"github.com/corvusgraph/pursuit/zobrist"
)

// CopTransitions enumerates every legal next cop-position vector given
// the current configuration.
type CopTransitions func(copPositions []int, robberPosition int) [][]int

// RobberTransitions enumerates every legal next robber position given
// the current configuration.
type RobberTransitions func(copPositions []int, robberPosition int) []int

// IsTerminal reports whether the robber shares a vertex with some cop —
// a cop win.
func IsTerminal(copPositions []int, robberPosition int) bool {
	for _, c := range copPositions {
		if c == robberPosition {
			return true
		}
	}
	return false
}

// timeSafetyMargin mirrors the Python original's 0.001/(remaining_depth+1)
// safety window: the reserved slack before the hard deadline is 1ms at
// remaining depth 0 and shrinks as the remaining depth grows.
func timeSafetyMargin(remainingDepth int) time.Duration {
	return time.Duration(float64(time.Millisecond) / float64(remainingDepth+1))
}

// AlphaBeta performs depth-limited minimax with alpha-beta pruning from
// a configuration, backed by a shared transposition table. It returns
// the best move found and its evaluation: 1 for a cop win, 0 for a
// robber win (round-cap survival), and a value in (0, 1) — 0.5 when the
// deadline cuts the search off before it reaches a leaf — for
// inconclusive partial searches.
//
// Grounded on
// original_source/engine/modules/minimax/alpha_beta.py's
// minimax_alpha_beta.
func AlphaBeta(
	tt *zobrist.TranspositionTable,
	copTransitions CopTransitions,
	robberTransitions RobberTransitions,
	copPositions []int,
	robberPosition int,
	copTurn bool,
	remainingDepth int,
	finish time.Time,
	alpha, beta float64,
) (zobrist.Move, float64) {
	if move, value, ok := tt.Lookup(copPositions, robberPosition, copTurn, remainingDepth); ok {
		return move, value
	}

	bestMove := zobrist.Move(append([]int(nil), copPositions...))
	evaluation := alpha
	if !copTurn {
		bestMove = zobrist.Move{robberPosition}
		evaluation = beta
	}

	switch {
	case IsTerminal(copPositions, robberPosition) || remainingDepth <= 0:
		if IsTerminal(copPositions, robberPosition) {
			evaluation = 1
		} else {
			evaluation = 0
		}

	case time.Until(finish) <= timeSafetyMargin(remainingDepth):
		return bestMove, 0.5

	case copTurn:
		for _, successor := range copTransitions(copPositions, robberPosition) {
			_, successorEval := AlphaBeta(tt, copTransitions, robberTransitions, successor, robberPosition, false, remainingDepth-1, finish, alpha, beta)
			if successorEval > evaluation {
				evaluation = successorEval
				bestMove = zobrist.Move(append([]int(nil), successor...))
			}
			if evaluation > alpha {
				alpha = evaluation
			}
			if evaluation >= beta {
				break
			}
		}

	default:
		for _, successor := range robberTransitions(copPositions, robberPosition) {
			_, successorEval := AlphaBeta(tt, copTransitions, robberTransitions, copPositions, successor, true, remainingDepth, finish, alpha, beta)
			if successorEval < evaluation {
				evaluation = successorEval
				bestMove = zobrist.Move{successor}
			}
			if evaluation < beta {
				beta = evaluation
			}
			if evaluation <= alpha {
				break
			}
		}
	}

	tt.Store(copPositions, robberPosition, copTurn, remainingDepth, bestMove, evaluation)
	return bestMove, evaluation
}
