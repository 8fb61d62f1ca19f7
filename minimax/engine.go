package minimax

import (
	"time"

	"github.com/corvusgraph/pursuit/deadline"
	"github.com/corvusgraph/pursuit/zobrist"
)

// Engine wires a transposition table to a fixed graph (a literal graph
// or one abstraction level, whichever the caller is searching) and
// reuses that table across successive calls to BestCopMove, so
// transpositions discovered evaluating one move inform the next.
//
// Grounded on
// original_source/engine/modules/minimax/engine.py's MinimaxEngine.
type Engine struct {
	neighbors func(int) []int
	tt        *zobrist.TranspositionTable
}

// NewEngine creates an Engine searching over the graph described by
// neighbors, using keys to hash configurations.
func NewEngine(neighbors func(int) []int, keys *zobrist.Table) *Engine {
	return &Engine{neighbors: neighbors, tt: zobrist.NewTranspositionTable(keys)}
}

// BestCopMove searches increasingly broad contours around the robber —
// fixating cops outside each contour's radius via fixatedStep — running
// iterative-deepening minimax on each contour subgraph and returning as
// soon as one proves a cop win. If no contour up to depth hops proves a
// win, it returns the move (and false) from the widest contour tried.
func (e *Engine) BestCopMove(
	copPositions []int,
	robberPosition int,
	depth int,
	fixatedStep FixatedSteps,
	finish time.Time,
) (zobrist.Move, bool) {
	move := zobrist.Move(append([]int(nil), copPositions...))
	isWinning := false

	levels := ContourExpansion(e.neighbors, copPositions, robberPosition, depth)
	loop := deadline.NewLoop(finish, 2)

	for _, level := range levels {
		effNeighbors := RestrictedNeighbors(e.neighbors, level.Visited)
		ran := loop.Try(func() {
			move, isWinning = IterativeDeepeningMinimax(
				e.neighbors,
				effNeighbors,
				copPositions,
				robberPosition,
				true,
				depth,
				finish,
				e.tt,
				level.HiddenCops,
				fixatedStep,
			)
		})
		if !ran {
			break
		}
		if isWinning {
			return move, true
		}
	}

	return move, isWinning
}
