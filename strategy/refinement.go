package strategy

import (
	"strconv"
	"time"

	"github.com/corvusgraph/pursuit/abstraction"
	"github.com/corvusgraph/pursuit/approx"
	"github.com/corvusgraph/pursuit/zobrist"
)

// minimaxRefinement runs minimax at undecided (the highest level of the
// hierarchy where the robber isn't yet caught abstractly), then tries to
// confirm the resulting move at progressively finer levels — skipping a
// level's confirmation with probability timeoutProb(key), which halves
// each time it fires so confirmation eventually always runs again; the
// probability is set to 1 while a confirmation runs and back to 0 once
// it returns, so it stays raised only after an unfinished one — and
// finally translates whichever level it settles on down to a literal
// move.
//
// Grounded on
// abstract_minimax_disjoint_refinement.py's minimax_refinement.
func (s *Strategy) minimaxRefinement(copIdx []int, robberIdx int, undecided *abstraction.GraphAbstraction, finish time.Time) []int {
	level := undecided
	move, winning := s.abstractMinimax(level, level.AbstractNodes(copIdx), level.AbstractNode(robberIdx), finish)
	if !winning {
		return s.literalDisjointSteps(copIdx, robberIdx)
	}

	for {
		finer := s.hierarchy.LowestAbstractionHigherThan(level)
		if finer == nil {
			if literalMove, literalWinning := s.literalEngine.BestCopMove(copIdx, robberIdx, MinimaxDepth, s.getFixatedSteps(nil), finish); literalWinning {
				return []int(literalMove)
			}
			break
		}

		key := positionKey(copIdx, robberIdx) + "@" + strconv.Itoa(level.NNodes)
		if s.rng.Float64() < s.timeoutProb(key) {
			s.minimaxTimeoutProbability[key] = s.timeoutProb(key) / 2
			break
		}

		s.minimaxTimeoutProbability[key] = 1
		finerMove, finerWinning := s.abstractMinimax(finer, finer.AbstractNodes(copIdx), finer.AbstractNode(robberIdx), finish)
		s.minimaxTimeoutProbability[key] = 0
		if !finerWinning {
			break
		}
		level, move = finer, finerMove
	}

	return s.abstractRefinementSearch(level, copIdx, []int(move))
}

// abstractMinimax runs the minimax engine belonging to level, using
// level's own fixation search for cops minimax leaves outside the
// current contour.
func (s *Strategy) abstractMinimax(level *abstraction.GraphAbstraction, copPositions []int, robberPosition int, finish time.Time) (zobrist.Move, bool) {
	return s.levelEngines[level].BestCopMove(copPositions, robberPosition, MinimaxDepth, s.getFixatedSteps(level), finish)
}

// abstractRefinementSearch translates a winning move chosen at level's
// granularity into one literal step per cop: a cop whose current
// position already abstracts to its target stays put; otherwise it
// takes the first step of a shortest path toward any literal vertex the
// target abstract node represents.
//
// Grounded on
// abstract_minimax_disjoint_refinement.py's abstract_refinement_search.
func (s *Strategy) abstractRefinementSearch(level *abstraction.GraphAbstraction, literalCops []int, abstractTargets []int) []int {
	out := make([]int, len(literalCops))
	for i, literalCop := range literalCops {
		target := abstractTargets[i]
		if level.AbstractNode(literalCop) == target {
			out[i] = literalCop
			continue
		}

		targetLiterals := level.InvertNode(target)
		targetIDs := make(map[string]bool, len(targetLiterals))
		for _, t := range targetLiterals {
			targetIDs[s.hierarchy.LiteralID(t)] = true
		}

		currentID := s.hierarchy.LiteralID(literalCop)
		path := approx.MultiTargetShortestPath(s.g, currentID, targetIDs)
		next := approx.FirstStepOnPath(path)
		out[i] = s.hierarchy.LiteralIndex(next)
	}
	return out
}
