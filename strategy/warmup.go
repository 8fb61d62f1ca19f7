package strategy

import (
	"math"
	"time"

	"github.com/corvusgraph/pursuit/abstraction"
	"github.com/corvusgraph/pursuit/deadline"
)

// warmup primes the abstraction level engines' transposition tables by
// running self-play minimax descents from the computed initial cop
// placement against robber starts sampled by softmax-weighted distance
// from that placement, so Step's first real call benefits from cached
// subtree evaluations instead of searching cold.
//
// Grounded on
// abstract_minimax_disjoint_refinement.py's warmup/warmup_minimax_refinement.
func (s *Strategy) warmup(finish time.Time) {
	nodes := s.literalDenseNodes()
	if len(nodes) == 0 {
		return
	}
	probabilities := s.warmupRobberSamplingWeights(nodes)

	loop := deadline.NewLoop(finish, deadline.DefaultTolerance)
	rounds := 0
	for {
		ran := loop.Try(func() {
			robber := nodes[sampleWeighted(s.rng.Float64(), probabilities)]
			s.warmupMinimaxRefinement(s.initPositions, robber, finish)
			rounds++
		})
		if !ran {
			break
		}
	}
	s.log.Debug().Int("rounds", rounds).Msg("strategy: warmup complete")
}

// warmupRobberSamplingWeights weighs each literal vertex by the softmax
// of its distance from the nearest initial cop position, so warmup
// spends more of its budget on robber starts the cops would actually
// have to travel to reach, matching the Python original's sampling
// distribution.
func (s *Strategy) warmupRobberSamplingWeights(nodes []int) []float64 {
	indexOf := make(map[int]int, len(nodes))
	for i, n := range nodes {
		indexOf[n] = i
	}

	dist := make([]float64, len(nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	for _, cop := range s.initPositions {
		d, err := s.g.ShortestPaths(s.hierarchy.LiteralID(cop))
		if err != nil {
			continue
		}
		for id, hops := range d.Dist {
			if idx, ok := indexOf[s.hierarchy.LiteralIndex(id)]; ok && float64(hops) < dist[idx] {
				dist[idx] = float64(hops)
			}
		}
	}
	return softmax(dist)
}

func softmax(x []float64) []float64 {
	max := math.Inf(-1)
	for _, v := range x {
		if !math.IsInf(v, 1) && v > max {
			max = v
		}
	}
	if math.IsInf(max, -1) {
		max = 0
	}

	weights := make([]float64, len(x))
	sum := 0.0
	for i, v := range x {
		if math.IsInf(v, 1) {
			continue
		}
		weights[i] = math.Exp(v - max)
		sum += weights[i]
	}
	if sum == 0 {
		for i := range weights {
			weights[i] = 1 / float64(len(weights))
		}
		return weights
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// sampleWeighted returns the index selected by r (drawn uniformly from
// [0, 1)) under the categorical distribution weights.
func sampleWeighted(r float64, weights []float64) int {
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}
	return len(weights) - 1
}

// warmupMinimaxRefinement runs one self-play descent: starting from the
// coarsest abstraction level, it searches for a winning cop move,
// refines the winning abstract cop positions to the literal vertex (per
// cop) nearest its prior position, and descends to the next finer level
// — priming every level engine Step actually consults along the way —
// stopping once the cops lose the abstract game, reach the finest
// level, or run out of time.
//
// Grounded on
// abstract_minimax_disjoint_refinement.py's warmup_minimax_refinement.
func (s *Strategy) warmupMinimaxRefinement(copPositions []int, robberPosition int, finish time.Time) {
	level := s.hierarchy.Highest()
	winning := true

	loop := deadline.NewLoop(finish, 2)
	for !containsInt(copPositions, robberPosition) {
		before := append([]int(nil), copPositions...)

		ran := loop.Try(func() {
			next := copPositions
			for winning && level != nil {
				abstractRobber := level.AbstractNode(robberPosition)
				abstractCops := level.AbstractNodes(copPositions)

				move, isWinning := s.levelEngines[level].BestCopMove(abstractCops, abstractRobber, MinimaxDepth, s.getFixatedSteps(level), finish)
				winning = isWinning

				if isWinning {
					next = make([]int, len(copPositions))
					for i, cop := range copPositions {
						next[i] = s.nearestLiteralToward(level, cop, move[i])
					}
				}

				level = s.hierarchy.LowestAbstractionHigherThan(level)
			}
			copPositions = next
		})
		if !ran {
			break
		}
		if equalInts(before, copPositions) {
			break
		}
	}
}

// nearestLiteralToward returns whichever literal vertex abstractTarget
// represents is closest to currentCop, used to translate a winning
// abstract cop move back down to a concrete position during warmup.
func (s *Strategy) nearestLiteralToward(level *abstraction.GraphAbstraction, currentCop, abstractTarget int) int {
	candidates := level.InvertNode(abstractTarget)
	if len(candidates) == 1 {
		return candidates[0]
	}

	d, err := s.g.ShortestPaths(s.hierarchy.LiteralID(currentCop))
	if err != nil {
		return candidates[0]
	}

	best := candidates[0]
	bestDist := math.MaxInt
	for _, c := range candidates {
		if dist, ok := d.Dist[s.hierarchy.LiteralID(c)]; ok && dist < bestDist {
			bestDist = dist
			best = c
		}
	}
	return best
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
