package abstraction

import (
	"time"

	"github.com/corvusgraph/pursuit/graph"
)

// SizeThreshold is the vertex count at which the hierarchy stops
// building further abstraction levels.
const SizeThreshold = 5

// Hierarchy is the chain of coarsened graphs built from a single
// connected literal graph, from Lowest() (the literal graph's first
// abstraction, roughly half its size) to Highest() (at most
// SizeThreshold vertices).
//
// Grounded on original_source/.../abstraction/hierarchy.py's
// AbstractionHierarchy. g must be connected — the islands package builds
// one strategy, and so one Hierarchy, per connected component rather
// than one over the whole
// (possibly disconnected) literal graph.
type Hierarchy struct {
	indexOf map[string]int
	idOf    map[int]string

	levels []*GraphAbstraction
}

// NewHierarchy builds the full abstraction chain for the connected
// literal graph g.
func NewHierarchy(g *graph.Graph) *Hierarchy {
	lg, indexOf, idOf := literalLevelGraph(g)

	identity := make(map[int]int, len(lg.nodes))
	for _, n := range lg.nodes {
		identity[n] = n
	}

	h := &Hierarchy{indexOf: indexOf, idOf: idOf}
	level := newGraphAbstraction(lg, identity)
	h.levels = append(h.levels, level)
	for level.NNodes > SizeThreshold {
		level = newGraphAbstraction(level.graph, level.LiteralVertexMapping)
		h.levels = append(h.levels, level)
	}
	return h
}

// LiteralIndex returns the dense int ID this hierarchy assigned to a
// literal vertex ID.
func (h *Hierarchy) LiteralIndex(id string) int { return h.indexOf[id] }

// LiteralID returns the literal vertex ID for a dense int ID.
func (h *Hierarchy) LiteralID(idx int) string { return h.idOf[idx] }

// Levels returns the abstraction chain, lowest (closest to literal)
// first.
func (h *Hierarchy) Levels() []*GraphAbstraction { return h.levels }

// Lowest returns the lowest (least coarsened) abstraction level.
func (h *Hierarchy) Lowest() *GraphAbstraction { return h.levels[0] }

// Highest returns the highest (most coarsened, ≤ SizeThreshold vertices)
// abstraction level.
func (h *Hierarchy) Highest() *GraphAbstraction { return h.levels[len(h.levels)-1] }

// PopulateShortestPathLengths populates every level's shortest-path
// store, from highest to lowest, stopping at the first level that
// doesn't finish before finish (lower, larger levels are more
// expensive, so once one misses its deadline the rest certainly will
// too).
func (h *Hierarchy) PopulateShortestPathLengths(finish time.Time) {
	for i := len(h.levels) - 1; i >= 0; i-- {
		if !h.levels[i].PopulateShortestPathLengths(finish) {
			break
		}
	}
}

// PopulateUndominatedNeighborhoodRanks populates every level's
// undominated-neighborhood store, highest to lowest, with the same
// early-stop rule as PopulateShortestPathLengths.
func (h *Hierarchy) PopulateUndominatedNeighborhoodRanks(finish time.Time) {
	for i := len(h.levels) - 1; i >= 0; i-- {
		if !h.levels[i].PopulateUndominatedNeighborhoodRanks(finish) {
			break
		}
	}
}

// Matcher reports whether a GraphAbstraction meets some predicate; used
// by HighestFitting/LowestFitting to search the chain in either
// direction.
type Matcher func(*GraphAbstraction) bool

// HighestFitting returns the highest (most coarsened) level matching m,
// or nil if none does.
func (h *Hierarchy) HighestFitting(m Matcher) *GraphAbstraction {
	for i := len(h.levels) - 1; i >= 0; i-- {
		if m(h.levels[i]) {
			return h.levels[i]
		}
	}
	return nil
}

// LowestFitting returns the lowest (least coarsened) level matching m,
// or nil if none does.
func (h *Hierarchy) LowestFitting(m Matcher) *GraphAbstraction {
	for _, level := range h.levels {
		if m(level) {
			return level
		}
	}
	return nil
}

// LowestShortestPathLengthAbstraction returns the lowest level whose
// shortest-path store finished populating.
func (h *Hierarchy) LowestShortestPathLengthAbstraction() *GraphAbstraction {
	return h.LowestFitting(func(a *GraphAbstraction) bool { return a.ShortestPathLengths.IsPopulated() })
}

// HighestUndecidedAbstraction returns the highest (most coarsened)
// level at which the robber's abstract position is not shared by any
// cop's abstract position — i.e. the game isn't already decided at that
// level of coarsening. copPositions and robberPosition are literal
// dense vertex IDs.
func (h *Hierarchy) HighestUndecidedAbstraction(copPositions []int, robberPosition int) *GraphAbstraction {
	return h.HighestFitting(func(a *GraphAbstraction) bool {
		abstractRobber := a.AbstractNode(robberPosition)
		for _, c := range copPositions {
			if a.AbstractNode(c) == abstractRobber {
				return false
			}
		}
		return true
	})
}

// HighestAbstractionLowerThan returns the highest level coarser than
// `below` (i.e. with strictly fewer vertices than `below`'s level — note
// this mirrors the Python original's naming: "lower" refers to position
// in the list of abstractions sorted by descending size, so a "lower"
// abstraction here is more coarsened / closer to Highest()).
func (h *Hierarchy) HighestAbstractionLowerThan(below *GraphAbstraction) *GraphAbstraction {
	return h.HighestFitting(func(a *GraphAbstraction) bool { return a.NNodes < below.NNodes })
}

// LowestAbstractionHigherThan returns the highest level finer than
// `above` (more vertices), i.e. the nearest literal-ward neighbor of
// `above` in the chain.
func (h *Hierarchy) LowestAbstractionHigherThan(above *GraphAbstraction) *GraphAbstraction {
	return h.HighestFitting(func(a *GraphAbstraction) bool { return a.NNodes > above.NNodes })
}

// DecreasingAbstractionsFrom returns every level at or above `from`'s
// coarsening (i.e. with vertex count ≤ from.NNodes), ordered from most
// coarsened (Highest()) down to `from` itself — the descent path
// minimax_refinement walks.
func (h *Hierarchy) DecreasingAbstractionsFrom(from *GraphAbstraction) []*GraphAbstraction {
	var out []*GraphAbstraction
	for i := len(h.levels) - 1; i >= 0; i-- {
		if h.levels[i].NNodes <= from.NNodes {
			out = append(out, h.levels[i])
		}
	}
	return out
}
