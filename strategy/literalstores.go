package strategy

import (
	"math"
	"strconv"
	"time"

	"github.com/corvusgraph/pursuit/deadline"
	"github.com/corvusgraph/pursuit/graph"
)

func intToString(v int) string { return strconv.Itoa(v) }
func stringToInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// newLiteralDistanceCache populates all-pairs shortest-path distances
// over the literal graph (dense-index keyed), deadline-gated exactly
// like abstraction.ShortestPathLengthStore but kept separate since the
// literal graph is a *graph.Graph, not the abstraction package's
// internal levelGraph. Returns nil if not fully populated before finish.
func newLiteralDistanceCache(g *graph.Graph, h literalIndexer, nodes []int, finish time.Time) map[int]map[int]int {
	out := make(map[int]map[int]int, len(nodes))
	loop := deadline.NewLoop(finish, deadline.DefaultTolerance)
	for _, idx := range nodes {
		id := h.LiteralID(idx)
		ran := loop.Try(func() {
			d, err := g.ShortestPaths(id)
			if err != nil {
				return
			}
			row := make(map[int]int, len(d.Dist))
			for v, dist := range d.Dist {
				row[h.LiteralIndex(v)] = dist
			}
			out[idx] = row
		})
		if !ran {
			return nil
		}
	}
	return out
}

// newLiteralEdgeRankCache populates the undominated-neighborhood edge
// rank map over the literal graph, mirroring
// abstraction.UndominatedNeighborhoodEdgeRankStore for the same reason
// newLiteralDistanceCache does. Returns nil if not fully populated
// before finish.
func newLiteralEdgeRankCache(g *graph.Graph, h literalIndexer, nodes []int, finish time.Time) map[[2]int]float64 {
	loop := deadline.NewLoop(finish, deadline.DefaultTolerance)

	neighborhoods := make(map[int]map[int]struct{}, len(nodes))
	for _, idx := range nodes {
		id := h.LiteralID(idx)
		ran := loop.Try(func() {
			set := map[int]struct{}{idx: {}}
			nbrs, _ := g.Neighbors(id)
			for _, n := range nbrs {
				set[h.LiteralIndex(n)] = struct{}{}
			}
			neighborhoods[idx] = set
		})
		if !ran {
			return nil
		}
	}

	ranks := make(map[[2]int]float64)
	for _, idx := range nodes {
		ran := loop.Try(func() {
			neighborhood := neighborhoods[idx]
			for neighbor := range neighborhood {
				hop := make(map[int]struct{})
				for other := range neighborhood {
					if other == neighbor {
						continue
					}
					for h := range neighborhoods[other] {
						hop[h] = struct{}{}
					}
				}
				dominated := 0
				for h := range neighborhoods[neighbor] {
					if _, ok := hop[h]; ok {
						dominated++
					}
				}
				rank := math.Exp(-float64(dominated))
				ranks[[2]int{idx, neighbor}] = rank
				ranks[[2]int{neighbor, idx}] = rank
			}
		})
		if !ran {
			return nil
		}
	}
	return ranks
}

// literalIndexer is the subset of *abstraction.Hierarchy's API these
// caches need, so tests can fake it without building a real hierarchy.
type literalIndexer interface {
	LiteralID(int) string
	LiteralIndex(string) int
}
