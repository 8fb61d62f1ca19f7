package abstraction

import (
	"math"
	"time"

	"github.com/corvusgraph/pursuit/deadline"
)

// store is the common shape of the two lazily-populated, deadline-gated
// per-level caches a GraphAbstraction carries. IsPopulated reports
// whether populate() finished before its deadline; a false value is not
// an error, just a graceful resource-exhaustion signal per spec.md §7 —
// callers fall back to sparser strategies when a store isn't populated.
type store struct {
	isPopulated bool
}

// IsPopulated reports whether this store finished populating before its
// deadline.
func (s *store) IsPopulated() bool { return s.isPopulated }

// ShortestPathLengthStore caches all-pairs shortest-path hop distances
// for one abstraction level, populated one BFS-source at a time so a
// deadline can interrupt it between sources rather than mid-computation.
//
// Grounded on original_source/.../abstraction/store.py's
// ShortestPathLengthStore.
type ShortestPathLengthStore struct {
	store
	// PairwiseDistances[u][v] is the hop distance from u to v within
	// the level's graph. Only valid when IsPopulated() is true.
	PairwiseDistances map[int]map[int]int
}

func newShortestPathLengthStore() *ShortestPathLengthStore {
	return &ShortestPathLengthStore{}
}

func (s *ShortestPathLengthStore) populate(g *levelGraph, finish time.Time) bool {
	s.PairwiseDistances = make(map[int]map[int]int, len(g.nodes))
	loop := deadline.NewLoop(finish, deadline.DefaultTolerance)
	for _, source := range g.nodes {
		ran := loop.Try(func() {
			s.PairwiseDistances[source] = bfsDistances(g, source)
		})
		if !ran {
			s.isPopulated = false
			return false
		}
	}
	s.isPopulated = true
	return true
}

func bfsDistances(g *levelGraph, source int) map[int]int {
	dist := map[int]int{source: 0}
	queue := []int{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.neighbors(cur) {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// UndominatedNeighborhoodEdgeRankStore caches, for each ordered pair of
// adjacent vertices (u, v), an edge-preference score that is high when v
// is a "characteristic" (undominated) neighbor of u — i.e. few of u's
// other neighbors also reach v's closed neighborhood in one hop. Used to
// weight initial-placement PageRank per EXPANSION 4.15.
//
// Grounded on store.py's UndominatedNeighborhoodEdgeRankStore.
type UndominatedNeighborhoodEdgeRankStore struct {
	store
	// Ranks[[2]int{u, v}] and Ranks[[2]int{v, u}] both hold the
	// symmetric rank for edge {u, v}. Only valid when IsPopulated().
	Ranks map[[2]int]float64
}

func newUndominatedNeighborhoodEdgeRankStore() *UndominatedNeighborhoodEdgeRankStore {
	return &UndominatedNeighborhoodEdgeRankStore{}
}

func (s *UndominatedNeighborhoodEdgeRankStore) populate(g *levelGraph, finish time.Time) bool {
	neighborhoods := make(map[int]map[int]struct{}, len(g.nodes))
	loop := deadline.NewLoop(finish, deadline.DefaultTolerance)

	for _, v := range g.nodes {
		ran := loop.Try(func() {
			set := map[int]struct{}{v: {}}
			for _, n := range g.neighbors(v) {
				set[n] = struct{}{}
			}
			neighborhoods[v] = set
		})
		if !ran {
			s.isPopulated = false
			return false
		}
	}

	s.Ranks = make(map[[2]int]float64)
	for _, v := range g.nodes {
		ran := loop.Try(func() {
			neighborhood := neighborhoods[v]
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
				s.Ranks[[2]int{v, neighbor}] = rank
				s.Ranks[[2]int{neighbor, v}] = rank
			}
		})
		if !ran {
			s.isPopulated = false
			return false
		}
	}

	s.isPopulated = true
	return true
}
