// Package robber implements the contour-relaxation strategy the
// opposing agent uses: a Dijkstra-like race between BFS frontiers
// grown from the cops' positions and from the robber's position,
// moving the robber toward whichever of its own frontier nodes was
// relaxed last before any cop contour reached it.
package robber

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusgraph/pursuit/abstraction"
	"github.com/corvusgraph/pursuit/deadline"
	"github.com/corvusgraph/pursuit/graph"
)

// Option configures a Strategy at construction.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// WithSeed makes the random preimage/node choices in Init reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger attaches a zerolog.Logger for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Strategy is the contour-relaxation robber strategy for one connected
// graph.
//
// Grounded on
// original_source/engine/modules/strategy/contour_relaxation.py's
// ContourRelaxationRobberStrategy.
type Strategy struct {
	g         *graph.Graph
	hierarchy *abstraction.Hierarchy
	distances map[string]map[string]int // nil if not fully populated
	rng       *rand.Rand
	log       zerolog.Logger
}

// New builds a Strategy for g, populating the abstraction hierarchy's
// shortest-path stores and the literal all-pairs distance cache before
// finish.
func New(g *graph.Graph, finish time.Time, opts ...Option) *Strategy {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &Strategy{g: g, rng: cfg.rng, log: cfg.logger}
	s.hierarchy = abstraction.NewHierarchy(g)
	s.hierarchy.PopulateShortestPathLengths(deadline.RemainingAt(finish, 0.8))

	if dist, ok := newLiteralDistances(g, finish); ok {
		s.distances = dist
	}
	return s
}

// Init chooses the robber's starting vertex: the literal vertex
// maximizing its minimum distance to any cop, if the literal distance
// cache populated; else the finest abstraction level whose
// shortest-path store populated, lifted to a random literal preimage;
// else a uniformly random literal vertex.
func (s *Strategy) Init(copPositions []string) string {
	if s.distances != nil {
		return s.argmaxMinDistance(s.g.Vertices(), copPositions)
	}

	level := s.hierarchy.LowestShortestPathLengthAbstraction()
	if level == nil {
		vertices := s.g.Vertices()
		return vertices[s.rng.Intn(len(vertices))]
	}

	abstractCops := make([]int, len(copPositions))
	for i, c := range copPositions {
		abstractCops[i] = level.AbstractNode(s.hierarchy.LiteralIndex(c))
	}
	bestNode, bestDist := -1, -1
	for _, node := range level.Nodes() {
		min := -1
		for _, c := range abstractCops {
			d, ok := level.ShortestPathLengths.PairwiseDistances[node][c]
			if !ok {
				min = -1
				break
			}
			if min == -1 || d < min {
				min = d
			}
		}
		if min > bestDist {
			bestDist, bestNode = min, node
		}
	}
	if bestNode == -1 {
		vertices := s.g.Vertices()
		return vertices[s.rng.Intn(len(vertices))]
	}

	preimages := level.InvertNode(bestNode)
	choice := preimages[s.rng.Intn(len(preimages))]
	return s.hierarchy.LiteralID(choice)
}

func (s *Strategy) argmaxMinDistance(candidates, copPositions []string) string {
	best, bestDist := candidates[0], -1
	for _, node := range candidates {
		min := -1
		for _, c := range copPositions {
			d, ok := s.distances[node][c]
			if !ok {
				min = -1
				break
			}
			if min == -1 || d < min {
				min = d
			}
		}
		if min > bestDist {
			bestDist, best = min, node
		}
	}
	return best
}

// Step chooses the robber's next position: it races a BFS frontier from
// the cops against one from the robber, relaxing both one hop at a time
// until either is exhausted, tracks the last robber-frontier node
// relaxed before any cop contact (the "cover node"), and returns the
// first step of the shortest path from robberPosition toward it.
//
// Grounded on
// original_source/engine/modules/strategy/contour_relaxation.py's step.
func (s *Strategy) Step(copPositions []string, robberPosition string, finish time.Time) string {
	visited := map[string]bool{}
	predecessor := map[string]string{}

	copContour := map[string]bool{}
	for _, c := range copPositions {
		copContour[c] = true
	}
	robberContour := map[string]bool{robberPosition: true}
	coverNode := robberPosition

	loop := deadline.NewLoop(finish, deadline.DefaultTolerance)

	for len(copContour) > 0 && len(robberContour) > 0 {
		ran := loop.Try(func() {
			nextCop := map[string]bool{}
			for node := range copContour {
				if visited[node] {
					continue
				}
				visited[node] = true
				nbrs, err := s.g.Neighbors(node)
				if err != nil {
					continue
				}
				for _, n := range nbrs {
					if !visited[n] {
						nextCop[n] = true
					}
				}
			}

			nextRobber := map[string]bool{}
			for node := range robberContour {
				if visited[node] {
					continue
				}
				visited[node] = true
				coverNode = node
				nbrs, err := s.g.Neighbors(node)
				if err != nil {
					continue
				}
				for _, n := range nbrs {
					if !visited[n] {
						nextRobber[n] = true
						predecessor[n] = node
					}
				}
			}

			copContour, robberContour = nextCop, nextRobber
		})
		if !ran {
			break
		}
	}

	return firstStepToward(coverNode, robberPosition, predecessor)
}

func firstStepToward(node, robberPosition string, predecessor map[string]string) string {
	for {
		p, ok := predecessor[node]
		if !ok || p == robberPosition {
			return node
		}
		node = p
	}
}
