package islands

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/strategy"
)

// Option configures an Orchestrator at construction.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// WithSeed makes cop allocation's padding and every component's strategy
// construction reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger attaches a zerolog.Logger for cop-allocation diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Orchestrator splits the cops across g's connected components and
// dispatches every move to the component holding the robber, leaving
// cops elsewhere untouched.
//
// Grounded on
// original_source/engine/modules/islands/choosing.py's allocation and
// dispatch logic.
type Orchestrator struct {
	g          *graph.Graph
	components [][]string
	copCounts  []int
	copRanges  [][2]int // [start, end) into the flattened global cop list, per component
	strategies []*strategy.Strategy
	rng        *rand.Rand
	log        zerolog.Logger
}

// New builds an Orchestrator for g with nCops total cops, constructing
// one strategy.Strategy per component that receives at least one cop.
func New(g *graph.Graph, nCops int, finish time.Time, opts ...Option) *Orchestrator {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	components := g.Components()
	copCounts := AllocateCops(g, components, nCops)

	o := &Orchestrator{
		g:          g,
		components: components,
		copCounts:  copCounts,
		copRanges:  make([][2]int, len(components)),
		strategies: make([]*strategy.Strategy, len(components)),
		rng:        cfg.rng,
		log:        cfg.logger,
	}

	offset := 0
	for i, n := range copCounts {
		o.copRanges[i] = [2]int{offset, offset + n}
		offset += n
		if n == 0 {
			continue
		}
		sub := g.Subgraph(components[i])
		effective := n
		if n > len(components[i]) {
			effective = len(components[i])
		}
		o.strategies[i] = strategy.New(sub, effective, finish, strategy.WithSeed(o.rng.Int63()))
		o.log.Info().Int("component", i).Int("size", len(components[i])).Int("cops", n).Msg("islands: allocated cops to component")
	}

	return o
}

// Init returns the initial position of every cop, grouped by component
// in copRanges order. Components with more cops than nodes cover every
// node and pad the remainder with repeated nodes.
func (o *Orchestrator) Init() []string {
	total := 0
	for _, n := range o.copCounts {
		total += n
	}
	out := make([]string, 0, total)

	for i, n := range o.copCounts {
		if n == 0 {
			continue
		}
		positions := o.strategies[i].Init()
		for len(positions) < n {
			positions = append(positions, o.components[i][o.rng.Intn(len(o.components[i]))])
		}
		out = append(out, positions[:n]...)
	}
	return out
}

// Step dispatches to the component containing robberPosition: only the
// cops assigned to that component move; every other cop's position is
// carried over unchanged. If the robber's component has no assigned
// cops, no cop moves at all.
//
// Grounded on original_source/engine/modules/islands/choosing.py's
// per-move dispatch.
func (o *Orchestrator) Step(copPositions []string, robberPosition string, finish time.Time) []string {
	idx := o.g.ComponentOf(robberPosition)
	out := append([]string(nil), copPositions...)
	if idx < 0 {
		return out
	}

	n := o.copCounts[idx]
	if n == 0 {
		return out
	}

	r := o.copRanges[idx]
	component := o.components[idx]
	mine := copPositions[r[0]:r[1]]

	var moved []string
	if n > len(component) {
		moved = append([]string(nil), component...)
		for len(moved) < n {
			moved = append(moved, component[o.rng.Intn(len(component))])
		}
	} else {
		moved = o.strategies[idx].Step(mine, robberPosition, finish)
	}

	copy(out[r[0]:r[1]], moved)
	return out
}
