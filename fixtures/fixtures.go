// Package fixtures builds small, deterministic graphs for tests and the
// demo CLI: the canonical topologies used by the scenario tests (paths,
// cycles, stars, wheels, grids, the Petersen graph) plus seeded random
// graphs for fuzz-style coverage.
//
// Grounded on the builder package's impl_*.go constructors, adapted from
// core.Graph-returning Constructor closures to direct *graph.Graph
// factories: this module's graph package has no functional-option mode
// flags (directed/weighted/multigraph) to thread through a shared
// config, so each factory here is a plain function rather than a
// composable Constructor.
package fixtures

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Option configures the seeded-random factories (RandomSparse,
// RandomRegular, GNM).
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed makes a random factory's edge choices reproducible, matching
// builder's WithSeed/WithRand idiom.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func resolve(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return cfg
}

func nodeID(i int) string {
	return strconv.Itoa(i)
}

// ErrOddDegreeProduct indicates RandomRegular was asked for a degree
// sequence whose total n*d is odd, which no simple graph can realize.
var ErrOddDegreeProduct = fmt.Errorf("fixtures: n*d must be even for a d-regular graph on n vertices")
