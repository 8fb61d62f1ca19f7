package player

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/islands"
)

// CopsOption configures a Cops player at construction.
type CopsOption func(*copsConfig)

type copsConfig struct {
	copsCount   int
	timeoutInit time.Duration
	timeoutStep time.Duration
	maxRounds   int
	rng         *rand.Rand
	logger      zerolog.Logger
}

// WithCopsCount sets how many cops the player controls. Matches
// shared/player.py's cops_count.
func WithCopsCount(n int) CopsOption {
	return func(c *copsConfig) { c.copsCount = n }
}

// WithCopsTimeouts sets the deadline budget for the one-time Init call
// and for every subsequent Step call, matching shared/player.py's
// timeout_init and timeout_step.
func WithCopsTimeouts(init, step time.Duration) CopsOption {
	return func(c *copsConfig) { c.timeoutInit, c.timeoutStep = init, step }
}

// WithCopsMaxRounds caps how many rounds the player is willing to play,
// matching shared/player.py's max_rounds. A match driver, not the
// player itself, is responsible for enforcing this cap.
func WithCopsMaxRounds(n int) CopsOption {
	return func(c *copsConfig) { c.maxRounds = n }
}

// WithCopsSeed makes every component strategy's stochastic decisions
// reproducible.
func WithCopsSeed(seed int64) CopsOption {
	return func(c *copsConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCopsLogger attaches a zerolog.Logger for diagnostics.
func WithCopsLogger(l zerolog.Logger) CopsOption {
	return func(c *copsConfig) { c.logger = l }
}

// Cops is the cops side of a match: it owns an islands.Orchestrator
// spanning every connected component of the graph and the cop
// positions it last committed to.
//
// Grounded on original_source/engine/cops.py's Cops(Player).
type Cops struct {
	g           *graph.Graph
	maxRounds   int
	timeoutStep time.Duration

	orchestrator *islands.Orchestrator
	positions    []string
	last         lastMove[[]string]
}

// NewCops builds a Cops player for g. Construction itself is bounded by
// the configured init timeout, since it is where the orchestrator
// builds and warms up every component's strategy.
func NewCops(g *graph.Graph, opts ...CopsOption) *Cops {
	cfg := copsConfig{copsCount: 1, timeoutInit: 2 * time.Minute, timeoutStep: 10 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	finish := time.Now().Add(cfg.timeoutInit)
	orch := islands.New(g, cfg.copsCount, finish,
		islands.WithSeed(cfg.rng.Int63()),
		islands.WithLogger(cfg.logger),
	)

	return &Cops{
		g:            g,
		maxRounds:    cfg.maxRounds,
		timeoutStep:  cfg.timeoutStep,
		orchestrator: orch,
	}
}

// MaxRounds returns the configured round cap (0 means unbounded).
func (c *Cops) MaxRounds() int {
	return c.maxRounds
}

// InitPositions returns the cops' starting positions and remembers them
// as the current state.
func (c *Cops) InitPositions() []string {
	c.positions = c.orchestrator.Init()
	out := append([]string(nil), c.positions...)
	c.last.store(out)
	return out
}

// Step advances the cops one round given the robber's current position,
// bounded by the player's configured step timeout. The returned and
// internally-remembered positions are updated only once the step
// completes.
func (c *Cops) Step(robberPosition string) []string {
	finish := time.Now().Add(c.timeoutStep)
	next := c.orchestrator.Step(c.positions, robberPosition, finish)
	out := append([]string(nil), next...)
	c.last.store(out)
	c.positions = next
	return out
}

// LastMove returns the most recent positions the player committed to,
// or (nil, false) if Init has not yet run. A driver supervising Step
// under its own deadline can read this back if the call is abandoned.
func (c *Cops) LastMove() ([]string, bool) {
	return c.last.load()
}
