package player

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/robber"
)

// RobberOption configures a Robber player at construction.
type RobberOption func(*robberConfig)

type robberConfig struct {
	timeoutInit time.Duration
	timeoutStep time.Duration
	maxRounds   int
	rng         *rand.Rand
	logger      zerolog.Logger
}

// WithRobberTimeouts sets the deadline budget for the one-time Init call
// and for every subsequent Step call.
func WithRobberTimeouts(init, step time.Duration) RobberOption {
	return func(c *robberConfig) { c.timeoutInit, c.timeoutStep = init, step }
}

// WithRobberMaxRounds caps how many rounds the player is willing to
// play. A match driver, not the player itself, enforces this cap.
func WithRobberMaxRounds(n int) RobberOption {
	return func(c *robberConfig) { c.maxRounds = n }
}

// WithRobberSeed makes Init's and Step's random choices reproducible.
func WithRobberSeed(seed int64) RobberOption {
	return func(c *robberConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRobberLogger attaches a zerolog.Logger for diagnostics.
func WithRobberLogger(l zerolog.Logger) RobberOption {
	return func(c *robberConfig) { c.logger = l }
}

// Robber is the robber side of a match: it owns a robber.Strategy and
// the position it last committed to.
//
// Grounded on original_source/shared/player.py's Player base class,
// specialized to a single robber_position rather than a list.
type Robber struct {
	g           *graph.Graph
	maxRounds   int
	timeoutStep time.Duration

	strategy *robber.Strategy
	position string
	last     lastMove[string]
}

// NewRobber builds a Robber player for g, bounded by the configured
// init timeout.
func NewRobber(g *graph.Graph, opts ...RobberOption) *Robber {
	cfg := robberConfig{timeoutInit: 2 * time.Minute, timeoutStep: 10 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	finish := time.Now().Add(cfg.timeoutInit)
	strat := robber.New(g, finish,
		robber.WithSeed(cfg.rng.Int63()),
		robber.WithLogger(cfg.logger),
	)

	return &Robber{
		g:           g,
		maxRounds:   cfg.maxRounds,
		timeoutStep: cfg.timeoutStep,
		strategy:    strat,
	}
}

// MaxRounds returns the configured round cap (0 means unbounded).
func (r *Robber) MaxRounds() int {
	return r.maxRounds
}

// InitPosition chooses the robber's starting position given the cops'
// starting positions and remembers it as the current state.
func (r *Robber) InitPosition(copPositions []string) string {
	r.position = r.strategy.Init(copPositions)
	r.last.store(r.position)
	return r.position
}

// Step advances the robber one round given the cops' current positions,
// bounded by the player's configured step timeout.
func (r *Robber) Step(copPositions []string) string {
	finish := time.Now().Add(r.timeoutStep)
	next := r.strategy.Step(copPositions, r.position, finish)
	r.last.store(next)
	r.position = next
	return next
}

// LastMove returns the most recent position the player committed to, or
// ("", false) if Init has not yet run.
func (r *Robber) LastMove() (string, bool) {
	return r.last.load()
}
