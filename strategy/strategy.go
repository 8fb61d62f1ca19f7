// Package strategy implements the Abstract Minimax Disjoint-Refinement
// cops strategy: the core decision procedure a single connected
// island's cops use to choose their next move, descending the
// abstraction hierarchy with minimax search and refining a winning
// abstract move down to a literal one, falling back to disjoint-path
// pursuit when no level of abstraction yields a cop win.
//
// A Strategy always operates over one connected graph — the islands
// package runs one Strategy per connected component of a
// possibly-disconnected literal graph.
package strategy

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusgraph/pursuit/abstraction"
	"github.com/corvusgraph/pursuit/approx"
	"github.com/corvusgraph/pursuit/deadline"
	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/minimax"
	"github.com/corvusgraph/pursuit/zobrist"
)

// MinimaxDepth is the search depth used at every abstraction level and
// on the literal graph, matching the Python original's MINIMAX_DEPTH.
const MinimaxDepth = 6

// Option configures a Strategy at construction.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	logger zerolog.Logger
}

// WithSeed makes the stochastic minimax/disjoint-pursuit skip decisions
// reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger attaches a zerolog.Logger for structured diagnostics. The
// zero value (which discards output) is always a valid logger, so
// Strategy works with zero configuration.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Strategy holds all per-island state: the abstraction hierarchy, one
// minimax engine per level (plus one for the literal graph), the
// computed initial placement, and the stochastic skip-probability
// bookkeeping that keeps abstract-only descent from looping forever.
type Strategy struct {
	g     *graph.Graph
	nCops int
	rng   *rand.Rand
	log   zerolog.Logger

	hierarchy *abstraction.Hierarchy

	literalEngine *minimax.Engine
	levelEngines  map[*abstraction.GraphAbstraction]*minimax.Engine

	initPositions []int

	minimaxProbability        map[string]float64
	minimaxTimeoutProbability map[string]float64
}

// New builds a Strategy for g (which must be connected), computing
// initial cop placement and warming up the transposition tables before
// finish.
//
// Grounded on
// original_source/engine/modules/strategy/abstract_minimax_disjoint_refinement.py's
// AbstractMinimaxDisjointRefinementCopsStrategy.__init__.
func New(g *graph.Graph, nCops int, finish time.Time, opts ...Option) *Strategy {
	if nCops <= 0 {
		panic("strategy: New requires nCops > 0")
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &Strategy{
		g:                         g,
		nCops:                     nCops,
		rng:                       cfg.rng,
		log:                       cfg.logger,
		minimaxProbability:        make(map[string]float64),
		minimaxTimeoutProbability: make(map[string]float64),
	}

	s.hierarchy = abstraction.NewHierarchy(g)
	s.hierarchy.PopulateShortestPathLengths(deadline.RemainingAt(finish, 0.75))
	s.hierarchy.PopulateUndominatedNeighborhoodRanks(deadline.RemainingAt(finish, 0.75))

	literalKeys := zobrist.NewTable(g.VertexCount(), nCops, zobrist.WithRand(s.rng))
	s.literalEngine = minimax.NewEngine(s.literalNeighbors, literalKeys)

	s.levelEngines = make(map[*abstraction.GraphAbstraction]*minimax.Engine, len(s.hierarchy.Levels()))
	for _, level := range s.hierarchy.Levels() {
		keys := zobrist.NewTable(max(level.NNodes, 1), nCops, zobrist.WithRand(s.rng))
		lvl := level
		s.levelEngines[level] = minimax.NewEngine(lvl.Neighbors, keys)
	}

	s.initPositions = s.computeInitPositions(deadline.RemainingAt(finish, 0.75))
	s.log.Debug().Ints("positions", s.initPositions).Msg("strategy: computed initial cop placement")

	s.warmup(deadline.RemainingAt(finish, 0.25))

	return s
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// literalNeighbors exposes the literal graph's adjacency in dense-index
// form for the literal minimax engine.
func (s *Strategy) literalNeighbors(idx int) []int {
	id := s.hierarchy.LiteralID(idx)
	nbrs, err := s.g.Neighbors(id)
	if err != nil {
		return nil
	}
	out := make([]int, len(nbrs))
	for i, n := range nbrs {
		out[i] = s.hierarchy.LiteralIndex(n)
	}
	return out
}

// Init returns the strategy's chosen initial cop placement, as literal
// vertex IDs.
func (s *Strategy) Init() []string {
	out := make([]string, len(s.initPositions))
	for i, idx := range s.initPositions {
		out[i] = s.hierarchy.LiteralID(idx)
	}
	return out
}

// Step chooses the cops' next positions given the current configuration.
//
// Grounded on abstract_minimax_disjoint_refinement.py's step().
func (s *Strategy) Step(copPositions []string, robberPosition string, finish time.Time) []string {
	copIdx := make([]int, len(copPositions))
	for i, c := range copPositions {
		copIdx[i] = s.hierarchy.LiteralIndex(c)
	}
	robberIdx := s.hierarchy.LiteralIndex(robberPosition)

	undecided := s.hierarchy.HighestUndecidedAbstraction(copIdx, robberIdx)
	key := positionKey(copIdx, robberIdx)

	var moveIdx []int
	if undecided != nil && s.rng.Float64() < s.minimaxProb(key) {
		s.minimaxProbability[key] = s.minimaxProb(key) / 2
		moveIdx = s.minimaxRefinement(copIdx, robberIdx, undecided, finish)
	} else {
		moveIdx = s.literalDisjointSteps(copIdx, robberIdx)
	}

	out := make([]string, len(moveIdx))
	for i, idx := range moveIdx {
		out[i] = s.hierarchy.LiteralID(idx)
	}
	return out
}

func (s *Strategy) minimaxProb(key string) float64 {
	if v, ok := s.minimaxProbability[key]; ok {
		return v
	}
	return 1
}

func (s *Strategy) timeoutProb(key string) float64 {
	if v, ok := s.minimaxTimeoutProbability[key]; ok {
		return v
	}
	return 0
}

func (s *Strategy) literalDisjointSteps(copIdx []int, robberIdx int) []int {
	copIDs := make([]string, len(copIdx))
	for i, idx := range copIdx {
		copIDs[i] = s.hierarchy.LiteralID(idx)
	}
	robberID := s.hierarchy.LiteralID(robberIdx)
	moves := approx.DisjointPursuitSteps(s.g, copIDs, robberID)
	out := make([]int, len(moves))
	for i, m := range moves {
		out[i] = s.hierarchy.LiteralIndex(m)
	}
	return out
}

// getFixatedSteps returns the disjoint-pursuit fixation function for
// minimax at a given level (nil means the literal graph).
func (s *Strategy) getFixatedSteps(level *abstraction.GraphAbstraction) minimax.FixatedSteps {
	neighbors := s.literalNeighbors
	if level != nil {
		neighbors = level.Neighbors
	}
	return func(fixatedPositions []int, robberPosition int) []int {
		penalty := make(map[int]int)
		moves := make([]int, len(fixatedPositions))
		for i, pos := range fixatedPositions {
			path := intAStar(neighbors, pos, robberPosition, penalty)
			if len(path) <= 1 {
				moves[i] = path[0]
			} else {
				moves[i] = path[1]
			}
		}
		return moves
	}
}

func positionKey(copIdx []int, robberIdx int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|", robberIdx)
	sorted := append([]int(nil), copIdx...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	for _, c := range sorted {
		b.WriteString(strconv.Itoa(c))
		b.WriteByte(',')
	}
	return b.String()
}
