// Package match drives a complete cops-and-robbers match between a
// player.Cops and a player.Robber over a shared graph: it alternates
// init/step calls, validates every returned position against the
// graph's legality rules, and tracks the Status taxonomy that decides
// who won.
//
// Grounded on original_source/shared/game.py's abstract Game class (the
// round-counting step/next_round/run loop and the "only set status once"
// semantics) and original_source/engine/game.py's concrete position
// setters (the count/membership/adjacency-or-stay legality checks).
package match

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/player"
)

// Option configures a Match at construction.
type Option func(*config)

type config struct {
	maxRounds          int
	supervisionTimeout time.Duration
	logger             zerolog.Logger
}

// WithMaxRounds caps the number of rounds before the cops lose by
// default, matching shared/player.py's max_rounds. 0 (the default)
// means unbounded.
func WithMaxRounds(n int) Option {
	return func(c *config) { c.maxRounds = n }
}

// WithSupervisionTimeout bounds how long the driver waits for any
// single player call before giving up on it and falling back to that
// player's last committed move. 0 (the default) means the driver waits
// however long the player's own internal deadline takes.
func WithSupervisionTimeout(d time.Duration) Option {
	return func(c *config) { c.supervisionTimeout = d }
}

// WithLogger attaches a zerolog.Logger for match diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Match holds the running state of one game: the graph, both players,
// the positions each has most recently committed to, and the current
// Status.
type Match struct {
	g      *graph.Graph
	cops   player.CopsPlayer
	robber player.RobberPlayer

	copsCount      int
	copPositions   []string
	robberPosition string

	round     int
	maxRounds int
	status    Status

	supervisionTimeout time.Duration
	log                zerolog.Logger
}

// New builds a Match. The players are not initialized yet; call Init
// (or Run) to begin play.
func New(g *graph.Graph, cops player.CopsPlayer, robber player.RobberPlayer, opts ...Option) *Match {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Match{
		g:                  g,
		cops:               cops,
		robber:             robber,
		maxRounds:          cfg.maxRounds,
		supervisionTimeout: cfg.supervisionTimeout,
		log:                cfg.logger,
	}
}

// Status returns the match's current outcome.
func (m *Match) Status() Status {
	return m.status
}

// Round returns the number of rounds started so far; a round is counted
// as soon as the cops' move in it begins.
func (m *Match) Round() int {
	return m.round
}

// CopPositions returns the cops' most recently committed positions.
func (m *Match) CopPositions() []string {
	return append([]string(nil), m.copPositions...)
}

// RobberPosition returns the robber's most recently committed position.
func (m *Match) RobberPosition() string {
	return m.robberPosition
}

func (m *Match) setStatus(s Status) {
	if m.status == StatusContinues {
		m.status = s
		m.log.Info().Str("status", s.String()).Msg("match: status decided")
	}
}

// Init computes and validates both players' starting positions: cops
// first, then the robber reacting to the cops' placement, matching
// original_source/engine/game.py's constructor ordering.
func (m *Match) Init() {
	if m.status != StatusContinues {
		return
	}

	positions, completed, panicked := callSupervised(m.supervisionTimeout, m.cops.InitPositions)
	if panicked {
		m.setStatus(StatusCopsException)
		return
	}
	if !completed {
		m.setStatus(StatusCopsTimeout)
		return
	}
	m.copsCount = len(positions)
	m.commitCopPositions(positions, true)
	if m.status != StatusContinues {
		return
	}

	robberPos, completed, panicked := callSupervised(m.supervisionTimeout, func() string {
		return m.robber.InitPosition(m.copPositions)
	})
	if panicked {
		m.setStatus(StatusRobberException)
		return
	}
	if !completed {
		m.setStatus(StatusRobberTimeout)
		return
	}
	m.commitRobberPosition(robberPos, true)
}

// Step plays one full round: the cops move, then (if the match is still
// undecided) the robber moves, then the catch/round-cap conditions are
// checked.
//
// A step call that times out does not end the match (only the init
// phase does) — the player simply keeps its prior position for this
// round, matching original_source/shared/game.py's __step_player: "Only
// end the game due to the timeout during the first round, otherwise
// only skip updating positions and player."
func (m *Match) Step() {
	if m.status != StatusContinues {
		return
	}
	m.round++

	positions, completed, panicked := callSupervised(m.supervisionTimeout, func() []string {
		return m.cops.Step(m.robberPosition)
	})
	switch {
	case panicked:
		m.setStatus(StatusCopsException)
		return
	case completed:
		m.commitCopPositions(positions, false)
	default:
		if last, ok := m.cops.LastMove(); ok {
			m.log.Warn().Msg("match: cops timed out this step, keeping last known position")
			m.copPositions = last
		}
	}
	if m.status != StatusContinues {
		return
	}

	robberPos, completed, panicked := callSupervised(m.supervisionTimeout, func() string {
		return m.robber.Step(m.copPositions)
	})
	switch {
	case panicked:
		m.setStatus(StatusRobberException)
		return
	case completed:
		m.commitRobberPosition(robberPos, false)
	default:
		if last, ok := m.robber.LastMove(); ok {
			m.log.Warn().Msg("match: robber timed out this step, keeping last known position")
			m.robberPosition = last
		}
	}
	if m.status != StatusContinues {
		return
	}

	for _, c := range m.copPositions {
		if c == m.robberPosition {
			m.setStatus(StatusRobberCaught)
			return
		}
	}
	if m.maxRounds > 0 && m.round >= m.maxRounds {
		m.setStatus(StatusCopsOutOfSteps)
	}
}

// Run plays Init followed by Step until the match reaches a decided
// Status.
func (m *Match) Run() {
	m.Init()
	for m.status == StatusContinues {
		m.Step()
	}
}

// commitCopPositions validates and, if legal, commits a new set of cop
// positions. Invalid positions set StatusCopsInvalidStep and still
// record the offending positions before returning, matching
// original_source/engine/game.py's setter (the result is stored before
// the match ends, for diagnostics).
func (m *Match) commitCopPositions(positions []string, first bool) {
	if len(positions) != m.copsCount {
		m.log.Warn().Int("want", m.copsCount).Int("got", len(positions)).Msg("match: cops returned the wrong number of positions")
		m.setStatus(StatusCopsInvalidStep)
		m.copPositions = positions
		return
	}
	for _, p := range positions {
		if !m.g.HasVertex(p) {
			m.log.Warn().Str("position", p).Msg("match: cops returned a position outside the graph")
			m.setStatus(StatusCopsInvalidStep)
			m.copPositions = positions
			return
		}
	}
	if !first {
		for i, p := range positions {
			old := m.copPositions[i]
			if old != p && !m.g.HasEdge(old, p) {
				m.log.Warn().Str("from", old).Str("to", p).Msg("match: cops made an illegal move")
				m.setStatus(StatusCopsInvalidStep)
				m.copPositions = positions
				return
			}
		}
	}
	m.copPositions = positions
}

// commitRobberPosition validates and, if legal, commits a new robber
// position.
func (m *Match) commitRobberPosition(position string, first bool) {
	if !m.g.HasVertex(position) {
		m.log.Warn().Str("position", position).Msg("match: robber returned a position outside the graph")
		m.setStatus(StatusRobberInvalidStep)
		m.robberPosition = position
		return
	}
	if !first && m.robberPosition != position && !m.g.HasEdge(m.robberPosition, position) {
		m.log.Warn().Str("from", m.robberPosition).Str("to", position).Msg("match: robber made an illegal move")
		m.setStatus(StatusRobberInvalidStep)
		m.robberPosition = position
		return
	}
	m.robberPosition = position
}
