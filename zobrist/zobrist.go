// Package zobrist provides order-invariant hashing of cops-and-robbers
// game configurations and a depth-aware transposition table for
// minimax, exactly analogous to chess Zobrist hashing except that the
// "pieces" are an unordered multiset of cops sharing one board.
package zobrist

import (
	"math/rand"
)

// Table assigns random 64-bit keys to (vertex, cop-slot) pairs, (vertex)
// robber positions, and whose-turn-it-is, and combines them by XOR into
// a single hash per configuration.
//
// Grounded on original_source/.../minimax/zobrist.py's
// ZobristTranspositionTable.__init__ and .key(); RNG seeding follows the
// teacher's builder.WithSeed functional-option idiom rather than
// reading global process randomness, so a Table (and therefore an
// entire search) is reproducible end to end.
type Table struct {
	// copKeys[v][k] is the key contributed by the k-th cop occupying
	// vertex v (k counts from 0; a vertex hosting m cops XORs in
	// copKeys[v][0..m-1]).
	copKeys [][]uint64
	// robberKeys[v] is the key contributed by the robber occupying v.
	robberKeys []uint64
	// turnKeys[0] is XORed in when it is the cops' turn, turnKeys[1]
	// when it is the robber's turn.
	turnKeys [2]uint64
}

// Option configures a Table at construction.
type Option func(*tableConfig)

type tableConfig struct {
	rng *rand.Rand
}

// WithSeed makes key generation deterministic, for reproducible tests
// and replayable matches.
func WithSeed(seed int64) Option {
	return func(c *tableConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("zobrist: WithRand(nil)")
	}
	return func(c *tableConfig) { c.rng = r }
}

// NewTable builds a Table for a literal graph of nNodes vertices
// (indexed 0..nNodes-1) and nCops cops. Panics if nNodes <= 0 or nCops
// <= 0, since a hashed game always has at least one vertex and one cop.
func NewTable(nNodes, nCops int, opts ...Option) *Table {
	if nNodes <= 0 {
		panic("zobrist: NewTable requires nNodes > 0")
	}
	if nCops <= 0 {
		panic("zobrist: NewTable requires nCops > 0")
	}

	cfg := tableConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	t := &Table{
		copKeys:    make([][]uint64, nNodes),
		robberKeys: make([]uint64, nNodes),
	}
	for v := 0; v < nNodes; v++ {
		row := make([]uint64, nCops)
		for k := range row {
			row[k] = cfg.rng.Uint64()
		}
		t.copKeys[v] = row
		t.robberKeys[v] = cfg.rng.Uint64()
	}
	t.turnKeys[0] = cfg.rng.Uint64()
	t.turnKeys[1] = cfg.rng.Uint64()
	return t
}

// Key computes the order-invariant hash for a configuration: the XOR of
// one key per cop (selected by occupancy count at that cop's vertex, so
// two cops sharing a vertex contribute copKeys[v][0] and copKeys[v][1]
// rather than the same key twice), the robber's key, and the turn key.
//
// Because XOR is commutative, permuting copPositions never changes the
// result — this is what lets the transposition table and minimax search
// treat cop orderings as interchangeable, at the cost of needing move
// repair (see minimax.RepairPermutation) to restore a concrete ordering
// afterward.
func (t *Table) Key(copPositions []int, robberPosition int, copsTurn bool) uint64 {
	occupancy := make(map[int]int, len(copPositions))
	var hash uint64
	for _, v := range copPositions {
		slot := occupancy[v]
		occupancy[v]++
		hash ^= t.copKeys[v][slot]
	}
	hash ^= t.robberKeys[robberPosition]
	if copsTurn {
		hash ^= t.turnKeys[0]
	} else {
		hash ^= t.turnKeys[1]
	}
	return hash
}
