package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/zobrist"
)

func TestKeyIsOrderInvariant(t *testing.T) {
	table := zobrist.NewTable(10, 3, zobrist.WithSeed(1))
	a := table.Key([]int{1, 2, 3}, 5, true)
	b := table.Key([]int{3, 1, 2}, 5, true)
	assert.Equal(t, a, b)
}

func TestKeyDistinguishesTurn(t *testing.T) {
	table := zobrist.NewTable(10, 2, zobrist.WithSeed(2))
	copsTurn := table.Key([]int{1, 2}, 5, true)
	robberTurn := table.Key([]int{1, 2}, 5, false)
	assert.NotEqual(t, copsTurn, robberTurn)
}

func TestKeyDistinguishesSharedOccupancy(t *testing.T) {
	table := zobrist.NewTable(10, 2, zobrist.WithSeed(3))
	shared := table.Key([]int{4, 4}, 5, true)
	separate := table.Key([]int{4, 1}, 5, true)
	assert.NotEqual(t, shared, separate)
}

func TestDeterministicWithSameSeed(t *testing.T) {
	t1 := zobrist.NewTable(8, 2, zobrist.WithSeed(42))
	t2 := zobrist.NewTable(8, 2, zobrist.WithSeed(42))
	assert.Equal(t, t1.Key([]int{1, 2}, 3, true), t2.Key([]int{1, 2}, 3, true))
}

func TestNewTablePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { zobrist.NewTable(0, 2) })
	assert.Panics(t, func() { zobrist.NewTable(5, 0) })
}

func TestTranspositionTableKeepsDeepestEntry(t *testing.T) {
	keys := zobrist.NewTable(10, 2, zobrist.WithSeed(7))
	tt := zobrist.NewTranspositionTable(keys)

	tt.Store([]int{1, 2}, 3, true, 2, zobrist.Move{1}, 0.5)
	tt.Store([]int{1, 2}, 3, true, 5, zobrist.Move{2}, 0.9)
	tt.Store([]int{1, 2}, 3, true, 1, zobrist.Move{9}, -1)

	move, value, ok := tt.Lookup([]int{2, 1}, 3, true, 0)
	require.True(t, ok)
	assert.Equal(t, zobrist.Move{2}, move)
	assert.Equal(t, 0.9, value)

	_, _, ok = tt.Lookup([]int{1, 2}, 3, true, 6)
	assert.False(t, ok)
}
