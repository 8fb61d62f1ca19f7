package strategy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/strategy"
)

// pathGraph builds a chain 0-1-2-...-(n-1).
func pathGraph(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(itoaTest(i))
	}
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(itoaTest(i), itoaTest(i+1))
	}
	return g
}

func itoaTest(v int) string {
	digits := "0123456789"
	if v < 10 {
		return string(digits[v])
	}
	return itoaTest(v/10) + string(digits[v%10])
}

func TestNewComputesInitPositions(t *testing.T) {
	g := pathGraph(9)
	s := strategy.New(g, 2, time.Now().Add(500*time.Millisecond), strategy.WithSeed(1))

	init := s.Init()
	require.Len(t, init, 2)
	for _, v := range init {
		assert.True(t, g.HasVertex(v))
	}
}

func TestStepReturnsLegalMove(t *testing.T) {
	g := pathGraph(9)
	s := strategy.New(g, 1, time.Now().Add(500*time.Millisecond), strategy.WithSeed(2))

	cops := s.Init()
	move := s.Step(cops, "8", time.Now().Add(200*time.Millisecond))
	require.Len(t, move, 1)

	ok := move[0] == cops[0]
	if !ok {
		nbrs, err := g.Neighbors(cops[0])
		require.NoError(t, err)
		for _, n := range nbrs {
			if n == move[0] {
				ok = true
				break
			}
		}
	}
	assert.True(t, ok, "move %v must stay put or cross an edge from %v", move, cops)
}

func TestStepCatchesRobberOnSharedVertex(t *testing.T) {
	g := pathGraph(5)
	s := strategy.New(g, 1, time.Now().Add(500*time.Millisecond), strategy.WithSeed(3))

	move := s.Step([]string{"2"}, "2", time.Now().Add(200*time.Millisecond))
	require.Len(t, move, 1)
	assert.Equal(t, "2", move[0])
}

// TestHalvedProbabilityDecaysTowardZero checks the halving arithmetic
// minimaxProbability/minimaxTimeoutProbability rely on, without building
// a Strategy: a probability halved on every use approaches zero but
// never reaches it. For minimaxProbability (the chance to run abstract
// minimax at a position) this makes repeated minimax at one position
// ever less likely; for minimaxTimeoutProbability (the chance to skip a
// confirmation) it makes a skipped confirmation ever more likely to run.
func TestHalvedProbabilityDecaysTowardZero(t *testing.T) {
	p := 1.0
	for i := 0; i < 50; i++ {
		p /= 2
	}
	assert.Less(t, p, 1e-10)
	assert.Greater(t, p, 0.0)
}
