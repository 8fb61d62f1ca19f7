package player_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/player"
)

func cycleGraph(n int) *graph.Graph {
	g := graph.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = string(rune('a' + i))
		_ = g.AddVertex(ids[i])
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(ids[i], ids[(i+1)%n])
	}
	return g
}

func TestCopsInitAndStepProduceLegalPositions(t *testing.T) {
	g := cycleGraph(8)
	cops := player.NewCops(g,
		player.WithCopsCount(2),
		player.WithCopsTimeouts(500*time.Millisecond, 200*time.Millisecond),
		player.WithCopsSeed(1),
	)

	init := cops.InitPositions()
	require.Len(t, init, 2)
	for _, pos := range init {
		assert.True(t, g.HasVertex(pos))
	}

	last, ok := cops.LastMove()
	require.True(t, ok)
	assert.Equal(t, init, last)

	move := cops.Step("e")
	require.Len(t, move, 2)
	for _, pos := range move {
		assert.True(t, g.HasVertex(pos))
	}

	last, ok = cops.LastMove()
	require.True(t, ok)
	assert.Equal(t, move, last)
}

func TestRobberInitAndStepProduceLegalPositions(t *testing.T) {
	g := cycleGraph(8)
	robber := player.NewRobber(g,
		player.WithRobberTimeouts(500*time.Millisecond, 200*time.Millisecond),
		player.WithRobberSeed(2),
	)

	start := robber.InitPosition([]string{"a"})
	assert.True(t, g.HasVertex(start))

	last, ok := robber.LastMove()
	require.True(t, ok)
	assert.Equal(t, start, last)

	move := robber.Step([]string{"a"})
	assert.True(t, g.HasVertex(move))

	last, ok = robber.LastMove()
	require.True(t, ok)
	assert.Equal(t, move, last)
}

func TestLastMoveBeforeInitIsAbsent(t *testing.T) {
	g := cycleGraph(4)
	cops := player.NewCops(g, player.WithCopsCount(1), player.WithCopsSeed(3))

	_, ok := cops.LastMove()
	assert.False(t, ok)
}
