package robber_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/robber"
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

func TestInitPrefersVertexFarFromCops(t *testing.T) {
	g := cycleGraph(8)
	s := robber.New(g, time.Now().Add(500*time.Millisecond), robber.WithSeed(1))

	start := s.Init([]string{"a"})
	assert.True(t, g.HasVertex(start))
	// "e" is the only vertex of the 8-cycle four hops from "a".
	assert.Equal(t, "e", start)
}

func TestStepReturnsLegalMove(t *testing.T) {
	g := cycleGraph(8)
	s := robber.New(g, time.Now().Add(500*time.Millisecond), robber.WithSeed(2))

	move := s.Step([]string{"a"}, "e", time.Now().Add(200*time.Millisecond))
	require.True(t, g.HasVertex(move))

	if move != "e" {
		nbrs, err := g.Neighbors("e")
		require.NoError(t, err)
		found := false
		for _, n := range nbrs {
			if n == move {
				found = true
			}
		}
		assert.True(t, found, "robber move %q must stay or cross an edge from e", move)
	}
}

func TestStepStaysWhenCopAlreadyAdjacentEverywhere(t *testing.T) {
	g := graph.New()
	_ = g.AddEdge("x", "y")
	s := robber.New(g, time.Now().Add(500*time.Millisecond), robber.WithSeed(3))

	move := s.Step([]string{"x", "y"}, "x", time.Now().Add(200*time.Millisecond))
	assert.Equal(t, "x", move)
}
