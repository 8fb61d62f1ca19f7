package islands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/islands"
)

func twoTriangles() *graph.Graph {
	g := graph.New()
	for _, e := range [][2]string{{"a0", "a1"}, {"a1", "a2"}, {"a2", "a0"}, {"b0", "b1"}, {"b1", "b2"}, {"b2", "b0"}} {
		_ = g.AddEdge(e[0], e[1])
	}
	return g
}

func TestAllocateCopsFewerThanComponents(t *testing.T) {
	g := twoTriangles()
	components := g.Components()
	require.Len(t, components, 2)

	counts := islands.AllocateCops(g, components, 1)
	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 1, total)
}

func TestAllocateCopsOneEach(t *testing.T) {
	g := twoTriangles()
	components := g.Components()
	counts := islands.AllocateCops(g, components, 2)
	assert.Equal(t, []int{1, 1}, counts)
}

func TestOrchestratorDispatchesOnlyRobbersComponent(t *testing.T) {
	g := twoTriangles()
	o := islands.New(g, 2, time.Now().Add(500*time.Millisecond), islands.WithSeed(1))

	init := o.Init()
	require.Len(t, init, 2)

	move := o.Step(init, "a0", time.Now().Add(200*time.Millisecond))
	require.Len(t, move, 2)

	componentOfA := g.ComponentOf("a0")
	for i, pos := range move {
		if g.ComponentOf(init[i]) != componentOfA {
			assert.Equal(t, init[i], pos, "cops outside the robber's component must not move")
		}
	}
}
